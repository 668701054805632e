package docgen

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Render writes the full reference as Markdown: a table of contents
// followed by one section per module. Output is deterministic, so
// identical registrations produce identical bytes.
func (r *Registry) Render(w io.Writer) error {
	modules := r.Modules()

	var buf bytes.Buffer
	buf.WriteString("# API Reference\n")

	if len(modules) > 0 {
		buf.WriteString("\n## Contents\n\n")
		for _, m := range modules {
			fmt.Fprintf(&buf, "- [%s](#%s)", m.Name, anchor(m.Name))
			if m.Summary != "" {
				fmt.Fprintf(&buf, ": %s", m.Summary)
			}
			buf.WriteByte('\n')
		}
	}

	for _, m := range modules {
		writeModule(&buf, m)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Render writes the default registry's reference as Markdown.
func Render(w io.Writer) error {
	return DefaultRegistry.Render(w)
}

func writeModule(buf *bytes.Buffer, m ModuleDoc) {
	fmt.Fprintf(buf, "\n## %s\n", m.Name)
	if m.Summary != "" {
		fmt.Fprintf(buf, "\n%s\n", m.Summary)
	}
	if m.Description != "" {
		fmt.Fprintf(buf, "\n%s\n", m.Description)
	}

	if len(m.Types) > 0 {
		buf.WriteString("\n### Types\n")
		for _, t := range m.Types {
			fmt.Fprintf(buf, "\n#### %s\n", t.Name)
			if t.Summary != "" {
				fmt.Fprintf(buf, "\n%s\n", t.Summary)
			}
			writeParamList(buf, "Fields", t.Fields)
		}
	}

	if len(m.Funcs) > 0 {
		buf.WriteString("\n### Functions\n")
		for _, f := range m.Funcs {
			fmt.Fprintf(buf, "\n#### %s\n", f.Name)
			if f.Signature != "" {
				fmt.Fprintf(buf, "\n```go\n%s\n```\n", f.Signature)
			}
			if f.Summary != "" {
				fmt.Fprintf(buf, "\n%s\n", f.Summary)
			}
			writeParamList(buf, "Parameters", f.Params)
			writeParamList(buf, "Returns", f.Returns)
		}
	}
}

func writeParamList(buf *bytes.Buffer, title string, params []ParamDoc) {
	if len(params) == 0 {
		return
	}
	fmt.Fprintf(buf, "\n%s:\n\n", title)
	for _, p := range params {
		label := strings.TrimSpace(p.Name + " " + p.Type)
		fmt.Fprintf(buf, "- `%s`", label)
		if p.Desc != "" {
			fmt.Fprintf(buf, ": %s", p.Desc)
		}
		buf.WriteByte('\n')
	}
}

// anchor converts a module name to a GitHub-style heading anchor.
func anchor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
