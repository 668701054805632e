package docgen

// ModuleDoc describes one documented module: a named group of related
// functions and types, typically a package.
type ModuleDoc struct {
	// Name identifies the module. Must be unique within a Registry.
	Name string

	// Summary is a one-line description shown in the table of contents
	// and under the module heading.
	Summary string

	// Description is optional longer prose rendered after the summary.
	Description string

	// Funcs are rendered in the order given.
	Funcs []FuncDoc

	// Types are rendered in the order given.
	Types []TypeDoc
}

// FuncDoc describes a function or method.
type FuncDoc struct {
	// Name of the function, e.g. "NewStore".
	Name string

	// Signature is the full Go signature, rendered in a code block.
	Signature string

	// Summary is a one-line description.
	Summary string

	// Params documents the parameters, in declaration order.
	Params []ParamDoc

	// Returns documents the results, in declaration order.
	Returns []ParamDoc
}

// TypeDoc describes an exported type.
type TypeDoc struct {
	// Name of the type, e.g. "Options".
	Name string

	// Summary is a one-line description.
	Summary string

	// Fields documents notable fields, in declaration order.
	Fields []ParamDoc
}

// ParamDoc documents one parameter, result, or field.
type ParamDoc struct {
	// Name of the parameter. May be empty for unnamed results.
	Name string

	// Type is the Go type, e.g. "time.Duration".
	Type string

	// Desc is a short description.
	Desc string
}
