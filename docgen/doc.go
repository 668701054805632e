// Package docgen renders API reference documentation from explicit
// descriptors.
//
// Modules register a ModuleDoc describing their functions and types; a
// Registry collects them and Render emits deterministic Markdown with a
// table of contents, per-function signatures, parameters, and returns.
// Descriptors are plain values declared alongside the code they
// document, so generation involves no reflection and the output is
// stable across runs.
//
//	reg := docgen.NewRegistry()
//	_ = reg.Register(docgen.ModuleDoc{
//		Name:    "cache",
//		Summary: "Bounded in-memory cache with expiration.",
//		Funcs: []docgen.FuncDoc{{
//			Name:      "NewStore",
//			Signature: "func NewStore(capacity int, opts ...Option) (*Store, error)",
//			Summary:   "NewStore creates a bounded store.",
//		}},
//	})
//	_ = reg.Render(os.Stdout)
package docgen
