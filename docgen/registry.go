package docgen

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registration errors.
var (
	ErrEmptyModuleName = errors.New("docgen: module name is empty")
	ErrDuplicateModule = errors.New("docgen: module already registered")
)

// Registry collects module descriptors for rendering.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Ordering: Modules and Render list modules sorted by name; functions
//   and types keep their registration order.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]ModuleDoc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]ModuleDoc)}
}

// Register adds a module descriptor. The module name is trimmed of
// surrounding whitespace and must be unique.
func (r *Registry) Register(doc ModuleDoc) error {
	doc.Name = strings.TrimSpace(doc.Name)
	if doc.Name == "" {
		return ErrEmptyModuleName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[doc.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateModule, doc.Name)
	}
	r.modules[doc.Name] = doc
	return nil
}

// Module returns the descriptor registered under name.
func (r *Registry) Module(name string) (ModuleDoc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.modules[strings.TrimSpace(name)]
	return doc, ok
}

// Modules returns all registered descriptors sorted by name.
func (r *Registry) Modules() []ModuleDoc {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]ModuleDoc, 0, len(r.modules))
	for _, doc := range r.modules {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs
}

// DefaultRegistry is the registry used by the package-level Register.
var DefaultRegistry = NewRegistry()

// Register adds a module descriptor to the default registry.
func Register(doc ModuleDoc) error {
	return DefaultRegistry.Register(doc)
}
