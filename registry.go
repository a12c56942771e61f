package plinth

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicateWidget is returned when registering a widget type under
	// a name that's already taken.
	ErrDuplicateWidget = errors.New("widget type already registered")

	// ErrUnknownWidget is returned when a widget type name has no
	// registration behind it: declaring resources for a type that never
	// registered, registering a type that uses one, or rendering a page
	// whose type is missing.
	ErrUnknownWidget = errors.New("widget type not registered")

	// ErrInvalidKind is returned when declaring a resource with a Kind
	// that isn't one of the package's Kind constants.
	ErrInvalidKind = errors.New("not a valid resource kind")

	// ErrEmptyDeclaration is returned when declaring a resource with an
	// empty value.
	ErrEmptyDeclaration = errors.New("declaration value is empty")
)

// widgetType is one registered widget type: the types it builds on, and the
// resources it has declared so far.
type widgetType struct {
	uses  []string
	decls []Declaration
}

// A Registry records which widget types exist, which types each one builds
// on, and which resources each one declared. Rendering resolves pages
// against a Registry; nothing about a page's resources lives anywhere else.
//
// A Registry is safe for concurrent use. The intended lifecycle is that
// widget packages register and declare while the program is initializing
// and rendering starts once that's done, but nothing enforces it;
// declarations made later are simply picked up by the next render that
// needs them.
//
// The zero value isn't usable; create Registries with NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*widgetType
}

// NewRegistry returns an empty Registry, ready for registrations.
func NewRegistry() *Registry {
	return &Registry{
		types: map[string]*widgetType{},
	}
}

// Register adds a widget type under name. The uses list names the widget
// types this one builds on: the type it's a specialization of, the widgets
// it renders in its markup, or both. Everything those types declare gets
// folded into this type's effective declarations, ahead of its own, however
// many times their instances appear in a rendered page.
//
// Every entry in uses must already be registered, which is what keeps the
// registration table acyclic. Registering a name twice returns
// ErrDuplicateWidget; a failed Register leaves the Registry untouched.
func (r *Registry) Register(name string, uses ...string) error {
	if name == "" {
		return fmt.Errorf("registering widget type: name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[name]; ok {
		return fmt.Errorf("registering %q: %w", name, ErrDuplicateWidget)
	}
	for _, use := range uses {
		if _, ok := r.types[use]; !ok {
			return fmt.Errorf("registering %q: uses %q: %w", name, use, ErrUnknownWidget)
		}
	}
	r.types[name] = &widgetType{uses: append([]string(nil), uses...)}
	return nil
}

// MustRegister is like Register, but panics on error. It's meant for
// registering widget types from package init functions, where there's
// nobody to hand an error to.
func (r *Registry) MustRegister(name string, uses ...string) {
	err := r.Register(name, uses...)
	if err != nil {
		panic(err)
	}
}

// Declare records a resource against the widget type named by owner. The
// declaration is appended to owner's own declarations, after everything
// owner already declared; other types are never modified, and a failed
// Declare doesn't modify anything at all.
//
// Declaring a value twice isn't an error. External kinds deduplicate when a
// document renders; inline kinds are emitted once per declaration,
// duplicates included.
func (r *Registry) Declare(owner string, kind Kind, value string) error {
	if !kind.valid() {
		return fmt.Errorf("declaring %q resource for %q: %w", kind, owner, ErrInvalidKind)
	}
	if value == "" {
		return fmt.Errorf("declaring %s resource for %q: %w", kind, owner, ErrEmptyDeclaration)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	typ, ok := r.types[owner]
	if !ok {
		return fmt.Errorf("declaring %s resource for %q: %w", kind, owner, ErrUnknownWidget)
	}
	typ.decls = append(typ.decls, Declaration{Kind: kind, Value: value})
	return nil
}

// MustDeclare is like Declare, but panics on error, for use in package init
// functions alongside MustRegister.
func (r *Registry) MustDeclare(owner string, kind Kind, value string) {
	err := r.Declare(owner, kind, value)
	if err != nil {
		panic(err)
	}
}

// Effective returns the values of every declaration of the given kind that
// applies to the named widget type: each type it builds on contributes its
// declarations first, in resolution order, then the named type's own, with
// authoring order preserved within each type. A type reachable through
// several uses entries contributes once, at its first position.
//
// The result isn't deduplicated; renders collapse external kinds
// themselves. An unknown type and a kind nobody declared both yield nil,
// because having no resources is an ordinary state, not an error.
//
// Effective reads the live registration table every time it's called, so
// declarations made between two calls show up in the second one.
func (r *Registry) Effective(name string, kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var results []string
	for _, typeName := range r.resolution(name) {
		for _, decl := range r.types[typeName].decls {
			if decl.Kind != kind {
				continue
			}
			results = append(results, decl.Value)
		}
	}
	return results
}

// Ancestors returns the widget types the named type builds on,
// transitively: the same resolution order Effective aggregates in, without
// the named type itself. It returns nil for unknown types and for types
// that use nothing.
func (r *Registry) Ancestors(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order := r.resolution(name)
	if len(order) < 2 {
		return nil
	}
	return order[:len(order)-1]
}

// Declared returns a copy of the declarations the named widget type made
// itself, every kind mixed together in authoring order. Declarations from
// the types it builds on aren't included; Effective has the full picture.
func (r *Registry) Declared(name string) []Declaration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	typ, ok := r.types[name]
	if !ok {
		return nil
	}
	return append([]Declaration(nil), typ.decls...)
}

// Has reports whether a widget type is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

// Reset empties the Registry: every widget type and every declaration is
// forgotten, as if the Registry were freshly created. It exists so tests
// sharing a Registry can isolate themselves from each other; production
// code has no reason to call it.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = map[string]*widgetType{}
}

// resolution returns the named type's full aggregation order: a depth-first
// walk of the uses table with each type visited at its first encounter
// only, ending with the named type itself. Every uses entry was checked at
// Register time, so the walk can't dangle and can't cycle. Callers must
// hold the lock. Unknown names yield nil.
func (r *Registry) resolution(name string) []string {
	if _, ok := r.types[name]; !ok {
		return nil
	}
	var order []string
	seen := map[string]struct{}{}
	var visit func(string)
	visit = func(typeName string) {
		if _, ok := seen[typeName]; ok {
			return
		}
		seen[typeName] = struct{}{}
		for _, use := range r.types[typeName].uses {
			visit(use)
		}
		order = append(order, typeName)
	}
	visit(name)
	return order
}

// Default is the Registry the package-level functions operate on. Widget
// packages that register from init functions use it implicitly, the way
// process-wide registration usually works; code that wants explicit wiring
// can build its own Registry with NewRegistry and ignore Default entirely.
var Default = NewRegistry()

// Register adds a widget type to the Default registry. See
// Registry.Register.
func Register(name string, uses ...string) error {
	return Default.Register(name, uses...)
}

// MustRegister adds a widget type to the Default registry, panicking if it
// can't. See Registry.MustRegister.
func MustRegister(name string, uses ...string) {
	Default.MustRegister(name, uses...)
}

// Declare records a resource in the Default registry. See Registry.Declare.
func Declare(owner string, kind Kind, value string) error {
	return Default.Declare(owner, kind, value)
}

// MustDeclare records a resource in the Default registry, panicking if it
// can't. See Registry.MustDeclare.
func MustDeclare(owner string, kind Kind, value string) {
	Default.MustDeclare(owner, kind, value)
}

// Effective returns the effective declarations of a widget type in the
// Default registry. See Registry.Effective.
func Effective(name string, kind Kind) []string {
	return Default.Effective(name, kind)
}
