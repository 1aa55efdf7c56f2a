package instantiate

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Instantiable is the capability a type must declare to be created by name.
// Having a registered constructor is not enough; the type opts in by
// implementing the marker method.
type Instantiable interface {
	Instantiable()
}

var (
	instantiableType = reflect.TypeOf((*Instantiable)(nil)).Elem()
	errorType        = reflect.TypeOf((*error)(nil)).Elem()
)

// Registry maps textual identifiers to types and their zero-argument
// constructors. Use [NewRegistry] to create an instance.
type Registry interface {
	// Register adds a constructor under name. The constructor must be a
	// function with no parameters and the signature func() T or
	// func() (T, error). T does not need to implement [Instantiable]; such
	// entries are visible to [Registry.Lookup] but are never constructed.
	Register(name string, constructor interface{}, opts ...Option) error

	// RegisterType records a type under name without a constructor. The
	// entry can be looked up but never constructed.
	RegisterType(name string, t reflect.Type, opts ...Option) error

	// Alias makes alias resolve to identifier on lookup. The target does not
	// need to be registered yet.
	Alias(alias, identifier string) error

	// Lookup returns the entry registered under identifier, following a
	// single alias hop if there is no direct match.
	Lookup(identifier string) (Type, bool)

	// Types returns a snapshot of all entries ordered by identifier.
	Types() []Type

	// DefaultScope is the scope used by [Registry.Create].
	DefaultScope() Scope

	// Create is CreateIn with the default scope.
	Create(name string) Instantiable

	// CreateIn returns a new instance of the type named name, trying the
	// bare name first and then the name qualified by scope. It returns nil
	// when nothing matched.
	CreateIn(name string, scope Scope) Instantiable

	// Resolve is CreateIn that reports why nothing was created.
	Resolve(name string, scope Scope) (Instantiable, error)
}

// Type is a read-only view of a registry entry.
type Type struct {
	// Name is the unqualified name the type was registered with.
	Name string
	// Scope is the registration scope, possibly [NoScope].
	Scope Scope
	// ReflectType is the type the constructor produces.
	ReflectType reflect.Type

	constructible bool
}

// Identifier is the key the type is registered under.
func (t Type) Identifier() string {
	return t.Scope.Qualify(t.Name)
}

// IsInstantiable reports whether the type implements [Instantiable] and has
// a constructor.
func (t Type) IsInstantiable() bool {
	return t.constructible && t.ReflectType.Implements(instantiableType)
}

type registry struct {
	mu sync.RWMutex

	entries map[string]*entry
	aliases map[string]string

	defaultScope Scope
	logger       *zap.Logger
}

// NewRegistry creates an empty [Registry].
func NewRegistry(opts ...RegistryOption) Registry {
	r := &registry{
		entries:      make(map[string]*entry),
		aliases:      make(map[string]string),
		defaultScope: mainScope(),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *registry) Register(name string, constructor interface{}, opts ...Option) error {
	if constructor == nil {
		return fmt.Errorf("%w: %q: constructor is nil", ErrInvalidConstructor, name)
	}

	val := reflect.ValueOf(constructor)
	typ := val.Type()

	if typ.Kind() != reflect.Func {
		return fmt.Errorf("%w: %q: constructor must be a function", ErrInvalidConstructor, name)
	}
	if val.IsNil() {
		return fmt.Errorf("%w: %q: constructor is nil", ErrInvalidConstructor, name)
	}
	if typ.NumIn() != 0 {
		return fmt.Errorf("%w: %q: constructor must not take arguments", ErrInvalidConstructor, name)
	}
	if typ.NumOut() == 0 || typ.NumOut() > 2 {
		return fmt.Errorf("%w: %q: constructor must return (T) or (T, error)", ErrInvalidConstructor, name)
	}
	if typ.NumOut() == 2 && !typ.Out(1).Implements(errorType) {
		return fmt.Errorf("%w: %q: second return value must implement error", ErrInvalidConstructor, name)
	}

	return r.add(&entry{
		name:        name,
		constructor: val,
		outType:     typ.Out(0),
	}, opts)
}

func (r *registry) RegisterType(name string, t reflect.Type, opts ...Option) error {
	if t == nil {
		return fmt.Errorf("%w: %q: type is nil", ErrInvalidConstructor, name)
	}
	return r.add(&entry{name: name, outType: t}, opts)
}

func (r *registry) add(e *entry, opts []Option) error {
	if e.name == "" {
		return ErrInvalidName
	}
	for _, opt := range opts {
		opt(e)
	}

	id := e.scope.Qualify(e.name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateType, id)
	}
	r.entries[id] = e

	r.logger.Debug("registered type",
		zap.String("identifier", id),
		zap.Stringer("type", e.outType),
		zap.Bool("instantiable", e.view().IsInstantiable()))
	return nil
}

func (r *registry) Alias(alias, identifier string) error {
	if alias == "" || identifier == "" {
		return ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[alias]; exists {
		return fmt.Errorf("%w: alias %q shadows a registered type", ErrDuplicateType, alias)
	}
	if _, exists := r.aliases[alias]; exists {
		return fmt.Errorf("%w: alias %q", ErrDuplicateType, alias)
	}
	r.aliases[alias] = identifier
	return nil
}

func (r *registry) Lookup(identifier string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.lookup(identifier)
	if !ok {
		return Type{}, false
	}
	return e.view(), true
}

func (r *registry) Types() []Type {
	r.mu.RLock()
	out := make([]Type, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.view())
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Type) int {
		return strings.Compare(a.Identifier(), b.Identifier())
	})
	return out
}

func (r *registry) DefaultScope() Scope {
	return r.defaultScope
}

// lookup must be called with r.mu held.
func (r *registry) lookup(identifier string) (*entry, bool) {
	if e, ok := r.entries[identifier]; ok {
		return e, true
	}
	if target, ok := r.aliases[identifier]; ok {
		e, ok := r.entries[target]
		return e, ok
	}
	return nil, false
}

func (e *entry) view() Type {
	return Type{
		Name:          e.name,
		Scope:         e.scope,
		ReflectType:   e.outType,
		constructible: e.constructor.IsValid(),
	}
}
