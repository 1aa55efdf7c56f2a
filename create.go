package instantiate

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Registry methods
// ---------------------------------------------------------------------------

func (r *registry) Create(name string) Instantiable {
	return r.CreateIn(name, r.defaultScope)
}

func (r *registry) CreateIn(name string, scope Scope) Instantiable {
	inst, err := r.Resolve(name, scope)
	if err != nil {
		return nil
	}
	return inst
}

// Resolve tries the bare name, then the scope-qualified name. A match that
// is not instantiable never stops the search; at most one constructor runs.
func (r *registry) Resolve(name string, scope Scope) (Instantiable, error) {
	e, err := r.match(name)
	if err == nil {
		return r.construct(e)
	}
	notFound := err

	id, ok := scope.Identifier()
	if !ok {
		return nil, notFound
	}

	e, err = r.match(scope.Qualify(name))
	if err != nil {
		// The qualified miss is the more specific answer unless the bare
		// name at least existed.
		if errors.Is(err, ErrTypeNotFound) && errors.Is(notFound, ErrNotInstantiable) {
			return nil, notFound
		}
		return nil, err
	}

	r.logger.Debug("resolved qualified type",
		zap.String("name", name),
		zap.String("scope", id))
	return r.construct(e)
}

// ---------------------------------------------------------------------------
// Internal
// ---------------------------------------------------------------------------

// match looks up identifier and checks it is instantiable.
func (r *registry) match(identifier string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.lookup(identifier)
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, identifier)
	}
	if !e.view().IsInstantiable() {
		r.logger.Debug("skipping non-instantiable type",
			zap.String("identifier", identifier),
			zap.Stringer("type", e.outType))
		return nil, fmt.Errorf("%w: %q (%s)", ErrNotInstantiable, identifier, e.outType)
	}
	return e, nil
}

// construct calls the entry's constructor outside of any lock.
func (r *registry) construct(e *entry) (inst Instantiable, err error) {
	id := e.scope.Qualify(e.name)

	defer func() {
		if rec := recover(); rec != nil {
			inst, err = nil, fmt.Errorf("constructing %q: panic: %v", id, rec)
		}
		if err != nil {
			r.logger.Warn("constructor failed",
				zap.String("identifier", id),
				zap.Error(err))
		}
	}()

	results := e.constructor.Call(nil)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, fmt.Errorf("constructing %q: %w", id, results[1].Interface().(error))
	}

	if isNil(results[0]) {
		return nil, fmt.Errorf("constructing %q: constructor returned nil", id)
	}
	out, ok := results[0].Interface().(Instantiable)
	if !ok {
		return nil, fmt.Errorf("constructing %q: %s is not instantiable", id, results[0].Type())
	}
	return out, nil
}

// isNil reports whether v is a nil interface or a typed nil.
func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return !v.IsValid()
}

// ---------------------------------------------------------------------------
// Generic helpers
// ---------------------------------------------------------------------------

// CreateAs resolves name in scope and converts the instance to T:
//
//	w, ok := instantiate.CreateAs[*Widget](r, "Widget", instantiate.NewScope("com.app"))
func CreateAs[T any](r Registry, name string, scope Scope) (T, bool) {
	var zero T

	inst := r.CreateIn(name, scope)
	if inst == nil {
		return zero, false
	}

	out, ok := inst.(T)
	if !ok {
		return zero, false
	}
	return out, true
}

// TypeOf returns the reflect.Type of T, for use with [Registry.RegisterType].
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
