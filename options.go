package instantiate

import (
	"reflect"

	"go.uber.org/zap"
)

// entry holds the metadata for a single registered type.
type entry struct {
	name        string
	scope       Scope
	constructor reflect.Value // invalid for RegisterType entries
	outType     reflect.Type
}

// Option configures an entry during registration.
type Option func(*entry)

// InScope registers the type under the qualified identifier
// "<scope>.<name>" instead of the bare name.
func InScope(scope Scope) Option {
	return func(e *entry) {
		e.scope = scope
	}
}

// RegistryOption configures a [Registry] created by [NewRegistry].
type RegistryOption func(*registry)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDefaultScope sets the scope used by [Registry.Create]. The default is
// the main module path of the running binary.
func WithDefaultScope(scope Scope) RegistryOption {
	return func(r *registry) {
		r.defaultScope = scope
	}
}

// WithConfig applies a loaded [Config]: its default scope, when set, and its
// aliases.
func WithConfig(cfg *Config) RegistryOption {
	return func(r *registry) {
		if cfg == nil {
			return
		}
		if cfg.DefaultScope != "" {
			r.defaultScope = NewScope(cfg.DefaultScope)
		}
		for alias, target := range cfg.Aliases {
			r.aliases[alias] = target
		}
	}
}
