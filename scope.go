package instantiate

import "runtime/debug"

// Scope qualifies an unqualified type name. A scope may have no identifier,
// in which case qualified lookup is skipped.
type Scope struct {
	id string
}

// NoScope has no identifier.
var NoScope = Scope{}

// NewScope returns a scope with the given identifier. An empty id yields
// [NoScope].
func NewScope(id string) Scope {
	return Scope{id: id}
}

// Identifier returns the scope identifier and whether one is set.
func (s Scope) Identifier() (string, bool) {
	return s.id, s.id != ""
}

// Qualify joins the scope identifier and name with a dot. Neither part is
// escaped or validated.
func (s Scope) Qualify(name string) string {
	if s.id == "" {
		return name
	}
	return s.id + "." + name
}

func (s Scope) String() string {
	return s.id
}

// mainScope is the scope of the running binary's main module, or [NoScope]
// when build information is unavailable.
func mainScope() Scope {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return NoScope
	}
	return NewScope(info.Main.Path)
}
