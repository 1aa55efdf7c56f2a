// Package instantiate creates instances of registered types from their
// textual name.
//
// Types opt in by implementing [Instantiable] and registering a
// zero-argument constructor with a [Registry]. [Registry.CreateIn] looks the
// bare name up first and falls back to the scope-qualified name
// "<scope>.<name>". It returns nil when nothing matched; absence is an
// ordinary result, not an error.
//
// # Quick Start
//
//	type Widget struct{}
//
//	func (*Widget) Instantiable() {}
//
//	r := instantiate.NewRegistry()
//	r.Register("Widget", func() *Widget { return &Widget{} },
//		instantiate.InScope(instantiate.NewScope("com.app")))
//
//	w := r.CreateIn("Widget", instantiate.NewScope("com.app"))
//
// # Scopes
//
// [Registry.Create] uses the registry's default scope, which is the main
// module path of the running binary unless overridden with
// [WithDefaultScope] or a [Config]. [NoScope] disables the qualified lookup.
//
// # Non-instantiable types
//
// A type registered with [Registry.RegisterType], or whose constructor
// returns something that does not implement [Instantiable], can still be
// looked up but is never constructed. Such a match does not stop the
// qualified lookup:
//
//	r.RegisterType("Widget", reflect.TypeOf(legacyWidget{}))
//	r.CreateIn("Widget", instantiate.NewScope("com.app")) // still finds com.app.Widget
//
// Use [Registry.Resolve] to learn why nothing was created.
package instantiate
