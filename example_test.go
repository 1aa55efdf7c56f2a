package instantiate_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ARTM2000/instantiate"
)

// Types used in examples only.
type Widget struct{ Label string }

func (*Widget) Instantiable() {}

type LegacyWidget struct{}

func ExampleNewRegistry() {
	r := instantiate.NewRegistry(instantiate.WithDefaultScope(instantiate.NewScope("com.app")))

	_ = r.Register("Widget", func() *Widget { return &Widget{Label: "app"} },
		instantiate.InScope(instantiate.NewScope("com.app")))

	w := r.Create("Widget").(*Widget)
	fmt.Println(w.Label)
	// Output: app
}

func ExampleRegistry_CreateIn() {
	r := instantiate.NewRegistry()
	app := instantiate.NewScope("com.app")

	// A global type with the same name that never opted in does not hide the
	// scoped one.
	_ = r.RegisterType("Widget", instantiate.TypeOf[LegacyWidget]())
	_ = r.Register("Widget", func() *Widget { return &Widget{Label: "scoped"} }, instantiate.InScope(app))

	fmt.Println(r.CreateIn("Widget", app).(*Widget).Label)
	fmt.Println(r.CreateIn("Widget", instantiate.NoScope) == nil)
	// Output:
	// scoped
	// true
}

func ExampleRegistry_Resolve() {
	r := instantiate.NewRegistry()
	_ = r.RegisterType("Widget", instantiate.TypeOf[LegacyWidget]())

	_, err := r.Resolve("Widget", instantiate.NoScope)
	fmt.Println(errors.Is(err, instantiate.ErrNotInstantiable))
	// Output: true
}

func ExampleCreateAs() {
	r := instantiate.NewRegistry()
	_ = r.Register("Widget", func() *Widget { return &Widget{Label: "typed"} })

	w, ok := instantiate.CreateAs[*Widget](r, "Widget", instantiate.NoScope)
	fmt.Println(w.Label, ok)
	// Output: typed true
}

func ExampleWithConfig() {
	cfg, err := instantiate.LoadConfig(strings.NewReader(`
defaultScope: com.app
aliases:
  OldWidget: com.app.Widget
`))
	if err != nil {
		panic(err)
	}

	r := instantiate.NewRegistry(instantiate.WithConfig(cfg))
	_ = r.Register("Widget", func() *Widget { return &Widget{Label: "aliased"} },
		instantiate.InScope(r.DefaultScope()))

	fmt.Println(r.Create("OldWidget").(*Widget).Label)
	// Output: aliased
}
