package plinth_test

import (
	"fmt"

	"impractical.co/plinth"
)

func ExampleRegistry_Effective() {
	registry := plinth.NewRegistry()
	registry.MustRegister("Base")
	registry.MustDeclare("Base", plinth.ExternalScript, "https://example.com/base.js")
	registry.MustRegister("Nav", "Base")
	registry.MustDeclare("Nav", plinth.ExternalScript, "https://example.com/nav.js")
	registry.MustRegister("AdminPage", "Nav")
	registry.MustDeclare("AdminPage", plinth.ExternalScript, "https://example.com/admin.js")

	for _, src := range registry.Effective("AdminPage", plinth.ExternalScript) {
		fmt.Println(src)
	}

	//Output:
	// https://example.com/base.js
	// https://example.com/nav.js
	// https://example.com/admin.js
}

func ExampleRegistry_Ancestors() {
	// Sidebar and Toolbar both build on Theme; EditorPage builds on both.
	// Theme still only appears once, at its first encounter.
	registry := plinth.NewRegistry()
	registry.MustRegister("Theme")
	registry.MustRegister("Sidebar", "Theme")
	registry.MustRegister("Toolbar", "Theme")
	registry.MustRegister("EditorPage", "Sidebar", "Toolbar")

	fmt.Println(registry.Ancestors("EditorPage"))

	//Output:
	// [Theme Sidebar Toolbar]
}
