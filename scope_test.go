package instantiate

import "testing"

func TestScope(t *testing.T) {
	cases := []struct {
		name      string
		scope     Scope
		wantID    string
		wantOK    bool
		qualified string
	}{
		{"no scope", NoScope, "", false, "Widget"},
		{"empty identifier", NewScope(""), "", false, "Widget"},
		{"simple", NewScope("com.app"), "com.app", true, "com.app.Widget"},
		{"no escaping", NewScope("a b/c"), "a b/c", true, "a b/c.Widget"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := tc.scope.Identifier()
			if id != tc.wantID || ok != tc.wantOK {
				t.Fatalf("Identifier() = (%q, %v), want (%q, %v)", id, ok, tc.wantID, tc.wantOK)
			}
			if got := tc.scope.Qualify("Widget"); got != tc.qualified {
				t.Fatalf("Qualify() = %q, want %q", got, tc.qualified)
			}
		})
	}
}
