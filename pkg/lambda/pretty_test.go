package lambda

import "testing"

func TestRender(t *testing.T) {
	renamed := Identifier{Name: "v0", Original: "x"}

	tests := []struct {
		name      string
		term      Term
		annotated string
		plain     string
	}{
		{"variable", V("x"), "x", "x"},
		{"renamed variable", Var{ID: renamed}, "v0<x>", "v0"},
		{"lambda", L("x", V("y")), "#x -> y", "#x -> y"},
		{"renamed lambda", Abs{Param: renamed, Body: Var{ID: renamed}}, "#v0<x> -> v0<x>", "#v0 -> v0"},
		{"application", A(V("x"), V("y")), "x y", "x y"},
		{"chain", A(V("a"), V("b"), V("c")), "(a b) c", "(a b) c"},
		{"nested argument", A(V("a"), A(V("b"), V("c"))), "a (b c)", "a (b c)"},
		{"lambda in function position", A(L("x", V("x")), V("y")), "(#x -> x) y", "(#x -> x) y"},
		{"lambda argument", A(V("f"), L("x", V("x"))), "f (#x -> x)", "f (#x -> x)"},
		{"curried", L("x", L("y", A(V("x"), V("y")))), "#x -> #y -> x y", "#x -> #y -> x y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.term); got != tt.annotated {
				t.Errorf("Render: expected %q, got %q", tt.annotated, got)
			}
			if got := RenderPlain(tt.term); got != tt.plain {
				t.Errorf("RenderPlain: expected %q, got %q", tt.plain, got)
			}
			if got := tt.term.String(); got != tt.annotated {
				t.Errorf("String: expected %q, got %q", tt.annotated, got)
			}
		})
	}
}
