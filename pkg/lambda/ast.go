package lambda

// Identifier labels a variable or a binder. Name is what scoping compares;
// Original is the name written in the source and is only used for display.
type Identifier struct {
	Name     string
	Original string
}

// NewIdentifier returns an identifier whose current and original names agree.
func NewIdentifier(name string) Identifier {
	return Identifier{Name: name, Original: name}
}

// Renamed returns a copy of id scoped under name, keeping the original name.
func (id Identifier) Renamed(name string) Identifier {
	return Identifier{Name: name, Original: id.Original}
}

// Term represents a lambda calculus term.
type Term interface {
	String() string
	isTerm()
}

// Var represents a variable usage.
type Var struct {
	ID Identifier
}

func (v Var) String() string {
	return Render(v)
}

func (Var) isTerm() {}

// Abs represents an abstraction (lambda).
type Abs struct {
	Param Identifier
	Body  Term
}

func (a Abs) String() string {
	return Render(a)
}

func (Abs) isTerm() {}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return Render(a)
}

func (App) isTerm() {}

// V builds a variable reference.
func V(name string) Var {
	return Var{ID: NewIdentifier(name)}
}

// L builds an abstraction binding param in body.
func L(param string, body Term) Abs {
	return Abs{Param: NewIdentifier(param), Body: body}
}

// A builds a left-associated application chain: A(f, x, y) is (f x) y.
func A(fun Term, args ...Term) Term {
	term := fun
	for _, arg := range args {
		term = App{Fun: term, Arg: arg}
	}
	return term
}

// Size counts the nodes of t.
func Size(t Term) int {
	switch t := t.(type) {
	case Abs:
		return 1 + Size(t.Body)
	case App:
		return 1 + Size(t.Fun) + Size(t.Arg)
	}
	return 1
}
