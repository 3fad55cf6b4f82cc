package lambda

import (
	"math"
	"strconv"

	"github.com/hashicorp/go-set/v3"
)

// FreshPrefix is the prefix of the names generated by Uniquify.
const FreshPrefix = "v"

// freshNames hands out "v0", "v1", ... skipping anything already taken.
// One generator lives for exactly one Uniquify call.
type freshNames struct {
	counter int
	taken   *set.Set[string]
	renamed int
}

func (g *freshNames) next() string {
	for {
		if g.counter == math.MaxInt {
			panic("lambda: fresh name generator exhausted")
		}
		name := FreshPrefix + strconv.Itoa(g.counter)
		g.counter++
		if g.taken.Insert(name) {
			g.renamed++
			return name
		}
	}
}

// Uniquify returns a term alpha-equivalent to t in which every binder carries
// a fresh name that differs from every name used in t and from every other
// binder. Free variables keep their names; renamed identifiers keep their
// original name for display.
func Uniquify(t Term) Term {
	out, _ := uniquify(t)
	return out
}

// uniquify also reports how many binders were renamed.
func uniquify(t Term) (Term, int) {
	gen := &freshNames{taken: UsedNames(t)}
	out := gen.rename(t)
	return out, gen.renamed
}

func (g *freshNames) rename(t Term) Term {
	switch t := t.(type) {
	case Var:
		return t
	case Abs:
		param := t.Param.Renamed(g.next())
		body := Substitute(t.Body, t.Param.Name, Var{ID: param})
		return Abs{Param: param, Body: g.rename(body)}
	case App:
		fun := g.rename(t.Fun)
		arg := g.rename(t.Arg)
		return App{Fun: fun, Arg: arg}
	}
	return t
}
