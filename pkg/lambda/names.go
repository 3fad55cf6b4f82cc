package lambda

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// UsedNames returns every name occurring in t, whether as a variable
// reference or as a binder.
func UsedNames(t Term) *set.Set[string] {
	names := set.New[string](8)
	collectNames(t, names)
	return names
}

func collectNames(t Term, names *set.Set[string]) {
	switch t := t.(type) {
	case Var:
		names.Insert(t.ID.Name)
	case Abs:
		names.Insert(t.Param.Name)
		collectNames(t.Body, names)
	case App:
		collectNames(t.Fun, names)
		collectNames(t.Arg, names)
	default:
		panic(fmt.Sprintf("lambda: unknown term %T", t))
	}
}

// FreeNames returns the names of the variables of t not bound by any
// enclosing abstraction.
func FreeNames(t Term) *set.Set[string] {
	free := set.New[string](8)
	collectFree(t, set.New[string](0), free)
	return free
}

func collectFree(t Term, bound, free *set.Set[string]) {
	switch t := t.(type) {
	case Var:
		if !bound.Contains(t.ID.Name) {
			free.Insert(t.ID.Name)
		}
	case Abs:
		inner := bound.Copy()
		inner.Insert(t.Param.Name)
		collectFree(t.Body, inner, free)
	case App:
		collectFree(t.Fun, bound, free)
		collectFree(t.Arg, bound, free)
	}
}

// BoundNames returns the binder names of t.
func BoundNames(t Term) *set.Set[string] {
	bound := set.New[string](8)
	for _, name := range binders(t, nil) {
		bound.Insert(name)
	}
	return bound
}

// binders lists binder names in pre-order, duplicates included.
func binders(t Term, acc []string) []string {
	switch t := t.(type) {
	case Abs:
		return binders(t.Body, append(acc, t.Param.Name))
	case App:
		return binders(t.Arg, binders(t.Fun, acc))
	}
	return acc
}

// IsUnique reports whether every binder of t has a name distinct from every
// other binder and from every free variable.
func IsUnique(t Term) bool {
	seen := FreeNames(t)
	for _, name := range binders(t, nil) {
		if !seen.Insert(name) {
			return false
		}
	}
	return true
}
