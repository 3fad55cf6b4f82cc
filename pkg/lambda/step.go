package lambda

// Redex describes the beta-redex contracted by a reduction step.
type Redex struct {
	// Binder is the parameter of the abstraction that was applied.
	Binder Identifier
	// Depth counts the term nodes between the root and the redex.
	Depth int
}

// Step contracts exactly one beta-redex of t, choosing the leftmost-outermost
// one. It reports false when t is in normal form.
//
// Binder names of t must be globally unique (see Uniquify), otherwise the
// contraction may capture free variables of the argument.
func Step(t Term) (Term, bool) {
	next, _, ok := step(t, 0)
	return next, ok
}

func step(t Term, depth int) (Term, Redex, bool) {
	switch t := t.(type) {
	case App:
		if fn, ok := t.Fun.(Abs); ok {
			return Substitute(fn.Body, fn.Param.Name, t.Arg), Redex{Binder: fn.Param, Depth: depth}, true
		}
		if fun, r, ok := step(t.Fun, depth+1); ok {
			return App{Fun: fun, Arg: t.Arg}, r, true
		}
		if arg, r, ok := step(t.Arg, depth+1); ok {
			return App{Fun: t.Fun, Arg: arg}, r, true
		}
	case Abs:
		if body, r, ok := step(t.Body, depth+1); ok {
			return Abs{Param: t.Param, Body: body}, r, true
		}
	}
	return t, Redex{}, false
}

// IsNormal reports whether t contains no beta-redex.
func IsNormal(t Term) bool {
	switch t := t.(type) {
	case App:
		if _, ok := t.Fun.(Abs); ok {
			return false
		}
		return IsNormal(t.Fun) && IsNormal(t.Arg)
	case Abs:
		return IsNormal(t.Body)
	}
	return true
}
