package lambda

// Substitute replaces every free occurrence of the variable name in t with
// replacement.
//
// The substitution is not capture-avoiding: a free variable of replacement
// that shares its name with a binder of t ends up bound. Callers keep binder
// names globally unique (see Uniquify) so that this never happens.
func Substitute(t Term, name string, replacement Term) Term {
	switch t := t.(type) {
	case Var:
		if t.ID.Name == name {
			return replacement
		}
		return t
	case Abs:
		if t.Param.Name == name {
			// shadowed
			return t
		}
		return Abs{Param: t.Param, Body: Substitute(t.Body, name, replacement)}
	case App:
		return App{
			Fun: Substitute(t.Fun, name, replacement),
			Arg: Substitute(t.Arg, name, replacement),
		}
	}
	return t
}
