package lambda

// AlphaEquivalent reports whether a and b differ only in the names of their
// bound variables. Free variables must match by name.
func AlphaEquivalent(a, b Term) bool {
	return alphaEq(a, b, map[string]int{}, map[string]int{}, 0)
}

// la and lb map a bound name to the depth of its binder.
func alphaEq(a, b Term, la, lb map[string]int, depth int) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		if !ok {
			return false
		}
		dx, boundX := la[x.ID.Name]
		dy, boundY := lb[y.ID.Name]
		if boundX || boundY {
			return boundX && boundY && dx == dy
		}
		return x.ID.Name == y.ID.Name
	case Abs:
		y, ok := b.(Abs)
		if !ok {
			return false
		}
		oldX, hadX := la[x.Param.Name]
		oldY, hadY := lb[y.Param.Name]
		la[x.Param.Name] = depth
		lb[y.Param.Name] = depth
		eq := alphaEq(x.Body, y.Body, la, lb, depth+1)
		restore(la, x.Param.Name, oldX, hadX)
		restore(lb, y.Param.Name, oldY, hadY)
		return eq
	case App:
		y, ok := b.(App)
		if !ok {
			return false
		}
		return alphaEq(x.Fun, y.Fun, la, lb, depth) && alphaEq(x.Arg, y.Arg, la, lb, depth)
	}
	return false
}

func restore(m map[string]int, name string, old int, had bool) {
	if had {
		m[name] = old
	} else {
		delete(m, name)
	}
}
