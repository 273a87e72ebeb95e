package types

// Identical reports whether x and y are identical types.
// Identity is structural: two pair types are identical when their
// components are, two dict types when their value types are.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Pair:
		if y, ok := y.(*Pair); ok {
			return Identical(x.x, y.x) && Identical(x.y, y.y)
		}
	case *Dict:
		if y, ok := y.(*Dict); ok {
			return Identical(x.elem, y.elem)
		}
	}
	return false
}

// IsInteger reports whether T is int.
func IsInteger(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.kind == Int
}

// IsBoolean reports whether T is bool.
func IsBoolean(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.kind == Bool
}

// AsPair returns T as a pair type, or nil.
func AsPair(T Type) *Pair {
	p, _ := T.(*Pair)
	return p
}

// AsDict returns T as a dictionary type, or nil.
func AsDict(T Type) *Dict {
	d, _ := T.(*Dict)
	return d
}
