package gamut

import "github.com/philipparndt/gosketch/internal/assertx"

// Simplify returns the canonical form of g: nested unions flattened one level, Void members
// dropped, an empty result collapsed to Void, and a singleton result collapsed to its sole
// member. Every public operator in this package returns an already-simplified Gamut (or Void),
// so callers never need to call Simplify themselves except when building ad hoc unions (see
// NewUnion).
func Simplify(g Gamut) Gamut {
	u, ok := g.(Union)
	if !ok {
		return g
	}

	var flat []Gamut
	for _, m := range u.Members {
		switch mv := m.(type) {
		case Void:
			continue
		case Union:
			// Flatten one level. mv's own members were already simplified when mv was
			// constructed (every constructor in this package simplifies before returning), so
			// a single pass here is enough to restore the depth-1 invariant.
			for _, inner := range mv.Members {
				if _, isVoid := inner.(Void); !isVoid {
					flat = append(flat, inner)
				}
			}
		default:
			flat = append(flat, m)
		}
	}

	switch len(flat) {
	case 0:
		return Void{}
	case 1:
		assertx.Require(flat[0] != nil, "Simplify produced a nil sole member")
		return flat[0]
	default:
		for _, m := range flat {
			_, isUnion := m.(Union)
			assertx.Require(!isUnion, "Simplify left a nested Union after flattening")
		}
		return Union{Members: flat}
	}
}
