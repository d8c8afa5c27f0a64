package gamut

import "github.com/philipparndt/gosketch/pkg/geometry"

// Nearest returns the position in g closest to q, and false iff g is empty. For a Circle whose
// query point coincides with the center (within epsilon, so the radial direction is undefined),
// it deterministically returns the point at angle zero rather than an arbitrary boundary point.
func Nearest(g Gamut, q geometry.Position) (geometry.Position, bool) {
	switch v := Simplify(g).(type) {
	case Plane:
		return q, true
	case Point:
		return v.P, true
	case Circle:
		if geometry.Near(q, v.C.Center) {
			return v.C.Center.Add(geometry.NewPosition(v.C.Radius, 0)), true
		}
		dir := q.Sub(v.C.Center).Unit()
		return v.C.Center.Add(dir.Mul(v.C.Radius)), true
	case Line:
		return geometry.ProjectOntoLine(q, v.L), true
	case Union:
		var (
			best  geometry.Position
			bestD float64
			found bool
		)
		for _, m := range v.Members {
			p, ok := Nearest(m, q)
			if !ok {
				continue
			}
			d := geometry.Distance(p, q)
			if !found || d < bestD {
				best, bestD, found = p, d, true
			}
		}
		return best, found
	case Void:
		return geometry.Position{}, false
	default:
		panic("gamut: unreachable variant in Nearest")
	}
}
