package gamut

import "github.com/philipparndt/gosketch/pkg/geometry"

// IntersectCircle intersects g with the full circle c.
func IntersectCircle(g Gamut, c geometry.Circle) Gamut {
	switch v := Simplify(g).(type) {
	case Plane:
		return Circle{C: c}
	case Circle:
		result := geometry.CircleCircle(v.C, c)
		switch result.Kind {
		case geometry.CircleCircleSame:
			return Circle{C: v.C}
		case geometry.CircleCircleNone:
			return Void{}
		default:
			return pointsToGamut(result.Points)
		}
	case Line:
		result := geometry.CircleLine(c, v.L)
		if result.Kind == geometry.CircleLineNone {
			return Void{}
		}
		return pointsToGamut(result.Points)
	case Point:
		if withinEpsilonOfCircle(v.P, c) {
			return Point{P: v.P}
		}
		return Void{}
	case Union:
		members := make([]Gamut, len(v.Members))
		for i, m := range v.Members {
			members[i] = IntersectCircle(m, c)
		}
		return Simplify(Union{Members: members})
	case Void:
		return Void{}
	default:
		panic("gamut: unreachable variant in IntersectCircle")
	}
}

func withinEpsilonOfCircle(p geometry.Position, c geometry.Circle) bool {
	d := geometry.Distance(p, c.Center) - c.Radius
	if d < 0 {
		d = -d
	}
	return d < geometry.Epsilon
}

func pointsToGamut(points []geometry.Position) Gamut {
	members := make([]Gamut, len(points))
	for i, p := range points {
		members[i] = Point{P: p}
	}
	return Simplify(Union{Members: members})
}

// IntersectLines intersects g with the union of a finite set of lines, used for constraints
// (angle, segment-distance) whose locus is naturally a pair of candidate lines rather than a
// single one.
func IntersectLines(g Gamut, lines []geometry.Line) Gamut {
	switch v := Simplify(g).(type) {
	case Plane:
		members := make([]Gamut, len(lines))
		for i, l := range lines {
			members[i] = Line{L: l}
		}
		return Simplify(Union{Members: members})
	case Circle:
		var points []geometry.Position
		for _, l := range lines {
			result := geometry.CircleLine(v.C, l)
			if result.Kind != geometry.CircleLineNone {
				points = append(points, result.Points...)
			}
		}
		return pointsToGamut(points)
	case Line:
		var points []geometry.Position
		for _, l := range lines {
			p, ok := geometry.LineLine(v.L, l)
			if ok {
				points = append(points, p)
				continue
			}
			// Parallel: coincident (within epsilon) or disjoint. Either way short-circuits the
			// whole operation immediately — a parallel member of lines settles the answer for
			// the base line regardless of what other members might say.
			if lineContainsPoint(l, v.L.From) {
				return Line{L: v.L}
			}
			return Void{}
		}
		return pointsToGamut(points)
	case Point:
		for _, l := range lines {
			if lineContainsPoint(l, v.P) {
				return Point{P: v.P}
			}
		}
		return Void{}
	case Union:
		members := make([]Gamut, len(v.Members))
		for i, m := range v.Members {
			members[i] = IntersectLines(m, lines)
		}
		return Simplify(Union{Members: members})
	case Void:
		return Void{}
	default:
		panic("gamut: unreachable variant in IntersectLines")
	}
}

func lineContainsPoint(l geometry.Line, p geometry.Position) bool {
	return geometry.Distance(p, geometry.ProjectOntoLine(p, l)) < geometry.Epsilon
}

// Intersect computes the general pairwise intersection of a and b. It normalizes Plane/Void
// operands first, distributes over a Union b, and otherwise dispatches on b's variant. The
// result is commutative in outcome even though the dispatch order (always keyed off b) differs
// from Intersect(b, a)'s (keyed off a) — see pkg/gamut's property tests.
func Intersect(a, b Gamut) Gamut {
	a = Simplify(a)
	b = Simplify(b)

	if _, ok := a.(Plane); ok {
		return b
	}
	if _, ok := b.(Plane); ok {
		return a
	}
	if _, ok := a.(Void); ok {
		return Void{}
	}
	if _, ok := b.(Void); ok {
		return Void{}
	}

	if bu, ok := b.(Union); ok {
		members := make([]Gamut, len(bu.Members))
		for i, m := range bu.Members {
			members[i] = Intersect(a, m)
		}
		return Simplify(Union{Members: members})
	}

	switch v := b.(type) {
	case Circle:
		return IntersectCircle(a, v.C)
	case Line:
		return IntersectLines(a, []geometry.Line{v.L})
	case Point:
		if p, ok := Nearest(a, v.P); ok && geometry.Distance(p, v.P) < geometry.Epsilon {
			return Point{P: v.P}
		}
		return Void{}
	default:
		panic("gamut: unreachable variant in Intersect")
	}
}
