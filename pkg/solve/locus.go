package solve

import (
	"math"

	"github.com/philipparndt/gosketch/pkg/constraint"
	"github.com/philipparndt/gosketch/pkg/gamut"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// LocusOf returns the locus a single constraint c implies for variable v, given the currently
// known positions of c's other dependencies. Callers (Local) are responsible for only invoking
// this once every dependency of c other than v is present in known ("certain" constraints) —
// LocusOf itself does not check that and will panic on a missing lookup rather than guess.
func LocusOf(v string, c constraint.Constraint, known *Points) gamut.Gamut {
	switch cv := c.(type) {
	case constraint.Fixed:
		return gamut.NewPoint(cv.Position)

	case constraint.Distance:
		other := cv.A
		if v == cv.A {
			other = cv.B
		}
		center := mustGet(known, other)
		return gamut.NewCircle(geometry.NewCircle(center, cv.Length))

	case constraint.Angle:
		return angleLocus(v, cv, known)

	case constraint.SegmentDistance:
		return segmentDistanceLocus(v, cv, known)

	default:
		panic("solve: unreachable constraint variant in LocusOf")
	}
}

func angleLocus(v string, c constraint.Angle, known *Points) gamut.Gamut {
	inA := c.LineA.Has(v)
	inB := c.LineB.Has(v)

	if inA && inB {
		// Case A: v is the shared vertex of both pairs. Inscribed angle theorem: the locus is
		// the union of the two circles through A and B on which segment AB subtends Theta.
		a := mustGet(known, c.LineA.Other(v))
		b := mustGet(known, c.LineB.Other(v))

		if geometry.Distance(a, b) < geometry.Epsilon {
			return gamut.Void{}
		}
		if c.Theta <= 0 || c.Theta >= math.Pi {
			// A non-positive or reflex subtended angle has no geometric meaning here, so this
			// is treated as infeasible rather than clamped.
			return gamut.Void{}
		}

		m := geometry.LinearSum(geometry.Term{Coefficient: 0.5, Value: a}, geometry.Term{Coefficient: 0.5, Value: b})
		abLen := geometry.Distance(a, b)
		h := (abLen / 2) / math.Tan(c.Theta)
		n := geometry.Perpendicular(b.Sub(a)).Unit()

		center1 := m.Add(n.Mul(h))
		center2 := m.Sub(n.Mul(h))
		radius := geometry.Distance(center1, a)

		return gamut.NewUnion(
			gamut.NewCircle(geometry.NewCircle(center1, radius)),
			gamut.NewCircle(geometry.NewCircle(center2, radius)),
		)
	}

	var myLine, otherLine constraint.LinePair
	if inA {
		myLine, otherLine = c.LineA, c.LineB
	} else {
		myLine, otherLine = c.LineB, c.LineA
	}

	p0 := mustGet(known, otherLine.P0)
	p1 := mustGet(known, otherLine.P1)
	u := p1.Sub(p0)
	if u.Magnitude() < geometry.Epsilon {
		// The other segment's direction is undefined; v is unconstrained by this constraint.
		return gamut.Plane{}
	}

	through := mustGet(known, myLine.Other(v))
	return linesAtAngle(through, u, c.Theta)
}

func segmentDistanceLocus(v string, c constraint.SegmentDistance, known *Points) gamut.Gamut {
	if c.Segment.Has(c.Point) {
		// The point lies on the very segment whose line it is measured against:
		// unconstraining, not reinterpreted as "distance zero satisfied".
		return gamut.Plane{}
	}

	if v == c.Point {
		a := mustGet(known, c.Segment.P0)
		b := mustGet(known, c.Segment.P1)
		segLine := geometry.NewLine(a, b)
		if segLine.Degenerate() {
			return gamut.Plane{}
		}
		return offsetLines(segLine, c.Length)
	}

	// v is one of the segment's endpoints; the other endpoint is already known.
	a := mustGet(known, c.Point)
	b := mustGet(known, c.Segment.Other(v))

	abLen := geometry.Distance(a, b)
	if abLen < geometry.Epsilon {
		return gamut.Plane{}
	}
	if c.Length > abLen+geometry.Epsilon {
		return gamut.Void{}
	}

	ratio := c.Length / abLen
	if ratio > 1 {
		ratio = 1
	}
	theta := math.Asin(ratio)
	return linesAtAngle(b, a.Sub(b), theta)
}

// linesAtAngle returns the union of the two infinite lines through `through`, each offset by
// +/- theta from the direction baseDir. When the two candidates coincide (theta at or near 0,
// or at or near pi/2 where the reflection is self-symmetric around the baseline's normal),
// only one member is returned.
func linesAtAngle(through, baseDir geometry.Position, theta float64) gamut.Gamut {
	alpha := math.Atan2(baseDir.Y, baseDir.X)
	dPlus := geometry.NewPosition(math.Cos(alpha+theta), math.Sin(alpha+theta))
	dMinus := geometry.NewPosition(math.Cos(alpha-theta), math.Sin(alpha-theta))

	linePlus := gamut.NewLine(geometry.NewLine(through, through.Add(dPlus)))
	if math.Abs(theta) <= geometry.Epsilon || math.Abs(theta-math.Pi/2) <= geometry.Epsilon {
		return linePlus
	}
	lineMinus := gamut.NewLine(geometry.NewLine(through, through.Add(dMinus)))
	return gamut.NewUnion(linePlus, lineMinus)
}

// offsetLines returns the union of the two lines parallel to l, offset by +/- distance along
// its normal. A near-zero distance collapses to l itself.
func offsetLines(l geometry.Line, distance float64) gamut.Gamut {
	if distance <= geometry.Epsilon {
		return gamut.NewLine(l)
	}
	dir := l.Direction().Unit()
	n := geometry.Perpendicular(dir)

	plus := geometry.NewLine(l.From.Add(n.Mul(distance)), l.From.Add(n.Mul(distance)).Add(dir))
	minus := geometry.NewLine(l.From.Sub(n.Mul(distance)), l.From.Sub(n.Mul(distance)).Add(dir))
	return gamut.NewUnion(gamut.NewLine(plus), gamut.NewLine(minus))
}

func mustGet(known *Points, id string) geometry.Position {
	pos, ok := known.Get(id)
	if !ok {
		panic("solve: LocusOf called with an uncertain dependency " + id)
	}
	return pos
}
