package geometry

import "math"

// LineLine returns the intersection of two infinite lines, and false if they are parallel
// (including coincident — callers distinguish coincident-vs-disjoint themselves, since that
// distinction matters to pkg/gamut but not to this kernel function).
//
// Uses the orthogonal-projection formula: project b.From and b.To onto the normal of a's
// direction and interpolate where that projection crosses zero. The parallel branch is taken
// on an exact zero denominator.
func LineLine(a, b Line) (Position, bool) {
	dirA := a.Direction()
	dirB := b.Direction()
	if dirA.Magnitude() < Epsilon || dirB.Magnitude() < Epsilon {
		return Position{}, false
	}

	normalA := Perpendicular(dirA)
	denom := normalA.Dot(dirB)
	if denom == 0 {
		return Position{}, false
	}

	t := normalA.Dot(a.From.Sub(b.From)) / denom
	return b.From.Add(dirB.Mul(t)), true
}

// CircleCircleKind classifies the outcome of a circle-circle intersection.
type CircleCircleKind int

const (
	// CircleCircleNone indicates the circles do not meet.
	CircleCircleNone CircleCircleKind = iota
	// CircleCircleSame indicates the two circles are (within Epsilon) the same circle.
	CircleCircleSame
	// CircleCirclePoints indicates 0 (None is used instead), 1 (tangent), or 2 points.
	CircleCirclePoints
)

// CircleCircleResult is the outcome of CircleCircle.
type CircleCircleResult struct {
	Kind   CircleCircleKind
	Points []Position // populated when Kind == CircleCirclePoints
}

// CircleCircle intersects two circles following the Law-of-Cosines construction: normalizes
// negative radii, handles the coincident-center and tangent special cases exactly, and
// otherwise computes the two symmetric intersection points.
func CircleCircle(a, b Circle) CircleCircleResult {
	a = NewCircle(a.Center, a.Radius)
	b = NewCircle(b.Center, b.Radius)

	d := Distance(a.Center, b.Center)

	if d <= Epsilon {
		if math.Abs(a.Radius-b.Radius) <= Epsilon {
			return CircleCircleResult{Kind: CircleCircleSame}
		}
		return CircleCircleResult{Kind: CircleCircleNone}
	}

	sum := a.Radius + b.Radius
	diff := math.Abs(a.Radius - b.Radius)

	if math.Abs(d-sum) <= Epsilon || math.Abs(d-diff) <= Epsilon {
		// Tangent point, on the line of centers, weighted by radii.
		t := a.Radius / d
		if math.Abs(d-sum) > Epsilon && a.Radius < b.Radius {
			// Internal tangency with a inside b: the contact point lies on the side of a
			// facing away from b's center.
			t = -t
		}
		point := a.Center.Add(b.Center.Sub(a.Center).Mul(t))
		return CircleCircleResult{Kind: CircleCirclePoints, Points: []Position{point}}
	}

	// Law of Cosines: angle at a's center between the line of centers and the chord to an
	// intersection point.
	cosAngle := (a.Radius*a.Radius + d*d - b.Radius*b.Radius) / (2 * a.Radius * d)
	if cosAngle < -1 || cosAngle > 1 {
		return CircleCircleResult{Kind: CircleCircleNone}
	}
	angle := math.Acos(cosAngle)

	baseDir := b.Center.Sub(a.Center).Unit()
	baseAngle := math.Atan2(baseDir.Y, baseDir.X)

	p1 := a.Center.Add(Position{X: math.Cos(baseAngle + angle), Y: math.Sin(baseAngle + angle)}.Mul(a.Radius))
	p2 := a.Center.Add(Position{X: math.Cos(baseAngle - angle), Y: math.Sin(baseAngle - angle)}.Mul(a.Radius))

	return CircleCircleResult{Kind: CircleCirclePoints, Points: []Position{p1, p2}}
}

// CircleLineKind classifies the outcome of a circle-line intersection.
type CircleLineKind int

const (
	// CircleLineNone indicates the line misses the circle entirely.
	CircleLineNone CircleLineKind = iota
	// CircleLinePoints indicates 1 (tangent) or 2 ordinary intersection points.
	CircleLinePoints
)

// CircleLineResult is the outcome of CircleLine.
type CircleLineResult struct {
	Kind   CircleLineKind
	Points []Position
}

// CircleLine intersects a circle with an infinite line. The "line passes through the center"
// branch (d <= Epsilon) is handled explicitly rather than falling out of the general formula,
// to avoid relying on a near-zero square root staying numerically well-behaved.
func CircleLine(c Circle, l Line) CircleLineResult {
	c = NewCircle(c.Center, c.Radius)
	nearest := ProjectOntoLine(c.Center, l)
	d := Distance(c.Center, nearest)
	dir := l.Direction().Unit()

	if d <= Epsilon {
		return CircleLineResult{
			Kind: CircleLinePoints,
			Points: []Position{
				nearest.Add(dir.Mul(c.Radius)),
				nearest.Sub(dir.Mul(c.Radius)),
			},
		}
	}

	underRoot := c.Radius*c.Radius - d*d
	if underRoot < -Epsilon {
		return CircleLineResult{Kind: CircleLineNone}
	}
	if underRoot < Epsilon {
		return CircleLineResult{Kind: CircleLinePoints, Points: []Position{nearest}}
	}

	offset := math.Sqrt(underRoot)
	return CircleLineResult{
		Kind: CircleLinePoints,
		Points: []Position{
			nearest.Add(dir.Mul(offset)),
			nearest.Sub(dir.Mul(offset)),
		},
	}
}
