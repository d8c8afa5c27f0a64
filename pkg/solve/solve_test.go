package solve

import (
	"math"
	"testing"

	"github.com/philipparndt/gosketch/pkg/constraint"
	"github.com/philipparndt/gosketch/pkg/gamut"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(pairs ...[2]interface{}) *Points {
	p := NewPoints()
	for _, pair := range pairs {
		id := pair[0].(string)
		pos := pair[1].(geometry.Position)
		p.Set(id, pos)
	}
	return p
}

func TestSolveTriangleSide50(t *testing.T) {
	initial := pts(
		[2]interface{}{"a", geometry.NewPosition(100, 100)},
		[2]interface{}{"b", geometry.NewPosition(200, 300)},
		[2]interface{}{"c", geometry.NewPosition(400, 900)},
	)
	constraints := []constraint.Constraint{
		constraint.Fixed{Point: "a", Position: geometry.NewPosition(50, 50)},
		constraint.Distance{A: "a", B: "b", Length: 50},
		constraint.Distance{A: "a", B: "c", Length: 50},
		constraint.Distance{A: "b", B: "c", Length: 50},
	}

	result := Solve(initial, constraints)

	require.Contains(t, result.Solution, "a")
	assert.InDelta(t, 50, result.Solution["a"].X, geometry.Epsilon)
	assert.InDelta(t, 50, result.Solution["a"].Y, geometry.Epsilon)

	assert.InDelta(t, 50, geometry.Distance(result.Solution["a"], result.Solution["b"]), geometry.Epsilon)
	assert.InDelta(t, 50, geometry.Distance(result.Solution["a"], result.Solution["c"]), geometry.Epsilon)
	assert.InDelta(t, 50, geometry.Distance(result.Solution["b"], result.Solution["c"]), geometry.Epsilon)

	require.Len(t, result.Log, 3)
	assert.Equal(t, "a", result.Log[0].Variable)
	assert.Equal(t, int64(1), result.Log[0].Freedom)
	assert.Equal(t, gamut.F, result.Log[1].Freedom)
	assert.LessOrEqual(t, result.Log[2].Freedom, int64(2))
}

func TestSolveRectangleByDimensions(t *testing.T) {
	initial := pts(
		[2]interface{}{"p0", geometry.NewPosition(0, 0)},
		[2]interface{}{"p1", geometry.NewPosition(90, 5)},
		[2]interface{}{"p2", geometry.NewPosition(95, 45)},
		[2]interface{}{"p3", geometry.NewPosition(5, 55)},
		[2]interface{}{"anchor", geometry.NewPosition(1, 0)},
	)
	halfPi := math.Pi / 2
	constraints := []constraint.Constraint{
		constraint.Fixed{Point: "p0", Position: geometry.NewPosition(0, 0)},
		constraint.Fixed{Point: "anchor", Position: geometry.NewPosition(1, 0)},
		constraint.Angle{
			LineA: constraint.LinePair{P0: "p0", P1: "anchor"},
			LineB: constraint.LinePair{P0: "p0", P1: "p1"},
			Theta: 0,
		},
		constraint.Distance{A: "p0", B: "p1", Length: 100},
		constraint.Distance{A: "p1", B: "p2", Length: 50},
		constraint.Angle{
			LineA: constraint.LinePair{P0: "p0", P1: "p1"},
			LineB: constraint.LinePair{P0: "p1", P1: "p2"},
			Theta: halfPi,
		},
		constraint.Angle{
			LineA: constraint.LinePair{P0: "p1", P1: "p2"},
			LineB: constraint.LinePair{P0: "p2", P1: "p3"},
			Theta: halfPi,
		},
		constraint.Angle{
			LineA: constraint.LinePair{P0: "p2", P1: "p3"},
			LineB: constraint.LinePair{P0: "p3", P1: "p0"},
			Theta: halfPi,
		},
		constraint.Distance{A: "p2", B: "p3", Length: 100},
		constraint.Distance{A: "p3", B: "p0", Length: 50},
	}

	result := Solve(initial, constraints)

	p0 := result.Solution["p0"]
	p1 := result.Solution["p1"]
	p2 := result.Solution["p2"]
	p3 := result.Solution["p3"]

	assert.InDelta(t, 100, geometry.Distance(p0, p1), geometry.Epsilon)
	assert.InDelta(t, 50, geometry.Distance(p1, p2), geometry.Epsilon)
	assert.InDelta(t, 100, geometry.Distance(p2, p3), geometry.Epsilon)
	assert.InDelta(t, 50, geometry.Distance(p3, p0), geometry.Epsilon)

	// Diagonal check confirms a right angle at p1 (Pythagoras on the rectangle's diagonal).
	diag := geometry.Distance(p0, p2)
	assert.InDelta(t, math.Hypot(100, 50), diag, 1e-2)
}

func TestSolveFullyUnconstrainedPoint(t *testing.T) {
	initial := pts([2]interface{}{"p", geometry.NewPosition(7, 11)})

	result := Solve(initial, nil)

	assert.Equal(t, geometry.NewPosition(7, 11), result.Solution["p"])
	assert.Equal(t, []string{"p"}, result.Arbitrary)
	assert.Empty(t, result.Log)
}

func TestSolveOverConstrainedTriangleDoesNotHang(t *testing.T) {
	initial := pts(
		[2]interface{}{"a", geometry.NewPosition(0, 0)},
		[2]interface{}{"b", geometry.NewPosition(10, 0)},
		[2]interface{}{"c", geometry.NewPosition(5, 5)},
	)
	constraints := []constraint.Constraint{
		constraint.Distance{A: "a", B: "b", Length: 1},
		constraint.Distance{A: "a", B: "c", Length: 1},
		constraint.Distance{A: "b", B: "c", Length: 3},
	}

	result := Solve(initial, constraints)

	assert.Len(t, result.Solution, 3)
	assert.NotEmpty(t, result.Arbitrary, "an infeasible triangle must fall back for at least one point")
}

func TestSolveInscribedAngle(t *testing.T) {
	a := geometry.NewPosition(0, 0)
	b := geometry.NewPosition(10, 0)
	theta := math.Pi / 4

	initial := pts(
		[2]interface{}{"A", a},
		[2]interface{}{"B", b},
		[2]interface{}{"p", geometry.NewPosition(5, 5)},
	)
	constraints := []constraint.Constraint{
		constraint.Fixed{Point: "A", Position: a},
		constraint.Fixed{Point: "B", Position: b},
		constraint.Angle{
			LineA: constraint.LinePair{P0: "A", P1: "p"},
			LineB: constraint.LinePair{P0: "p", P1: "B"},
			Theta: theta,
		},
	}

	result := Solve(initial, constraints)
	p := result.Solution["p"]

	abLen := geometry.Distance(a, b)
	m := geometry.LinearSum(geometry.Term{Coefficient: 0.5, Value: a}, geometry.Term{Coefficient: 0.5, Value: b})
	h := (abLen / 2) / math.Tan(theta)
	n := geometry.Perpendicular(b.Sub(a)).Unit()
	center1 := m.Add(n.Mul(h))
	center2 := m.Sub(n.Mul(h))
	radius := geometry.Distance(center1, a)

	d1 := math.Abs(geometry.Distance(p, center1) - radius)
	d2 := math.Abs(geometry.Distance(p, center2) - radius)
	assert.True(t, d1 < geometry.Epsilon || d2 < geometry.Epsilon, "p must lie on one of the two inscribed-angle circles")
}

func TestSolvePerpendicularDistance(t *testing.T) {
	initial := pts(
		[2]interface{}{"a", geometry.NewPosition(0, 0)},
		[2]interface{}{"b", geometry.NewPosition(10, 0)},
		[2]interface{}{"p", geometry.NewPosition(5, -2)},
	)
	constraints := []constraint.Constraint{
		constraint.Fixed{Point: "a", Position: geometry.NewPosition(0, 0)},
		constraint.Fixed{Point: "b", Position: geometry.NewPosition(10, 0)},
		constraint.SegmentDistance{
			Point:   "p",
			Segment: constraint.LinePair{P0: "a", P1: "b"},
			Length:  3,
		},
	}

	result := Solve(initial, constraints)
	p := result.Solution["p"]

	assert.InDelta(t, -3, p.Y, geometry.Epsilon, "nearer to the initial guess below the line")
}

func TestSolveDeterministic(t *testing.T) {
	build := func() (*Points, []constraint.Constraint) {
		initial := pts(
			[2]interface{}{"a", geometry.NewPosition(100, 100)},
			[2]interface{}{"b", geometry.NewPosition(200, 300)},
			[2]interface{}{"c", geometry.NewPosition(400, 900)},
		)
		constraints := []constraint.Constraint{
			constraint.Fixed{Point: "a", Position: geometry.NewPosition(50, 50)},
			constraint.Distance{A: "a", B: "b", Length: 50},
			constraint.Distance{A: "a", B: "c", Length: 50},
			constraint.Distance{A: "b", B: "c", Length: 50},
		}
		return initial, constraints
	}

	i1, c1 := build()
	i2, c2 := build()

	r1 := Solve(i1, c1)
	r2 := Solve(i2, c2)

	assert.Equal(t, r1.Solution, r2.Solution)
	assert.Equal(t, len(r1.Log), len(r2.Log))
	for i := range r1.Log {
		assert.Equal(t, r1.Log[i].Variable, r2.Log[i].Variable)
		assert.Equal(t, r1.Log[i].Chosen, r2.Log[i].Chosen)
	}
}

func TestLocalFoldsAllCertainConstraints(t *testing.T) {
	known := NewPoints()
	known.Set("a", geometry.NewPosition(0, 0))

	constraints := []constraint.Constraint{
		constraint.Distance{A: "a", B: "v", Length: 5},
	}

	g, loci, freedom := Local("v", constraints, known)
	require.Len(t, loci, 1)
	assert.Equal(t, gamut.F, freedom)
	circle, ok := g.(gamut.Circle)
	require.True(t, ok)
	assert.Equal(t, 5.0, circle.C.Radius)
}

func TestPointsPrioritizeChangesOrderOnly(t *testing.T) {
	p := NewPoints()
	p.Set("a", geometry.NewPosition(0, 0))
	p.Set("b", geometry.NewPosition(1, 1))
	p.Set("c", geometry.NewPosition(2, 2))

	p.Prioritize("c")

	assert.Equal(t, []string{"c", "a", "b"}, p.IDs())
	pos, ok := p.Get("a")
	assert.True(t, ok)
	assert.Equal(t, geometry.NewPosition(0, 0), pos)
}
