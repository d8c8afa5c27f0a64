// Package geometry implements the pure 2-D geometry kernel the locus algebra is built on:
// positions, lines, circles, segments, and the handful of closed-form intersection formulas
// the solver needs. Every function here is total and side-effect free.
package geometry

import (
	"math"

	"github.com/philipparndt/gosketch/internal/assertx"
)

// Epsilon is the fixed tolerance used by every numeric comparison in this package and in
// pkg/gamut. One micrometer relative to millimeter inputs.
const Epsilon = 1e-3

// Position is a point in the plane, in millimeters.
type Position struct {
	X, Y float64
}

// NewPosition creates a new Position.
func NewPosition(x, y float64) Position {
	assertx.Require(!math.IsNaN(x) && !math.IsNaN(y), "NewPosition given a NaN coordinate")
	return Position{X: x, Y: y}
}

// Add returns the sum of two positions treated as vectors.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul scales p by a scalar.
func (p Position) Mul(scalar float64) Position {
	return Position{X: p.X * scalar, Y: p.Y * scalar}
}

// Dot returns the dot product of p and other.
func (p Position) Dot(other Position) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Magnitude returns the Euclidean length of p treated as a vector from the origin.
func (p Position) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Unit returns p normalized to unit length, or the zero vector if p is degenerate.
func (p Position) Unit() Position {
	m := p.Magnitude()
	if m < Epsilon {
		return Position{}
	}
	return p.Mul(1.0 / m)
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b Position) float64 {
	return a.Sub(b).Magnitude()
}

// Subtract returns a - b. A free-function alias of Position.Sub for code that reads more
// naturally without a receiver.
func Subtract(a, b Position) Position {
	return a.Sub(b)
}

// Near reports whether two positions coincide within Epsilon.
func Near(a, b Position) bool {
	return Distance(a, b) <= Epsilon
}

// Term is one addend of a LinearSum: a scalar coefficient and the position it scales.
type Term struct {
	Coefficient float64
	Value       Position
}

// LinearSum computes Σ c_i · v_i for a set of weighted positions. Used by the inscribed-angle
// locus construction to build the chord midpoint without repeating the same Add/Mul chain
// inline.
func LinearSum(terms ...Term) Position {
	var sum Position
	for _, t := range terms {
		sum = sum.Add(t.Value.Mul(t.Coefficient))
	}
	return sum
}

// Perpendicular returns the vector p rotated 90 degrees counter-clockwise.
func Perpendicular(p Position) Position {
	return Position{X: -p.Y, Y: p.X}
}
