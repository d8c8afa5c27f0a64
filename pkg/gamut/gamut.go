// Package gamut implements the locus algebra: a closed set of six variants describing which
// positions in the plane a point may occupy, and the operators (simplify, freedom, nearest,
// intersection) the propagation solver in pkg/solve folds constraints through.
package gamut

import "github.com/philipparndt/gosketch/pkg/geometry"

// Gamut is a subset of the plane representable by one of exactly six variants: Plane, Point,
// Circle, Line, Union, or Void. It is a closed sum type: the unexported marker method prevents
// any package outside gamut from adding a seventh variant, so every switch in this package can
// be exhaustive without a default case hiding a missed variant.
type Gamut interface {
	gamutVariant()
}

// Plane is every position in the plane — the identity element of Intersect and the starting
// point of solve.Local's fold.
type Plane struct{}

// Point is a single position.
type Point struct {
	P geometry.Position
}

// Circle is the full circle (not just its interior or boundary — a 1-D locus).
type Circle struct {
	C geometry.Circle
}

// Line is the infinite line.
type Line struct {
	L geometry.Line
}

// Union is a non-empty disjunction of other gamuts. After Simplify, it holds at least two
// members, none of which is itself a Union or a Void.
type Union struct {
	Members []Gamut
}

// Void is the empty set.
type Void struct{}

func (Plane) gamutVariant()  {}
func (Point) gamutVariant()  {}
func (Circle) gamutVariant() {}
func (Line) gamutVariant()   {}
func (Union) gamutVariant()  {}
func (Void) gamutVariant()   {}

// NewPoint wraps a position as a single-point gamut.
func NewPoint(p geometry.Position) Gamut {
	return Point{P: p}
}

// NewCircle wraps a circle as a full-circle gamut.
func NewCircle(c geometry.Circle) Gamut {
	return Circle{C: c}
}

// NewLine wraps an infinite line as a gamut.
func NewLine(l geometry.Line) Gamut {
	return Line{L: l}
}

// NewUnion builds a union gamut from members, simplifying the result so callers never have to
// remember to call Simplify themselves.
func NewUnion(members ...Gamut) Gamut {
	return Simplify(Union{Members: members})
}
