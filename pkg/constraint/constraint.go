// Package constraint defines the four geometric constraint variants a sketch can express, and
// the dependency extraction pkg/solve needs to decide when a constraint is "certain" for a
// given variable.
package constraint

import "github.com/philipparndt/gosketch/pkg/geometry"

// Constraint is a closed sum type with four variants: Fixed, Distance, Angle, SegmentDistance.
// DependsOn returns every point id the constraint mentions, including the variable being
// solved for — callers subtract that id themselves to get "other" dependencies.
type Constraint interface {
	DependsOn() []string
	isConstraint()
}

// LinePair is an ordered pair of point ids defining one of the two lines an Angle or
// SegmentDistance constraint relates.
type LinePair struct {
	P0, P1 string
}

// Other returns the id in the pair that is not v, or "" if v is in neither slot.
func (lp LinePair) Other(v string) string {
	switch v {
	case lp.P0:
		return lp.P1
	case lp.P1:
		return lp.P0
	default:
		return ""
	}
}

// Has reports whether v is one of the pair's two ids.
func (lp LinePair) Has(v string) bool {
	return lp.P0 == v || lp.P1 == v
}

// Fixed pins a point to an exact position.
type Fixed struct {
	Point    string
	Position geometry.Position
}

func (Fixed) isConstraint() {}

// DependsOn returns the single id this constraint pins.
func (c Fixed) DependsOn() []string { return []string{c.Point} }

// Distance requires |A - B| == Length.
type Distance struct {
	A, B   string
	Length float64
}

func (Distance) isConstraint() {}

// DependsOn returns both endpoint ids.
func (c Distance) DependsOn() []string { return []string{c.A, c.B} }

// Angle requires the undirected lines through LineA and LineB to meet at Theta radians.
type Angle struct {
	LineA, LineB LinePair
	Theta        float64
}

func (Angle) isConstraint() {}

// DependsOn returns the (deduplicated) ids of both line pairs.
func (c Angle) DependsOn() []string {
	return dedupe(c.LineA.P0, c.LineA.P1, c.LineB.P0, c.LineB.P1)
}

// SegmentDistance requires the perpendicular distance from Point to the infinite line through
// Segment to equal Length.
type SegmentDistance struct {
	Point   string
	Segment LinePair
	Length  float64
}

func (SegmentDistance) isConstraint() {}

// DependsOn returns Point plus the (deduplicated) segment endpoint ids.
func (c SegmentDistance) DependsOn() []string {
	return dedupe(c.Point, c.Segment.P0, c.Segment.P1)
}

func dedupe(ids ...string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Mentions reports whether constraint c depends on point id v.
func Mentions(c Constraint, v string) bool {
	for _, id := range c.DependsOn() {
		if id == v {
			return true
		}
	}
	return false
}
