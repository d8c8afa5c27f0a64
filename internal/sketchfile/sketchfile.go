// Package sketchfile loads the CLI's JSON sketch document format into the core solve and
// constraint types. It is the only package that knows this file shape exists; pkg/solve and
// pkg/constraint have no notion of JSON or files at all.
package sketchfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/pkg/constraint"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/solve"
)

type document struct {
	Points      json.RawMessage `json:"points"`
	Constraints []rawConstraint `json:"constraints"`
}

type rawConstraint struct {
	Kind     string     `json:"kind"`
	Point    string     `json:"point"`
	Position [2]float64 `json:"position"`
	A        string     `json:"a"`
	B        string     `json:"b"`
	Length   float64    `json:"length"`
	LineA    [2]string  `json:"lineA"`
	LineB    [2]string  `json:"lineB"`
	Theta    float64    `json:"theta"`
	Segment  [2]string  `json:"segment"`
}

// Load reads and parses a sketch document from path, returning the initial point positions and
// the constraints over them. It errors on malformed JSON, an unknown constraint kind, a
// duplicate point id, or a constraint that references a point id absent from points.
func Load(path string) (*solve.Points, []constraint.Constraint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sketch file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse sketch file: %w", err)
	}

	points, ids, err := decodePoints(doc.Points)
	if err != nil {
		return nil, nil, err
	}

	constraints, err := decodeConstraints(doc.Constraints, ids)
	if err != nil {
		return nil, nil, err
	}

	return points, constraints, nil
}

// decodePoints walks the "points" object token by token instead of unmarshaling straight into a
// map, so a repeated key (which encoding/json would silently let the later entry win) is caught
// instead of silently dropping a point.
func decodePoints(raw json.RawMessage) (*solve.Points, map[string]bool, error) {
	points := solve.NewPoints()
	ids := make(map[string]bool)

	if len(raw) == 0 {
		return points, ids, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, nil, fmt.Errorf("malformed sketch file: \"points\" must be a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("malformed sketch file: %w", err)
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("malformed sketch file: non-string point id")
		}
		if ids[id] {
			return nil, nil, fmt.Errorf("duplicate point id %q", id)
		}

		var xy [2]float64
		if err := dec.Decode(&xy); err != nil {
			return nil, nil, fmt.Errorf("malformed coordinates for point %q: %w", id, err)
		}

		points.Set(id, geometry.NewPosition(xy[0], xy[1]))
		ids[id] = true
	}

	return points, ids, nil
}

func decodeConstraints(raw []rawConstraint, ids map[string]bool) ([]constraint.Constraint, error) {
	out := make([]constraint.Constraint, 0, len(raw))

	for i, rc := range raw {
		c, err := decodeConstraint(rc)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		for _, dep := range c.DependsOn() {
			if !ids[dep] {
				return nil, fmt.Errorf("constraint %d: references unknown point %q", i, dep)
			}
		}
		out = append(out, c)
	}

	return out, nil
}

func decodeConstraint(rc rawConstraint) (constraint.Constraint, error) {
	switch rc.Kind {
	case "fixed":
		return constraint.Fixed{
			Point:    rc.Point,
			Position: geometry.NewPosition(rc.Position[0], rc.Position[1]),
		}, nil

	case "distance":
		return constraint.Distance{A: rc.A, B: rc.B, Length: rc.Length}, nil

	case "angle":
		return constraint.Angle{
			LineA: constraint.LinePair{P0: rc.LineA[0], P1: rc.LineA[1]},
			LineB: constraint.LinePair{P0: rc.LineB[0], P1: rc.LineB[1]},
			Theta: rc.Theta,
		}, nil

	case "segmentDistance":
		return constraint.SegmentDistance{
			Point:   rc.Point,
			Segment: constraint.LinePair{P0: rc.Segment[0], P1: rc.Segment[1]},
			Length:  rc.Length,
		}, nil

	default:
		return nil, fmt.Errorf("unknown constraint kind %q", rc.Kind)
	}
}
