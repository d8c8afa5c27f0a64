package sketchfile

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketch.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadParsesPointsAndConstraints(t *testing.T) {
	path := write(t, `{
		"points": {"a": [100, 100], "b": [200, 300]},
		"constraints": [
			{"kind": "fixed", "point": "a", "position": [50, 50]},
			{"kind": "distance", "a": "a", "b": "b", "length": 50}
		]
	}`)

	points, constraints, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if points.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", points.Len())
	}
	if len(constraints) != 2 {
		t.Fatalf("expected 2 constraints, got %d", len(constraints))
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	path := write(t, `{
		"points": {"a": [0, 0]},
		"constraints": [{"kind": "bogus", "point": "a"}]
	}`)

	if _, _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unknown constraint kind")
	}
}

func TestLoadRejectsDanglingReference(t *testing.T) {
	path := write(t, `{
		"points": {"a": [0, 0]},
		"constraints": [{"kind": "distance", "a": "a", "b": "ghost", "length": 10}]
	}`)

	if _, _, err := Load(path); err == nil {
		t.Fatal("expected an error for a constraint referencing an unknown point")
	}
}

func TestLoadRejectsDuplicatePointID(t *testing.T) {
	path := write(t, `{
		"points": {"a": [0, 0], "a": [1, 1]},
		"constraints": []
	}`)

	if _, _, err := Load(path); err == nil {
		t.Fatal("expected an error for a duplicate point id")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadDecodesAngleAndSegmentDistance(t *testing.T) {
	path := write(t, `{
		"points": {"a": [0,0], "b": [10,0], "c": [5,5], "p": [5,-2]},
		"constraints": [
			{"kind": "angle", "lineA": ["a","c"], "lineB": ["c","b"], "theta": 1.5707963},
			{"kind": "segmentDistance", "point": "p", "segment": ["a","b"], "length": 3}
		]
	}`)

	_, constraints, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(constraints) != 2 {
		t.Fatalf("expected 2 constraints, got %d", len(constraints))
	}
}
