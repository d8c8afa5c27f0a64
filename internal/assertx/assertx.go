// Package assertx checks internal invariants that must never fail for correct callers — a
// non-simplified union escaping a public return, a NaN leaking out of a constructor. A tripped
// check means a programmer error inside this module, not a bad user input, so it panics rather
// than returning an error. Checks compile out of release builds; see require_release.go.
package assertx
