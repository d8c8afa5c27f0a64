//go:build release

package assertx

// Require is a no-op in release builds; a build with the release tag trades the panic for
// speed.
func Require(ok bool, msg string) {}
