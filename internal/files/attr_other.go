//go:build !linux

package files

// SystemAttributes returns the no-op provider on platforms without xattr
// support wired up.
func SystemAttributes() AttributeProvider {
	return NoAttributes{}
}
