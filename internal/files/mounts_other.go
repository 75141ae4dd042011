//go:build !linux

package files

// SystemMounts returns the no-op provider on platforms without a readable
// mount table.
func SystemMounts() MountProvider {
	return NoMounts{}
}
