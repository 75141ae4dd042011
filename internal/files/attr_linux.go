//go:build linux

package files

import (
	"strings"

	"golang.org/x/sys/unix"
)

// SystemAttributes returns the native extended-attribute provider.
func SystemAttributes() AttributeProvider {
	return Xattrs{}
}

// Xattrs is the AttributeProvider backed by the Linux llistxattr and
// lgetxattr calls. Lookups go through the l-variants so symlinks report
// their own attributes.
type Xattrs struct{}

func (Xattrs) List(path string) ([]Attribute, error) {
	size, err := unix.Llistxattr(path, nil)
	if err != nil || size == 0 {
		// Unsupported filesystems (ENOTSUP) are the common case, and an
		// empty list is the right answer for them.
		return nil, nil
	}

	buf := make([]byte, size)
	read, err := unix.Llistxattr(path, buf)
	if err != nil {
		return nil, nil
	}

	var attrs []Attribute
	for _, name := range strings.Split(string(buf[:read]), "\x00") {
		if name == "" {
			continue
		}
		valueSize, err := unix.Lgetxattr(path, name, nil)
		if err != nil {
			valueSize = 0
		}
		attrs = append(attrs, Attribute{Name: name, Size: valueSize})
	}
	return attrs, nil
}
