//go:build linux

package files

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SystemMounts returns the native mount-point provider, degrading to the
// no-op one when the mount table cannot be read.
func SystemMounts() MountProvider {
	m, err := LoadMounts()
	if err != nil {
		return NoMounts{}
	}
	return m
}

// ProcMounts is the MountProvider backed by /proc/self/mounts.
type ProcMounts struct {
	points map[string]struct{}
}

// LoadMounts reads the mount table once. The table does not change during a
// listing pass, so one read is enough.
func LoadMounts() (*ProcMounts, error) {
	f, err := os.Open("/proc/self/mounts")
	if err != nil {
		return nil, fmt.Errorf("read mount table: %w", err)
	}
	defer f.Close()

	points := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// device mountpoint fstype options dump pass
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		// Octal escapes cover spaces in mount point names.
		point := strings.NewReplacer(`\040`, " ", `\011`, "\t").Replace(fields[1])
		points[point] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mount table: %w", err)
	}
	return &ProcMounts{points: points}, nil
}

func (m *ProcMounts) IsMountPoint(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, ok := m.points[abs]
	return ok
}
