package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// A Dir is the listing of one directory: its path and the set of entry paths
// it contains. Records borrow a reference to their Dir so they can answer
// sibling questions ("does program.c exist next to program.o?") without
// owning the listing; the Dir stays alive for the duration of the render
// pass that created it.
type Dir struct {
	// Path is the directory as named on the command line.
	Path string

	contents []string
	set      map[string]struct{}
}

// ReadDir reads the named directory and returns its listing. The entries
// are not yet stat'ed; call Files to turn them into records.
func ReadDir(path string) (*Dir, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}

	d := &Dir{
		Path: path,
		set:  make(map[string]struct{}, len(entries)),
	}
	for _, entry := range entries {
		p := filepath.Join(path, entry.Name())
		d.contents = append(d.contents, p)
		d.set[p] = struct{}{}
	}
	sort.Strings(d.contents)
	return d, nil
}

// Contains reports whether the given path is one of this directory's
// entries.
func (d *Dir) Contains(path string) bool {
	_, ok := d.set[path]
	return ok
}

// Files stats every entry and returns the resulting records. Hidden entries
// are skipped unless showHidden is set. Entries whose stat fails are
// reported in the error slice and the rest of the listing continues; the
// views never see a half-resolved record.
func (d *Dir) Files(showHidden bool) ([]*Record, []error) {
	var records []*Record
	var errs []error

	for _, path := range d.contents {
		info, err := os.Lstat(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("stat %s: %w", path, err))
			continue
		}
		r := NewRecord(path, info, d)
		if !showHidden && r.IsDotfile() {
			continue
		}
		records = append(records, r)
	}
	return records, errs
}
