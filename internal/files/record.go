// Package files defines the file records consumed by the listing pipeline,
// the directory context they belong to, and the scanner and capability
// providers that populate them.
package files

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// A Record is one directory entry along with the metadata the views need.
// Every record is going to have its name displayed at least once, its
// extension checked at least once, and its metadata queried several times,
// so everything is gathered up front and held for the duration of one
// render pass.
type Record struct {
	// Name is the final component of the path.
	Name string

	// Ext is the name's extension, lowercased, without the dot. Derived
	// once at construction and never recomputed. Empty when the name has
	// no dot.
	Ext string

	// Path is the path the record was created from. It is kept around
	// because some operations need the file's location rather than its
	// name, such as the git status lookup and the compiled-artifact
	// sibling search.
	Path string

	Mode    fs.FileMode
	Size    int64
	ModTime time.Time

	Links  uint64
	UID    uint32
	GID    uint32
	Inode  uint64
	Blocks uint64

	// Dir points back at the directory listing that produced this record,
	// for sibling lookups. It is a borrowed reference: the Dir owns its
	// path set, the record only reads it. Nil for files named directly on
	// the command line.
	Dir *Dir
}

// NewRecord builds a Record from a stat result. The sys-level fields (links,
// owner, inode, blocks) are filled from the platform stat structure when one
// is available.
func NewRecord(path string, info fs.FileInfo, dir *Dir) *Record {
	name := filepath.Base(path)
	r := &Record{
		Name:    name,
		Ext:     Ext(name),
		Path:    path,
		Mode:    info.Mode(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Dir:     dir,
	}
	fillSys(r, info)
	return r
}

// Ext extracts the lowercased extension from a file name. The extension is
// everything after the final dot, so "book.tar.gz" has extension "gz".
func Ext(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return strings.ToLower(name[i+1:])
	}
	return ""
}

// IsDirectory reports whether this entry is a directory.
func (r *Record) IsDirectory() bool {
	return r.Mode.IsDir()
}

// IsFile reports whether this entry is a regular file - not a directory, a
// link, or anything else treated specially.
func (r *Record) IsFile() bool {
	return r.Mode.IsRegular()
}

// IsSymlink reports whether this entry is a symbolic link. The scanner stats
// without following links, so links keep their own metadata.
func (r *Record) IsSymlink() bool {
	return r.Mode&fs.ModeSymlink != 0
}

// IsExecutableFile reports whether this entry is a regular file with the
// user-execute bit set. Executable files get highlighted differently from
// executable directories, which is why the regular-file check is part of it.
func (r *Record) IsExecutableFile() bool {
	return r.IsFile() && r.Mode.Perm()&0o100 != 0
}

// IsDotfile reports whether the name starts with a dot, which hides the
// entry by default.
func (r *Record) IsDotfile() bool {
	return strings.HasPrefix(r.Name, ".")
}

// NameIsOneOf reports whether the full name matches any of the choices.
func (r *Record) NameIsOneOf(choices ...string) bool {
	for _, c := range choices {
		if r.Name == c {
			return true
		}
	}
	return false
}

// ExtensionIsOneOf reports whether the extension matches any of the choices.
// Always false when the file has no extension.
func (r *Record) ExtensionIsOneOf(choices []string) bool {
	if r.Ext == "" {
		return false
	}
	for _, c := range choices {
		if r.Ext == c {
			return true
		}
	}
	return false
}

// SourceFiles returns the paths of the source files that could have produced
// this file as a build artifact, such as program.c and program.cpp for
// program.o. The paths are candidates only; whether any of them actually
// exists is answered by the record's Dir.
func (r *Record) SourceFiles() []string {
	switch r.Ext {
	case "class":
		return []string{r.withExtension("java")}
	case "css":
		return []string{r.withExtension("sass"), r.withExtension("less")}
	case "elc":
		return []string{r.withExtension("el")}
	case "hi":
		return []string{r.withExtension("hs")}
	case "js":
		return []string{r.withExtension("coffee"), r.withExtension("ts")}
	case "o":
		return []string{r.withExtension("c"), r.withExtension("cpp")}
	case "pyc":
		return []string{r.withExtension("py")}

	// TeX intermediates all map back to the .tex document.
	case "aux", "bbl", "blg", "lof", "log", "lot", "toc":
		return []string{r.withExtension("tex")}
	}
	return nil
}

// withExtension swaps the path's extension, keeping the directory part.
func (r *Record) withExtension(ext string) string {
	path := r.Path
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/') {
		path = path[:i]
	}
	return path + "." + ext
}
