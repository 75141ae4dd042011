// Package classify assigns each file record the semantic category that
// decides its display colour.
//
// Categories are judged from the file's name and extension alone, because
// those are the only metadata available without reading file contents.
package classify

import (
	"strings"

	"github.com/harrison/lsx/internal/files"
)

// Category is the mutually exclusive tag assigned to each record. Exactly
// one category applies; the chain in Classify decides which.
type Category int

const (
	Normal Category = iota
	Directory
	Symlink
	Special
	Executable
	Immediate
	Image
	Video
	Music
	Lossless
	Crypto
	Document
	Compressed
	Temp
	Compiled
)

var categoryNames = [...]string{
	"normal", "directory", "symlink", "special", "executable",
	"immediate", "image", "video", "music", "lossless", "crypto",
	"document", "compressed", "temp", "compiled",
}

func (c Category) String() string {
	return categoryNames[c]
}

var imageTypes = []string{
	"png", "jpeg", "jpg", "gif", "bmp", "tiff", "tif",
	"ppm", "pgm", "pbm", "pnm", "webp", "raw", "arw",
	"svg", "stl", "eps", "dvi", "ps", "cbr",
	"cbz", "xpm", "ico",
}

var videoTypes = []string{
	"avi", "flv", "m2v", "mkv", "mov", "mp4", "mpeg",
	"mpg", "ogm", "ogv", "vob", "wmv",
}

var musicTypes = []string{
	"aac", "m4a", "mp3", "ogg", "wma",
}

var losslessTypes = []string{
	"alac", "ape", "flac", "wav",
}

// The crypto and compressed sets are identical, and crypto is checked
// first, so archive extensions always classify as Crypto. The two sets stay
// separate because they are separate predicates, not because they differ.
var cryptoTypes = []string{
	"zip", "tar", "z", "gz", "bz2", "a", "ar", "7z",
	"iso", "dmg", "tc", "rar", "par",
}

var documentTypes = []string{
	"djvu", "doc", "docx", "dvi", "eml", "eps", "fotd",
	"odp", "odt", "pdf", "ppt", "pptx", "rtf",
	"xls", "xlsx",
}

var compressedTypes = []string{
	"zip", "tar", "z", "gz", "bz2", "a", "ar", "7z",
	"iso", "dmg", "tc", "rar", "par",
}

var tempTypes = []string{
	"tmp", "swp", "swo", "swn", "bak",
}

var compiledTypes = []string{
	"class", "elc", "hi", "o", "pyc",
}

// Build-marker file names that mark a file as Immediate: something that can
// be run or activated to kick off the build of a project.
var immediateNames = []string{
	"Makefile", "Cargo.toml", "SConstruct", "CMakeLists.txt",
	"build.gradle", "Rakefile", "Gruntfile.js",
	"Gruntfile.coffee",
}

// Classify runs the category predicates in their fixed priority order and
// returns the first match. File-type metadata outranks everything; after
// that, name-based categories, then extension sets, then the compiled
// sibling check, and finally Normal. Pure function of its inputs.
func Classify(r *files.Record) Category {
	switch {
	case r.IsDirectory():
		return Directory
	case r.IsSymlink():
		return Symlink
	case !r.IsFile():
		return Special
	case r.IsExecutableFile():
		return Executable
	}

	if isImmediate(r) {
		return Immediate
	}

	switch {
	case r.ExtensionIsOneOf(imageTypes):
		return Image
	case r.ExtensionIsOneOf(videoTypes):
		return Video
	case r.ExtensionIsOneOf(musicTypes):
		return Music
	case r.ExtensionIsOneOf(losslessTypes):
		return Lossless
	case r.ExtensionIsOneOf(cryptoTypes):
		return Crypto
	case r.ExtensionIsOneOf(documentTypes):
		return Document
	case r.ExtensionIsOneOf(compressedTypes):
		return Compressed
	}

	if isTemp(r) {
		return Temp
	}

	if isCompiled(r) {
		return Compiled
	}

	return Normal
}

func isImmediate(r *files.Record) bool {
	return strings.HasPrefix(r.Name, "README") || r.NameIsOneOf(immediateNames...)
}

func isTemp(r *files.Record) bool {
	return strings.HasSuffix(r.Name, "~") ||
		(strings.HasPrefix(r.Name, "#") && strings.HasSuffix(r.Name, "#")) ||
		r.ExtensionIsOneOf(tempTypes)
}

// isCompiled matches known artifact extensions outright, and otherwise
// treats the file as compiled when a plausible source file for it exists in
// the same directory.
func isCompiled(r *files.Record) bool {
	if r.ExtensionIsOneOf(compiledTypes) {
		return true
	}
	if r.Dir == nil {
		return false
	}
	for _, source := range r.SourceFiles() {
		if r.Dir.Contains(source) {
			return true
		}
	}
	return false
}
