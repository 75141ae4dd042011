package files

// The capability providers cover metadata that is not available everywhere:
// extended attributes, mount tables, and git repository status. Each one has
// a no-op implementation, so callers configure a provider once and never
// check platform availability again.

// An Attribute is one extended attribute on a file.
type Attribute struct {
	Name string
	Size int
}

// AttributeProvider lists a file's extended attributes.
type AttributeProvider interface {
	List(path string) ([]Attribute, error)
}

// NoAttributes is the AttributeProvider for platforms (or builds) without
// xattr support.
type NoAttributes struct{}

func (NoAttributes) List(string) ([]Attribute, error) { return nil, nil }

// MountProvider answers whether a directory is a mount point.
type MountProvider interface {
	IsMountPoint(path string) bool
}

// NoMounts is the MountProvider that never recognises a mount point.
type NoMounts struct{}

func (NoMounts) IsMountPoint(string) bool { return false }

// A GitStatus is the two-character status pair for one path: the index
// (staged) character followed by the working-tree character.
type GitStatus struct {
	Staged   rune
	Unstaged rune
}

// CleanStatus is the status of a path the repository has no opinion on.
var CleanStatus = GitStatus{Staged: '-', Unstaged: '-'}

// GitStatusProvider answers per-path git status queries.
type GitStatusProvider interface {
	// Status returns the status pair for a single file.
	Status(path string) GitStatus

	// DirStatus returns the combined status of everything beneath a
	// directory, since directories have no status of their own.
	DirStatus(path string) GitStatus
}

// NoGit is the GitStatusProvider used outside a repository, or when the git
// column was not requested.
type NoGit struct{}

func (NoGit) Status(string) GitStatus    { return CleanStatus }
func (NoGit) DirStatus(string) GitStatus { return CleanStatus }
