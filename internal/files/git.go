package files

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo is the GitStatusProvider backed by the git executable. It scans
// the repository once at construction with `git status --porcelain` and
// answers lookups from the parsed map.
type GitRepo struct {
	workdir  string
	statuses map[string]GitStatus
}

// DiscoverGit finds the repository containing path and scans it. Returns an
// error when path is not inside a work tree or git is not installed;
// callers fall back to NoGit in that case.
func DiscoverGit(path string) (*GitRepo, error) {
	top, err := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return nil, fmt.Errorf("discover git repo at %s: %w", path, err)
	}
	workdir := strings.TrimSpace(string(top))

	out, err := exec.Command("git", "-C", workdir, "status", "--porcelain").Output()
	if err != nil {
		return nil, fmt.Errorf("git status in %s: %w", workdir, err)
	}

	return &GitRepo{
		workdir:  workdir,
		statuses: parsePorcelain(workdir, string(out)),
	}, nil
}

// parsePorcelain reads `git status --porcelain` output. Each line is
// "XY path", where X is the index status and Y the working-tree status.
// Renames carry "old -> new"; the new name is the one that appears in the
// listing.
func parsePorcelain(workdir, out string) map[string]GitStatus {
	statuses := make(map[string]GitStatus)
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		if i := strings.LastIndex(path, " -> "); i >= 0 {
			path = path[i+4:]
		}
		path = strings.Trim(path, `"`)
		statuses[filepath.Join(workdir, path)] = GitStatus{
			Staged:   statusRune(line[0]),
			Unstaged: statusRune(line[1]),
		}
	}
	return statuses
}

// statusRune maps a porcelain status byte to the display character.
// Untracked entries ('?') display as new additions.
func statusRune(b byte) rune {
	switch b {
	case 'A', '?':
		return 'A'
	case 'M':
		return 'M'
	case 'D':
		return 'D'
	case 'R':
		return 'R'
	case 'T':
		return 'T'
	default:
		return '-'
	}
}

// Status returns the status pair for one file.
func (g *GitRepo) Status(path string) GitStatus {
	abs, err := filepath.Abs(path)
	if err != nil {
		return CleanStatus
	}
	if s, ok := g.statuses[abs]; ok {
		return s
	}
	return CleanStatus
}

// DirStatus combines the statuses of everything at or beneath the
// directory. The directory's own entry is consulted too: an untracked
// directory shows up in the porcelain output as a single entry for the
// directory itself, with nothing beneath it.
func (g *GitRepo) DirStatus(path string) GitStatus {
	abs, err := filepath.Abs(path)
	if err != nil {
		return CleanStatus
	}

	combined := CleanStatus
	if s, ok := g.statuses[abs]; ok {
		combined = s
	}

	prefix := abs + string(filepath.Separator)
	for p, s := range g.statuses {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		combined.Staged = maxStatus(combined.Staged, s.Staged)
		combined.Unstaged = maxStatus(combined.Unstaged, s.Unstaged)
	}
	return combined
}

// statusSeverity ranks the display characters for combining a directory's
// children. The map ranges in no particular order, so the combination has
// to be a commutative maximum rather than first-found-wins.
var statusSeverity = map[rune]int{'T': 1, 'R': 2, 'D': 3, 'M': 4, 'A': 5}

func maxStatus(a, b rune) rune {
	if statusSeverity[b] > statusSeverity[a] {
		return b
	}
	return a
}
