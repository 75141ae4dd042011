package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harrison/lsx/internal/files"
	"github.com/harrison/lsx/internal/logger"
	"github.com/harrison/lsx/internal/render"
	"github.com/harrison/lsx/internal/sorting"
	"github.com/harrison/lsx/internal/style"
)

// lister runs the pipeline once per requested path and writes the results.
type lister struct {
	out    io.Writer
	errOut io.Writer
	log    *logger.ConsoleLogger

	palette    style.Palette
	sizeFormat render.SizeFormat
	renderOpts render.Options
	useGit     bool
	attrs      files.AttributeProvider
	mounts     files.MountProvider

	// showTarget prefixes each block with "path:" when more than one path
	// was requested, the way ls does.
	showTarget bool
}

// listAll lists every path. Paths that fail to open are reported and the
// rest continue; the command exits non-zero when any of them failed.
func (l *lister) listAll(paths []string) error {
	var looseRecords []*files.Record
	var dirs []string
	failed := 0

	// Files named directly get listed together, before any directories.
	for _, path := range paths {
		info, err := os.Lstat(path)
		if err != nil {
			warn(l.errOut, fmt.Errorf("cannot access %s: %w", path, err))
			failed++
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, path)
		} else {
			looseRecords = append(looseRecords, files.NewRecord(path, info, nil))
		}
	}

	first := true
	if len(looseRecords) > 0 {
		// Discovery walks up from any path inside the work tree, so the
		// first file's directory covers files in the same repository.
		l.renderSet(looseRecords, l.gitProvider(filepath.Dir(looseRecords[0].Path)))
		first = false
	}

	for _, dir := range dirs {
		if !first {
			fmt.Fprintln(l.out)
		}
		first = false

		if l.showTarget {
			fmt.Fprintf(l.out, "%s:\n", dir)
		}
		if err := l.listDir(dir); err != nil {
			warn(l.errOut, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to list %d of %d paths", failed, len(paths))
	}
	return nil
}

func (l *lister) listDir(path string) error {
	dir, err := files.ReadDir(path)
	if err != nil {
		return err
	}

	records, errs := dir.Files(l.renderOpts.ShowAll)
	for _, err := range errs {
		warn(l.errOut, err)
	}
	l.log.Debugf("%s: %d entries", path, len(records))

	l.renderSet(records, l.gitProvider(path))
	return nil
}

// gitProvider discovers the repository for a directory when the git column
// was requested, degrading to the no-op provider when there is none.
func (l *lister) gitProvider(path string) files.GitStatusProvider {
	if !l.useGit {
		return files.NoGit{}
	}
	repo, err := files.DiscoverGit(path)
	if err != nil {
		l.log.Debugf("no git repository for %s: %v", path, err)
		return files.NoGit{}
	}
	return repo
}

func (l *lister) renderSet(records []*files.Record, git files.GitStatusProvider) {
	sorting.Sort(records, l.renderOpts.SortField, l.renderOpts.Reverse)

	env := render.NewEnvironment(l.palette, l.sizeFormat, git)
	if l.attrs != nil {
		env.Attrs = l.attrs
	}
	if l.mounts != nil {
		env.Mounts = l.mounts
	}
	renderer := &render.Renderer{
		Env:     env,
		Options: l.renderOpts,
	}
	block, errs := renderer.Render(records)
	for _, err := range errs {
		warn(l.errOut, err)
	}
	io.WriteString(l.out, block)
}
