package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/lsx/internal/files"
	"github.com/harrison/lsx/internal/sorting"
	"github.com/harrison/lsx/internal/style"
)

func scanTempDir(t *testing.T, names ...string) []*files.Record {
	t.Helper()
	tmp := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), []byte("x"), 0o644))
	}
	dir, err := files.ReadDir(tmp)
	require.NoError(t, err)
	records, errs := dir.Files(false)
	require.Empty(t, errs)
	sorting.Sort(records, sorting.ByName, false)
	return records
}

func plainRenderer(opts Options) *Renderer {
	return &Renderer{
		Env:     NewEnvironment(style.PlainPalette(), DecimalBytes, files.NoGit{}),
		Options: opts,
	}
}

func TestLinesView(t *testing.T) {
	records := scanTempDir(t, "beta.txt", "alpha.txt")
	r := plainRenderer(Options{View: LinesView})

	block, errs := r.Render(records)
	assert.Empty(t, errs)
	assert.Equal(t, "alpha.txt\nbeta.txt\n", block)
}

func TestGridViewFallsBackWithoutTerminalWidth(t *testing.T) {
	records := scanTempDir(t, "a.txt", "b.txt")
	r := plainRenderer(Options{View: GridView, TerminalWidth: 0})

	block, errs := r.Render(records)
	assert.Empty(t, errs)
	assert.Equal(t, "a.txt\nb.txt\n", block)
}

func TestGridViewPacksNames(t *testing.T) {
	records := scanTempDir(t, "aa.txt", "bb.txt", "cc.txt")
	r := plainRenderer(Options{View: GridView, TerminalWidth: 80})

	block, errs := r.Render(records)
	assert.Empty(t, errs)
	assert.Equal(t, "aa.txt  bb.txt  cc.txt\n", block)
}

func TestDetailsViewRowsPerRecord(t *testing.T) {
	records := scanTempDir(t, "one.txt", "two.txt")
	r := plainRenderer(Options{View: DetailsView, Header: true})

	block, errs := r.Render(records)
	assert.Empty(t, errs)

	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Permissions")
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[1], "one.txt")
	assert.Contains(t, lines[2], "two.txt")
	assert.Contains(t, lines[1], ".rw-")
}

func TestDetailsTreeInterleavesChildren(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "sub", "inner.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "outer.txt"), nil, 0o644))

	dir, err := files.ReadDir(tmp)
	require.NoError(t, err)
	records, errs := dir.Files(false)
	require.Empty(t, errs)
	sorting.Sort(records, sorting.ByName, false)

	r := plainRenderer(Options{View: DetailsView, Tree: true})
	block, renderErrs := r.Render(records)
	assert.Empty(t, renderErrs)

	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	require.Len(t, lines, 3)
	// Depth-first: sub's row is followed by its indented child, then the
	// sibling at the top level.
	assert.Contains(t, lines[0], "outer.txt")
	assert.Contains(t, lines[1], "sub")
	assert.Contains(t, lines[2], treeIndent)
	assert.Contains(t, lines[2], "inner.txt")
}

func TestTreeDepthLimit(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755))

	dir, err := files.ReadDir(tmp)
	require.NoError(t, err)
	records, _ := dir.Files(false)

	r := plainRenderer(Options{View: DetailsView, Tree: true, MaxDepth: 1})
	block, errs := r.Render(records)
	assert.Empty(t, errs)

	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	// Only the top-level "a": recursion stopped before listing "b".
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "a")
}

type fixedAttrs map[string][]files.Attribute

func (f fixedAttrs) List(path string) ([]files.Attribute, error) {
	return f[path], nil
}

func TestDetailsExtendedAttributeRows(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "tagged.txt"), nil, 0o644))

	dir, err := files.ReadDir(tmp)
	require.NoError(t, err)
	records, errs := dir.Files(false)
	require.Empty(t, errs)

	r := plainRenderer(Options{View: DetailsView, Extended: true})
	r.Env.Attrs = fixedAttrs{
		filepath.Join(tmp, "tagged.txt"): {{Name: "user.origin", Size: 42}},
	}

	block, renderErrs := r.Render(records)
	assert.Empty(t, renderErrs)

	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "tagged.txt")
	assert.Contains(t, lines[1], treeIndent)
	assert.Contains(t, lines[1], "user.origin (42)")
}

type fixedMounts map[string]bool

func (f fixedMounts) IsMountPoint(path string) bool {
	return f[path]
}

func TestTreeStopsAtMountPoints(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "mnt"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "mnt", "other-fs.txt"), nil, 0o644))

	dir, err := files.ReadDir(tmp)
	require.NoError(t, err)
	records, _ := dir.Files(false)

	r := plainRenderer(Options{View: DetailsView, Tree: true})
	r.Env.Mounts = fixedMounts{filepath.Join(tmp, "mnt"): true}

	block, errs := r.Render(records)
	assert.Empty(t, errs)

	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	// Only the mount point itself; nothing beneath it was visited.
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "mnt")
}

func TestRenderIsIdempotent(t *testing.T) {
	records := scanTempDir(t, "file10.txt", "file2.txt", "zz.txt")
	r := plainRenderer(Options{View: GridView, TerminalWidth: 60})

	first, _ := r.Render(records)
	second, _ := r.Render(records)
	assert.Equal(t, first, second)
}

func TestGridDetailsFallsBackToDetailsWhenNarrow(t *testing.T) {
	records := scanTempDir(t, "a.txt", "b.txt")
	wide := plainRenderer(Options{View: GridDetailsView, TerminalWidth: 200})
	narrow := plainRenderer(Options{View: GridDetailsView, TerminalWidth: 10})

	wideBlock, _ := wide.Render(records)
	narrowBlock, _ := narrow.Render(records)

	// Wide terminals get the two tables side by side on one line; narrow
	// ones degrade to the stacked details view.
	assert.Len(t, strings.Split(strings.TrimRight(wideBlock, "\n"), "\n"), 1)
	assert.Len(t, strings.Split(strings.TrimRight(narrowBlock, "\n"), "\n"), 2)
}
