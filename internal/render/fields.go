package render

import (
	"io/fs"
	"os"
	"os/user"
	"strconv"
	"time"

	"github.com/harrison/lsx/internal/cell"
	"github.com/harrison/lsx/internal/classify"
	"github.com/harrison/lsx/internal/files"
	"github.com/harrison/lsx/internal/style"
)

// An Environment carries everything field rendering needs beyond the record
// itself: the palette, the chosen size format, the git provider, the
// current time (for the two timestamp formats) and user (for ownership
// highlighting), plus caches for uid/gid name lookups, which repeat heavily
// within one listing.
type Environment struct {
	Palette    style.Palette
	SizeFormat SizeFormat
	Git        files.GitStatusProvider
	Attrs      files.AttributeProvider
	Mounts     files.MountProvider
	Now        time.Time
	CurrentUID uint32

	users  map[uint32]string
	groups map[uint32]string
}

// NewEnvironment builds an Environment for one render pass. The attribute
// and mount providers start as the no-op implementations; callers swap in
// the platform ones when the listing asks for them.
func NewEnvironment(palette style.Palette, sizeFormat SizeFormat, git files.GitStatusProvider) *Environment {
	if git == nil {
		git = files.NoGit{}
	}
	return &Environment{
		Palette:    palette,
		SizeFormat: sizeFormat,
		Git:        git,
		Attrs:      files.NoAttributes{},
		Mounts:     files.NoMounts{},
		Now:        time.Now(),
		CurrentUID: uint32(os.Getuid()),
		users:      make(map[uint32]string),
		groups:     make(map[uint32]string),
	}
}

// Cell renders one column's cell for a record. Attributes the platform
// could not supply come out as the blank placeholder cell rather than an
// error: the table is total over its inputs.
func (e *Environment) Cell(column Column, r *files.Record) cell.TextCell {
	switch column {
	case Inode:
		if r.Inode == 0 {
			return cell.Blank(e.Palette.Punctuation)
		}
		return cell.Paint(e.Palette.Inode, strconv.FormatUint(r.Inode, 10))
	case Permissions:
		return e.permissionsCell(r)
	case HardLinks:
		return e.linksCell(r)
	case Size:
		return e.sizeCell(r)
	case Blocks:
		if !r.IsFile() || r.Blocks == 0 {
			return cell.Blank(e.Palette.Punctuation)
		}
		return cell.Paint(e.Palette.Blocks, strconv.FormatUint(r.Blocks, 10))
	case User:
		return e.userCell(r)
	case Group:
		return e.groupCell(r)
	case Timestamp:
		return cell.Paint(e.Palette.Date, e.timestamp(r.ModTime))
	case GitStatus:
		return e.gitCell(r)
	default:
		return cell.Blank(e.Palette.Punctuation)
	}
}

// FileName renders the name cell, coloured by the record's category.
func (e *Environment) FileName(r *files.Record) cell.TextCell {
	return cell.Paint(e.CategoryStyle(classify.Classify(r)), r.Name)
}

// CategoryStyle is the closed lookup from category to palette slot.
func (e *Environment) CategoryStyle(c classify.Category) style.Style {
	switch c {
	case classify.Directory:
		return e.Palette.Directory
	case classify.Symlink:
		return e.Palette.Symlink
	case classify.Special:
		return e.Palette.Special
	case classify.Executable:
		return e.Palette.Executable
	case classify.Immediate:
		return e.Palette.Immediate
	case classify.Image:
		return e.Palette.Image
	case classify.Video:
		return e.Palette.Video
	case classify.Music:
		return e.Palette.Music
	case classify.Lossless:
		return e.Palette.Lossless
	case classify.Crypto:
		return e.Palette.Crypto
	case classify.Document:
		return e.Palette.Document
	case classify.Compressed:
		return e.Palette.Compressed
	case classify.Temp:
		return e.Palette.Temp
	case classify.Compiled:
		return e.Palette.Compiled
	default:
		return e.Palette.Normal
	}
}

// permissionsCell builds the ten-fragment mode cell: the file-type rune
// followed by the three rwx triplets, each bit painted in its own style and
// unset bits shown as punctuation hyphens.
func (e *Environment) permissionsCell(r *files.Record) cell.TextCell {
	p := &e.Palette

	c := cell.Paint(e.typeStyle(r), string(typeRune(r.Mode)))
	bits := []struct {
		set   bool
		glyph string
		style style.Style
	}{
		{r.Mode.Perm()&0o400 != 0, "r", p.UserRead},
		{r.Mode.Perm()&0o200 != 0, "w", p.UserWrite},
		{r.Mode.Perm()&0o100 != 0, "x", p.UserExecute},
		{r.Mode.Perm()&0o040 != 0, "r", p.GroupRead},
		{r.Mode.Perm()&0o020 != 0, "w", p.GroupWrite},
		{r.Mode.Perm()&0o010 != 0, "x", p.GroupExecute},
		{r.Mode.Perm()&0o004 != 0, "r", p.OtherRead},
		{r.Mode.Perm()&0o002 != 0, "w", p.OtherWrite},
		{r.Mode.Perm()&0o001 != 0, "x", p.OtherExecute},
	}
	for _, bit := range bits {
		if bit.set {
			c.Append(cell.Paint(bit.style, bit.glyph))
		} else {
			c.Append(cell.Paint(p.Punctuation, "-"))
		}
	}
	return c
}

func (e *Environment) typeStyle(r *files.Record) style.Style {
	switch {
	case r.IsDirectory():
		return e.Palette.Directory
	case r.IsSymlink():
		return e.Palette.Symlink
	case !r.IsFile():
		return e.Palette.Special
	default:
		return e.Palette.Punctuation
	}
}

func typeRune(mode fs.FileMode) rune {
	switch {
	case mode.IsDir():
		return 'd'
	case mode&fs.ModeSymlink != 0:
		return 'l'
	case mode&fs.ModeNamedPipe != 0:
		return 'p'
	case mode&fs.ModeSocket != 0:
		return 's'
	case mode&fs.ModeCharDevice != 0:
		return 'c'
	case mode&fs.ModeDevice != 0:
		return 'b'
	default:
		return '.'
	}
}

// linksCell highlights regular files with more than one hard link, since
// that is unusual enough to be worth noticing.
func (e *Environment) linksCell(r *files.Record) cell.TextCell {
	if r.Links == 0 {
		return cell.Blank(e.Palette.Punctuation)
	}
	s := style.Plain
	if r.IsFile() && r.Links > 1 {
		s = e.Palette.Links
	}
	return cell.Paint(s, strconv.FormatUint(r.Links, 10))
}

// sizeCell renders the size for regular files; directories and special
// files get the blank cell, since their stat size is not meaningful as a
// content length.
func (e *Environment) sizeCell(r *files.Record) cell.TextCell {
	if !r.IsFile() {
		return cell.Blank(e.Palette.Punctuation)
	}
	size := uint64(0)
	if r.Size > 0 {
		size = uint64(r.Size)
	}
	return cell.Paint(e.Palette.Size, formatSize(size, e.SizeFormat))
}

func (e *Environment) userCell(r *files.Record) cell.TextCell {
	s := e.Palette.User
	if r.UID == e.CurrentUID {
		s = e.Palette.CurrentUser
	}
	return cell.Paint(s, e.userName(r.UID))
}

func (e *Environment) groupCell(r *files.Record) cell.TextCell {
	return cell.Paint(e.Palette.Group, e.groupName(r.GID))
}

func (e *Environment) userName(uid uint32) string {
	if name, ok := e.users[uid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil && u.Username != "" {
		name = u.Username
	}
	e.users[uid] = name
	return name
}

func (e *Environment) groupName(gid uint32) string {
	if name, ok := e.groups[gid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(name); err == nil && g.Name != "" {
		name = g.Name
	}
	e.groups[gid] = name
	return name
}

// timestamp uses the short format within the current year and swaps the
// clock time for the year otherwise.
func (e *Environment) timestamp(t time.Time) string {
	if t.Year() == e.Now.Year() {
		return t.Format("_2 Jan 15:04")
	}
	return t.Format("_2 Jan  2006")
}

// gitCell is two one-character fragments: the staged column then the
// working-tree column.
func (e *Environment) gitCell(r *files.Record) cell.TextCell {
	var status files.GitStatus
	if r.IsDirectory() {
		status = e.Git.DirStatus(r.Path)
	} else {
		status = e.Git.Status(r.Path)
	}
	c := cell.Paint(e.gitStyle(status.Staged), string(status.Staged))
	c.Append(cell.Paint(e.gitStyle(status.Unstaged), string(status.Unstaged)))
	return c
}

func (e *Environment) gitStyle(status rune) style.Style {
	if e.Palette.Punctuation.IsPlain() {
		// Colours are off; don't invent any for the git column.
		return style.Plain
	}
	switch status {
	case 'A':
		return style.Green.Normal()
	case 'M':
		return style.Blue.Normal()
	case 'D':
		return style.Red.Normal()
	case 'R':
		return style.Yellow.Normal()
	case 'T':
		return style.Purple.Normal()
	default:
		return e.Palette.Punctuation
	}
}
