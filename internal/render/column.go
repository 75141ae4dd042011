// Package render turns an ordered set of file records into one of the
// terminal layouts: a width-fitted grid, an aligned details table (with
// optional tree indentation), a grid of details tables, or plain lines.
package render

import (
	"github.com/harrison/lsx/internal/cell"
	"github.com/harrison/lsx/internal/files"
)

// Column identifies one field of the details table. The file name is not a
// Column: it is always the rightmost field, so it never needs its width
// queried or padding applied.
type Column int

const (
	Inode Column = iota
	Permissions
	HardLinks
	Size
	Blocks
	User
	Group
	Timestamp
	GitStatus
)

// Alignment returns which side this column pads on. Numbers are
// right-aligned, text is left-aligned.
func (c Column) Alignment() cell.Alignment {
	switch c {
	case Size, HardLinks, Inode, Blocks, GitStatus:
		return cell.Right
	default:
		return cell.Left
	}
}

// Header returns the label shown for this column when a header row is
// requested.
func (c Column) Header() string {
	switch c {
	case Inode:
		return "inode"
	case Permissions:
		return "Permissions"
	case HardLinks:
		return "Links"
	case Size:
		return "Size"
	case Blocks:
		return "Blocks"
	case User:
		return "User"
	case Group:
		return "Group"
	case Timestamp:
		return "Date Modified"
	case GitStatus:
		return "Git"
	default:
		return ""
	}
}

// ColumnSet holds the flags that decide which columns a details table gets.
type ColumnSet struct {
	Inode  bool
	Links  bool
	Blocks bool
	Group  bool
	Git    bool
}

// Columns produces the column list for one directory, in display order.
// The git column only appears when it was requested and a repository was
// actually found for the directory.
func (cs ColumnSet) Columns(git files.GitStatusProvider) []Column {
	columns := make([]Column, 0, 9)

	if cs.Inode {
		columns = append(columns, Inode)
	}
	columns = append(columns, Permissions)
	if cs.Links {
		columns = append(columns, HardLinks)
	}
	columns = append(columns, Size)
	if cs.Blocks {
		columns = append(columns, Blocks)
	}
	columns = append(columns, User)
	if cs.Group {
		columns = append(columns, Group)
	}
	columns = append(columns, Timestamp)

	if cs.Git {
		if _, unavailable := git.(files.NoGit); !unavailable && git != nil {
			columns = append(columns, GitStatus)
		}
	}
	return columns
}
