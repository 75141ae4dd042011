package style

import (
	"fmt"
	"strings"
)

// A Palette holds one Style per semantic slot of the listing output: one per
// file category, plus the punctuation style used for placeholder cells and
// the styles used inside the permissions column.
type Palette struct {
	Normal     Style
	Directory  Style
	Symlink    Style
	Special    Style
	Executable Style
	Image      Style
	Video      Style
	Music      Style
	Lossless   Style
	Crypto     Style
	Document   Style
	Compressed Style
	Temp       Style
	Immediate  Style
	Compiled   Style

	// Punctuation is used for blank cells and separators such as the "--"
	// git cell for an untouched file.
	Punctuation Style

	// Permission-bit styles.
	UserRead     Style
	UserWrite    Style
	UserExecute  Style
	GroupRead    Style
	GroupWrite   Style
	GroupExecute Style
	OtherRead    Style
	OtherWrite   Style
	OtherExecute Style

	// Header is used for the details header row.
	Header Style

	// CurrentUser highlights the user column when the file belongs to the
	// user running the process.
	CurrentUser Style

	// Detail-column styles.
	Size   Style
	Unit   Style
	Inode  Style
	Blocks Style
	Links  Style
	User   Style
	Group  Style
	Date   Style
}

// PlainPalette returns a palette where every slot is the plain style, for
// when colours are disabled.
func PlainPalette() Palette {
	return Palette{}
}

// ColourfulPalette returns the default colour assignments. Temp files get
// plain rather than a dim grey because bold black looks really weird on some
// terminals.
func ColourfulPalette() Palette {
	return Palette{
		Normal:     Plain,
		Directory:  Blue.Bold(),
		Symlink:    Cyan.Normal(),
		Special:    Yellow.Normal(),
		Executable: Green.Bold(),
		Image:      Purple.Normal(),
		Video:      Purple.Bold(),
		Music:      Cyan.Bold(),
		Lossless:   Cyan.Bold(),
		Crypto:     Green.Normal(),
		Document:   Blue.Normal(),
		Compressed: Red.Normal(),
		Temp:       White.Normal(),
		Immediate:  Yellow.Bold().Underline(),
		Compiled:   Yellow.Normal(),

		Punctuation: White.Normal(),

		UserRead:     Yellow.Bold(),
		UserWrite:    Red.Bold(),
		UserExecute:  Green.Bold().Underline(),
		GroupRead:    Yellow.Normal(),
		GroupWrite:   Red.Normal(),
		GroupExecute: Green.Normal(),
		OtherRead:    Yellow.Normal(),
		OtherWrite:   Red.Normal(),
		OtherExecute: Green.Normal(),

		Header:      Plain.Underline(),
		CurrentUser: Yellow.Bold(),

		Size:   Green.Bold(),
		Unit:   Green.Normal(),
		Inode:  Purple.Normal(),
		Blocks: Cyan.Normal(),
		Links:  Red.Normal(),
		User:   Plain,
		Group:  Plain,
		Date:   Blue.Normal(),
	}
}

// ParseColour resolves a colour name from a configuration file into one of
// the eight standard colours. Matching is case-insensitive and accepts both
// "purple" and "magenta" for colour 5.
func ParseColour(name string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "black":
		return Black, nil
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "yellow":
		return Yellow, nil
	case "blue":
		return Blue, nil
	case "purple", "magenta":
		return Purple, nil
	case "cyan":
		return Cyan, nil
	case "white":
		return White, nil
	default:
		return Black, fmt.Errorf("unknown colour %q", name)
	}
}

// Override replaces the style for the named category slot with a plain
// foreground in the given colour. Unknown slot names are rejected so that
// typos in a config file surface instead of silently doing nothing.
func (p *Palette) Override(slot string, colour Colour) error {
	target, err := p.slot(slot)
	if err != nil {
		return err
	}
	*target = colour.Normal()
	return nil
}

func (p *Palette) slot(name string) (*Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return &p.Normal, nil
	case "directory":
		return &p.Directory, nil
	case "symlink":
		return &p.Symlink, nil
	case "special":
		return &p.Special, nil
	case "executable":
		return &p.Executable, nil
	case "image":
		return &p.Image, nil
	case "video":
		return &p.Video, nil
	case "music":
		return &p.Music, nil
	case "lossless":
		return &p.Lossless, nil
	case "crypto":
		return &p.Crypto, nil
	case "document":
		return &p.Document, nil
	case "compressed":
		return &p.Compressed, nil
	case "temp":
		return &p.Temp, nil
	case "immediate":
		return &p.Immediate, nil
	case "compiled":
		return &p.Compiled, nil
	case "punctuation":
		return &p.Punctuation, nil
	default:
		return nil, fmt.Errorf("unknown palette entry %q", name)
	}
}
