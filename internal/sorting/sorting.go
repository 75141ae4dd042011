// Package sorting implements "natural sort order" for file listings. See
// http://blog.codinghorror.com/sorting-for-humans-natural-sort-order/ for
// more information and examples. It sorts "9" before "10", which makes
// sense to those regular human types.
//
// It works by splitting an input string into parts at every boundary
// between digit and non-digit characters, then comparing the parts in
// sequence.
package sorting

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/harrison/lsx/internal/files"
)

// Field selects which attribute a listing is ordered by.
type Field int

const (
	ByName Field = iota
	ByExtension
	BySize
)

// ParseField resolves a --sort flag value.
func ParseField(name string) (Field, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "name":
		return ByName, true
	case "ext", "extension":
		return ByExtension, true
	case "size":
		return BySize, true
	default:
		return ByName, false
	}
}

type tokenKind int

// Numeric tokens order before stringular ones when a comparison meets both
// kinds at the same position. This is an explicit comparator rule, not a
// consequence of how the constants happen to be declared.
const (
	numeric tokenKind = iota
	stringular
)

// A Token is one run of a tokenized string: either a parsed number or a
// case-folded text fragment.
type Token struct {
	kind tokenKind
	num  uint64
	str  string
}

// A Key is the token sequence a display string sorts by.
type Key []Token

// newToken builds a token from one run of characters. Digit runs parse as
// numbers; runs too big for a uint64 fall back into strings.
func newToken(isDigit bool, run string) Token {
	if isDigit {
		if num, err := strconv.ParseUint(run, 10, 64); err == nil {
			return Token{kind: numeric, num: num}
		}
	}
	return Token{kind: stringular, str: strings.ToLower(run)}
}

// SortKey tokenizes a display string into its natural-sort key. The empty
// string yields an empty key.
func SortKey(input string) Key {
	if input == "" {
		return nil
	}

	var key Key
	runes := []rune(input)
	isDigit := unicode.IsDigit(runes[0])
	start := 0

	for i, c := range runes {
		if isDigit != unicode.IsDigit(c) {
			key = append(key, newToken(isDigit, string(runes[start:i])))
			isDigit = !isDigit
			start = i
		}
	}
	key = append(key, newToken(isDigit, string(runes[start:])))
	return key
}

// Compare orders two keys token by token: numerically when both tokens are
// numbers, textually when both are strings, and numbers-first when the
// kinds differ. A key that is a strict prefix of the other sorts first.
func Compare(a, b Key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareTokens(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func compareTokens(a, b Token) int {
	if a.kind != b.kind {
		if a.kind == numeric {
			return -1
		}
		return 1
	}
	if a.kind == numeric {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a.str, b.str)
}

// Sort orders records in place by the given field. The sort is stable, so
// records that compare equal keep their input order. When reverse is set
// the final ordering is inverted after the primary comparator has run.
func Sort(records []*files.Record, field Field, reverse bool) {
	sort.SliceStable(records, func(i, j int) bool {
		return compareRecords(records[i], records[j], field) < 0
	})
	if reverse {
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
	}
}

// compareRecords is the per-field comparator. Extension sorting breaks ties
// on the name; size sorting treats a missing size as zero.
func compareRecords(a, b *files.Record, field Field) int {
	switch field {
	case ByExtension:
		if c := Compare(SortKey(a.Ext), SortKey(b.Ext)); c != 0 {
			return c
		}
		return Compare(SortKey(a.Name), SortKey(b.Name))
	case BySize:
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		default:
			return 0
		}
	default:
		return Compare(SortKey(a.Name), SortKey(b.Name))
	}
}
