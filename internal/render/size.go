package render

import (
	"fmt"
	"strconv"
)

// SizeFormat picks how file sizes are printed in the details view.
type SizeFormat int

const (
	// DecimalBytes divides by 1000 and uses KB, MB, ...
	DecimalBytes SizeFormat = iota
	// BinaryBytes divides by 1024 and uses KiB, MiB, ...
	BinaryBytes
	// RawBytes prints the exact byte count with no unit.
	RawBytes
)

// The unit-prefix tables are fixed at startup. The padding inside the unit
// strings keeps the numeric parts of a column lined up regardless of which
// prefix a row lands on.
var (
	decimalUnits = [...]string{"B ", "KB", "MB", "GB", "TB"}
	binaryUnits  = [...]string{"B  ", "KiB", "MiB", "GiB", "TiB"}
)

// formatSize renders a byte count in the chosen format. The scaled forms
// divide down until the amount fits under the multiplier, then print the
// number right-aligned in four cells with its unit prefix.
func formatSize(amount uint64, format SizeFormat) string {
	switch format {
	case BinaryBytes:
		return scaleBytes(amount, 1024, binaryUnits[:])
	case RawBytes:
		return strconv.FormatUint(amount, 10)
	default:
		return scaleBytes(amount, 1000, decimalUnits[:])
	}
}

func scaleBytes(amount, kilo uint64, units []string) string {
	prefix := 0
	for amount > kilo && prefix < len(units)-1 {
		amount /= kilo
		prefix++
	}
	return fmt.Sprintf("%4d%s", amount, units[prefix])
}
