package render

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name     string
		amount   uint64
		format   SizeFormat
		expected string
	}{
		{"metric bytes", 512, DecimalBytes, " 512B "},
		{"metric kilobytes", 2500, DecimalBytes, "   2KB"},
		{"metric megabytes", 3 * 1000 * 1000, DecimalBytes, "   3MB"},
		{"metric gigabytes", 5 * 1000 * 1000 * 1000, DecimalBytes, "   5GB"},
		{"binary bytes", 512, BinaryBytes, " 512B  "},
		{"binary kibibytes", 2048, BinaryBytes, "   2KiB"},
		{"binary mebibytes", 3 * 1024 * 1024, BinaryBytes, "   3MiB"},
		{"raw", 123456, RawBytes, "123456"},
		{"zero", 0, DecimalBytes, "   0B "},
		{"exactly one kilo stays in bytes", 1000, DecimalBytes, "1000B "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSize(tt.amount, tt.format); got != tt.expected {
				t.Errorf("formatSize(%d) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}
