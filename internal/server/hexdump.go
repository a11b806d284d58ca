package server

import (
	"fmt"
	"strings"
)

// hexDump renders data as 16-byte rows of hex plus printable ASCII, capped
// at limit bytes.
func hexDump(data []byte, baseOffset, limit int) string {
	if limit > 0 && len(data) > limit {
		data = data[:limit]
	}

	var lines []string
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]

		var hexPart, asciiPart strings.Builder
		for _, b := range chunk {
			fmt.Fprintf(&hexPart, "%02X ", b)
			if b >= 0x20 && b < 0x7F {
				asciiPart.WriteByte(b)
			} else {
				asciiPart.WriteByte('.')
			}
		}
		lines = append(lines, fmt.Sprintf("%08X  %-48s  %s",
			baseOffset+i, strings.TrimRight(hexPart.String(), " "), asciiPart.String()))
	}
	return strings.Join(lines, "\n")
}
