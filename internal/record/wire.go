package record

import (
	"encoding/binary"
	"strconv"
)

// placeholder renders an unresolvable id deterministically, e.g. "method#31".
func placeholder(kind string, id int) string {
	return kind + "#" + strconv.Itoa(id)
}

// u16 reads a little-endian 16-bit value.
func u16(data []byte, off int) int {
	return int(binary.LittleEndian.Uint16(data[off:]))
}

// u32 reads a little-endian 32-bit value.
func u32(data []byte, off int) int {
	return int(binary.LittleEndian.Uint32(data[off:]))
}

// allZero reports whether every byte of data is zero. All-zero blocks mark
// unused slots in these ROM layouts, not malformed data.
func allZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
