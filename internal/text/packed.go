package text

// Shared code-unit markers of both generations.
const (
	terminator    = 0xFFFF // ends a string
	controlMarker = 0xFFFE // introduces a control sequence (generation V)
	packedMarker  = 0xF100 // remaining units are a 9-bit packed glyph stream
	packedEnd     = 0x1FF  // terminates a 9-bit packed stream
)

// decodePacked decodes a 9-bit packed glyph stream. The 16-bit code units
// are concatenated LSB first into a bit buffer and consumed 9 bits at a
// time while at least 9 bits remain. A whole 0xFFFF unit ends the stream
// before packing, a popped 0x1FF ends it after.
func decodePacked(units []uint16, glyph func(uint16) string) string {
	var bits uint64
	var nbits uint

	var out []byte
	for _, unit := range units {
		if unit == terminator {
			break
		}
		bits |= uint64(unit) << nbits
		nbits += 16

		for nbits >= 9 {
			c := uint16(bits & packedEnd)
			bits >>= 9
			nbits -= 9
			if c == packedEnd {
				return string(out)
			}
			out = append(out, glyph(c)...)
		}
	}
	return string(out)
}
