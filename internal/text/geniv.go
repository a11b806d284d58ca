package text

import "encoding/binary"

// Generation IV key schedule constants. The descriptor table key scales a
// per-file base key by the entry number, the string key derives from the
// entry number alone and advances additively.
const (
	genIVTableMult = 0x2FD
	genIVStringKey = 0x91BD3
	genIVKeyStep   = 0x493D
)

// DecodeGenIV decrypts a generation IV string-table file. Each file carries
// its own seed, there is no cross-file state.
func DecodeGenIV(data []byte) []string {
	if len(data) < 4 {
		return nil
	}
	numEntries := int(binary.LittleEndian.Uint16(data[0:]))
	seed := binary.LittleEndian.Uint16(data[2:])
	if numEntries == 0 || numEntries > maxEntries {
		return nil
	}
	tableEnd := 4 + numEntries*8
	if tableEnd > len(data) {
		return nil
	}

	baseKey := seed * genIVTableMult

	type descriptor struct {
		offset    int
		charCount int
	}
	descriptors := make([]descriptor, numEntries)
	for i := range descriptors {
		key2 := baseKey * uint16(i+1)
		pos := 4 + i*8
		descriptors[i] = descriptor{
			offset:    int(binary.LittleEndian.Uint16(data[pos:]) ^ key2),
			charCount: int(binary.LittleEndian.Uint16(data[pos+4:]) ^ key2),
		}
	}

	strings := make([]string, 0, numEntries)
	for i, desc := range descriptors {
		if desc.charCount == 0 || desc.offset+desc.charCount*2 > len(data) {
			strings = append(strings, "")
			continue
		}

		key := uint16((i + 1) * genIVStringKey)
		units := make([]uint16, 0, desc.charCount)
		for j := 0; j < desc.charCount; j++ {
			pos := desc.offset + j*2
			if pos+2 > len(data) {
				break
			}
			enc := binary.LittleEndian.Uint16(data[pos:])
			units = append(units, enc^key)
			key += genIVKeyStep
		}

		strings = append(strings, renderGenIV(units))
	}
	return strings
}

// renderGenIV turns one entry's decrypted code units into a string.
func renderGenIV(units []uint16) string {
	if len(units) > 0 && units[0] == packedMarker {
		return decodePacked(units[1:], glyphGenIV)
	}

	var out []byte
	for _, unit := range units {
		if unit == terminator {
			break
		}
		out = append(out, glyphGenIV(unit)...)
	}
	return string(out)
}
