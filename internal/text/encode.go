package text

import "encoding/binary"

// Write-path helpers: the ciphers are plain XOR streams, so re-encrypting
// with the same key schedule inverts the decode.

// EncodeGenVUnits builds an encrypted generation V string-table file from
// raw code-unit streams. Each stream must carry its own terminator.
func EncodeGenVUnits(entries [][]uint16, mult uint16) []byte {
	const headerLen = 16
	descLen := len(entries) * 8

	// Section: u32 size, descriptor table, string data.
	dataStart := 4 + descLen
	sectionLen := dataStart
	for _, units := range entries {
		sectionLen += len(units) * 2
	}

	out := make([]byte, headerLen+sectionLen)
	binary.LittleEndian.PutUint16(out[0:], 1) // one section
	binary.LittleEndian.PutUint16(out[2:], uint16(len(entries)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(out)))
	binary.LittleEndian.PutUint32(out[0x0C:], headerLen)

	section := out[headerLen:]
	binary.LittleEndian.PutUint32(section[0:], uint32(sectionLen))

	offset := dataStart
	for i, units := range entries {
		descPos := 4 + i*8
		binary.LittleEndian.PutUint32(section[descPos:], uint32(offset))
		binary.LittleEndian.PutUint16(section[descPos+4:], uint16(len(units)))

		key := uint16(i+3) * mult
		for _, unit := range units {
			binary.LittleEndian.PutUint16(section[offset:], unit^key)
			key = key<<3 | key>>13
			offset += 2
		}
	}
	return out
}

// EncodeGenV builds an encrypted generation V string-table file from plain
// strings, mapping runes one to one onto code units.
func EncodeGenV(entries []string, mult uint16) []byte {
	units := make([][]uint16, len(entries))
	for i, s := range entries {
		for _, r := range s {
			units[i] = append(units[i], uint16(r))
		}
		units[i] = append(units[i], terminator)
	}
	return EncodeGenVUnits(units, mult)
}

// EncodeGenIVUnits builds an encrypted generation IV string-table file from
// raw code-unit streams. Each stream must carry its own terminator.
func EncodeGenIVUnits(entries [][]uint16, seed uint16) []byte {
	tableEnd := 4 + len(entries)*8
	total := tableEnd
	for _, units := range entries {
		total += len(units) * 2
	}

	out := make([]byte, total)
	binary.LittleEndian.PutUint16(out[0:], uint16(len(entries)))
	binary.LittleEndian.PutUint16(out[2:], seed)

	baseKey := seed * genIVTableMult
	offset := tableEnd
	for i, units := range entries {
		key2 := baseKey * uint16(i+1)
		descPos := 4 + i*8
		binary.LittleEndian.PutUint16(out[descPos:], uint16(offset)^key2)
		binary.LittleEndian.PutUint16(out[descPos+2:], key2)
		binary.LittleEndian.PutUint16(out[descPos+4:], uint16(len(units))^key2)
		binary.LittleEndian.PutUint16(out[descPos+6:], key2)

		key := uint16((i + 1) * genIVStringKey)
		for _, unit := range units {
			binary.LittleEndian.PutUint16(out[offset:], unit^key)
			key += genIVKeyStep
			offset += 2
		}
	}
	return out
}

// EncodeGenIV builds an encrypted generation IV string-table file from plain
// strings using the generation's glyph code points.
func EncodeGenIV(entries []string, seed uint16) []byte {
	units := make([][]uint16, len(entries))
	for i, s := range entries {
		for _, r := range s {
			units[i] = append(units[i], genIVUnit(r))
		}
		units[i] = append(units[i], terminator)
	}
	return EncodeGenIVUnits(units, seed)
}

// genIVUnit maps a rune to its generation IV code point. Unmappable runes
// encode as the halfwidth question mark.
func genIVUnit(r rune) uint16 {
	switch {
	case r >= '0' && r <= '9':
		return 0x0121 + uint16(r-'0')
	case r >= 'A' && r <= 'Z':
		return 0x012B + uint16(r-'A')
	case r >= 'a' && r <= 'z':
		return 0x0145 + uint16(r-'a')
	case r >= 0x00C0 && r <= 0x00FF: // accented Latin
		return 0x015F + uint16(r-0x00C0)
	case r == ' ':
		return 0x01DE
	case r == '\n':
		return 0xE000
	case r == '!':
		return 0x01AC
	case r == '?':
		return 0x01AD
	case r == ',':
		return 0x01AE
	case r == '.':
		return 0x01AF
	case r == '-':
		return 0x01BF
	default:
		return 0x01AD
	}
}
