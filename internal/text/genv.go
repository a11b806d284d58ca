// Package text decrypts and re-encrypts the string-table files of two
// handheld hardware generations. Both ciphers XOR 16-bit code units against a
// rolling key, generation V rotates the key, generation IV adds to it.
package text

import (
	"encoding/binary"
	"errors"
)

// DefaultMult is assumed when the generation V multiplier cannot be derived
// from the designated reference entry.
const DefaultMult = 0x2983

// ErrMultDerivation reports that no string-table file yielded a verifiable
// generation V key multiplier.
var ErrMultDerivation = errors.New("text: could not derive key multiplier")

const maxEntries = 10000

// DeriveMult recovers the shared generation V key multiplier from a file
// whose entry 1 is known to start with the reference character code 'B'.
// Entry 1's key is (1+3)*MULT, so the first ciphertext word XORed with 'B'
// yields 4*MULT. A short file or an inexact division falls back to
// DefaultMult.
func DeriveMult(data []byte) uint16 {
	if len(data) < 16 {
		return DefaultMult
	}
	entryCount := binary.LittleEndian.Uint16(data[2:])
	sectionOffset := int(binary.LittleEndian.Uint32(data[0x0C:]))
	if entryCount < 2 || sectionOffset+4 > len(data) {
		return DefaultMult
	}

	entryPos := sectionOffset + 4 + 8 // descriptor of entry 1
	if entryPos+8 > len(data) {
		return DefaultMult
	}
	offset := int(binary.LittleEndian.Uint32(data[entryPos:]))
	strOffset := sectionOffset + offset
	if strOffset+2 > len(data) {
		return DefaultMult
	}

	encrypted := binary.LittleEndian.Uint16(data[strOffset:])
	fourMult := encrypted ^ 0x0042
	if fourMult%4 != 0 {
		return DefaultMult
	}
	return fourMult / 4
}

// DecodeGenV decrypts a generation V string-table file. The per-entry key
// starts at (index+3)*mult and rotates left by 3 bits after every code unit.
func DecodeGenV(data []byte, mult uint16) []string {
	if len(data) < 16 {
		return nil
	}
	entryCount := int(binary.LittleEndian.Uint16(data[2:]))
	sectionOffset := int(binary.LittleEndian.Uint32(data[0x0C:]))
	if entryCount == 0 || entryCount > maxEntries {
		return nil
	}
	if sectionOffset+4 > len(data) {
		return nil
	}

	entryTable := sectionOffset + 4
	strings := make([]string, 0, entryCount)

	for i := 0; i < entryCount; i++ {
		entryPos := entryTable + i*8
		if entryPos+8 > len(data) {
			break
		}
		offset := int(binary.LittleEndian.Uint32(data[entryPos:]))
		charCount := int(binary.LittleEndian.Uint16(data[entryPos+4:]))

		strOffset := sectionOffset + offset
		key := uint16(i+3) * mult

		units := make([]uint16, 0, charCount)
		for j := 0; j < charCount; j++ {
			pos := strOffset + j*2
			if pos+2 > len(data) {
				break
			}
			enc := binary.LittleEndian.Uint16(data[pos:])
			units = append(units, enc^key)
			key = key<<3 | key>>13
		}

		strings = append(strings, renderGenV(units))
	}
	return strings
}

// renderGenV turns one entry's decrypted code units into a string.
func renderGenV(units []uint16) string {
	if len(units) > 0 && units[0] == packedMarker {
		return decodePacked(units[1:], glyphGenV)
	}

	var out []byte
	for j := 0; j < len(units); {
		unit := units[j]
		j++

		switch {
		case unit == terminator:
			return string(out)
		case unit == controlMarker:
			var ctrlType, paramCount uint16
			if j < len(units) {
				ctrlType = units[j]
				j++
			}
			if j < len(units) {
				paramCount = units[j]
				j++
			}
			// A corrupt parameter count must not walk past the entry.
			if skip := int(paramCount); skip <= len(units)-j {
				j += skip
			} else {
				j = len(units)
			}
			out = append(out, renderControl(ctrlType)...)
		default:
			out = append(out, glyphGenV(unit)...)
		}
	}
	return string(out)
}

// renderControl maps a control sequence type to its display form. Type 0 is
// a line break, the 0x01xx family substitutes a variable, the 0xBExx and
// 0xFFxx families are formatting and render as nothing.
func renderControl(ctrlType uint16) string {
	switch {
	case ctrlType == 0x0000:
		return "\n"
	case ctrlType&0xFF00 == 0x0100:
		return "[var]"
	case ctrlType&0xFF00 == 0xBE00, ctrlType&0xFF00 == 0xFF00:
		return ""
	default:
		return controlTag(ctrlType)
	}
}
