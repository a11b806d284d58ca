package codec

import (
	"encoding/binary"
	"errors"
)

// LZ10 stream parameters, shared with the GBA/NDS BIOS routines.
const (
	lz10MinMatch  = 3
	lz10MaxMatch  = 18
	lz10WindowLen = 0x1000
)

var errLZ10Malformed = errors.New("malformed lz10 stream")

// inflateLZ10 decompresses an LZ10 block: a 4 byte header (0x10 plus 24-bit
// little-endian output size) followed by token groups of 8 tokens announced
// by a flag byte, MSB first. A set flag bit is a 2 byte back reference, a
// clear bit a literal.
func inflateLZ10(data []byte) ([]byte, error) {
	if len(data) < 4 || data[0] != 0x10 {
		return nil, errLZ10Malformed
	}
	size := int(binary.LittleEndian.Uint32(data[:4]) >> 8)
	out := make([]byte, 0, size)

	pos := 4
	for len(out) < size {
		if pos >= len(data) {
			return nil, errLZ10Malformed
		}
		flags := data[pos]
		pos++

		for bit := 7; bit >= 0 && len(out) < size; bit-- {
			if flags&(1<<uint(bit)) == 0 {
				if pos >= len(data) {
					return nil, errLZ10Malformed
				}
				out = append(out, data[pos])
				pos++
				continue
			}

			if pos+2 > len(data) {
				return nil, errLZ10Malformed
			}
			length := int(data[pos]>>4) + lz10MinMatch
			disp := (int(data[pos]&0x0F) << 8) | int(data[pos+1])
			pos += 2

			start := len(out) - disp - 1
			if start < 0 {
				return nil, errLZ10Malformed
			}
			for i := 0; i < length && len(out) < size; i++ {
				out = append(out, out[start+i])
			}
		}
	}
	return out, nil
}

// deflateLZ10 compresses data into an LZ10 block using a greedy window
// search. The output always inflates back to the input.
func deflateLZ10(data []byte) []byte {
	out := make([]byte, 4, len(data)+len(data)/8+8)
	out[0] = 0x10
	out[1] = byte(len(data))
	out[2] = byte(len(data) >> 8)
	out[3] = byte(len(data) >> 16)

	pos := 0
	for pos < len(data) {
		flagIdx := len(out)
		out = append(out, 0)

		for bit := 7; bit >= 0 && pos < len(data); bit-- {
			length, disp := findMatch(data, pos)
			if length < lz10MinMatch {
				out = append(out, data[pos])
				pos++
				continue
			}

			out[flagIdx] |= 1 << uint(bit)
			out = append(out,
				byte((length-lz10MinMatch)<<4)|byte(disp>>8),
				byte(disp))
			pos += length
		}
	}
	return out
}

// findMatch searches the sliding window for the longest match at pos and
// returns its length and encoded displacement (distance - 1).
func findMatch(data []byte, pos int) (int, int) {
	maxLen := len(data) - pos
	if maxLen > lz10MaxMatch {
		maxLen = lz10MaxMatch
	}
	if maxLen < lz10MinMatch {
		return 0, 0
	}

	start := pos - lz10WindowLen
	if start < 0 {
		start = 0
	}

	bestLen, bestDisp := 0, 0
	for cand := pos - 1; cand >= start; cand-- {
		length := 0
		for length < maxLen && data[cand+length] == data[pos+length] {
			length++
		}
		if length > bestLen {
			bestLen, bestDisp = length, pos-cand-1
			if length == maxLen {
				break
			}
		}
	}
	return bestLen, bestDisp
}
