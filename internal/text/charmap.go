package text

import "fmt"

// hexTag renders an unmapped code unit, display form matches the original
// tooling output.
func hexTag(c uint16) string {
	return fmt.Sprintf("\\x%04X", c)
}

// controlTag renders an unrecognized control sequence type.
func controlTag(c uint16) string {
	return fmt.Sprintf("[ctrl:%04X]", c)
}

// genVLiterals are the reserved generation V code units that expand to
// multi-character literals.
var genVLiterals = map[uint16]string{
	0x2467: "Mr.",
	0x2468: "Ms.",
	0x2469: "Mrs.",
	0x246D: "the",
	0x246E: "The",
	0x2486: "Poké",
	0x2487: "mon",
}

// glyphGenV maps a generation V code unit to its display form. Code units
// are Unicode scalar values apart from the reserved literals.
func glyphGenV(c uint16) string {
	if lit, ok := genVLiterals[c]; ok {
		return lit
	}
	if c < 0x20 || (c >= 0xD800 && c <= 0xDFFF) {
		return hexTag(c)
	}
	return string(rune(c))
}

// genIVSymbols holds the irregular fullwidth symbol block (0x00E1-0x011D).
var genIVSymbols = map[uint16]string{
	0x00E1: "！", 0x00E2: "？", 0x00E3: "、", 0x00E4: "。", 0x00E5: "…",
	0x00E6: "・", 0x00E7: "／", 0x00E8: "「", 0x00E9: "」", 0x00EA: "『",
	0x00EB: "』", 0x00EC: "（", 0x00ED: "）", 0x00EE: "♂", 0x00EF: "♀",
	0x00F0: "＋", 0x00F1: "ー", 0x00F2: "×", 0x00F3: "÷", 0x00F4: "＝",
	0x00F5: "～", 0x00F6: "：", 0x00F7: "；", 0x00F8: "．", 0x00F9: "，",
	0x00FA: "♠", 0x00FB: "♣", 0x00FC: "♥", 0x00FD: "♦", 0x00FE: "★",
	0x00FF: "◎", 0x0100: "○", 0x0101: "□", 0x0102: "△", 0x0103: "◇",
	0x0104: "＠", 0x0105: "♪", 0x0106: "％", 0x0107: "☀", 0x0108: "☁",
	0x0109: "☂", 0x010A: "☃", 0x0111: "円", 0x0118: "←", 0x0119: "↑",
	0x011A: "↓", 0x011B: "→", 0x011C: "►", 0x011D: "＆",
}

// genIVSpecials holds the halfwidth punctuation and symbol block
// (0x01AC-0x01E8).
var genIVSpecials = map[uint16]string{
	0x01AC: "!", 0x01AD: "?", 0x01AE: ",", 0x01AF: ".",
	0x01B0: "…", 0x01B1: "･", 0x01B2: "/", 0x01B3: "‘",
	0x01B4: "’", 0x01B5: "“", 0x01B6: "”", 0x01B7: "„",
	0x01B8: "«", 0x01B9: "»", 0x01BA: "(", 0x01BB: ")",
	0x01BC: "♂", 0x01BD: "♀", 0x01BE: "+", 0x01BF: "-",
	0x01C0: "*", 0x01C1: "#", 0x01C2: "=", 0x01C3: "&",
	0x01C4: "~", 0x01C5: ":", 0x01C6: ";", 0x01C7: "♠",
	0x01C8: "♣", 0x01C9: "♥", 0x01CA: "♦", 0x01CB: "★",
	0x01CC: "◎", 0x01CD: "○", 0x01CE: "□", 0x01CF: "△",
	0x01D0: "◇", 0x01D1: "@", 0x01D2: "♪", 0x01D3: "%",
	0x01D4: "☀", 0x01D5: "☁", 0x01D6: "☂", 0x01D7: "☃",
	0x01DE: " ", 0x01DF: "e",
	0x01E0: "PK", 0x01E1: "MN", 0x01E4: "°", 0x01E5: "_",
	0x01E6: "＿", 0x01E7: "․", 0x01E8: "‥",
}

// genIVExtended holds the extended Latin run starting at 0x019F.
var genIVExtended = []string{
	"Œ", "œ", "Ş", "ş", "ª", "º", "er", "re", "r", "", "¡", "¿", "!",
}

// glyphGenIV maps a generation IV code unit to its display form. Kana,
// fullwidth Latin and accented Latin live in contiguous runs mapped by
// offset arithmetic, the irregular blocks are table lookups.
func glyphGenIV(c uint16) string {
	switch {
	case c == 0x0000:
		return " "
	case c == 0x0001:
		return "　"
	case c >= 0x0002 && c <= 0x004E: // hiragana ぁ..ろ
		return string(rune(0x303F + c))
	case c == 0x004F:
		return "わ"
	case c == 0x0050:
		return "を"
	case c == 0x0051:
		return "ん"
	case c >= 0x0052 && c <= 0x009E: // katakana ァ..ロ
		return string(rune(0x3A4F + c))
	case c == 0x009F:
		return "ワ"
	case c == 0x00A0:
		return "ヲ"
	case c == 0x00A1:
		return "ン"
	case c >= 0x00A2 && c <= 0x00AB: // fullwidth ０..９
		return string(rune(0xFF10 + c - 0x00A2))
	case c >= 0x00AC && c <= 0x00C5: // fullwidth Ａ..Ｚ
		return string(rune(0xFF21 + c - 0x00AC))
	case c >= 0x00C6 && c <= 0x00DF: // fullwidth ａ..ｚ
		return string(rune(0xFF41 + c - 0x00C6))
	case c >= 0x0121 && c <= 0x012A:
		return string(rune('0' + c - 0x0121))
	case c >= 0x012B && c <= 0x0144:
		return string(rune('A' + c - 0x012B))
	case c >= 0x0145 && c <= 0x015E:
		return string(rune('a' + c - 0x0145))
	case c >= 0x015F && c <= 0x019E: // accented Latin À..ÿ
		return string(rune(0x00C0 + c - 0x015F))
	case c >= 0x019F && c < 0x019F+uint16(len(genIVExtended)):
		return genIVExtended[c-0x019F]
	case c == 0xFFFE || c == 0xE000:
		return "\n"
	case c == terminator || c == packedEnd:
		return ""
	}
	if s, ok := genIVSymbols[c]; ok {
		return s
	}
	if s, ok := genIVSpecials[c]; ok {
		return s
	}
	return hexTag(c)
}
