// Package header parses cartridge image headers: game code, title and
// region for the DS, GBA and GB family layouts.
package header

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Platform is the cartridge hardware family, detected from the file
// extension.
type Platform string

// Supported platforms.
const (
	NDS     Platform = "nds"
	GBA     Platform = "gba"
	GB      Platform = "gb"
	GBC     Platform = "gbc"
	Unknown Platform = "unknown"
)

// Info is the parsed header of a cartridge image.
type Info struct {
	Platform   Platform `json:"platform"`
	GameCode   string   `json:"game_code"` // 3-letter code without the region letter
	FullCode   string   `json:"full_code"`
	RegionChar string   `json:"region_char"`
	Region     string   `json:"region"`
	ShortTitle string   `json:"short_title,omitempty"`
	Title      string   `json:"game_title"`
	IsEnglish  bool     `json:"is_english,omitempty"`
}

// regionNames maps the trailing code letter to a region label. 'O' is the
// region-free international release letter.
var regionNames = map[string]string{
	"E": "US", "P": "EU", "J": "JP", "K": "KR",
	"D": "DE", "F": "FR", "S": "ES", "I": "IT",
	"O": "INT",
}

// DetectPlatform classifies a cartridge image by file extension.
func DetectPlatform(path string) Platform {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nds":
		return NDS
	case ".gba":
		return GBA
	case ".gbc":
		return GBC
	case ".gb":
		return GB
	default:
		return Unknown
	}
}

// Read parses the header of a cartridge image file.
func Read(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("opening image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Parse(f, DetectPlatform(path))
}

// Parse parses a cartridge header from a readable image.
func Parse(r io.ReaderAt, platform Platform) (Info, error) {
	switch platform {
	case NDS:
		return parseNDS(r)
	case GBA:
		return parseGBA(r)
	case GB, GBC:
		return parseGB(r, platform)
	default:
		return Info{}, fmt.Errorf("platform %q: no header layout known", platform)
	}
}

// parseNDS reads the DS header: 12-byte short title and 4-byte code at the
// start, banner offset at 0x68. The banner carries a localized long title
// that replaces the short title when it is English.
func parseNDS(r io.ReaderAt) (Info, error) {
	buf := make([]byte, 0x6C)
	if _, err := r.ReadAt(buf, 0); err != nil {
		return Info{}, fmt.Errorf("reading header: %w", err)
	}

	info := codeInfo(asciiField(buf[0:12]), asciiField(buf[12:16]), "INT")
	info.Platform = NDS
	info.Title = info.ShortTitle

	if bannerOffset := binary.LittleEndian.Uint32(buf[0x68:]); bannerOffset > 0 {
		if title := bannerTitle(r, int64(bannerOffset)); isEnglish(title) {
			info.Title = title
			info.IsEnglish = true
		}
	}
	return info, nil
}

// parseGBA reads the GBA header fields at 0xA0.
func parseGBA(r io.ReaderAt) (Info, error) {
	buf := make([]byte, 16)
	if _, err := r.ReadAt(buf, 0xA0); err != nil {
		return Info{}, fmt.Errorf("reading header: %w", err)
	}

	info := codeInfo(asciiField(buf[0:12]), asciiField(buf[12:16]), "US")
	info.Platform = GBA
	info.Title = info.ShortTitle
	return info, nil
}

// parseGB reads the classic 16-byte title field at 0x134. These headers
// carry no separate code, the title prefix stands in for it.
func parseGB(r io.ReaderAt, platform Platform) (Info, error) {
	buf := make([]byte, 16)
	if _, err := r.ReadAt(buf, 0x134); err != nil {
		return Info{}, fmt.Errorf("reading header: %w", err)
	}

	title := asciiField(buf)
	info := Info{
		Platform:   platform,
		GameCode:   prefix(title, 3),
		FullCode:   prefix(title, 4),
		RegionChar: "E",
		Region:     "US",
		ShortTitle: title,
		Title:      title,
	}
	return info, nil
}

// codeInfo splits a 4-letter code into the 3-letter game code and the
// region letter.
func codeInfo(shortTitle, fullCode, defaultRegion string) Info {
	info := Info{
		GameCode:   prefix(fullCode, 3),
		FullCode:   fullCode,
		RegionChar: "E",
		ShortTitle: shortTitle,
	}
	if len(fullCode) >= 4 {
		info.RegionChar = fullCode[3:4]
	}
	info.Region = defaultRegion
	if region, ok := regionNames[info.RegionChar]; ok {
		info.Region = region
	}
	return info
}

// bannerTitle reads the English banner title: UTF-16LE at banner+0x340,
// NUL terminated, up to two lines joined by a space.
func bannerTitle(r io.ReaderAt, bannerOffset int64) string {
	raw := make([]byte, 256)
	n, err := r.ReadAt(raw, bannerOffset+0x340)
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}

	decoder := xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM).NewDecoder()
	decoded, _, err := transform.Bytes(decoder, raw[:n])
	if err != nil {
		return ""
	}

	title, _, _ := strings.Cut(string(decoded), "\x00")
	lines := strings.Split(title, "\n")
	if len(lines) >= 2 {
		return strings.TrimSpace(lines[0] + " " + lines[1])
	}
	return strings.TrimSpace(lines[0])
}

// asciiField strips NUL padding and non-ASCII bytes from a fixed header
// field.
func asciiField(raw []byte) string {
	var b strings.Builder
	for _, c := range raw {
		if c >= 0x20 && c < 0x7F {
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String())
}

func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// isEnglish reports whether a banner title contains at least one letter,
// the sign that the banner slot held a Latin-script localization.
func isEnglish(title string) bool {
	for _, r := range title {
		if unicode.IsLetter(r) && r < 0x370 {
			return true
		}
	}
	return false
}
