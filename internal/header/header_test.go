package header

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/retroenv/retrogolib/assert"
)

func utf16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	raw := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(raw[i*2:], u)
	}
	return raw
}

func buildNDSImage(shortTitle, code, bannerTitle string) []byte {
	const bannerOffset = 0x1000
	image := make([]byte, bannerOffset+0x340+256)
	copy(image[0:12], shortTitle)
	copy(image[12:16], code)
	binary.LittleEndian.PutUint32(image[0x68:], bannerOffset)
	copy(image[bannerOffset+0x340:], utf16LE(bannerTitle+"\x00"))
	return image
}

func TestParseNDS(t *testing.T) {
	image := buildNDSImage("POKEMON B2", "IREO", "Pokémon Black\nVersion 2\nNintendo")

	info, err := Parse(bytes.NewReader(image), NDS)
	assert.NoError(t, err)
	assert.Equal(t, "IRE", info.GameCode)
	assert.Equal(t, "IREO", info.FullCode)
	assert.Equal(t, "O", info.RegionChar)
	assert.Equal(t, "INT", info.Region)
	assert.Equal(t, "POKEMON B2", info.ShortTitle)
	// The first two banner lines form the display title.
	assert.Equal(t, "Pokémon Black Version 2", info.Title)
	assert.True(t, info.IsEnglish)
}

func TestParseNDSWithoutBanner(t *testing.T) {
	image := buildNDSImage("POKEMON D", "ADAE", "")
	binary.LittleEndian.PutUint32(image[0x68:], 0)

	info, err := Parse(bytes.NewReader(image), NDS)
	assert.NoError(t, err)
	assert.Equal(t, "ADA", info.GameCode)
	assert.Equal(t, "US", info.Region)
	assert.Equal(t, "POKEMON D", info.Title)
	assert.False(t, info.IsEnglish)
}

func TestParseNDSNonEnglishBannerKeepsShortTitle(t *testing.T) {
	image := buildNDSImage("POKEMON W", "IRAJ", "ポケットモンスター")

	info, err := Parse(bytes.NewReader(image), NDS)
	assert.NoError(t, err)
	assert.Equal(t, "JP", info.Region)
	assert.Equal(t, "POKEMON W", info.Title)
	assert.False(t, info.IsEnglish)
}

func TestParseGBA(t *testing.T) {
	image := make([]byte, 0xC0)
	copy(image[0xA0:], "POKEMON EMER")
	copy(image[0xAC:], "BPEE")

	info, err := Parse(bytes.NewReader(image), GBA)
	assert.NoError(t, err)
	assert.Equal(t, "BPE", info.GameCode)
	assert.Equal(t, "BPEE", info.FullCode)
	assert.Equal(t, "US", info.Region)
	assert.Equal(t, "POKEMON EMER", info.Title)
}

func TestParseGB(t *testing.T) {
	image := make([]byte, 0x150)
	copy(image[0x134:], "POKEMON RED")

	info, err := Parse(bytes.NewReader(image), GB)
	assert.NoError(t, err)
	assert.Equal(t, GB, info.Platform)
	assert.Equal(t, "POK", info.GameCode)
	assert.Equal(t, "POKEMON RED", info.Title)
}

func TestParseUnknownPlatform(t *testing.T) {
	_, err := Parse(bytes.NewReader(nil), Unknown)
	assert.Error(t, err, `platform "unknown": no header layout known`)
}

func TestDetectPlatform(t *testing.T) {
	assert.Equal(t, NDS, DetectPlatform("game.NDS"))
	assert.Equal(t, GBA, DetectPlatform("/roms/fire.gba"))
	assert.Equal(t, GBC, DetectPlatform("crystal.gbc"))
	assert.Equal(t, GB, DetectPlatform("red.gb"))
	assert.Equal(t, Unknown, DetectPlatform("notes.txt"))
}
