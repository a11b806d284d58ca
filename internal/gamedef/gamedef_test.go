package gamedef

import (
	"testing"

	"github.com/Creative-Genius2/LinkPlay/internal/record"
	"github.com/retroenv/retrogolib/assert"
)

func TestByCode(t *testing.T) {
	tests := []struct {
		code  string
		title string
		gen   int
	}{
		{"IRE", "Black 2", 5},
		{"IRDO", "White 2", 5}, // full 4-letter code matches on prefix
		{"irb", "Black", 5},
		{"ADAE", "Diamond", 4},
		{"CPU", "Platinum", 4},
		{"IPK", "HeartGold", 4},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			profile, ok := ByCode(tt.code)
			assert.True(t, ok)
			assert.Equal(t, tt.title, profile.Title)
			assert.Equal(t, tt.gen, profile.Generation)
		})
	}

	_, ok := ByCode("XYZ")
	assert.False(t, ok)
}

func TestTrainerArchivesDifferBetweenPairs(t *testing.T) {
	black, _ := ByCode("IRB")
	black2, _ := ByCode("IRE")

	path, ok := black.Path(record.RoleTrainerParty)
	assert.True(t, ok)
	assert.Equal(t, "a/0/9/3", path)

	path, ok = black2.Path(record.RoleTrainerParty)
	assert.True(t, ok)
	assert.Equal(t, "a/0/9/2", path)

	// Only the newer pair carries the tournament archives.
	_, ok = black.Path(record.RolePWTRental)
	assert.False(t, ok)
	_, ok = black2.Path(record.RolePWTRental)
	assert.True(t, ok)
}

func TestPlatinumOverrides(t *testing.T) {
	platinum, _ := ByCode("CPU")
	diamond, _ := ByCode("ADA")

	path, _ := platinum.Path(record.RoleSpeciesStats)
	assert.Equal(t, "poketool/personal/pl_personal.narc", path)
	path, _ = diamond.Path(record.RoleSpeciesStats)
	assert.Equal(t, "poketool/personal/personal.narc", path)

	// Shared paths stay shared.
	path, _ = platinum.Path(record.RoleLearnsets)
	assert.Equal(t, "poketool/personal/wotbl.narc", path)

	path, _ = platinum.Path(record.RoleText)
	assert.Equal(t, "msgdata/pl_msg.narc", path)
}

func TestRegistryExcludesText(t *testing.T) {
	profile, _ := ByCode("IRE")
	registry := profile.Registry()

	assert.Equal(t, record.RoleTrainerParty, registry["a/0/9/2"])
	assert.Equal(t, record.RoleSubwayPool, registry["a/2/1/1"])

	_, ok := registry["a/0/0/2"]
	assert.False(t, ok)

	assert.Equal(t, record.RoleNone, profile.RoleFor("a/0/0/2"))
	assert.Equal(t, record.RolePWTChampions, profile.RoleFor("a/2/5/6"))
}

func TestParseRef(t *testing.T) {
	path, index, err := ParseRef("a/0/9/2:14")
	assert.NoError(t, err)
	assert.Equal(t, "a/0/9/2", path)
	assert.Equal(t, 14, index)

	// Archive paths may themselves contain separators only in the index
	// position, the split is on the last colon.
	path, index, err = ParseRef("poketool/trainer/trpoke.narc:0")
	assert.NoError(t, err)
	assert.Equal(t, "poketool/trainer/trpoke.narc", path)
	assert.Equal(t, 0, index)

	// Stray slashes around the archive part are dropped so the path still
	// hits the exact role lookup.
	path, _, err = ParseRef("/a/0/9/2/:3")
	assert.NoError(t, err)
	assert.Equal(t, "a/0/9/2", path)

	for _, ref := range []string{"a/0/9/2", "a/0/9/2:", "a/0/9/2:-1", ":3", "a/0/9/2:x", "//:3"} {
		_, _, err := ParseRef(ref)
		assert.True(t, err != nil)
	}
}
