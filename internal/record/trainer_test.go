package record

import (
	"encoding/binary"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// buildPartySlot builds one party slot for the given template.
func buildPartySlot(template int, difficulty, abilityGender, level byte, species, form uint16, item uint16, moves [4]uint16) []byte {
	slot := make([]byte, partySlotSizes[template])
	slot[0] = difficulty
	slot[1] = abilityGender
	slot[2] = level
	binary.LittleEndian.PutUint16(slot[4:], species)
	binary.LittleEndian.PutUint16(slot[6:], form)

	off := 8
	if template&2 != 0 {
		binary.LittleEndian.PutUint16(slot[8:], item)
		off = 10
	}
	if template&1 != 0 {
		for m, id := range moves {
			binary.LittleEndian.PutUint16(slot[off+m*2:], id)
		}
	}
	return slot
}

func TestPartyTemplateFromProfile(t *testing.T) {
	env := newTestEnv(5)
	// Profile byte 0 has template bits 3: item and moves present.
	profile := make([]byte, 20)
	profile[0] = 0x03
	env.addSibling(RoleTrainerProfile, 7, profile)

	slot := buildPartySlot(3, 255, 0x01, 50, 25, 0, 17, [4]uint16{85, 45, 0, 33})
	assert.Equal(t, 18, len(slot))

	party, ok := DecodeTrainerParty(slot, 7, env)
	assert.True(t, ok)
	assert.Equal(t, 3, party.Template)
	assert.Equal(t, 1, len(party.Slots))

	got := party.Slots[0]
	assert.Equal(t, "Pikachu", got.Species)
	assert.Equal(t, 50, got.Level)
	assert.Equal(t, 31, got.IVs) // difficulty 255 maps to max IV
	assert.Equal(t, "Male", got.Gender)
	assert.Equal(t, "Potion", got.HeldItem)
	assert.Equal(t, []string{"Thunderbolt", "Growl", "---", "Tackle"}, got.Moves)
}

func TestPartyTemplateGuessedFromSize(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		template int
	}{
		{"18 bytes prefers largest template", 18, 3},
		{"16 bytes is moves only", 16, 1},
		{"8 bytes is the bare slot", 8, 0},
		{"40 bytes divides by 10 and 8, largest wins", 40, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.template, partyTemplate(make([]byte, tt.size), nil))
		})
	}
}

func TestPartyAbilityCrossReference(t *testing.T) {
	// Generation V species stats with three 16-bit ability slots.
	stats := make([]byte, 0x1E)
	stats[1] = 1 // non-zero so the record is not a placeholder
	binary.LittleEndian.PutUint16(stats[0x18:], 9)
	binary.LittleEndian.PutUint16(stats[0x1A:], 31)
	binary.LittleEndian.PutUint16(stats[0x1C:], 31)

	env := newTestEnv(5)
	env.addSibling(RoleSpeciesStats, 25, stats)

	// Ability nibble 1 selects the second slot.
	slot := buildPartySlot(0, 0, 0x10, 20, 25, 0, 0, [4]uint16{})
	party, ok := DecodeTrainerParty(slot, 0, env)
	assert.True(t, ok)
	assert.Equal(t, "Lightning Rod", party.Slots[0].Ability)
}

func TestPartyAbilityGenIVLayout(t *testing.T) {
	stats := make([]byte, 0x1C)
	stats[1] = 1
	stats[0x16] = 9
	stats[0x17] = 31

	env := newTestEnv(4)
	env.addSibling(RoleSpeciesStats, 25, stats)

	slot := buildPartySlot(0, 128, 0x00, 20, 25, 0, 0, [4]uint16{})
	party, ok := DecodeTrainerParty(slot, 0, env)
	assert.True(t, ok)
	assert.Equal(t, "Static", party.Slots[0].Ability)
	assert.Equal(t, 128*31/255, party.Slots[0].IVs)
}

func TestPartyEmptyBlockAbsent(t *testing.T) {
	_, ok := DecodeTrainerParty(nil, 0, newTestEnv(5))
	assert.False(t, ok)
}

// buildProfile builds a trainer profile record.
func buildProfile(flags, class, format, partySize byte, items [4]uint16, aiFlags uint32, reward, area byte) []byte {
	data := make([]byte, 20)
	data[0] = flags
	data[1] = class
	data[2] = format
	data[3] = partySize
	for i, id := range items {
		binary.LittleEndian.PutUint16(data[4+i*2:], id)
	}
	binary.LittleEndian.PutUint32(data[12:], aiFlags)
	data[17] = reward
	data[18] = area
	return data
}

func TestTrainerProfile(t *testing.T) {
	env := newTestEnv(5)
	data := buildProfile(0x03, 5, 1, 2, [4]uint16{17, 0, 0, 0}, 0x000F, 8, 3)

	profile, ok := DecodeTrainerProfile(data, 12, env)
	assert.True(t, ok)
	assert.Equal(t, "Ace Trainer", profile.Class)
	assert.Equal(t, "Double", profile.BattleFormat)
	assert.Equal(t, 2, profile.PartySize)
	assert.True(t, profile.HasCustomMoves)
	assert.True(t, profile.HasHeldItems)
	assert.Equal(t, []string{"Potion"}, profile.BattleItems)
	assert.Equal(t, []string{"Basic AI", "Check bad moves", "Try to faint", "Check viability"}, profile.AIFlags)
	assert.Equal(t, 8, profile.RewardMultiplier)
	assert.Equal(t, 3, profile.AreaID)
	assert.Equal(t, 0, profile.PrizeMoney) // no paired party
}

func TestTrainerProfilePrizeMoney(t *testing.T) {
	env := newTestEnv(5)

	slotA := buildPartySlot(0, 0, 0, 18, 1, 0, 0, [4]uint16{})
	slotB := buildPartySlot(0, 0, 0, 23, 4, 0, 0, [4]uint16{})
	env.addSibling(RoleTrainerParty, 12, append(slotA, slotB...))

	data := buildProfile(0x00, 1, 0, 2, [4]uint16{}, 0, 10, 0)
	profile, ok := DecodeTrainerProfile(data, 12, env)
	assert.True(t, ok)

	// Last slot level 23 times multiplier 10 times 4.
	assert.Equal(t, 920, profile.PrizeMoney)
}

func TestTrainerProfileTooShortAbsent(t *testing.T) {
	_, ok := DecodeTrainerProfile(make([]byte, 19), 0, newTestEnv(5))
	assert.False(t, ok)
}

func TestAIFlagTablesDiverge(t *testing.T) {
	// Bit 8 means "Risky (advanced)" in generation V but "Weather" in
	// generation IV.
	assert.Equal(t, []string{"Risky (advanced)"}, decodeAIFlags(0x100, 5))
	assert.Equal(t, []string{"Weather"}, decodeAIFlags(0x100, 4))

	assert.Equal(t, []string{"None"}, decodeAIFlags(0, 5))
}

func TestDecodeGender(t *testing.T) {
	assert.Equal(t, "Random", decodeGender(0))
	assert.Equal(t, "Male", decodeGender(1))
	assert.Equal(t, "Female", decodeGender(2))
	assert.Equal(t, "Genderless", decodeGender(3))
}
