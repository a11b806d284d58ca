package record

import (
	"encoding/binary"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// buildBaseStats fills the generation-invariant prefix of a species record.
func buildBaseStats(size int, hp, atk, def, spe, spa, spd, type1, type2, catchRate byte, evYield uint16) []byte {
	data := make([]byte, size)
	copy(data, []byte{hp, atk, def, spe, spa, spd, type1, type2, catchRate})
	binary.LittleEndian.PutUint16(data[0x0A:], evYield)
	return data
}

func TestSpeciesStatsGenV(t *testing.T) {
	data := buildBaseStats(0x1E, 35, 55, 40, 90, 50, 50, 13, 13, 190, 0x0040) // Spe yield 1
	binary.LittleEndian.PutUint16(data[0x0C:], 155)                           // common held item
	data[0x12] = 31                                                           // gender ratio
	data[0x13] = 10                                                           // hatch cycles
	data[0x14] = 70                                                           // happiness
	data[0x15] = 3                                                            // growth rate
	data[0x16], data[0x17] = 5, 5                                             // egg groups
	binary.LittleEndian.PutUint16(data[0x18:], 9)
	binary.LittleEndian.PutUint16(data[0x1C:], 31) // hidden ability

	stats, ok := DecodeSpeciesStats(data, 25, newTestEnv(5))
	assert.True(t, ok)
	assert.Equal(t, "Pikachu", stats.Species)
	assert.Equal(t, 35, stats.Stats.HP)
	assert.Equal(t, 90, stats.Stats.Speed)
	assert.Equal(t, 320, stats.StatTotal)
	assert.Equal(t, 190, stats.CatchRate)

	// Identical types collapse to a single element.
	assert.Equal(t, []string{"Electric"}, stats.Types)

	assert.Equal(t, map[string]int{"Spe": 1}, stats.EVYield)
	assert.Equal(t, map[string]string{"common": "Oran Berry"}, stats.HeldItems)
	assert.Equal(t, 31, stats.GenderRatio)
	assert.Equal(t, 70, stats.BaseHappiness)
	assert.Equal(t, []string{"Static", "Lightning Rod"}, stats.Abilities)
}

func TestSpeciesStatsGenIV(t *testing.T) {
	data := buildBaseStats(0x1C, 45, 49, 49, 45, 65, 65, 12, 4, 45, 0x0101) // HP 1, SpA 1
	data[0x10] = 127
	data[0x16] = 65 // single-byte ability slot

	stats, ok := DecodeSpeciesStats(data, 1, newTestEnv(4))
	assert.True(t, ok)
	assert.Equal(t, "Bulbasaur", stats.Species)
	assert.Equal(t, []string{"Grass", "Ground"}, stats.Types)
	assert.Equal(t, map[string]int{"HP": 1, "SpA": 1}, stats.EVYield)
	assert.Equal(t, 127, stats.GenderRatio)
	assert.Equal(t, []string{"Overgrow"}, stats.Abilities)
	assert.True(t, stats.HeldItems == nil)
}

func TestSpeciesStatsAbsent(t *testing.T) {
	_, ok := DecodeSpeciesStats(make([]byte, 0x1C), 1, newTestEnv(4))
	assert.False(t, ok)

	_, ok = DecodeSpeciesStats(make([]byte, 10), 1, newTestEnv(4))
	assert.False(t, ok)
}

func TestLearnsetPackedWords(t *testing.T) {
	// (level<<9)|move words, 0xFFFF terminated.
	words := []uint16{
		1<<9 | 33,  // Tackle at 1
		13<<9 | 85, // Thunderbolt at 13
		0xFFFF,
		5 << 9, // past the terminator, must be ignored
	}
	data := make([]byte, len(words)*2)
	for i, w := range words {
		binary.LittleEndian.PutUint16(data[i*2:], w)
	}

	set, ok := DecodeLearnset(data, 25, newTestEnv(4))
	assert.True(t, ok)
	assert.Equal(t, "Pikachu", set.Species)
	assert.Equal(t, 2, len(set.Moves))
	assert.Equal(t, LearnedMove{Move: "Tackle", Level: 1}, set.Moves[0])
	assert.Equal(t, LearnedMove{Move: "Thunderbolt", Level: 13}, set.Moves[1])
}

func TestLearnsetPairs(t *testing.T) {
	pairs := []uint16{45, 1, 85, 26, 0xFFFF, 0}
	data := make([]byte, len(pairs)*2)
	for i, w := range pairs {
		binary.LittleEndian.PutUint16(data[i*2:], w)
	}

	set, ok := DecodeLearnset(data, 25, newTestEnv(5))
	assert.True(t, ok)
	assert.Equal(t, 2, len(set.Moves))
	assert.Equal(t, LearnedMove{Move: "Growl", Level: 1}, set.Moves[0])
	assert.Equal(t, LearnedMove{Move: "Thunderbolt", Level: 26}, set.Moves[1])
}

// buildEvolutionSlot writes one (method, param, target) slot in place.
func buildEvolutionSlot(data []byte, slot, method, param, target int) {
	off := slot * evolutionSlotLen
	binary.LittleEndian.PutUint16(data[off:], uint16(method))
	binary.LittleEndian.PutUint16(data[off+2:], uint16(param))
	binary.LittleEndian.PutUint16(data[off+4:], uint16(target))
}

func TestEvolutionLevelAndItem(t *testing.T) {
	data := make([]byte, evolutionSlots*evolutionSlotLen)
	buildEvolutionSlot(data, 0, 4, 16, 2) // level_up 16 -> Ivysaur
	buildEvolutionSlot(data, 1, 8, 1, 26) // stone Master Ball -> Raichu

	table, ok := DecodeEvolution(data, 1, newTestEnv(5))
	assert.True(t, ok)
	assert.Equal(t, "Bulbasaur", table.Species)
	assert.Equal(t, 2, len(table.Evolutions))

	assert.Equal(t, "level_up", table.Evolutions[0].Method)
	assert.Equal(t, 16, table.Evolutions[0].Level)
	assert.Equal(t, "Ivysaur", table.Evolutions[0].Target)

	assert.Equal(t, "stone", table.Evolutions[1].Method)
	assert.Equal(t, "Master Ball", table.Evolutions[1].Item)
	assert.Equal(t, "Raichu", table.Evolutions[1].Target)
}

func TestEvolutionAllZeroAbsent(t *testing.T) {
	_, ok := DecodeEvolution(make([]byte, evolutionSlots*evolutionSlotLen), 1, newTestEnv(5))
	assert.False(t, ok)

	_, ok = DecodeEvolution(make([]byte, 12), 1, newTestEnv(5))
	assert.False(t, ok)
}

func TestMoveDataGenIV(t *testing.T) {
	data := make([]byte, moveDataMinLenGenIV)
	data[2] = 0  // Physical in the older ordering
	data[3] = 40 // power
	data[4] = 0  // Normal
	data[5] = 100
	data[6] = 35

	move, ok := DecodeMoveData(data, 33, newTestEnv(4))
	assert.True(t, ok)
	assert.Equal(t, "Tackle", move.Move)
	assert.Equal(t, "Physical", move.Category)
	assert.Equal(t, "Normal", move.Type)
	assert.Equal(t, 40, move.Power)
	assert.Equal(t, 100, move.Accuracy)
	assert.Equal(t, 35, move.PP)
}

func TestMoveDataGenV(t *testing.T) {
	data := make([]byte, moveDataMinLenGenV)
	data[0] = 13 // Electric
	data[2] = 2  // Special in the newer ordering
	data[3] = 90
	data[4] = 100
	data[5] = 15
	data[6] = 0xFF // priority -1 as signed byte
	data[7] = 0x52           // 2 to 5 hits
	data[10] = 10

	move, ok := DecodeMoveData(data, 85, newTestEnv(5))
	assert.True(t, ok)
	assert.Equal(t, "Thunderbolt", move.Move)
	assert.Equal(t, "Special", move.Category)
	assert.Equal(t, "Electric", move.Type)
	assert.Equal(t, 90, move.Power)
	assert.Equal(t, -1, move.Priority)
	assert.Equal(t, "2-5", move.Hits)
	assert.Equal(t, 10, move.EffectChance)
}

func TestMoveDataCategoryOrderingsDiffer(t *testing.T) {
	assert.Equal(t, "Physical", moveCategory(moveCategoriesGenIV, 0))
	assert.Equal(t, "Status", moveCategory(moveCategoriesGenV, 0))
	assert.Equal(t, "Status", moveCategory(moveCategoriesGenIV, 2))
	assert.Equal(t, "Special", moveCategory(moveCategoriesGenV, 2))
}

func TestMoveDataAllZeroAbsent(t *testing.T) {
	_, ok := DecodeMoveData(make([]byte, moveDataMinLenGenV), 1, newTestEnv(5))
	assert.False(t, ok)
}
