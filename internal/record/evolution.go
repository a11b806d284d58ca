package record

// evolutionMethods names the method codes. A zero method marks an unused
// slot.
var evolutionMethods = map[int]string{
	1: "happiness", 2: "happiness_day", 3: "happiness_night",
	4: "level_up", 5: "trade", 6: "trade_with_item", 7: "trade_for_species",
	8: "stone", 9: "atk>def", 10: "atk=def", 11: "atk<def",
	12: "personality_lo", 13: "personality_hi", 14: "ninjask", 15: "shedinja",
	16: "beauty", 17: "item_day", 18: "item_night", 19: "move",
	20: "party_species", 21: "level_male", 22: "level_female",
	23: "level_electric_field", 24: "level_mossy_rock", 25: "level_icy_rock",
	26: "level_mossy_rock_2", 27: "level_icy_rock_2", 28: "level_dark",
	29: "spin", 30: "level_rain",
}

// Method codes whose parameter is a level threshold.
var levelMethods = map[int]struct{}{
	4: {}, 9: {}, 10: {}, 11: {}, 21: {}, 22: {},
	23: {}, 24: {}, 25: {}, 26: {}, 27: {}, 28: {},
}

// Method codes whose parameter is an item id.
var itemMethods = map[int]struct{}{6: {}, 8: {}, 17: {}, 18: {}}

// evolutionSlots is the fixed slot count, evolutionSlotLen the wire size of
// one (method, parameter, target) slot.
const (
	evolutionSlots   = 7
	evolutionSlotLen = 6
)

// DecodeEvolution decodes a species' evolution table: exactly 7 fixed
// slots, all-zero slots skipped, parameter meaning keyed by the method
// code.
func DecodeEvolution(data []byte, index int, env Env) (EvolutionTable, bool) {
	if len(data) < evolutionSlots*evolutionSlotLen || allZero(data[:evolutionSlots*evolutionSlotLen]) {
		return EvolutionTable{}, false
	}

	table := EvolutionTable{
		Species:   env.Species(index),
		SpeciesID: index,
	}

	for i := 0; i < evolutionSlots; i++ {
		off := i * evolutionSlotLen
		method := u16(data, off)
		param := u16(data, off+2)
		target := u16(data, off+4)
		if method == 0 && target == 0 {
			continue
		}

		name, ok := evolutionMethods[method]
		if !ok {
			name = placeholder("method", method)
		}
		evo := Evolution{
			Method:   name,
			Target:   env.Species(target),
			TargetID: target,
		}

		switch {
		case hasKey(levelMethods, method):
			evo.Level = param
		case hasKey(itemMethods, method):
			evo.Item = env.Item(param)
		case method == 19:
			evo.Move = env.Move(param)
		case method == 7:
			evo.TradeSpecies = env.Species(param)
		case method == 20:
			evo.PartySpecies = env.Species(param)
		case param > 0:
			evo.Param = param
		}

		table.Evolutions = append(table.Evolutions, evo)
	}

	if len(table.Evolutions) == 0 {
		return EvolutionTable{}, false
	}
	return table, true
}

func hasKey(set map[int]struct{}, key int) bool {
	_, ok := set[key]
	return ok
}
