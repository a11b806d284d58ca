package record

// evYieldStats names the EV yield bit pairs, wire order.
var evYieldStats = []string{"HP", "Atk", "Def", "Spe", "SpA", "SpD"}

// speciesStatsMinLen covers the generation-invariant prefix plus the
// smaller generation IV tail.
const speciesStatsMinLen = 28

// DecodeSpeciesStats decodes one species' base data record. The first 10
// bytes are generation invariant, the rest forks: generation IV carries two
// held items and two single-byte ability ids, generation V three held items
// and three 16-bit ability ids including a hidden slot.
func DecodeSpeciesStats(data []byte, index int, env Env) (SpeciesStats, bool) {
	if len(data) < speciesStatsMinLen || allZero(data) {
		return SpeciesStats{}, false
	}

	stats := SpeciesStats{
		Species:   env.Species(index),
		SpeciesID: index,
		Stats: BaseStats{
			HP:        int(data[0]),
			Attack:    int(data[1]),
			Defense:   int(data[2]),
			Speed:     int(data[3]),
			SpAttack:  int(data[4]),
			SpDefense: int(data[5]),
		},
		CatchRate: int(data[8]),
	}
	stats.StatTotal = stats.Stats.Total()

	type1, type2 := int(data[6]), int(data[7])
	stats.Types = []string{env.TypeName(type1), env.TypeName(type2)}
	if stats.Types[0] == stats.Types[1] {
		stats.Types = stats.Types[:1]
	}

	evRaw := u16(data, 0x0A)
	for i, stat := range evYieldStats {
		if val := (evRaw >> (i * 2)) & 3; val != 0 {
			if stats.EVYield == nil {
				stats.EVYield = map[string]int{}
			}
			stats.EVYield[stat] = val
		}
	}

	if env.Generation() <= 4 {
		stats.HeldItems = heldItems(env, data, 0x0C, []string{"common", "rare"})
		stats.GenderRatio = int(data[0x10])
		stats.HatchCycles = int(data[0x11])
		stats.BaseHappiness = int(data[0x12])
		stats.GrowthRate = int(data[0x13])
		stats.EggGroups = [2]int{int(data[0x14]), int(data[0x15])}
		for _, id := range []int{int(data[0x16]), int(data[0x17])} {
			if id > 0 {
				stats.Abilities = append(stats.Abilities, env.Ability(id))
			}
		}
	} else {
		stats.HeldItems = heldItems(env, data, 0x0C, []string{"common", "rare", "hidden"})
		stats.GenderRatio = int(data[0x12])
		stats.HatchCycles = int(data[0x13])
		stats.BaseHappiness = int(data[0x14])
		stats.GrowthRate = int(data[0x15])
		stats.EggGroups = [2]int{int(data[0x16]), int(data[0x17])}
		for i := 0; i < 3; i++ {
			off := 0x18 + i*2
			if off+2 > len(data) {
				break
			}
			if id := u16(data, off); id > 0 {
				stats.Abilities = append(stats.Abilities, env.Ability(id))
			}
		}
	}

	return stats, true
}

// heldItems reads consecutive 16-bit item ids starting at off, labeled by
// rarity slot, skipping empty slots.
func heldItems(env Env, data []byte, off int, labels []string) map[string]string {
	var held map[string]string
	for i, label := range labels {
		if id := u16(data, off+i*2); id > 0 {
			if held == nil {
				held = map[string]string{}
			}
			held[label] = env.Item(id)
		}
	}
	return held
}
