package record

// poolEntryLen is the fixed size of a facility creature pool entry.
const poolEntryLen = 16

// evSpreadStats names the EV spread bits: each set bit maxes that stat.
var evSpreadStats = []string{"HP", "Atk", "Def", "Spe", "SpA", "SpD"}

// decodeEVSpread expands the packed EV bitmask.
func decodeEVSpread(b byte) []string {
	var stats []string
	for i, name := range evSpreadStats {
		if b&(1<<uint(i)) != 0 {
			stats = append(stats, name)
		}
	}
	if stats == nil {
		stats = []string{"None"}
	}
	return stats
}

// DecodePoolEntry decodes one 16-byte facility creature pool entry. The
// 16-bit field at offset 12 is a held item in champion pools and a trainer
// class everywhere else, keyed by the pool the entry came from.
func DecodePoolEntry(data []byte, index int, env Env, itemField bool) (PoolEntry, bool) {
	if len(data) < poolEntryLen || allZero(data[:poolEntryLen]) {
		return PoolEntry{}, false
	}

	speciesID := u16(data, 0)
	entry := PoolEntry{
		Index:     index,
		Species:   env.Species(speciesID),
		SpeciesID: speciesID,
		EVs:       decodeEVSpread(data[10]),
		Nature:    env.Nature(int(data[11])),
	}

	entry.Moves = make([]string, 4)
	for m := range entry.Moves {
		if moveID := u16(data, 2+m*2); moveID > 0 {
			entry.Moves[m] = env.Move(moveID)
		} else {
			entry.Moves[m] = "---"
		}
	}

	field12 := u16(data, 12)
	if itemField {
		if field12 > 0 {
			entry.HeldItem = env.Item(field12)
		} else {
			entry.HeldItem = "None"
		}
	} else {
		entry.TrainerClass = env.TrainerClass(field12)
	}

	return entry, true
}

// DecodeRoster decodes a facility roster record: format, count, then that
// many 16-bit pool index references.
func DecodeRoster(data []byte, index int, _ Env) (Roster, bool) {
	if len(data) < 4 {
		return Roster{}, false
	}
	format := u16(data, 0)
	count := u16(data, 2)
	if format == 0 && count == 0 {
		return Roster{}, false
	}

	roster := Roster{
		Index:     index,
		Format:    format,
		PoolCount: count,
	}
	for i := 0; i < count; i++ {
		off := 4 + i*2
		if off+2 > len(data) {
			break
		}
		roster.PoolIndices = append(roster.PoolIndices, u16(data, off))
	}
	return roster, true
}

// DecodeTrainerConfig decodes a compact 6-byte facility trainer record:
// format, count, start index.
func DecodeTrainerConfig(data []byte, index int, _ Env) (TrainerConfig, bool) {
	if len(data) < 6 {
		return TrainerConfig{}, false
	}
	cfg := TrainerConfig{
		Index:      index,
		Format:     u16(data, 0),
		Count:      u16(data, 2),
		StartIndex: u16(data, 4),
	}
	if cfg.Format == 0 && cfg.Count == 0 && cfg.StartIndex == 0 {
		return TrainerConfig{}, false
	}
	return cfg, true
}
