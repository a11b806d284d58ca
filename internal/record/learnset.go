package record

// DecodeLearnset decodes a species' level-up move list. The wire format
// forks by generation: packed (level<<9)|move 16-bit words before
// generation V, explicit (move, level) 16-bit pairs from generation V on.
// Both end at move id 0xFFFF.
func DecodeLearnset(data []byte, index int, env Env) (Learnset, bool) {
	if len(data) < 2 {
		return Learnset{}, false
	}

	set := Learnset{
		Species:   env.Species(index),
		SpeciesID: index,
	}

	if env.Generation() <= 4 {
		for off := 0; off+2 <= len(data); off += 2 {
			raw := u16(data, off)
			if raw == 0xFFFF {
				break
			}
			set.Moves = append(set.Moves, LearnedMove{
				Move:  env.Move(raw & 0x1FF),
				Level: (raw >> 9) & 0x7F,
			})
		}
	} else {
		for off := 0; off+4 <= len(data); off += 4 {
			moveID := u16(data, off)
			if moveID == 0xFFFF {
				break
			}
			set.Moves = append(set.Moves, LearnedMove{
				Move:  env.Move(moveID),
				Level: u16(data, off+2),
			})
		}
	}

	return set, true
}
