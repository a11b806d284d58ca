package record

import "strconv"

// partySlotSizes maps the 2-bit party template to its slot size. Bit 0 adds
// four move ids, bit 1 a held item id.
var partySlotSizes = [4]int{8, 16, 10, 18}

// battleFormats indexes the battle-format enum of the profile record.
var battleFormats = [4]string{"Single", "Double", "Triple", "Rotation"}

// aiFlagsGenV maps AI capability bits for generation V trainers.
var aiFlagsGenV = []string{
	"Basic AI", "Check bad moves", "Try to faint", "Check viability",
	"Setup first turn", "Risky", "Prefer strongest", "Prefer status",
	"Risky (advanced)", "Weather", "Trapping", "Expert",
	"Double battle", "HP aware", "Unknown (0x4000)", "Roaming",
}

// aiFlagsGenIV maps AI capability bits for generation IV trainers. The two
// tables diverge from bit 8 on.
var aiFlagsGenIV = []string{
	"Basic AI", "Check bad moves", "Try to faint", "Check viability",
	"Setup first turn", "Risky", "Prefer strongest", "Prefer status",
	"Weather", "Trapping", "Unknown (0x400)", "Unknown (0x800)",
	"Unknown (0x1000)", "Unknown (0x2000)", "Unknown (0x4000)", "Unknown (0x8000)",
}

// decodeAIFlags expands an AI bitmask against the generation's capability
// table.
func decodeAIFlags(flags uint32, gen int) []string {
	table := aiFlagsGenV
	if gen <= 4 {
		table = aiFlagsGenIV
	}
	var active []string
	for bit, name := range table {
		if flags&(1<<uint(bit)) != 0 {
			active = append(active, name)
		}
	}
	if active == nil {
		active = []string{"None"}
	}
	return active
}

// difficultyIV maps the party slot difficulty byte linearly onto the 0-31
// IV range, applied to all six stats uniformly.
func difficultyIV(b byte) int {
	return int(b) * 31 / 255
}

// decodeGender maps the gender nibble of a party slot.
func decodeGender(nibble byte) string {
	switch nibble {
	case 1:
		return "Male"
	case 2:
		return "Female"
	case 3:
		return "Genderless"
	default:
		// Zero defers to the species gender ratio.
		return "Random"
	}
}

// partyTemplate picks the slot template: from the paired profile's first
// byte when available, otherwise the largest template whose slot size
// divides the block evenly.
func partyTemplate(data, profile []byte) int {
	if len(profile) >= 1 {
		return int(profile[0] & 0x03)
	}
	for _, t := range []int{3, 2, 1, 0} {
		size := partySlotSizes[t]
		if len(data)%size == 0 && len(data)/size > 0 {
			return t
		}
	}
	return 0
}

// DecodeTrainerParty decodes one trainer's party block. The paired profile
// record, when reachable, fixes the slot template.
func DecodeTrainerParty(data []byte, index int, env Env) (TrainerParty, bool) {
	if len(data) == 0 {
		return TrainerParty{}, false
	}

	profile, _ := env.Sibling(RoleTrainerProfile, index)
	template := partyTemplate(data, profile)
	slotSize := partySlotSizes[template]

	party := TrainerParty{
		TrainerIndex: index,
		TrainerName:  env.TrainerName(index),
		Template:     template,
	}

	for off := 0; off+slotSize <= len(data); off += slotSize {
		slot := data[off : off+slotSize]
		speciesID := u16(slot, 4)

		abilitySlot := int(slot[1] >> 4)
		entry := PartySlot{
			Species:   env.Species(speciesID),
			SpeciesID: speciesID,
			Level:     int(slot[2]),
			Ability:   abilityForSpecies(env, speciesID, abilitySlot),
			Gender:    decodeGender(slot[1] & 0x0F),
			IVs:       difficultyIV(slot[0]),
			Form:      u16(slot, 6),
		}

		moveOff := 8
		if template&2 != 0 {
			itemID := u16(slot, 8)
			if itemID > 0 {
				entry.HeldItem = env.Item(itemID)
			} else {
				entry.HeldItem = "None"
			}
			moveOff = 10
		}
		if template&1 != 0 {
			entry.Moves = make([]string, 4)
			for m := range entry.Moves {
				moveID := u16(slot, moveOff+m*2)
				if moveID > 0 {
					entry.Moves[m] = env.Move(moveID)
				} else {
					entry.Moves[m] = "---"
				}
			}
		}

		party.Slots = append(party.Slots, entry)
	}
	return party, true
}

// abilityForSpecies resolves a party slot's ability name by cross-
// referencing the species stats record. The slot layout forks by
// generation: two single-byte ids before generation V, three 16-bit ids
// including a hidden slot from generation V on.
func abilityForSpecies(env Env, speciesID, slot int) string {
	stats, ok := env.Sibling(RoleSpeciesStats, speciesID)
	if !ok {
		return placeholderAbilitySlot(slot)
	}

	var abilityID int
	if env.Generation() <= 4 {
		if len(stats) < 0x18 || slot >= 2 {
			return placeholderAbilitySlot(slot)
		}
		abilityID = int(stats[0x16+slot])
	} else {
		if len(stats) < 0x1E || slot >= 3 {
			return placeholderAbilitySlot(slot)
		}
		abilityID = u16(stats, 0x18+slot*2)
	}
	return env.Ability(abilityID)
}

func placeholderAbilitySlot(slot int) string {
	return "ability_slot_" + strconv.Itoa(slot)
}

// trainerProfileMinLen is the fixed profile header size.
const trainerProfileMinLen = 20

// DecodeTrainerProfile decodes one trainer's header record. Prize money is
// filled in when the paired party block is reachable: last slot level times
// the reward multiplier times 4.
func DecodeTrainerProfile(data []byte, index int, env Env) (TrainerProfile, bool) {
	if len(data) < trainerProfileMinLen {
		return TrainerProfile{}, false
	}

	flags := data[0]
	profile := TrainerProfile{
		Index:            index,
		Name:             env.TrainerName(index),
		Class:            env.TrainerClass(int(data[1])),
		BattleFormat:     battleFormat(data[2]),
		PartySize:        int(data[3]),
		HasCustomMoves:   flags&1 != 0,
		HasHeldItems:     flags&2 != 0,
		AIFlags:          decodeAIFlags(uint32(u32(data, 12)), env.Generation()),
		RewardMultiplier: int(data[17]),
		AreaID:           int(data[18]),
	}

	for i := 0; i < 4; i++ {
		if itemID := u16(data, 4+i*2); itemID > 0 {
			profile.BattleItems = append(profile.BattleItems, env.Item(itemID))
		}
	}

	if party, ok := env.Sibling(RoleTrainerParty, index); ok {
		slotSize := partySlotSizes[data[0]&0x03]
		if n := len(party) / slotSize; n > 0 {
			lastLevel := int(party[(n-1)*slotSize+2])
			profile.PrizeMoney = profile.RewardMultiplier * lastLevel * 4
		}
	}

	return profile, true
}

func battleFormat(b byte) string {
	if int(b) < len(battleFormats) {
		return battleFormats[b]
	}
	return "Unknown (" + strconv.Itoa(int(b)) + ")"
}
