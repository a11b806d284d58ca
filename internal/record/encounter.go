package record

import "fmt"

// Wire sizes of the three encounter layouts.
const (
	seasonLen       = 232 // seasonal layout, 1-4 seasons concatenated
	encounterLenDPP = 424
	encounterLenHG  = 196
)

var seasonNames = [4]string{"Spring", "Summer", "Fall", "Winter"}

// DecodeEncounters decodes a location's wild encounter block, routing to
// the layout selected by generation and data length.
func DecodeEncounters(data []byte, index int, env Env) (EncounterTable, bool) {
	var table EncounterTable
	var ok bool

	switch {
	case env.Generation() >= 5:
		table, ok = decodeEncountersSeasonal(data, env)
	case len(data) == encounterLenHG:
		table, ok = decodeEncountersHG(data, env)
	case len(data) == encounterLenDPP:
		table, ok = decodeEncountersDPP(data, env)
	}
	if !ok {
		return EncounterTable{}, false
	}

	table.Location = env.Location(index)
	return table, true
}

// levelRange renders a min/max level pair, collapsing equal bounds.
func levelRange(minLevel, maxLevel byte) string {
	if minLevel == maxLevel {
		return fmt.Sprintf("%d", minLevel)
	}
	return fmt.Sprintf("%d-%d", minLevel, maxLevel)
}

// seasonalGroups describes the seven fixed sub-tables of one season block:
// rate byte index, slot table offset and slot count.
var seasonalGroups = []struct {
	name   string
	rate   int
	offset int
	count  int
}{
	{"grass", 0, 8, 12},
	{"double_grass", 1, 56, 12},
	{"special_grass", 2, 104, 12},
	{"surf", 3, 152, 5},
	{"special_surf", 4, 172, 5},
	{"fishing", 5, 192, 5},
	{"special_fishing", 6, 212, 5},
}

// decodeEncountersSeasonal decodes the 232-byte-per-season layout. The
// species word packs a form id in its high bits.
func decodeEncountersSeasonal(data []byte, env Env) (EncounterTable, bool) {
	if len(data) < seasonLen {
		return EncounterTable{}, false
	}

	numSeasons := len(data) / seasonLen
	var table EncounterTable

	for s := 0; s < numSeasons; s++ {
		block := data[s*seasonLen : (s+1)*seasonLen]

		season := EncounterSeason{Rates: map[string]int{}}
		if numSeasons > 1 && s < len(seasonNames) {
			season.Season = seasonNames[s]
		}

		for _, group := range seasonalGroups {
			rate := int(block[group.rate])
			if rate == 0 {
				continue
			}
			season.Rates[group.name] = rate

			var slots []EncounterSlot
			for i := 0; i < group.count; i++ {
				pos := group.offset + i*4
				if pos+4 > len(block) {
					break
				}
				raw := u16(block, pos)
				speciesID := raw & 0x7FF
				if speciesID == 0 {
					continue
				}
				name := env.Species(speciesID)
				if form := raw >> 11; form > 0 {
					name += fmt.Sprintf(" (form %d)", form)
				}
				slots = append(slots, EncounterSlot{
					Species: name,
					Level:   levelRange(block[pos+2], block[pos+3]),
				})
			}
			if slots != nil {
				if season.Groups == nil {
					season.Groups = map[string][]EncounterSlot{}
				}
				season.Groups[group.name] = slots
			}
		}

		table.Seasons = append(table.Seasons, season)
	}

	return table, len(table.Seasons) > 0
}

// decodeEncountersDPP decodes the 424-byte layout: a 12-slot grass table
// with 32-bit fields, four small replacement-species lists and five
// rate-gated 5-slot water tables.
func decodeEncountersDPP(data []byte, env Env) (EncounterTable, bool) {
	var table EncounterTable
	populated := false

	if rate := u32(data, 0); rate > 0 {
		for i := 0; i < 12; i++ {
			pos := 4 + i*8
			level := u32(data, pos)
			speciesID := u32(data, pos+4)
			if speciesID == 0 {
				continue
			}
			table.Grass = append(table.Grass, EncounterSlot{
				Species: env.Species(speciesID),
				Level:   fmt.Sprintf("%d", level),
			})
		}
		if table.Grass != nil {
			table.GrassRate = rate
			populated = true
		}
	}

	readReplacements := func(offset, count int) []string {
		var species []string
		for i := 0; i < count; i++ {
			if id := u32(data, offset+i*4); id > 0 {
				species = append(species, env.Species(id))
			}
		}
		return species
	}
	table.Swarm = readReplacements(100, 2)
	table.Day = readReplacements(108, 2)
	table.Night = readReplacements(116, 2)
	table.Radar = readReplacements(124, 4)
	if table.Swarm != nil || table.Day != nil || table.Night != nil || table.Radar != nil {
		populated = true
	}

	// Five water sections: u32 rate, then 5 slots of
	// (max u8, min u8, pad u16, species u16, pad u16).
	waterNames := []string{"surf", "surf_special", "old_rod", "good_rod", "super_rod"}
	offset := 204
	for _, name := range waterNames {
		rate := u32(data, offset)
		offset += 4
		if rate > 0 {
			var slots []EncounterSlot
			for i := 0; i < 5; i++ {
				pos := offset + i*8
				speciesID := u16(data, pos+4)
				if speciesID == 0 {
					continue
				}
				slots = append(slots, EncounterSlot{
					Species: env.Species(speciesID),
					Level:   levelRange(data[pos+1], data[pos]),
				})
			}
			if slots != nil {
				if table.Water == nil {
					table.Water = map[string][]EncounterSlot{}
				}
				table.Water[name] = slots
				populated = true
			}
		}
		offset += 40
	}

	return table, populated
}

// decodeEncountersHG decodes the 196-byte layout: a 12-level array shared
// by three time-of-day species tables, a 4-entry cross-region sound list
// and five rate-gated water tables with inline level bytes.
func decodeEncountersHG(data []byte, env Env) (EncounterTable, bool) {
	var table EncounterTable
	populated := false

	if grassRate := int(data[0]); grassRate > 0 {
		levels := data[8:20]
		for t, name := range []string{"morning", "day", "night"} {
			base := 20 + t*24
			var slots []EncounterSlot
			for i := 0; i < 12; i++ {
				speciesID := u16(data, base+i*2)
				if speciesID == 0 {
					continue
				}
				slots = append(slots, EncounterSlot{
					Species: env.Species(speciesID),
					Level:   fmt.Sprintf("%d", levels[i]),
				})
			}
			if slots != nil {
				if table.GrassByTime == nil {
					table.GrassByTime = map[string][]EncounterSlot{}
				}
				table.GrassByTime[name] = slots
			}
		}
		if table.GrassByTime != nil {
			table.GrassRate = grassRate
			populated = true
		}
	}

	var sound []string
	for i := 0; i < 4; i++ {
		if id := u16(data, 92+i*2); id > 0 {
			sound = append(sound, env.Species(id))
		}
	}
	if sound != nil {
		table.Sound = &SoundEncounters{Hoenn: firstN(sound, 2), Sinnoh: rest(sound, 2)}
		populated = true
	}

	// Water tables: rate bytes 1-5, slots of (min u8, max u8, species u16).
	waterGroups := []struct {
		name   string
		rate   int
		offset int
		count  int
	}{
		{"surf", 1, 100, 5},
		{"rock_smash", 2, 120, 2},
		{"old_rod", 3, 128, 5},
		{"good_rod", 4, 148, 5},
		{"super_rod", 5, 168, 5},
	}
	for _, group := range waterGroups {
		if data[group.rate] == 0 {
			continue
		}
		var slots []EncounterSlot
		for i := 0; i < group.count; i++ {
			pos := group.offset + i*4
			speciesID := u16(data, pos+2)
			if speciesID == 0 {
				continue
			}
			slots = append(slots, EncounterSlot{
				Species: env.Species(speciesID),
				Level:   levelRange(data[pos], data[pos+1]),
			})
		}
		if slots != nil {
			if table.Water == nil {
				table.Water = map[string][]EncounterSlot{}
			}
			table.Water[group.name] = slots
			populated = true
		}
	}

	return table, populated
}

func firstN(s []string, n int) []string {
	if len(s) < n {
		n = len(s)
	}
	return s[:n]
}

func rest(s []string, n int) []string {
	if len(s) <= n {
		return nil
	}
	return s[n:]
}
