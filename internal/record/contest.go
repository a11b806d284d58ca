package record

import "fmt"

// contestEntryLen is the fixed size of one contest opponent entry.
const contestEntryLen = 96

// DecodeContest decodes the contest opponent data file: 96-byte entries
// with a species id at offset 8 and up to four move ids from offset 12.
func DecodeContest(data []byte, index int, env Env) (ContestPool, bool) {
	if index != 0 || len(data) < contestEntryLen {
		return ContestPool{}, false
	}

	var pool ContestPool
	for off := 0; off+contestEntryLen <= len(data); off += contestEntryLen {
		entry := data[off : off+contestEntryLen]
		speciesID := u16(entry, 8)
		if speciesID == 0 {
			continue
		}

		contest := ContestEntry{
			Species:   env.Species(speciesID),
			SpeciesID: speciesID,
		}
		for m := 0; m < 4; m++ {
			if moveID := u16(entry, 12+m*2); moveID > 0 {
				contest.Moves = append(contest.Moves, env.Move(moveID))
			}
		}
		pool.Entries = append(pool.Entries, contest)
	}

	if pool.Entries == nil {
		return ContestPool{}, false
	}
	pool.Count = len(pool.Entries)
	return pool, true
}

// performanceLen is the fixed size of one athletic performance record.
const performanceLen = 20

// performanceStats names the five performance stats, wire order.
var performanceStats = []string{"Speed", "Power", "Skill", "Stamina", "Jump"}

// performanceMinMax holds the byte offsets of each stat's min/max pair.
var performanceMinMax = [5][2]int{{5, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}}

// DecodePerformance decodes one species' athletic performance record. The
// internal 0-4 values shift to the 1-5 display range.
func DecodePerformance(data []byte, index int, env Env) (Performance, bool) {
	if len(data) != performanceLen {
		return Performance{}, false
	}

	perf := Performance{
		Species:   env.Species(index),
		SpeciesID: index,
		Stats:     make(map[string]string, len(performanceStats)),
	}
	for i, name := range performanceStats {
		minStars := int(data[performanceMinMax[i][0]]) + 1
		maxStars := int(data[performanceMinMax[i][1]]) + 1
		if minStars == maxStars {
			perf.Stats[name] = fmt.Sprintf("%d*", minStars)
		} else {
			perf.Stats[name] = fmt.Sprintf("%d/%d*", minStars, maxStars)
		}
	}
	return perf, true
}
