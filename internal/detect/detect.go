// Package detect identifies the semantic role of decoded string tables by
// content fingerprinting. The table archives carry no labels, so the species,
// move, item and other name tables are found by looking for known entries.
package detect

import (
	"sort"
	"strings"
)

// Alias names a semantically identified string table.
type Alias string

// Aliases assigned by detection.
const (
	Species             Alias = "species"
	Moves               Alias = "moves"
	Items               Alias = "items"
	Abilities           Alias = "abilities"
	Natures             Alias = "natures"
	TypeNames           Alias = "type_names"
	TrainerClasses      Alias = "trainer_classes"
	LocationNames       Alias = "location_names"
	TrainerNames        Alias = "trainer_names"
	ItemDescriptions    Alias = "item_descriptions"
	MoveDescriptions    Alias = "move_descriptions"
	AbilityDescriptions Alias = "ability_descriptions"
)

// fingerprint is an exact rule: every listed entry must match at its index.
type fingerprint struct {
	alias   Alias
	entries []indexedEntry
}

type indexedEntry struct {
	index int
	text  string
}

// Exact fingerprints hold across all supported game variants.
var fingerprints = []fingerprint{
	{Species, []indexedEntry{{1, "Bulbasaur"}, {4, "Charmander"}}},
	{Moves, []indexedEntry{{1, "Pound"}, {5, "Mega Punch"}}},
	{Items, []indexedEntry{{1, "Master Ball"}, {17, "Potion"}}},
	{Abilities, []indexedEntry{{1, "Stench"}, {22, "Intimidate"}}},
	{Natures, []indexedEntry{{0, "Hardy"}, {1, "Lonely"}, {3, "Adamant"}}},
	{TypeNames, []indexedEntry{{0, "Normal"}, {1, "Fighting"}, {2, "Flying"}}},
}

// heuristic marker rule: all listed strings must appear somewhere in the
// file. Used for tables without stable index-based fingerprints.
var heuristics = []struct {
	alias   Alias
	markers []string
}{
	{TrainerClasses, []string{"Youngster", "Lass", "School Kid"}},
	{LocationNames, []string{"Mystery Zone"}},
}

// pairedDescriptions lists name tables whose description table usually sits
// at a neighboring archive index.
var pairedDescriptions = []struct {
	names        Alias
	descriptions Alias
}{
	{Items, ItemDescriptions},
	{Moves, MoveDescriptions},
	{Abilities, AbilityDescriptions},
}

// Result maps each identified alias to its raw archive file index.
type Result map[Alias]int

// Index returns the archive index bound to an alias.
func (r Result) Index(alias Alias) (int, bool) {
	idx, ok := r[alias]
	return idx, ok
}

// bound reports whether an archive index is already assigned to any alias.
func (r Result) bound(index int) bool {
	for _, idx := range r {
		if idx == index {
			return true
		}
	}
	return false
}

// Tables runs the four detection passes over all decoded tables, keyed by
// raw archive index. Passes never re-assign an alias once bound, and each
// pass scans indices in ascending order, so the result is deterministic.
func Tables(tables map[int][]string) Result {
	found := Result{}
	indices := make([]int, 0, len(tables))
	for idx := range tables {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	// Pass 1: exact fingerprints.
	for _, idx := range indices {
		entries := tables[idx]
		if len(entries) < 2 {
			continue
		}
		for _, fp := range fingerprints {
			if _, ok := found[fp.alias]; ok {
				continue
			}
			if matchesExact(entries, fp.entries) {
				found[fp.alias] = idx
			}
		}
	}

	// Pass 2: heuristic markers.
	for _, idx := range indices {
		set := upperSet(tables[idx])
		for _, h := range heuristics {
			if _, ok := found[h.alias]; ok {
				continue
			}
			if containsAll(set, h.markers) {
				found[h.alias] = idx
			}
		}
	}

	// Pass 3: trainer display names sit near the trainer class table.
	if tcIdx, ok := found[TrainerClasses]; ok {
		if _, ok := found[TrainerNames]; !ok {
			for _, offset := range []int{-1, -2, 1, 2} {
				candidate := tcIdx + offset
				entries, ok := tables[candidate]
				if !ok || len(entries) <= 100 || found.bound(candidate) {
					continue
				}
				found[TrainerNames] = candidate
				break
			}
		}
	}

	// Pass 4: description tables neighbor their name tables and read
	// noticeably longer.
	for _, pair := range pairedDescriptions {
		nameIdx, ok := found[pair.names]
		if !ok {
			continue
		}
		if _, ok := found[pair.descriptions]; ok {
			continue
		}
		nameCount := len(tables[nameIdx])
		for _, offset := range []int{-1, 1} {
			candidate := nameIdx + offset
			entries, ok := tables[candidate]
			if !ok || found.bound(candidate) {
				continue
			}
			if delta := len(entries) - nameCount; delta < -9 || delta > 9 {
				continue
			}
			if averageLength(entries, 20) > 20 {
				found[pair.descriptions] = candidate
				break
			}
		}
	}

	return found
}

func matchesExact(entries []string, rules []indexedEntry) bool {
	for _, rule := range rules {
		if rule.index >= len(entries) {
			return false
		}
		if !strings.EqualFold(strings.TrimSpace(entries[rule.index]), rule.text) {
			return false
		}
	}
	return true
}

func upperSet(entries []string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, s := range entries {
		set[strings.ToUpper(strings.TrimSpace(s))] = struct{}{}
	}
	return set
}

func containsAll(set map[string]struct{}, markers []string) bool {
	for _, m := range markers {
		if _, ok := set[strings.ToUpper(m)]; !ok {
			return false
		}
	}
	return true
}

// averageLength averages the byte length of the first n entries.
func averageLength(entries []string, n int) float64 {
	if len(entries) < n {
		n = len(entries)
	}
	if n == 0 {
		return 0
	}
	total := 0
	for _, s := range entries[:n] {
		total += len(s)
	}
	return float64(total) / float64(n)
}
