// Package gamedef holds the static per-game profiles: hardware generation
// and the archive paths each data role lives at. Profiles are keyed by the
// 3-letter prefix of the cartridge game code, shared between the paired
// versions of each game.
package gamedef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Creative-Genius2/LinkPlay/internal/record"
)

// Profile describes one supported game: its generation and where each data
// role lives inside the filesystem image.
type Profile struct {
	Code       string
	Title      string
	Generation int

	// Paths maps each wired role to its archive path. record.RoleText
	// points at the text archive the name tables bootstrap from.
	Paths map[record.Role]string
}

// merge overlays path maps left to right, later maps win.
func merge(maps ...map[record.Role]string) map[record.Role]string {
	merged := map[record.Role]string{}
	for _, m := range maps {
		for role, path := range m {
			merged[role] = path
		}
	}
	return merged
}

var gen5B2W2 = map[record.Role]string{
	record.RoleText:           "a/0/0/2",
	record.RoleTrainerProfile: "a/0/9/1",
	record.RoleTrainerParty:   "a/0/9/2",
	record.RoleSpeciesStats:   "a/0/1/6",
	record.RoleLearnsets:      "a/0/1/8",
	record.RoleEvolutions:     "a/0/1/9",
	record.RoleMoveData:       "a/0/2/1",
	record.RoleEncounters:     "a/1/2/7",
}

// The first paired versions shifted the two trainer archives by one.
var gen5BW1 = map[record.Role]string{
	record.RoleText:           "a/0/0/2",
	record.RoleTrainerProfile: "a/0/9/2",
	record.RoleTrainerParty:   "a/0/9/3",
	record.RoleSpeciesStats:   "a/0/1/6",
	record.RoleLearnsets:      "a/0/1/8",
	record.RoleEvolutions:     "a/0/1/9",
	record.RoleMoveData:       "a/0/2/1",
	record.RoleEncounters:     "a/1/2/6",
}

var b2w2PWT = map[record.Role]string{
	record.RolePWTRental:     "a/2/5/0",
	record.RolePWTConfig:     "a/2/5/1",
	record.RolePWTRoster:     "a/2/5/2",
	record.RolePWTRentalB:    "a/2/5/3",
	record.RolePWTConfigB:    "a/2/5/4",
	record.RolePWTRosterB:    "a/2/5/5",
	record.RolePWTChampions:  "a/2/5/6",
	record.RolePWTChampionsB: "a/2/5/7",
	record.RolePWTDownload:   "a/2/5/8",
	record.RolePWTUI:         "a/2/5/9",
}

var b2w2Subway = map[record.Role]string{
	record.RoleSubwayPool:   "a/2/1/1",
	record.RoleSubwayRoster: "a/2/1/2",
}

var bw1Subway = map[record.Role]string{
	record.RoleSubwayPool:   "a/2/1/4",
	record.RoleSubwayRoster: "a/2/1/5",
}

// Generation IV before the Platinum revision, named folder tree.
var gen4Common = map[record.Role]string{
	record.RoleSpeciesStats:   "poketool/personal/personal.narc",
	record.RoleLearnsets:      "poketool/personal/wotbl.narc",
	record.RoleEvolutions:     "poketool/personal/evo.narc",
	record.RoleMoveData:       "poketool/waza/waza_tbl.narc",
	record.RoleTrainerProfile: "poketool/trainer/trdata.narc",
	record.RoleTrainerParty:   "poketool/trainer/trpoke.narc",
	record.RoleItems:          "itemtool/itemdata/item_data.narc",
	record.RoleContest:        "contest/data/contest_data.narc",
}

var gen4PlatinumOverrides = map[record.Role]string{
	record.RoleSpeciesStats: "poketool/personal/pl_personal.narc",
	record.RoleMoveData:     "poketool/waza/pl_waza_tbl.narc",
	record.RoleItems:        "itemtool/itemdata/pl_item_data.narc",
	record.RoleEncounters:   "fielddata/encountdata/pl_enc_data.narc",
	record.RoleTowerPool:    "battle/b_pl_tower/pl_btdpm.narc",
	record.RoleTowerRoster:  "battle/b_pl_tower/pl_btdtr.narc",
}

var gen4HGSS = map[record.Role]string{
	record.RoleText:           "a/0/2/7",
	record.RoleSpeciesStats:   "a/0/0/2",
	record.RoleLearnsets:      "a/0/3/3",
	record.RoleEvolutions:     "a/0/3/4",
	record.RoleMoveData:       "a/0/1/1",
	record.RoleTrainerProfile: "a/0/5/5",
	record.RoleTrainerParty:   "a/0/5/6",
	record.RoleEncounters:     "a/0/3/7",
	// The earlier pair of tower archives is carried-over leftover data,
	// these two hold the real tables.
	record.RoleTowerPool:   "a/2/0/3",
	record.RoleTowerRoster: "a/2/0/2",
	record.RolePokeathlon:  "a/1/6/9",
}

// profiles indexes the supported games by 3-letter code prefix.
var profiles = map[string]Profile{
	"IRE": {Code: "IRE", Title: "Black 2", Generation: 5,
		Paths: merge(gen5B2W2, b2w2PWT, b2w2Subway)},
	"IRD": {Code: "IRD", Title: "White 2", Generation: 5,
		Paths: merge(gen5B2W2, b2w2PWT, b2w2Subway)},
	"IRB": {Code: "IRB", Title: "Black", Generation: 5,
		Paths: merge(gen5BW1, bw1Subway)},
	"IRA": {Code: "IRA", Title: "White", Generation: 5,
		Paths: merge(gen5BW1, bw1Subway)},
	"ADA": {Code: "ADA", Title: "Diamond", Generation: 4,
		Paths: merge(gen4Common, map[record.Role]string{
			record.RoleText:        "msgdata/msg.narc",
			record.RoleEncounters:  "fielddata/encountdata/d_enc_data.narc",
			record.RoleTowerPool:   "battle/b_tower/btdpm.narc",
			record.RoleTowerRoster: "battle/b_tower/btdtr.narc",
		})},
	"APA": {Code: "APA", Title: "Pearl", Generation: 4,
		Paths: merge(gen4Common, map[record.Role]string{
			record.RoleText:        "msgdata/msg.narc",
			record.RoleEncounters:  "fielddata/encountdata/p_enc_data.narc",
			record.RoleTowerPool:   "battle/b_tower/btdpm.narc",
			record.RoleTowerRoster: "battle/b_tower/btdtr.narc",
		})},
	"CPU": {Code: "CPU", Title: "Platinum", Generation: 4,
		Paths: merge(gen4Common, gen4PlatinumOverrides, map[record.Role]string{
			record.RoleText: "msgdata/pl_msg.narc",
		})},
	"IPK": {Code: "IPK", Title: "HeartGold", Generation: 4, Paths: merge(gen4HGSS)},
	"IPG": {Code: "IPG", Title: "SoulSilver", Generation: 4, Paths: merge(gen4HGSS)},
}

// ByCode looks up the profile for a cartridge game code. Codes longer than
// three characters match on their prefix; the trailing region letter does
// not change the data layout.
func ByCode(code string) (Profile, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) > 3 {
		code = code[:3]
	}
	profile, ok := profiles[code]
	return profile, ok
}

// Codes lists the supported game code prefixes.
func Codes() []string {
	codes := make([]string, 0, len(profiles))
	for code := range profiles {
		codes = append(codes, code)
	}
	return codes
}

// Path returns the archive path wired to a role.
func (p Profile) Path(role record.Role) (string, bool) {
	path, ok := p.Paths[role]
	return path, ok
}

// Registry inverts the path map for role dispatch by archive path. The text
// archive is excluded: its contents are name tables, not records.
func (p Profile) Registry() map[string]record.Role {
	registry := make(map[string]record.Role, len(p.Paths))
	for role, path := range p.Paths {
		if role == record.RoleText {
			continue
		}
		registry[path] = role
	}
	return registry
}

// RoleFor resolves the role of an archive path, RoleNone when the path has
// no wired role.
func (p Profile) RoleFor(path string) record.Role {
	for role, rolePath := range p.Paths {
		if role != record.RoleText && rolePath == path {
			return role
		}
	}
	return record.RoleNone
}

// ParseRef splits an "<archive path>:<entry index>" reference.
func ParseRef(ref string) (string, int, error) {
	sep := strings.LastIndex(ref, ":")
	if sep < 0 {
		return "", 0, fmt.Errorf("reference %q: missing entry index", ref)
	}
	index, err := strconv.Atoi(ref[sep+1:])
	if err != nil {
		return "", 0, fmt.Errorf("reference %q: parsing entry index: %w", ref, err)
	}
	if index < 0 {
		return "", 0, fmt.Errorf("reference %q: negative entry index", ref)
	}
	path := strings.Trim(ref[:sep], "/")
	if path == "" {
		return "", 0, fmt.Errorf("reference %q: empty archive path", ref)
	}
	return path, index, nil
}
