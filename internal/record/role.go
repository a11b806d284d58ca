// Package record decodes the per-role binary data formats of the supported
// games into structured, named records. Every decoder is a pure function of
// its input bytes plus the resolved name tables.
package record

// Role is the semantic category of a data block, independent of its
// container path. It selects the decoder for the block.
type Role uint8

// Roles wired into the game profiles.
const (
	RoleNone Role = iota
	RoleText
	RoleTrainerParty   // party slots of one trainer
	RoleTrainerProfile // trainer class, AI, items, format
	RoleSpeciesStats   // per-species base data
	RoleLearnsets
	RoleEvolutions
	RoleMoveData
	RoleEncounters
	RoleItems
	RoleContest
	RolePokeathlon
	RoleTowerPool
	RoleTowerRoster
	RoleSubwayPool
	RoleSubwayRoster
	RolePWTRental
	RolePWTRentalB
	RolePWTChampions
	RolePWTChampionsB
	RolePWTRoster
	RolePWTRosterB
	RolePWTConfig
	RolePWTConfigB
	RolePWTDownload
	RolePWTUI
)

var roleNames = map[Role]string{
	RoleNone:           "none",
	RoleText:           "text",
	RoleTrainerParty:   "trainer_party",
	RoleTrainerProfile: "trainer_profile",
	RoleSpeciesStats:   "species_stats",
	RoleLearnsets:      "learnsets",
	RoleEvolutions:     "evolutions",
	RoleMoveData:       "move_data",
	RoleEncounters:     "encounters",
	RoleItems:          "items",
	RoleContest:        "contest",
	RolePokeathlon:     "pokeathlon_performance",
	RoleTowerPool:      "battle_tower_pokemon",
	RoleTowerRoster:    "battle_tower_trainers",
	RoleSubwayPool:     "subway_pokemon",
	RoleSubwayRoster:   "subway_trainers",
	RolePWTRental:      "pwt_rental",
	RolePWTRentalB:     "pwt_rental_b",
	RolePWTChampions:   "pwt_champions",
	RolePWTChampionsB:  "pwt_champions_b",
	RolePWTRoster:      "pwt_rosters",
	RolePWTRosterB:     "pwt_rosters_b",
	RolePWTConfig:      "pwt_trainers",
	RolePWTConfigB:     "pwt_trainers_b",
	RolePWTDownload:    "pwt_download",
	RolePWTUI:          "pwt_ui",
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Env supplies everything a decoder needs beyond its raw bytes: the loaded
// game's generation, the resolved name tables and access to paired records.
type Env interface {
	Names

	// Generation returns the hardware generation, 4 or 5.
	Generation() int

	// Sibling returns the raw bytes of another role's record at the given
	// index, for the cross-record dependencies (party template from the
	// paired profile, prize money from the paired party, ability names
	// from species stats).
	Sibling(role Role, index int) ([]byte, bool)
}

// Names resolves numeric ids to display names. Implementations substitute a
// deterministic placeholder embedding the raw id when a table is missing or
// the id is out of range, they never fail. TrainerName and Location may
// return the empty string instead, those fields are optional in the
// records.
type Names interface {
	Species(id int) string
	Move(id int) string
	Item(id int) string
	Ability(id int) string
	Nature(id int) string
	TypeName(id int) string
	TrainerClass(id int) string
	TrainerName(index int) string
	Location(index int) string
}
