package record

// Record is the structured result of decoding one data block. Each variant
// owns only primitive fields and resolved name strings; no variant retains a
// reference to the string tables it was built from.
type Record interface {
	// Role returns the role the record was decoded as.
	Role() Role
}

// PartySlot is one creature slot of a trainer's party.
type PartySlot struct {
	Species   string   `json:"species"`
	SpeciesID int      `json:"species_id"`
	Level     int      `json:"level"`
	Ability   string   `json:"ability"`
	Gender    string   `json:"gender"`
	IVs       int      `json:"ivs"`
	Form      int      `json:"form"`
	HeldItem  string   `json:"held_item,omitempty"`
	Moves     []string `json:"moves,omitempty"`
}

// TrainerParty is a trainer's full party.
type TrainerParty struct {
	TrainerIndex int         `json:"trainer_index"`
	TrainerName  string      `json:"trainer_name,omitempty"`
	Template     int         `json:"template"`
	Slots        []PartySlot `json:"pokemon"`
}

// Role implements Record.
func (TrainerParty) Role() Role { return RoleTrainerParty }

// TrainerProfile is a trainer's header record.
type TrainerProfile struct {
	Index            int      `json:"index"`
	Name             string   `json:"name,omitempty"`
	Class            string   `json:"class"`
	BattleFormat     string   `json:"battle_format"`
	PartySize        int      `json:"party_size"`
	HasCustomMoves   bool     `json:"has_custom_moves"`
	HasHeldItems     bool     `json:"has_held_items"`
	BattleItems      []string `json:"battle_items,omitempty"`
	AIFlags          []string `json:"ai_flags"`
	RewardMultiplier int      `json:"reward_multiplier"`
	AreaID           int      `json:"area_id"`
	PrizeMoney       int      `json:"prize_money,omitempty"`
}

// Role implements Record.
func (TrainerProfile) Role() Role { return RoleTrainerProfile }

// BaseStats holds the six base stats in wire order.
type BaseStats struct {
	HP        int `json:"hp"`
	Attack    int `json:"atk"`
	Defense   int `json:"def"`
	Speed     int `json:"spe"`
	SpAttack  int `json:"spa"`
	SpDefense int `json:"spd"`
}

// Total sums the six base stats.
func (b BaseStats) Total() int {
	return b.HP + b.Attack + b.Defense + b.Speed + b.SpAttack + b.SpDefense
}

// SpeciesStats is one species' base data record.
type SpeciesStats struct {
	Species       string            `json:"species"`
	SpeciesID     int               `json:"species_id"`
	Stats         BaseStats         `json:"base_stats"`
	StatTotal     int               `json:"bst"`
	Types         []string          `json:"types"`
	CatchRate     int               `json:"catch_rate"`
	EVYield       map[string]int    `json:"ev_yield,omitempty"`
	HeldItems     map[string]string `json:"held_items,omitempty"`
	Abilities     []string          `json:"abilities"`
	GenderRatio   int               `json:"gender_ratio"`
	HatchCycles   int               `json:"hatch_cycles"`
	BaseHappiness int               `json:"base_happiness"`
	GrowthRate    int               `json:"exp_growth"`
	EggGroups     [2]int            `json:"egg_groups"`
}

// Role implements Record.
func (SpeciesStats) Role() Role { return RoleSpeciesStats }

// LearnedMove is one level-up move.
type LearnedMove struct {
	Move  string `json:"move"`
	Level int    `json:"level"`
}

// Learnset is a species' level-up move list.
type Learnset struct {
	Species   string        `json:"species"`
	SpeciesID int           `json:"species_id"`
	Moves     []LearnedMove `json:"moves"`
}

// Role implements Record.
func (Learnset) Role() Role { return RoleLearnsets }

// Evolution is one way a species evolves.
type Evolution struct {
	Method       string `json:"method"`
	Target       string `json:"target"`
	TargetID     int    `json:"target_id"`
	Level        int    `json:"level,omitempty"`
	Item         string `json:"item,omitempty"`
	Move         string `json:"move,omitempty"`
	TradeSpecies string `json:"trade_species,omitempty"`
	PartySpecies string `json:"party_species,omitempty"`
	Param        int    `json:"param,omitempty"`
}

// EvolutionTable is a species' full evolution record.
type EvolutionTable struct {
	Species    string      `json:"species"`
	SpeciesID  int         `json:"species_id"`
	Evolutions []Evolution `json:"evolutions"`
}

// Role implements Record.
func (EvolutionTable) Role() Role { return RoleEvolutions }

// MoveData is one move's battle data.
type MoveData struct {
	Move         string `json:"move"`
	MoveID       int    `json:"move_id"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Power        int    `json:"power"`
	Accuracy     int    `json:"accuracy"`
	PP           int    `json:"pp"`
	Priority     int    `json:"priority,omitempty"`
	Hits         string `json:"hits,omitempty"`
	EffectChance int    `json:"effect_chance,omitempty"`
}

// Role implements Record.
func (MoveData) Role() Role { return RoleMoveData }

// EncounterSlot is one wild species entry.
type EncounterSlot struct {
	Species string `json:"species"`
	Level   string `json:"level"`
}

// EncounterSeason is one season's encounter set in the seasonal layout.
type EncounterSeason struct {
	Season string                     `json:"season,omitempty"`
	Rates  map[string]int             `json:"rates"`
	Groups map[string][]EncounterSlot `json:"groups,omitempty"`
}

// SoundEncounters lists the cross-region radio species of the 196-byte
// layout.
type SoundEncounters struct {
	Hoenn  []string `json:"hoenn,omitempty"`
	Sinnoh []string `json:"sinnoh,omitempty"`
}

// EncounterTable is one location's wild encounter data. Exactly one of the
// three layout groups is populated, matching the source layout.
type EncounterTable struct {
	Location string `json:"location,omitempty"`

	// Seasonal layout.
	Seasons []EncounterSeason `json:"seasons,omitempty"`

	// 424-byte layout.
	GrassRate int             `json:"grass_rate,omitempty"`
	Grass     []EncounterSlot `json:"grass,omitempty"`
	Swarm     []string        `json:"swarm,omitempty"`
	Day       []string        `json:"day_replacements,omitempty"`
	Night     []string        `json:"night_replacements,omitempty"`
	Radar     []string        `json:"radar,omitempty"`

	// 196-byte layout.
	GrassByTime map[string][]EncounterSlot `json:"grass_by_time,omitempty"`
	Sound       *SoundEncounters           `json:"sound,omitempty"`

	// Shared by the two older layouts.
	Water map[string][]EncounterSlot `json:"water,omitempty"`
}

// Role implements Record.
func (EncounterTable) Role() Role { return RoleEncounters }

// PoolEntry is one fixed-size creature pool entry of the battle facilities.
type PoolEntry struct {
	Pool         string   `json:"pool,omitempty"`
	Index        int      `json:"pool_index"`
	Species      string   `json:"species"`
	SpeciesID    int      `json:"species_id"`
	Moves        []string `json:"moves"`
	EVs          []string `json:"evs"`
	Nature       string   `json:"nature"`
	HeldItem     string   `json:"held_item,omitempty"`
	TrainerClass string   `json:"trainer_class,omitempty"`
}

// Role implements Record.
func (PoolEntry) Role() Role { return RoleSubwayPool }

// Roster maps a facility trainer slot to creature pool indices.
type Roster struct {
	Pool        string `json:"pool,omitempty"`
	Index       int    `json:"index"`
	Format      int    `json:"format"`
	PoolCount   int    `json:"pool_count"`
	PoolIndices []int  `json:"pool_indices"`
}

// Role implements Record.
func (Roster) Role() Role { return RoleSubwayRoster }

// TrainerConfig is a compact facility trainer record.
type TrainerConfig struct {
	Pool       string `json:"pool,omitempty"`
	Index      int    `json:"index"`
	Format     int    `json:"format"`
	Count      int    `json:"count"`
	StartIndex int    `json:"start_index"`
}

// Role implements Record.
func (TrainerConfig) Role() Role { return RolePWTConfig }

// ContestEntry is one contest opponent entry.
type ContestEntry struct {
	Species   string   `json:"species"`
	SpeciesID int      `json:"species_id"`
	Moves     []string `json:"moves,omitempty"`
}

// ContestPool is the contest opponent data file.
type ContestPool struct {
	Count   int            `json:"count"`
	Entries []ContestEntry `json:"pokemon"`
}

// Role implements Record.
func (ContestPool) Role() Role { return RoleContest }

// Performance is one species' athletic performance record: five stats, each
// a min/max star range on a 1-5 display scale.
type Performance struct {
	Species   string            `json:"species"`
	SpeciesID int               `json:"species_id"`
	Stats     map[string]string `json:"stats"`
}

// Role implements Record.
func (Performance) Role() Role { return RolePokeathlon }
