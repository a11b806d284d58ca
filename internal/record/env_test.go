package record

import "strconv"

// testEnv is a fake decoder environment with a handful of known names and
// optional sibling records.
type testEnv struct {
	gen      int
	siblings map[Role]map[int][]byte
}

func newTestEnv(gen int) *testEnv {
	return &testEnv{gen: gen, siblings: map[Role]map[int][]byte{}}
}

func (e *testEnv) addSibling(role Role, index int, data []byte) {
	if e.siblings[role] == nil {
		e.siblings[role] = map[int][]byte{}
	}
	e.siblings[role][index] = data
}

func (e *testEnv) Generation() int { return e.gen }

func (e *testEnv) Sibling(role Role, index int) ([]byte, bool) {
	data, ok := e.siblings[role][index]
	return data, ok
}

var testSpecies = map[int]string{
	1: "Bulbasaur", 2: "Ivysaur", 4: "Charmander", 25: "Pikachu", 26: "Raichu",
}

var testMoves = map[int]string{
	1: "Pound", 5: "Mega Punch", 33: "Tackle", 45: "Growl", 85: "Thunderbolt",
}

var testItems = map[int]string{1: "Master Ball", 17: "Potion", 155: "Oran Berry"}

var testAbilities = map[int]string{9: "Static", 31: "Lightning Rod", 65: "Overgrow"}

var testNatures = map[int]string{0: "Hardy", 3: "Adamant"}

var testTypes = map[int]string{0: "Normal", 4: "Ground", 10: "Fire", 12: "Grass", 13: "Electric"}

var testClasses = map[int]string{1: "Youngster", 5: "Ace Trainer"}

func lookup(table map[int]string, kind string, id int) string {
	if name, ok := table[id]; ok {
		return name
	}
	if kind == "" {
		return "#" + strconv.Itoa(id)
	}
	return kind + "#" + strconv.Itoa(id)
}

func (e *testEnv) Species(id int) string      { return lookup(testSpecies, "", id) }
func (e *testEnv) Move(id int) string         { return lookup(testMoves, "move", id) }
func (e *testEnv) Item(id int) string         { return lookup(testItems, "item", id) }
func (e *testEnv) Ability(id int) string      { return lookup(testAbilities, "ability", id) }
func (e *testEnv) Nature(id int) string       { return lookup(testNatures, "nature", id) }
func (e *testEnv) TypeName(id int) string     { return lookup(testTypes, "type", id) }
func (e *testEnv) TrainerClass(id int) string { return lookup(testClasses, "class", id) }

func (e *testEnv) TrainerName(index int) string { return "Trainer " + strconv.Itoa(index) }
func (e *testEnv) Location(index int) string    { return "Route " + strconv.Itoa(index) }
