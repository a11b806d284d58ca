package record

import "fmt"

// The two generations order the move category enum differently. This is
// genuine game data, the tables must never be unified.
var (
	moveCategoriesGenIV = [3]string{"Physical", "Special", "Status"}
	moveCategoriesGenV  = [3]string{"Status", "Physical", "Special"}
)

// Minimum wire sizes of the two move record layouts.
const (
	moveDataMinLenGenIV = 12
	moveDataMinLenGenV  = 36
)

// DecodeMoveData decodes one move's battle data. The two generations use
// incompatible fixed layouts; the newer one adds priority, a packed
// multi-hit nibble pair and an effect chance.
func DecodeMoveData(data []byte, index int, env Env) (MoveData, bool) {
	if allZero(data) {
		return MoveData{}, false
	}

	move := MoveData{
		Move:   env.Move(index),
		MoveID: index,
	}

	switch {
	case env.Generation() <= 4 && len(data) >= moveDataMinLenGenIV:
		// effect(u16), category, power, type, accuracy, pp.
		move.Category = moveCategory(moveCategoriesGenIV, data[2])
		move.Power = int(data[3])
		move.Type = env.TypeName(int(data[4]))
		move.Accuracy = int(data[5])
		move.PP = int(data[6])

	case len(data) >= moveDataMinLenGenV:
		// type, pad, category, power, accuracy, pp, priority(i8),
		// multi-hit nibbles, then effect chance at 10.
		move.Type = env.TypeName(int(data[0]))
		move.Category = moveCategory(moveCategoriesGenV, data[2])
		move.Power = int(data[3])
		move.Accuracy = int(data[4])
		move.PP = int(data[5])
		move.Priority = int(int8(data[6]))
		if multiHit := data[7]; multiHit > 0 {
			lo, hi := multiHit&0xF, multiHit>>4
			if lo == hi {
				move.Hits = fmt.Sprintf("%d", lo)
			} else {
				move.Hits = fmt.Sprintf("%d-%d", lo, hi)
			}
		}
		move.EffectChance = int(data[10])

	default:
		return MoveData{}, false
	}

	return move, true
}

func moveCategory(table [3]string, b byte) string {
	if int(b) < len(table) {
		return table[b]
	}
	return placeholder("cat", int(b))
}
