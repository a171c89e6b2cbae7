package physics

// Direction is a bitmask of the four cardinal contact directions. It is
// used both as a collision permission mask (which sides an object may be
// struck from) and as the per-tick touching record.
type Direction uint8

const (
	None  Direction = 0
	Left  Direction = 1 << 0
	Right Direction = 1 << 1
	Up    Direction = 1 << 2
	Down  Direction = 1 << 3

	Wall    = Left | Right
	Ceiling = Up
	Floor   = Down
	Any     = Left | Right | Up | Down
)

// Has reports whether every bit of dir is set.
func (d Direction) Has(dir Direction) bool { return d&dir == dir }
