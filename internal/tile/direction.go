package tile

// Direction is one of the four tile edges, numbered clockwise from Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections is the number of edges on a tile.
const NumDirections = 4

// Directions lists every direction in clockwise order.
// Board scans rely on this order for deterministic results.
var Directions = [NumDirections]Direction{Up, Right, Down, Left}

// Grid offsets per direction. y grows downward, so Up is y-1.
var offsets = [NumDirections][2]int{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

// Opposite returns the direction facing d across a shared edge.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Offset returns the coordinate delta of the neighbor in direction d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d]
	return o[0], o[1]
}

// Valid reports whether d is one of Up, Right, Down, Left.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
