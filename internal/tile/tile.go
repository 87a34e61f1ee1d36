package tile

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown tile kind")

// Kind is the shape of a canal tile.
type Kind int

const (
	Straight Kind = iota
	Curve
)

// Kinds lists every tile kind in the order the solver tries them.
var Kinds = [...]Kind{Straight, Curve}

// Rotations returns the rotations that produce distinct connection sets.
// A straight looks the same after a half turn, so only 0 and 1 are distinct.
func (k Kind) Rotations() []int {
	if k == Straight {
		return []int{0, 1}
	}
	return []int{0, 1, 2, 3}
}

func (k Kind) String() string {
	switch k {
	case Straight:
		return "straight"
	case Curve:
		return "curve"
	default:
		return "unknown"
	}
}

// ParseKind converts a name such as "straight", "s", "curve" or "c" into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight", "s":
		return Straight, nil
	case "curve", "c":
		return Curve, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Tile is a rotatable canal segment.
// Tiles are plain values: copying a Tile copies its rotation, and two tiles
// with the same kind and rotation are equal under ==.
type Tile struct {
	kind     Kind
	rotation int
}

// New returns a tile of the given kind at rotation 0.
func New(kind Kind) Tile {
	return Tile{kind: kind}
}

// NewRotated returns a tile of the given kind at rotation r mod 4.
func NewRotated(kind Kind, r int) Tile {
	t := Tile{kind: kind}
	t.SetRotation(r)
	return t
}

// Kind returns the tile's shape.
func (t Tile) Kind() Kind {
	return t.kind
}

// Rotation returns the number of clockwise quarter turns, always in 0..3.
func (t Tile) Rotation() int {
	return t.rotation
}

// Rotate turns the tile a quarter turn clockwise.
func (t *Tile) Rotate() {
	t.rotation = (t.rotation + 1) % NumDirections
}

// SetRotation sets the rotation to r mod 4. Negative values wrap, so -1 is 3.
func (t *Tile) SetRotation(r int) {
	t.rotation = ((r % NumDirections) + NumDirections) % NumDirections
}

// Mask returns the connection set as a bitset, bit d set when the tile
// connects towards direction d.
func (t Tile) Mask() uint8 {
	switch t.kind {
	case Straight:
		if t.rotation%2 == 0 {
			return bit(Up) | bit(Down)
		}
		return bit(Right) | bit(Left)
	case Curve:
		// Rotation 0 joins Right and Down; each quarter turn shifts both.
		r := Direction(t.rotation)
		return bit((Right+r)%NumDirections) | bit((Down+r)%NumDirections)
	default:
		return 0
	}
}

// Connects reports whether the tile has a connection on edge d.
func (t Tile) Connects(d Direction) bool {
	return t.Mask()&bit(d) != 0
}

// Connections returns the directions the tile connects to, in clockwise
// order starting from Up.
func (t Tile) Connections() []Direction {
	mask := t.Mask()
	conns := make([]Direction, 0, 2)
	for _, d := range Directions {
		if mask&bit(d) != 0 {
			conns = append(conns, d)
		}
	}
	return conns
}

func (t Tile) String() string {
	return fmt.Sprintf("%s/%d", t.kind, t.rotation)
}

func bit(d Direction) uint8 {
	return 1 << uint(d)
}
