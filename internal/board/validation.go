package board

import (
	"errors"
	"fmt"

	"github.com/rybkr/canal/internal/tile"
)

var (
	ErrOccupied     = errors.New("cell is already occupied")
	ErrNotAdjacent  = errors.New("tile must touch an existing tile")
	ErrEdgeMismatch = errors.New("tile edge does not match its neighbor")
	ErrInconsistent = errors.New("board has mismatched edges")
)

// IsValidPlacement reports whether t may be placed at (x, y).
// The cell must be empty, must touch an existing tile unless the board is
// empty, and every shared edge must be connected on both sides or on neither.
func (b *Board) IsValidPlacement(x, y int, t tile.Tile) bool {
	return b.checkPlacement(x, y, t) == nil
}

// checkPlacement returns the unwrapped sentinel error for the first rule
// broken by placing t at (x, y), or nil.
func (b *Board) checkPlacement(x, y int, t tile.Tile) error {
	p := Point{x, y}
	if _, ok := b.cells[p]; ok {
		return ErrOccupied
	}

	neighbors := 0
	for _, d := range tile.Directions {
		n, ok := b.cells[p.Step(d)]
		if !ok {
			continue
		}
		neighbors++
		if t.Connects(d) != n.Connects(d.Opposite()) {
			return ErrEdgeMismatch
		}
	}

	// The first tile of the game may go anywhere.
	if neighbors == 0 && len(b.cells) > 0 {
		return ErrNotAdjacent
	}
	return nil
}

// HasOpenEnds reports whether any connection points at an empty cell.
// An empty board counts as open since it is not a loop yet.
func (b *Board) HasOpenEnds() bool {
	if len(b.cells) == 0 {
		return true
	}
	for p, t := range b.cells {
		for _, d := range t.Connections() {
			if _, ok := b.cells[p.Step(d)]; !ok {
				return true
			}
		}
	}
	return false
}

// OpenSpots returns the empty cells that some tile connects into.
// Tiles are visited in row-major order and their connections clockwise from
// Up, so the result order is deterministic. Each spot appears once.
func (b *Board) OpenSpots() []Point {
	var spots []Point
	seen := make(map[Point]struct{})
	for _, c := range b.Cells() {
		for _, d := range c.Tile.Connections() {
			n := c.Point.Step(d)
			if _, ok := b.cells[n]; ok {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			spots = append(spots, n)
		}
	}
	return spots
}

// IsConsistent reports whether every shared edge on the board is connected
// on both sides or on neither. Boards built only through legal placements
// are always consistent.
func (b *Board) IsConsistent() bool {
	for p, t := range b.cells {
		for _, d := range tile.Directions {
			n, ok := b.cells[p.Step(d)]
			if ok && t.Connects(d) != n.Connects(d.Opposite()) {
				return false
			}
		}
	}
	return true
}

// placementError wraps a placement sentinel with the offending move.
func placementError(err error, x, y int, t tile.Tile) error {
	return fmt.Errorf("%w: %s at (%d, %d)", err, t, x, y)
}
