package board

import (
	"cmp"
	"slices"

	"github.com/rybkr/canal/internal/tile"
)

// Point is a cell coordinate. The grid is unbounded in every direction and
// y grows downward.
type Point struct {
	X, Y int
}

// Step returns the neighboring point in direction d.
func (p Point) Step(d tile.Direction) Point {
	dx, dy := d.Offset()
	return Point{p.X + dx, p.Y + dy}
}

// Cell is an occupied coordinate together with its tile.
type Cell struct {
	Point
	Tile tile.Tile
}

// Board is a sparse canal board.
type Board struct {
	// cells only holds occupied coordinates; an absent key is an empty cell.
	cells map[Point]tile.Tile

	// bounds is a high-water mark over every tile ever placed. Remove never
	// shrinks it, so it may overstate the occupied extent after backtracking.
	bounds Rect
}

// New creates an empty Board.
func New() *Board {
	return &Board{
		cells: make(map[Point]tile.Tile),
	}
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := &Board{
		cells:  make(map[Point]tile.Tile, len(b.cells)),
		bounds: b.bounds,
	}
	for p, t := range b.cells {
		clone.cells[p] = t
	}
	return clone
}

// Get returns the tile at (x, y) and whether the cell is occupied.
func (b *Board) Get(x, y int) (tile.Tile, bool) {
	t, ok := b.cells[Point{x, y}]
	return t, ok
}

// Occupied reports whether a tile sits at (x, y).
func (b *Board) Occupied(x, y int) bool {
	_, ok := b.cells[Point{x, y}]
	return ok
}

// Place inserts a tile after checking that the placement is legal.
// The board is left untouched when an error is returned.
func (b *Board) Place(x, y int, t tile.Tile) error {
	if err := b.checkPlacement(x, y, t); err != nil {
		return placementError(err, x, y, t)
	}
	b.PlaceForce(x, y, t)
	return nil
}

// PlaceForce inserts a tile without validation checks and extends the bounds.
// An existing tile at (x, y) is overwritten.
// Use only when the placement is known to be legal.
func (b *Board) PlaceForce(x, y int, t tile.Tile) {
	b.cells[Point{x, y}] = t
	b.bounds = b.bounds.extend(x, y)
}

// Remove deletes the tile at (x, y), if any. Bounds are not recomputed.
func (b *Board) Remove(x, y int) {
	delete(b.cells, Point{x, y})
}

// Neighbors returns the tiles orthogonally adjacent to (x, y) in
// Up, Right, Down, Left order, skipping empty cells.
func (b *Board) Neighbors(x, y int) []tile.Tile {
	neighbors := make([]tile.Tile, 0, tile.NumDirections)
	p := Point{x, y}
	for _, d := range tile.Directions {
		if n, ok := b.cells[p.Step(d)]; ok {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Len returns the number of occupied cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// IsEmpty reports whether no tile is on the board.
func (b *Board) IsEmpty() bool {
	return len(b.cells) == 0
}

// Bounds returns the high-water bounding rectangle of every placed tile.
// The rectangle is empty until the first placement.
func (b *Board) Bounds() Rect {
	return b.bounds
}

// Cells returns every occupied cell in row-major order (y, then x).
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, len(b.cells))
	for p, t := range b.cells {
		cells = append(cells, Cell{Point: p, Tile: t})
	}
	slices.SortFunc(cells, func(a, c Cell) int {
		return comparePoints(a.Point, c.Point)
	})
	return cells
}

// Equal reports whether two boards hold the same tiles at the same cells.
// Bounds are not compared.
func (b *Board) Equal(other *Board) bool {
	if len(b.cells) != len(other.cells) {
		return false
	}
	for p, t := range b.cells {
		if o, ok := other.cells[p]; !ok || o != t {
			return false
		}
	}
	return true
}

func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
