package board

import "github.com/rybkr/canal/internal/tile"

// Rect is an inclusive rectangle of cells.
// The zero Rect is empty and contains no points.
type Rect struct {
	MinX, MaxX int
	MinY, MaxY int

	// set is false until the first point is added.
	set bool
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return !r.set
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return r.set && x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Width returns the number of columns covered.
func (r Rect) Width() int {
	if !r.set {
		return 0
	}
	return r.MaxX - r.MinX + 1
}

// Height returns the number of rows covered.
func (r Rect) Height() int {
	if !r.set {
		return 0
	}
	return r.MaxY - r.MinY + 1
}

// Grow returns the rectangle expanded by n cells on every side.
func (r Rect) Grow(n int) Rect {
	if !r.set {
		return r
	}
	return Rect{
		MinX: r.MinX - n, MaxX: r.MaxX + n,
		MinY: r.MinY - n, MaxY: r.MaxY + n,
		set: true,
	}
}

// extend returns the smallest rectangle covering r and (x, y).
func (r Rect) extend(x, y int) Rect {
	if !r.set {
		return Rect{MinX: x, MaxX: x, MinY: y, MaxY: y, set: true}
	}
	r.MinX = min(r.MinX, x)
	r.MaxX = max(r.MaxX, x)
	r.MinY = min(r.MinY, y)
	r.MaxY = max(r.MaxY, y)
	return r
}

// Origin is where the opening tile goes when a board is empty.
var Origin = Point{0, 0}

// LegalPlacements returns every cell where t could legally be placed, in
// row-major order. Only the bounds plus a one cell margin are scanned, since
// a legal cell always touches an existing tile. On an empty board the only
// candidate returned is Origin.
func (b *Board) LegalPlacements(t tile.Tile) []Point {
	if len(b.cells) == 0 {
		return []Point{Origin}
	}

	var points []Point
	area := b.bounds.Grow(1)
	for y := area.MinY; y <= area.MaxY; y++ {
		for x := area.MinX; x <= area.MaxX; x++ {
			if b.IsValidPlacement(x, y, t) {
				points = append(points, Point{x, y})
			}
		}
	}
	return points
}
