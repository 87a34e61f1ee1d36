package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rybkr/canal/internal/tile"
)

var ErrBadNotation = errors.New("malformed board notation")

// Empty cell markers accepted by NewFromString. String always writes '.'.
const (
	emptyMark = '.'
	blankMark = ' '
)

// NewFromString creates a Board from its text notation.
//
// Each line is a row of cells, '.' or ' ' for an empty cell and a
// box-drawing glyph (│ ─ ┌ ┐ ┘ └, or | and -) for a tile. An optional first
// line "@x,y" gives the coordinate of the first character of the first row;
// otherwise it is (0, 0).
//
// Tiles are inserted without legality checks, but the finished board must
// have matching edges everywhere or ErrInconsistent is returned.
func NewFromString(s string) (*Board, error) {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	originX, originY := 0, 0
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), "@") {
		header := strings.TrimSpace(lines[0])
		if _, err := fmt.Sscanf(header, "@%d,%d", &originX, &originY); err != nil {
			return nil, fmt.Errorf("%w: header %q: %v", ErrBadNotation, header, err)
		}
		lines = lines[1:]
	}

	b := New()
	for row, line := range lines {
		y := originY + row
		for col, r := range []rune(line) {
			if r == emptyMark || r == blankMark {
				continue
			}
			x := originX + col
			t, err := tile.FromRune(r)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d, %d): %v", ErrBadNotation, x, y, err)
			}
			b.PlaceForce(x, y, t)
		}
	}

	if !b.IsConsistent() {
		return nil, ErrInconsistent
	}
	return b, nil
}

// String returns the board in the notation read by NewFromString, covering
// the current bounds. The "@x,y" header is written unless the top-left
// corner is (0, 0). An empty board is the empty string.
func (b *Board) String() string {
	if b.bounds.Empty() {
		return ""
	}

	var sb strings.Builder
	if b.bounds.MinX != 0 || b.bounds.MinY != 0 {
		fmt.Fprintf(&sb, "@%d,%d\n", b.bounds.MinX, b.bounds.MinY)
	}
	for y := b.bounds.MinY; y <= b.bounds.MaxY; y++ {
		for x := b.bounds.MinX; x <= b.bounds.MaxX; x++ {
			if t, ok := b.Get(x, y); ok {
				sb.WriteRune(t.Rune())
			} else {
				sb.WriteRune(emptyMark)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Format returns a human-readable board with row labels, a frame, and the
// empty cells that an open connection points into marked with '*'.
func (b *Board) Format() string {
	if b.bounds.Empty() {
		return "(empty board)\n"
	}

	open := make(map[Point]bool)
	for _, p := range b.OpenSpots() {
		open[p] = true
	}

	area := b.bounds.Grow(1)
	var sb strings.Builder
	line := "     +" + strings.Repeat("-", 2*area.Width()+1) + "+\n"
	fmt.Fprintf(&sb, "     x = %d..%d\n", area.MinX, area.MaxX)
	sb.WriteString(line)
	for y := area.MinY; y <= area.MaxY; y++ {
		fmt.Fprintf(&sb, "%4d | ", y)
		for x := area.MinX; x <= area.MaxX; x++ {
			switch t, ok := b.Get(x, y); {
			case ok:
				sb.WriteRune(t.Rune())
			case open[Point{x, y}]:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(line)
	return sb.String()
}
