package tile

import "fmt"

// Box-drawing glyphs indexed by connection mask.
var glyphs = map[uint8]rune{
	bit(Up) | bit(Down):    '│',
	bit(Right) | bit(Left): '─',
	bit(Right) | bit(Down): '┌',
	bit(Down) | bit(Left):  '┐',
	bit(Up) | bit(Left):    '┘',
	bit(Up) | bit(Right):   '└',
}

// Alternative ASCII spellings accepted by FromRune.
var asciiGlyphs = map[rune]Tile{
	'|': {kind: Straight, rotation: 0},
	'-': {kind: Straight, rotation: 1},
}

// Rune returns the box-drawing glyph for the tile's current connections.
func (t Tile) Rune() rune {
	if r, ok := glyphs[t.Mask()]; ok {
		return r
	}
	return '?'
}

// FromRune returns the tile drawn by r. Straights come back at rotation 0
// or 1, curves at the single rotation matching the glyph.
func FromRune(r rune) (Tile, error) {
	if t, ok := asciiGlyphs[r]; ok {
		return t, nil
	}
	for _, k := range Kinds {
		for _, rot := range k.Rotations() {
			t := NewRotated(k, rot)
			if t.Rune() == r {
				return t, nil
			}
		}
	}
	return Tile{}, fmt.Errorf("%w: glyph %q", ErrUnknownKind, r)
}
