package solver

import (
	"context"

	"github.com/rybkr/canal/internal/board"
	"github.com/rybkr/canal/internal/tile"
)

// Difficulty returns a measure of how hard a position is to decide: the
// number of positions an exhaustive search visits, with no early exit once a
// loop is found. Budget errors from options are returned unchanged.
func Difficulty(b *board.Board, inv Inventory, options *Options) (int, error) {
	if !inv.Valid() {
		return 0, ErrInvalidInventory
	}
	s := New(b, inv, options)

	ctx, cancel := s.makeContext()
	defer cancel()

	s.traceDifficulty(ctx)
	return s.nodes, s.err
}

// traceDifficulty walks the full search tree, counting every node.
func (s *Solver) traceDifficulty(ctx context.Context) {
	if s.interrupted(ctx) {
		return
	}
	s.nodes++

	if !s.Board.HasOpenEnds() || s.inv.Total() == 0 {
		return
	}
	spot, ok := s.nextSpot()
	if !ok {
		return
	}

	for _, k := range tile.Kinds {
		if s.inv.Count(k) == 0 {
			continue
		}
		for _, r := range k.Rotations() {
			t := tile.NewRotated(k, r)
			if !s.Board.IsValidPlacement(spot.X, spot.Y, t) {
				continue
			}
			s.Board.PlaceForce(spot.X, spot.Y, t)
			s.inv.add(k, -1)
			s.traceDifficulty(ctx)
			s.inv.add(k, 1)
			s.Board.Remove(spot.X, spot.Y)
		}
	}
}
