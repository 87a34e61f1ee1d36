package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rybkr/canal/internal/board"
	"github.com/rybkr/canal/internal/tile"
)

var (
	ErrInvalidInventory = errors.New("tile counts must be non-negative")
	ErrInvalidBoard     = errors.New("board has mismatched edges")
	ErrTimeout          = errors.New("solver timeout exceeded")
	ErrBudgetExceeded   = errors.New("solver node budget exceeded")
)

// Placement is a single tile put down at a cell.
type Placement struct {
	X, Y int
	Tile tile.Tile
}

func (p Placement) String() string {
	return fmt.Sprintf("%s at (%d, %d)", p.Tile, p.X, p.Y)
}

// Result is the outcome of a completed search.
type Result struct {
	// Possible reports whether the board can be closed into a loop.
	Possible bool

	// Placements is the closing sequence when Possible, in play order.
	// It is empty when the board is already a loop.
	Placements []Placement

	// Nodes is the number of positions the search visited.
	Nodes int
}

// Apply replays the closing sequence onto b with checked placements.
func (r Result) Apply(b *board.Board) error {
	for i, p := range r.Placements {
		if err := b.Place(p.X, p.Y, p.Tile); err != nil {
			return fmt.Errorf("placement %d: %w", i+1, err)
		}
	}
	return nil
}

// Solver decides whether a board can still be closed into a loop.
type Solver struct {
	// Board is a private working copy. It is mutated while searching and
	// restored to its starting state before Solve returns.
	Board *board.Board

	inv     Inventory
	options *Options
	log     zerolog.Logger

	nodes int
	path  []Placement
	err   error
}

// New creates a solver for the given board and tile supply.
// The caller's board is cloned and never modified.
func New(b *board.Board, inv Inventory, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	s := &Solver{
		Board:   b.Clone(),
		inv:     inv,
		options: options,
		log:     zerolog.Nop(),
	}
	if options.Logger != nil {
		s.log = *options.Logger
	}
	return s
}

// IsPossible reports whether some sequence of legal placements, drawing at
// most straights straight tiles and curves curve tiles, leaves b with no
// open ends. Negative counts are treated as zero. b is not modified.
func IsPossible(b *board.Board, straights, curves int) bool {
	inv := Inventory{Straights: max(straights, 0), Curves: max(curves, 0)}
	res, err := New(b, inv, nil).Solve()
	return err == nil && res.Possible
}

// Solve runs the search.
// An error means no verdict was reached; it is never a substitute for
// Possible being false.
func (s *Solver) Solve() (Result, error) {
	if !s.inv.Valid() {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidInventory, s.inv)
	}
	if !s.Board.IsConsistent() {
		return Result{}, ErrInvalidBoard
	}

	ctx, cancel := s.makeContext()
	defer cancel()

	start := time.Now()
	s.nodes, s.path, s.err = 0, nil, nil
	possible := s.search(ctx)

	s.log.Debug().
		Int("tiles", s.Board.Len()).
		Stringer("inventory", s.inv).
		Bool("possible", possible).
		Int("nodes", s.nodes).
		Dur("elapsed", time.Since(start)).
		AnErr("aborted", s.err).
		Msg("search finished")

	if s.err != nil {
		return Result{Nodes: s.nodes}, s.err
	}
	res := Result{Possible: possible, Nodes: s.nodes}
	if possible {
		res.Placements = append([]Placement{}, s.path...)
	}
	return res, nil
}

// search explores placements at the first open spot, depth first.
// Every placement consumes a tile, so depth is bounded by the inventory.
func (s *Solver) search(ctx context.Context) bool {
	if s.interrupted(ctx) {
		return false
	}
	s.nodes++

	if !s.Board.HasOpenEnds() {
		return true
	}
	if s.inv.Total() == 0 {
		return false
	}

	spot, ok := s.nextSpot()
	if !ok {
		return false
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
			if s.try(ctx, spot, t) {
				return true
			}
			if s.err != nil {
				return false
			}
		}
	}
	return false
}

// nextSpot picks the cell to fill next. Every open end must be filled
// eventually, so expanding any single spot is enough; the first keeps the
// search deterministic. An empty board has no open spot, but the first tile
// may go anywhere and every loop can be translated onto Origin.
func (s *Solver) nextSpot() (board.Point, bool) {
	if s.Board.IsEmpty() {
		return board.Origin, true
	}
	spots := s.Board.OpenSpots()
	if len(spots) == 0 {
		return board.Point{}, false
	}
	return spots[0], true
}

// try places t at p, searches from there, and restores the board and
// inventory on every return path. The placement stays on the recorded
// path only when it leads to a loop.
func (s *Solver) try(ctx context.Context, p board.Point, t tile.Tile) (found bool) {
	s.Board.PlaceForce(p.X, p.Y, t)
	s.inv.add(t.Kind(), -1)
	s.path = append(s.path, Placement{X: p.X, Y: p.Y, Tile: t})

	defer func() {
		s.Board.Remove(p.X, p.Y)
		s.inv.add(t.Kind(), 1)
		if !found {
			s.path = s.path[:len(s.path)-1]
		}
	}()

	return s.search(ctx)
}

// interrupted records and reports an exhausted time or node budget.
func (s *Solver) interrupted(ctx context.Context) bool {
	if s.err != nil {
		return true
	}
	select {
	case <-ctx.Done():
		s.err = ErrTimeout
		return true
	default:
	}
	if s.options.MaxNodes > 0 && s.nodes >= s.options.MaxNodes {
		s.err = ErrBudgetExceeded
		return true
	}
	return false
}

// makeContext returns a context that expires after the configured timeout.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}
