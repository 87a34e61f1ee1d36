package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/rybkr/canal/internal/board"
	"github.com/rybkr/canal/internal/solver"
	"github.com/rybkr/canal/internal/tile"
)

const (
	DefaultDeckSize = 8 // tiles of each kind in a standard deck
	DefaultMoves    = 6
)

var (
	ErrInvalidOptions = errors.New("invalid generator options")
	ErrStuck          = errors.New("no tile in the deck can be placed")
)

// Position is a generated board with the tiles left over.
type Position struct {
	Board     *board.Board
	Remaining solver.Inventory
	Moves     []solver.Placement
}

// Generator plays random legal placements from a shuffled deck.
type Generator struct {
	options *Options
	rng     *rand.Rand
	log     zerolog.Logger
}

// New creates a position generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultMoves)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
		log:     zerolog.Nop(),
	}
	if options.Logger != nil {
		g.log = *options.Logger
	}
	return g
}

// Generate plays up to Moves placements and returns the resulting position.
// Play stops early if the board closes into a loop. A drawn tile with no
// legal placement goes back under the deck; ErrStuck is returned when no
// remaining tile fits.
func (g *Generator) Generate() (*Position, error) {
	o := g.options
	if o.Straights < 0 || o.Curves < 0 || o.Moves < 0 || o.Moves > o.Straights+o.Curves {
		return nil, fmt.Errorf("%w: %d moves from %d straights and %d curves",
			ErrInvalidOptions, o.Moves, o.Straights, o.Curves)
	}

	deck := g.shuffledDeck()
	pos := &Position{Board: board.New()}

	for len(pos.Moves) < o.Moves {
		if !pos.Board.IsEmpty() && !pos.Board.HasOpenEnds() {
			g.log.Debug().Int("moves", len(pos.Moves)).Msg("loop closed early")
			break
		}

		placed := false
		for i, n := 0, len(deck); i < n; i++ {
			kind := deck[0]
			deck = deck[1:]
			if p, ok := g.randomPlacement(pos.Board, kind); ok {
				pos.Board.PlaceForce(p.X, p.Y, p.Tile)
				pos.Moves = append(pos.Moves, p)
				placed = true
				break
			}
			deck = append(deck, kind)
		}
		if !placed {
			return nil, fmt.Errorf("%w after %d moves", ErrStuck, len(pos.Moves))
		}
	}

	for _, k := range deck {
		if k == tile.Straight {
			pos.Remaining.Straights++
		} else {
			pos.Remaining.Curves++
		}
	}

	g.log.Debug().
		Int("moves", len(pos.Moves)).
		Stringer("remaining", pos.Remaining).
		Msg("position generated")

	return pos, nil
}

// randomPlacement picks a uniformly random legal cell and rotation for a
// tile of the given kind.
func (g *Generator) randomPlacement(b *board.Board, kind tile.Kind) (solver.Placement, bool) {
	var options []solver.Placement
	for _, r := range kind.Rotations() {
		t := tile.NewRotated(kind, r)
		for _, p := range b.LegalPlacements(t) {
			options = append(options, solver.Placement{X: p.X, Y: p.Y, Tile: t})
		}
	}
	if len(options) == 0 {
		return solver.Placement{}, false
	}
	return options[g.rng.Intn(len(options))], true
}

// shuffledDeck returns the deck's tile kinds in random order.
func (g *Generator) shuffledDeck() []tile.Kind {
	deck := make([]tile.Kind, 0, g.options.Straights+g.options.Curves)
	for i := 0; i < g.options.Straights; i++ {
		deck = append(deck, tile.Straight)
	}
	for i := 0; i < g.options.Curves; i++ {
		deck = append(deck, tile.Curve)
	}
	g.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// GenerateWithMoves is a convenience function to generate a position from
// the standard deck with a specific number of moves.
func GenerateWithMoves(moves int) (*Position, error) {
	gen := New(DefaultOptions(moves))
	return gen.Generate()
}
