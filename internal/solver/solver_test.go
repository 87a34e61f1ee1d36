package solver

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/canal/internal/board"
	"github.com/rybkr/canal/internal/tile"
)

func preset(t *testing.T, name string) *board.Board {
	t.Helper()
	b, err := board.Preset(name)
	require.NoError(t, err)
	return b
}

func TestEmptyBoardAcceptsAnyFirstTile(t *testing.T) {
	b := board.New()
	for _, k := range tile.Kinds {
		for r := 0; r < 4; r++ {
			assert.True(t, b.IsValidPlacement(0, 0, tile.NewRotated(k, r)))
		}
	}
}

func TestClosesMissingCorner(t *testing.T) {
	b := board.New()
	b.PlaceForce(0, 0, tile.NewRotated(tile.Curve, 0))
	b.PlaceForce(1, 0, tile.NewRotated(tile.Curve, 1))
	b.PlaceForce(1, 1, tile.NewRotated(tile.Curve, 2))

	assert.True(t, IsPossible(b, 0, 1))

	res, err := New(b, Inventory{Curves: 1}, nil).Solve()
	require.NoError(t, err)
	require.True(t, res.Possible)
	assert.Equal(t, []Placement{{X: 0, Y: 1, Tile: tile.NewRotated(tile.Curve, 3)}}, res.Placements)
}

func TestGapNeedsStraight(t *testing.T) {
	b := preset(t, "gap")
	assert.False(t, IsPossible(b, 0, 10))
	assert.False(t, IsPossible(b, 0, 0))
}

func TestGapNeedsMatchingColumn(t *testing.T) {
	// Bridging the gap gives a three-tile column; the smallest loop through
	// it needs a parallel column of three more straights and four corners.
	b := preset(t, "gap")
	assert.False(t, IsPossible(b, 1, 0))
	assert.False(t, IsPossible(b, 3, 4))
	assert.True(t, IsPossible(b, 4, 4))
}

func TestAlreadyClosed(t *testing.T) {
	ring := preset(t, "ring")
	assert.True(t, IsPossible(ring, 0, 0))

	res, err := New(ring, Inventory{}, nil).Solve()
	require.NoError(t, err)
	assert.True(t, res.Possible)
	assert.Empty(t, res.Placements)
	assert.Equal(t, 1, res.Nodes)
}

func TestEmptyBoard(t *testing.T) {
	assert.False(t, IsPossible(board.New(), 0, 0))
	assert.False(t, IsPossible(board.New(), 0, 3))
	assert.False(t, IsPossible(board.New(), 8, 0))
	assert.True(t, IsPossible(board.New(), 0, 4))
	assert.True(t, IsPossible(board.New(), 2, 4))
}

func TestNegativeCounts(t *testing.T) {
	assert.True(t, IsPossible(preset(t, "ring"), -1, -5))
	assert.False(t, IsPossible(preset(t, "corner"), 3, -1))

	_, err := New(preset(t, "corner"), Inventory{Straights: -1}, nil).Solve()
	assert.ErrorIs(t, err, ErrInvalidInventory)
}

func TestInconsistentBoardRejected(t *testing.T) {
	b := board.New()
	b.PlaceForce(0, 0, tile.NewRotated(tile.Straight, 0))
	b.PlaceForce(1, 0, tile.NewRotated(tile.Straight, 1))

	_, err := New(b, Inventory{Curves: 4}, nil).Solve()
	assert.ErrorIs(t, err, ErrInvalidBoard)
	assert.False(t, IsPossible(b, 0, 4))
}

func TestNodeBudget(t *testing.T) {
	_, err := New(preset(t, "hook"), Inventory{Straights: 8, Curves: 8}, &Options{MaxNodes: 3}).Solve()
	assert.ErrorIs(t, err, ErrBudgetExceeded)
}

func TestNoResidue(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 40; i++ {
		b := randomBoard(rng, 1+rng.Intn(6))
		before := b.Clone()
		bounds := b.Bounds()

		IsPossible(b, rng.Intn(4), rng.Intn(4))

		assert.True(t, before.Equal(b), "board %d changed:\n%s", i, b)
		assert.Equal(t, bounds, b.Bounds())
	}
}

func TestWorkingBoardRestored(t *testing.T) {
	s := New(preset(t, "hook"), Inventory{Straights: 3, Curves: 3}, nil)
	before := s.Board.Clone()

	_, err := s.Solve()
	require.NoError(t, err)
	assert.True(t, before.Equal(s.Board))
	assert.Equal(t, Inventory{Straights: 3, Curves: 3}, s.inv)
}

func TestSolutionReplays(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	found := 0
	for i := 0; i < 150; i++ {
		b := randomBoard(rng, 1+rng.Intn(7))
		inv := Inventory{Straights: rng.Intn(5), Curves: rng.Intn(6)}

		res, err := New(b, inv, nil).Solve()
		require.NoError(t, err)
		assert.Equal(t, res.Possible, IsPossible(b, inv.Straights, inv.Curves))
		if !res.Possible {
			assert.Empty(t, res.Placements)
			continue
		}
		found++

		assert.LessOrEqual(t, len(res.Placements), inv.Total())
		used := Inventory{}
		for _, p := range res.Placements {
			used.add(p.Tile.Kind(), 1)
		}
		assert.LessOrEqual(t, used.Straights, inv.Straights)
		assert.LessOrEqual(t, used.Curves, inv.Curves)

		replay := b.Clone()
		require.NoError(t, res.Apply(replay))
		assert.False(t, replay.HasOpenEnds(), "replayed sequence leaves open ends:\n%s", replay)
		assert.True(t, replay.IsConsistent())
	}
	assert.Positive(t, found, "expected some closable boards")
}

func TestAgreesWithBruteForce(t *testing.T) {
	boards := map[string]*board.Board{
		"empty": board.New(),
	}
	for _, name := range board.PresetNames() {
		boards[name] = preset(t, name)
	}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 6; i++ {
		boards[fmt.Sprintf("random-%d", i)] = randomBoard(rng, 2+rng.Intn(3))
	}

	for name, b := range boards {
		for s := 0; s <= 4; s++ {
			for c := 0; s+c <= 4; c++ {
				inv := Inventory{Straights: s, Curves: c}
				want := bruteForce(b.Clone(), inv, map[string]bool{})
				assert.Equal(t, want, IsPossible(b, s, c), "%s with %s:\n%s", name, inv, b)
			}
		}
	}
}

func TestDifficulty(t *testing.T) {
	n, err := Difficulty(preset(t, "ring"), Inventory{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = Difficulty(preset(t, "corner"), Inventory{Straights: 2, Curves: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	easy, err := Difficulty(preset(t, "arch"), Inventory{Curves: 2}, nil)
	require.NoError(t, err)
	hard, err := Difficulty(preset(t, "arch"), Inventory{Straights: 3, Curves: 4}, nil)
	require.NoError(t, err)
	assert.Greater(t, hard, easy)

	_, err = Difficulty(preset(t, "hook"), Inventory{Straights: 8, Curves: 8}, &Options{MaxNodes: 10})
	assert.ErrorIs(t, err, ErrBudgetExceeded)

	_, err = Difficulty(preset(t, "hook"), Inventory{Curves: -1}, nil)
	assert.ErrorIs(t, err, ErrInvalidInventory)
}

// bruteForce tries every legal placement anywhere on the board, not just at
// open spots, with every rotation. Failed positions are memoized by their
// drawing and remaining inventory.
func bruteForce(b *board.Board, inv Inventory, failed map[string]bool) bool {
	if !b.HasOpenEnds() {
		return true
	}
	key := b.String() + inv.String()
	if failed[key] {
		return false
	}

	cells := []board.Point{board.Origin}
	if !b.IsEmpty() {
		cells = nil
		area := b.Bounds().Grow(1)
		for y := area.MinY; y <= area.MaxY; y++ {
			for x := area.MinX; x <= area.MaxX; x++ {
				cells = append(cells, board.Point{X: x, Y: y})
			}
		}
	}

	for _, k := range tile.Kinds {
		if inv.Count(k) == 0 {
			continue
		}
		for r := 0; r < 4; r++ {
			t := tile.NewRotated(k, r)
			for _, p := range cells {
				if !b.IsValidPlacement(p.X, p.Y, t) {
					continue
				}
				next := b.Clone()
				next.PlaceForce(p.X, p.Y, t)
				rest := inv
				rest.add(k, -1)
				if bruteForce(next, rest, failed) {
					return true
				}
			}
		}
	}
	failed[key] = true
	return false
}

// randomBoard builds a board from n random legal placements.
func randomBoard(rng *rand.Rand, n int) *board.Board {
	b := board.New()
	for i := 0; i < n; i++ {
		k := tile.Kinds[rng.Intn(len(tile.Kinds))]
		t := tile.NewRotated(k, rng.Intn(4))
		points := b.LegalPlacements(t)
		if len(points) == 0 {
			continue
		}
		p := points[rng.Intn(len(points))]
		if err := b.Place(p.X, p.Y, t); err != nil {
			panic(err)
		}
	}
	return b
}
