package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/canal/internal/board"
	"github.com/rybkr/canal/internal/tile"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions(4)
	assert.Equal(t, DefaultDeckSize, o.Straights)
	assert.Equal(t, DefaultDeckSize, o.Curves)
	assert.Equal(t, 4, o.Moves)

	assert.Equal(t, 0, DefaultOptions(-3).Moves)
	assert.Equal(t, 2*DefaultDeckSize, DefaultOptions(100).Moves)
}

func TestGenerateIsReproducible(t *testing.T) {
	opts := DefaultOptions(8)
	opts.Seed = 99

	a, err := New(opts).Generate()
	require.NoError(t, err)
	b, err := New(opts).Generate()
	require.NoError(t, err)

	assert.Equal(t, a.Moves, b.Moves)
	assert.True(t, a.Board.Equal(b.Board))
	assert.Equal(t, a.Remaining, b.Remaining)
}

func TestGeneratedPlaysAreLegal(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		opts := DefaultOptions(int(seed % 13))
		opts.Seed = seed

		pos, err := New(opts).Generate()
		require.NoError(t, err, "seed %d", seed)

		// Replaying with checked placements keeps every edge matched.
		replay := board.New()
		for i, m := range pos.Moves {
			require.NoError(t, replay.Place(m.X, m.Y, m.Tile), "seed %d move %d", seed, i)
			require.True(t, replay.IsConsistent())
			got, ok := replay.Get(m.X, m.Y)
			require.True(t, ok)
			assert.Equal(t, m.Tile, got)
		}
		assert.True(t, replay.Equal(pos.Board))
		assert.Equal(t, len(pos.Moves), pos.Board.Len(), "no two moves share a cell")

		if len(pos.Moves) < opts.Moves {
			assert.False(t, pos.Board.HasOpenEnds(), "play only stops early on a closed loop")
		}

		var straights, curves int
		for _, m := range pos.Moves {
			if m.Tile.Kind() == tile.Straight {
				straights++
			} else {
				curves++
			}
		}
		assert.Equal(t, opts.Straights, straights+pos.Remaining.Straights)
		assert.Equal(t, opts.Curves, curves+pos.Remaining.Curves)
	}
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	_, err := New(&Options{Straights: 1, Curves: 1, Moves: 3, Seed: 1}).Generate()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = New(&Options{Straights: -1, Curves: 1, Seed: 1}).Generate()
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestGenerateZeroMoves(t *testing.T) {
	pos, err := New(&Options{Straights: 2, Curves: 3, Seed: 5}).Generate()
	require.NoError(t, err)
	assert.True(t, pos.Board.IsEmpty())
	assert.Equal(t, 2, pos.Remaining.Straights)
	assert.Equal(t, 3, pos.Remaining.Curves)
}

func TestStraightsOnlyDeckNeverCloses(t *testing.T) {
	// Straights cannot turn, so they never close a loop.
	pos, err := New(&Options{Straights: 5, Moves: 5, Seed: 11}).Generate()
	require.NoError(t, err)
	assert.Len(t, pos.Moves, 5)
	assert.True(t, pos.Board.HasOpenEnds())
}
