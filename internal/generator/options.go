package generator

import "github.com/rs/zerolog"

// Options configures position generation.
type Options struct {
	Straights int   // Straights in the deck
	Curves    int   // Curves in the deck
	Moves     int   // Moves is the number of placements to play
	Seed      int64 // Seed for reproducible positions (0 = random)
	// Logger receives debug output; nil discards it.
	Logger *zerolog.Logger
}

// DefaultOptions returns the standard deck with the given number of moves.
func DefaultOptions(moves int) *Options {
	moves = min(max(moves, 0), 2*DefaultDeckSize)
	return &Options{
		Straights: DefaultDeckSize,
		Curves:    DefaultDeckSize,
		Moves:     moves,
		Seed:      0,
	}
}
