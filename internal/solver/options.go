package solver

import (
	"time"

	"github.com/rs/zerolog"
)

// Options configures a search.
type Options struct {
	Timeout  time.Duration   // Timeout bounds wall-clock search time (0 = no limit)
	MaxNodes int             // MaxNodes bounds the number of positions visited (0 = no limit)
	Logger   *zerolog.Logger // Logger receives debug output; nil discards it
}

// DefaultOptions returns options for an unbounded, silent search.
func DefaultOptions() *Options {
	return &Options{}
}
