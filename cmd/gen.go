package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rybkr/canal/internal/generator"
	"github.com/rybkr/canal/internal/solver"
)

var (
	numPositions int
	moveCount    string
	genSeed      int64
	genTimeout   time.Duration
	genMaxNodes  int
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random canal positions",
		Long: `Generate one or more positions by playing random legal moves from a
shuffled standard deck, then report whether each can still be closed with
the tiles left in the deck and how much searching that took.

Examples:
  canal gen --moves 6
  canal gen -n 5 --moves 4:10
  canal gen --moves 12 --seed 42 --max-nodes 200000`,
		Args: cobra.NoArgs,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPositions, "number", "n", 1, "Number of positions to generate")
	genCmd.Flags().StringVarP(&moveCount, "moves", "m", fmt.Sprintf("%d", generator.DefaultMoves), "Moves to play, 0-16 or range like 4:8")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible positions (0 = random)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Search time limit per position")
	genCmd.Flags().IntVar(&genMaxNodes, "max-nodes", 1_000_000, "Search node limit per position (0 = none)")

	rootCmd.AddCommand(genCmd)
}

// parseMovesRange parses a move count string which can be:
// - A single number: "6"
// - A range: "4:8"
// Returns min, max, and an error
func parseMovesRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid move count: %w", err)
		}
		return val, val, nil
	} else if len(parts) == 2 {
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid move count min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid move count max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("move count min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid move count format: %s (use format like '6' or '4:8')", s)
}

func runGen(cmd *cobra.Command, args []string) error {
	minMoves, maxMoves, err := parseMovesRange(moveCount)
	if err != nil {
		return err
	}

	deck := 2 * generator.DefaultDeckSize
	if minMoves < 0 || maxMoves > deck {
		return fmt.Errorf("move count must be between 0 and %d, got %s", deck, moveCount)
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger := log.Logger
	out := cmd.OutOrStdout()

	for i := 0; i < numPositions; i++ {
		// Randomly select the move count from range if it's a range
		moves := minMoves
		if maxMoves > minMoves {
			moves = minMoves + rng.Intn(maxMoves-minMoves+1)
		}

		opts := generator.DefaultOptions(moves)
		opts.Seed = seed + int64(i)
		opts.Logger = &logger

		pos, err := generator.New(opts).Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		searchOpts := &solver.Options{Timeout: genTimeout, MaxNodes: genMaxNodes, Logger: &logger}
		res, err := solver.New(pos.Board, pos.Remaining, searchOpts).Solve()
		verdict := "impossible"
		switch {
		case errors.Is(err, solver.ErrTimeout), errors.Is(err, solver.ErrBudgetExceeded):
			verdict = "undetermined"
		case err != nil:
			return fmt.Errorf("search failed: %w", err)
		case res.Possible:
			verdict = fmt.Sprintf("possible in %d move(s)", len(res.Placements))
		}

		difficulty, err := solver.Difficulty(pos.Board, pos.Remaining, searchOpts)
		rating := strconv.Itoa(difficulty)
		if err != nil {
			rating = "> " + rating
		}

		log.Debug().Int64("seed", opts.Seed).Int("moves", len(pos.Moves)).Msg("generated position")

		fmt.Fprintf(out, "Position #%d (moves: %d, remaining: %s, seed: %d):\n",
			i+1, len(pos.Moves), pos.Remaining, opts.Seed)
		fmt.Fprint(out, pos.Board.Format())
		fmt.Fprintf(out, "Verdict: %s\nDifficulty: %s\n\n", verdict, rating)
	}

	return nil
}
