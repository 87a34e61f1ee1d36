package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rybkr/canal/internal/board"
	"github.com/rybkr/canal/internal/generator"
	"github.com/rybkr/canal/internal/solver"
)

var (
	solveStraights int
	solveCurves    int
	solvePreset    string
	solveTimeout   time.Duration
	solveMaxNodes  int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [board-file|-]",
		Short: "Decide whether a board can still be closed into a loop",
		Long: `Decide whether some sequence of legal placements, using only the given
tiles, leaves the board with no open ends. When it can, the closing
sequence is printed.

Examples:
  canal solve board.txt --straights 3 --curves 5
  canal solve --preset corner -s 0 -c 1
  cat board.txt | canal solve --timeout 2s`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().IntVarP(&solveStraights, "straights", "s", generator.DefaultDeckSize, "Straight tiles remaining")
	solveCmd.Flags().IntVarP(&solveCurves, "curves", "c", generator.DefaultDeckSize, "Curve tiles remaining")
	solveCmd.Flags().StringVarP(&solvePreset, "preset", "p", "", "Use a built-in board instead of reading one")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Search time limit (0 = none)")
	solveCmd.Flags().IntVar(&solveMaxNodes, "max-nodes", 0, "Search node limit (0 = none)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := readBoard(cmd, args, solvePreset)
	if err != nil {
		return err
	}

	inv := solver.Inventory{Straights: solveStraights, Curves: solveCurves}
	logger := log.Logger
	s := solver.New(b, inv, &solver.Options{
		Timeout:  solveTimeout,
		MaxNodes: solveMaxNodes,
		Logger:   &logger,
	})

	start := time.Now()
	res, err := s.Solve()
	log.Info().
		Stringer("inventory", inv).
		Int("nodes", res.Nodes).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	out := cmd.OutOrStdout()
	if errors.Is(err, solver.ErrTimeout) || errors.Is(err, solver.ErrBudgetExceeded) {
		fmt.Fprintln(out, "undetermined")
		return err
	}
	if err != nil {
		return err
	}

	if !res.Possible {
		fmt.Fprintln(out, "impossible")
		return nil
	}

	fmt.Fprintln(out, "possible")
	for i, p := range res.Placements {
		fmt.Fprintf(out, "%3d. %s\n", i+1, p)
	}
	return printClosed(cmd, b, res)
}

// printClosed replays the closing sequence on a copy of b and prints it.
func printClosed(cmd *cobra.Command, b *board.Board, res solver.Result) error {
	closed := b.Clone()
	if err := res.Apply(closed); err != nil {
		return fmt.Errorf("closing sequence does not replay: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), closed.Format())
	return nil
}
