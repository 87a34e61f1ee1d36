package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rybkr/canal/internal/tile"
)

var (
	checkTile     string
	checkRotation int
	checkAt       string
	checkPreset   string
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [board-file|-]",
		Short: "List legal placements for a tile",
		Long: `List every cell where a tile can legally be placed, or explain why a
placement at a given cell is illegal.

Examples:
  canal check board.txt --tile curve --rotation 3
  canal check --preset gap -t straight --at 0,1`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().StringVarP(&checkTile, "tile", "t", "straight", "Tile kind: straight or curve")
	checkCmd.Flags().IntVarP(&checkRotation, "rotation", "r", 0, "Clockwise quarter turns")
	checkCmd.Flags().StringVar(&checkAt, "at", "", "Check a single cell given as x,y")
	checkCmd.Flags().StringVarP(&checkPreset, "preset", "p", "", "Use a built-in board instead of reading one")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	kind, err := tile.ParseKind(checkTile)
	if err != nil {
		return err
	}
	t := tile.NewRotated(kind, checkRotation)

	b, err := readBoard(cmd, args, checkPreset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if checkAt != "" {
		p, err := parsePoint(checkAt)
		if err != nil {
			return err
		}
		if err := b.Clone().Place(p.X, p.Y, t); err != nil {
			fmt.Fprintf(out, "illegal: %v\n", err)
			return nil
		}
		fmt.Fprintf(out, "legal: %s %c at (%d, %d)\n", t, t.Rune(), p.X, p.Y)
		return nil
	}

	points := b.LegalPlacements(t)
	fmt.Fprintf(out, "%s %c: %d legal cell(s)\n", t, t.Rune(), len(points))
	for _, p := range points {
		fmt.Fprintf(out, "  (%d, %d)\n", p.X, p.Y)
	}
	return nil
}
