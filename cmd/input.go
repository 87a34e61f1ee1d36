package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rybkr/canal/internal/board"
)

// readBoard loads the board named by --preset, the file in args[0], or
// standard input when the argument is "-" or missing.
func readBoard(cmd *cobra.Command, args []string, preset string) (*board.Board, error) {
	if preset != "" {
		return board.Preset(preset)
	}

	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}
	return board.NewFromString(string(data))
}

// parsePoint parses a coordinate written as "x,y".
func parsePoint(s string) (board.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return board.Point{}, fmt.Errorf("invalid coordinate %q (use format like '3,-1')", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return board.Point{}, fmt.Errorf("invalid x coordinate: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return board.Point{}, fmt.Errorf("invalid y coordinate: %w", err)
	}
	return board.Point{X: x, Y: y}, nil
}
