package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "canal",
	Short: "Rule engine and loop oracle for the canal tile game",
	Long: `canal checks tile placements and decides whether a canal board can
still be closed into a loop with the tiles that are left.

Boards are read in text notation: one line per row, '.' for an empty cell
and │ ─ ┌ ┐ ┘ └ (or | and -) for tiles. An optional first line "@x,y"
places the first character of the first row at (x, y).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return setupLogging(logLevel, logFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto", "Log format: console, json or auto")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("canal failed")
	}
}
