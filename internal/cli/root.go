// Package cli implements the seeksim command line: an interactive prompt
// session, non-interactive runs from flags or scenario files, and a
// side-by-side comparison of all four policies.
package cli

import (
	"log/slog"

	"github.com/me/seeksim/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the seeksim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seeksim",
		Short: "seeksim — disk head scheduling simulator",
		Long:  "seeksim simulates FCFS, SSTF, SCAN and C-SCAN disk head scheduling and reports seek costs.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(flagLogLevel, flagLogFormat)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSimulateCmd(),
		newInteractiveCmd(),
		newCompareCmd(),
	)

	return root
}
