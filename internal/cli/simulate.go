package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/me/seeksim/internal/plot"
	"github.com/me/seeksim/internal/scenario"
	"github.com/me/seeksim/pkg/disk"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		scenarioFile string
		initial      int
		maxCylinder  int
		requests     []int
		algorithm    string
		direction    string
		showPlot     bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling algorithm non-interactively",
		Long: `Run one scheduling algorithm over a request set given either as flags
or as a YAML scenario file and print the service sequence and seek costs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sc *scenario.Scenario
			if scenarioFile != "" {
				loaded, err := scenario.Load(scenarioFile)
				if err != nil {
					return err
				}
				sc = loaded
				logger.Debug("scenario loaded", "file", scenarioFile, "name", sc.Name)
			} else {
				sc = &scenario.Scenario{
					InitialPosition: initial,
					MaxCylinder:     maxCylinder,
					Requests:        requests,
					Algorithm:       algorithm,
					Direction:       direction,
				}
			}

			sched, err := sc.Build()
			if err != nil {
				return err
			}
			policy, dir, err := sc.Policy()
			if err != nil {
				return err
			}
			res, err := sched.Run(policy, dir)
			if err != nil {
				return err
			}

			printResult(os.Stdout, policy, dir, sched, res)
			if showPlot {
				fmt.Println()
				fmt.Print(plot.Text(sched.InitialPosition(), res.Sequence, sched.MaxCylinder(), 60))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioFile, "scenario", "f", "", "YAML scenario file (overrides the other input flags)")
	cmd.Flags().IntVar(&initial, "initial", 50, "Initial head position")
	cmd.Flags().IntVar(&maxCylinder, "max-cylinder", 200, "Maximum cylinder number")
	cmd.Flags().IntSliceVar(&requests, "requests", nil, "Pending requests (comma separated)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "fcfs", "Algorithm: fcfs, sstf, scan, cscan")
	cmd.Flags().StringVarP(&direction, "direction", "d", "right", "SCAN direction: left, right")
	cmd.Flags().BoolVar(&showPlot, "plot", false, "Print a text plot of the head movement")

	return cmd
}

// printResult writes the standard result block shared by simulate and
// interactive.
func printResult(w *os.File, policy disk.Policy, direction disk.Direction, sched *disk.Scheduler, res disk.Result) {
	title := policy.DisplayName()
	if policy.NeedsDirection() {
		title = fmt.Sprintf("%s, %s", title, direction)
	}
	fmt.Fprintf(w, "Algorithm:         %s\n", title)
	fmt.Fprintf(w, "Service sequence:  %s\n", formatWalk(sched.InitialPosition(), res.Sequence))
	fmt.Fprintf(w, "Total seek:        %s cylinders\n", humanize.Comma(int64(res.TotalSeek)))
	fmt.Fprintf(w, "Average seek:      %.2f cylinders\n", res.AverageSeek())
}

// formatWalk renders the walk as "50 -> 82 -> 170".
func formatWalk(initial int, sequence []int) string {
	out := fmt.Sprintf("%d", initial)
	for _, pos := range sequence {
		out += fmt.Sprintf(" -> %d", pos)
	}
	return out
}
