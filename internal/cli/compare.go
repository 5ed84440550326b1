package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/me/seeksim/pkg/disk"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		initial     int
		maxCylinder int
		requests    []int
		direction   string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run all four algorithms on one input",
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := disk.New(initial, maxCylinder)
			if err != nil {
				return err
			}
			for _, r := range requests {
				if err := sched.AddRequest(r); err != nil {
					return err
				}
			}

			dir := disk.Direction(direction)
			fmt.Printf("%-36s  %12s  %12s  %s\n", "ALGORITHM", "TOTAL SEEK", "AVG SEEK", "SEQUENCE")
			fmt.Printf("%-36s  %12s  %12s  %s\n", "---------", "----------", "--------", "--------")
			for _, policy := range []disk.Policy{disk.PolicyFCFS, disk.PolicySSTF, disk.PolicySCAN, disk.PolicyCSCAN} {
				res, err := sched.Run(policy, dir)
				if err != nil {
					return err
				}
				name := policy.DisplayName()
				if policy.NeedsDirection() {
					name = fmt.Sprintf("%s %s", name, dir)
				}
				fmt.Printf("%-36s  %12s  %12.2f  %v\n",
					name, humanize.Comma(int64(res.TotalSeek)), res.AverageSeek(), res.Sequence)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&initial, "initial", 50, "Initial head position")
	cmd.Flags().IntVar(&maxCylinder, "max-cylinder", 200, "Maximum cylinder number")
	cmd.Flags().IntSliceVar(&requests, "requests", nil, "Pending requests (comma separated)")
	cmd.Flags().StringVarP(&direction, "direction", "d", "right", "SCAN direction: left, right")

	return cmd
}
