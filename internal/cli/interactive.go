package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/me/seeksim/internal/plot"
	"github.com/me/seeksim/pkg/disk"
	"github.com/spf13/cobra"
)

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run a prompt-based simulation session",
		Long: `Prompt for the head position, cylinder range and pending requests,
pick an algorithm, and print the resulting service order and seek costs.
Rejected requests do not abort the session; only the invalid entry is dropped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(os.Stdin, os.Stdout)
		},
	}
}

func runInteractive(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	prompt := func(label string) (string, error) {
		fmt.Fprint(out, label)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
	promptInt := func(label string) (int, error) {
		line, err := prompt(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", line)
		}
		return v, nil
	}

	fmt.Fprintln(out, "=== Disk Scheduling Simulator ===")
	initial, err := promptInt("Enter initial head position: ")
	if err != nil {
		return err
	}
	maxCyl, err := promptInt("Enter maximum cylinder number (e.g., 200): ")
	if err != nil {
		return err
	}

	sched, err := disk.New(initial, maxCyl)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nEnter disk requests (one per line, empty line to finish):")
	for {
		line, err := prompt("> ")
		if err != nil {
			return err
		}
		if line == "" {
			break
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "%q is not an integer\n", line)
			continue
		}
		// An out-of-range request only drops that entry, never the session.
		if err := sched.AddRequest(v); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	fmt.Fprintln(out, "\nAlgorithms available:")
	fmt.Fprintln(out, "1. FCFS (First-Come-First-Served)")
	fmt.Fprintln(out, "2. SSTF (Shortest Seek Time First)")
	fmt.Fprintln(out, "3. SCAN (Elevator)")
	fmt.Fprintln(out, "4. C-SCAN (Circular SCAN)")
	choice, err := prompt("Select algorithm (1-4): ")
	if err != nil {
		return err
	}

	var policy disk.Policy
	direction := disk.DirectionRight
	switch choice {
	case "1":
		policy = disk.PolicyFCFS
	case "2":
		policy = disk.PolicySSTF
	case "3":
		policy = disk.PolicySCAN
		dir, err := prompt("Enter SCAN direction (left/right): ")
		if err != nil {
			return err
		}
		direction = disk.Direction(strings.ToLower(dir))
	case "4":
		policy = disk.PolicyCSCAN
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}

	res, err := sched.Run(policy, direction)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== Results ===")
	title := policy.DisplayName()
	if policy.NeedsDirection() {
		title = fmt.Sprintf("%s, %s", title, direction)
	}
	fmt.Fprintf(out, "Algorithm:         %s\n", title)
	fmt.Fprintf(out, "Service sequence:  %s\n", formatWalk(sched.InitialPosition(), res.Sequence))
	fmt.Fprintf(out, "Total seek:        %d cylinders\n", res.TotalSeek)
	fmt.Fprintf(out, "Average seek:      %.2f cylinders\n", res.AverageSeek())

	show, err := prompt("\nShow head movement plot? (y/n): ")
	if err != nil {
		return err
	}
	if strings.ToLower(show) == "y" {
		fmt.Fprintln(out)
		fmt.Fprint(out, plot.Text(sched.InitialPosition(), res.Sequence, sched.MaxCylinder(), 60))
	}
	return nil
}
