package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"pew/internal/history"
	"pew/internal/telemetry"
	"pew/internal/wire"
)

var exit = os.Exit

var (
	compareDB        string
	compareSave      bool
	compareAgainst   bool
	compareThreshold float64
	verbose          bool
)

// gitExecCommand allows mocking in tests.
var gitExecCommand = exec.Command

var rootCmd = &cobra.Command{
	Use:   "pew-compare [file]",
	Short: "Track benchmark results over time and detect regressions",
	Long: `Reads benchmark results in the 'Name,Time (ns)' CSV format from a file (or
stdin) and compares them against the previous saved run, flagging benchmarks
whose mean time moved past a percentage threshold. With --save, the current
results are recorded in the history database for future comparisons.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCompare,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&compareDB, "db", ".pew/history.db", "File to store benchmark history")
	rootCmd.Flags().BoolVar(&compareSave, "save", false, "Save results to history")
	rootCmd.Flags().BoolVar(&compareAgainst, "compare", true, "Compare with previous saved results")
	rootCmd.Flags().Float64Var(&compareThreshold, "threshold", 10.0, "Percentage threshold for regression warning")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug logging")

	cobra.OnInitialize(func() {
		telemetry.InitLogger(verbose, "")
	})
}

func runCompare(cmd *cobra.Command, args []string) error {
	// 1. Read results
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	rows, err := wire.Read(in)
	if err != nil {
		return fmt.Errorf("failed to parse benchmark results: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No benchmark results found.")
		return nil
	}

	results := make([]history.Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, history.Result{Name: row.Name(), MeanNs: row.TimeNs})
	}

	// 2. Open history
	store, err := history.NewSQLiteStore(compareDB)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	// 3. Compare against the previous run
	if compareAgainst {
		prev, err := store.LoadLatest()
		if err != nil {
			return err
		}
		if prev != nil {
			printComparison(cmd, history.Compare(prev.Results, results), compareThreshold)
		} else {
			printResults(cmd, results)
		}
	} else {
		printResults(cmd, results)
	}

	// 4. Save
	if compareSave {
		run := history.Run{Timestamp: time.Now(), Results: results}
		if commit, err := getGitCommit(); err == nil {
			run.Commit = commit
		}
		if _, err := store.SaveRun(run); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nResults saved to %s\n", compareDB)
	}

	return nil
}

func getGitCommit() (string, error) {
	out, err := gitExecCommand("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func printResults(cmd *cobra.Command, results []history.Result) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BENCHMARK\tNS/OP")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\n", r.Name, r.MeanNs)
	}
	w.Flush()
}

func printComparison(cmd *cobra.Command, comps []history.Comparison, threshold float64) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BENCHMARK\tNS/OP\tDIFF %\tSTATUS")

	for _, c := range comps {
		if c.New {
			fmt.Fprintf(w, "%s\t%d\t-\tNEW\n", c.Name, c.Curr.MeanNs)
			continue
		}

		status := "PASS"
		if c.DiffPct > threshold {
			status = "FAIL"
		} else if c.DiffPct < -threshold {
			status = "IMPR"
		}
		fmt.Fprintf(w, "%s\t%d\t%+.2f%%\t%s\n", c.Name, c.Curr.MeanNs, c.DiffPct, status)
	}
	w.Flush()
}
