package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pew/internal/telemetry"
	"pew/internal/transpose"
	"pew/internal/wire"
)

var exit = os.Exit

var (
	transposeFile string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "pew-transpose",
	Short: "Pivot benchmark CSV output for plotting",
	Long: `Reads benchmark results in the 'Name,Time (ns)' CSV format on stdin and
pivots rows sharing a trailing input size into columns, one column per
benchmark family:

  Name,Time (ns)                 Size,range_bench/pop,gen_bench/pop
  range_bench/pop/1024,102541    1024,102541,102316
  range_bench/pop/4096,423289 →  4096,423289,416523
  gen_bench/pop/1024,102316
  gen_bench/pop/4096,416523

With --file, the pivoted table goes to the file and the raw input is echoed
to stdout, so the tool can sit in the middle of a pipe.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTranspose,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&transposeFile, "file", "f", "", "File to write out to. If omitted, will write out to stdout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug logging")

	cobra.OnInitialize(func() {
		telemetry.InitLogger(verbose, "")
	})
}

func runTranspose(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if transposeFile != "" {
		// Echo the raw stream through so downstream consumers still see it.
		in = io.TeeReader(in, cmd.OutOrStdout())
	}

	rows, err := wire.Read(in)
	if err != nil {
		return err
	}
	table := transpose.Pivot(rows)

	out := cmd.OutOrStdout()
	if transposeFile != "" {
		f, err := os.Create(transposeFile)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", transposeFile, err)
		}
		defer f.Close()
		out = f
	}
	return table.Write(out)
}
