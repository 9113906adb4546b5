package app

import (
	"io"

	"github.com/spf13/cobra"

	"fxtools/internal/cli"
	"fxtools/internal/version"
)

// NewRootCommand builds the fxtools command tree writing reports to stdout
// and diagnostics to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "fxtools",
		Short:         "fast statistics for FASTA/FASTQ files",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newStatCommand(stdout, stderr),
		newFindGapCommand(stdout, stderr),
		newVersionCommand(stdout),
	)
	return root
}

func newStatCommand(stdout, stderr io.Writer) *cobra.Command {
	var flags *cli.StatFlags
	cmd := &cobra.Command{
		Use:   "stat [flags] [input...]",
		Short: "length histogram, Nx and totals of FASTA/FASTQ files",
		Long: `Print a length histogram, N10..N90 and summary rows for all records of
the inputs. An input is a FASTA/FASTQ file (plain, gzip or zstd), "-" for
stdin, or a file listing one such path per line. With --n_len, scaffolds
are split at runs of N and one scaffold/contig/gap table is printed per
input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.Options(args)
			if err != nil {
				return err
			}
			return runStat(cmd.Context(), opts, stdout, stderr)
		},
	}
	flags = cli.RegisterStat(cmd.Flags())
	return cmd
}

func newFindGapCommand(stdout, stderr io.Writer) *cobra.Command {
	var flags *cli.FindGapFlags
	cmd := &cobra.Command{
		Use:   "findgap [flags] [input...]",
		Short: "print N runs as <name>\\t<start>\\t<end> (0-based, inclusive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.Options(args)
			if err != nil {
				return err
			}
			return runFindGap(cmd.Context(), opts, stdout, stderr)
		},
	}
	flags = cli.RegisterFindGap(cmd.Flags())
	return cmd
}

func newVersionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(stdout, "fxtools version "+version.Version+"\n")
			return err
		},
	}
}
