// Command orthorc computes the recurrence coefficients of orthogonal
// polynomials from the moments of their measure.
//
// Every subcommand reads a YAML document (see Input) from --input and writes
// a YAML document (see Output) to stdout. Numbers are given and returned as
// strings so that fractions such as "2/3" survive the exact mode:
//
//	$ echo 'moments: ["2", "0", "2/3", "0"]' | orthorc chebyshev --mode exact
//	mode: exact
//	alpha:
//	    - "0"
//	    - "0"
//	beta:
//	    - "2"
//	    - 1/3
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/orthorc/arith"
	"github.com/tuneinsight/orthorc/utils"
)

// options are the flags shared by every subcommand.
type options struct {
	input   string
	mode    string
	prec    uint
	verbose bool

	// golub-welsch and check
	dense bool

	// check
	tol float64

	logger *slog.Logger
}

func main() {
	os.Exit(runRoot(newRootCmd()))
}

// runRoot executes root and returns the exit status of the process. A failure
// is logged on the stderr of root.
func runRoot(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		newLogger(root.ErrOrStderr(), false).Error("orthorc failed", "error", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {

	opts := &options{logger: newLogger(os.Stderr, false)}

	root := &cobra.Command{
		Use:   "orthorc",
		Short: "Recurrence coefficients of orthogonal polynomials from moments",
		Long: `orthorc computes the recurrence coefficients alpha_k, beta_k of the monic
orthogonal polynomials of a measure given by its (modified) moments,
and checks coefficients against the moments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.input, "input", "i", "-", "YAML input file, - reads stdin")
	flags.StringVarP(&opts.mode, "mode", "m", arith.Exact.String(), "numeric mode: float, exact or multiprecision")
	flags.UintVar(&opts.prec, "prec", arith.DefaultPrec, "mantissa bits of the multiprecision mode")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	for _, name := range utils.GetSortedKeys(operations) {
		root.AddCommand(newOperationCmd(name, operations[name], opts))
	}

	return root
}

func newOperationCmd(name string, op operation, opts *options) *cobra.Command {

	cmd := &cobra.Command{
		Use:   name,
		Short: op.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, name, opts)
		},
	}

	if op.dense {
		cmd.Flags().BoolVar(&opts.dense, "dense", false, "use the gonum (LAPACK) implementation, float mode only")
	}

	if name == "check" {
		cmd.Flags().Float64Var(&opts.tol, "tol", 1e-10, "maximum absolute error accepted by the check")
	}

	return cmd
}
