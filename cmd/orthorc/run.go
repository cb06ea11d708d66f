package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/orthorc/arith"
	"github.com/tuneinsight/orthorc/measure"
	"github.com/tuneinsight/orthorc/polynomial"
	"github.com/tuneinsight/orthorc/recurrence"
)

// errCheckFailed is returned by the check subcommand when the coefficients do
// not match the moments within the tolerance. The report is still written.
var errCheckFailed = errors.New("coefficients do not match the moments")

type operation struct {
	short string
	// dense is true if the operation has a gonum implementation.
	dense bool
}

var operations = map[string]operation{
	"golub-welsch": {
		short: "Coefficients from the 2n+1 moments by Cholesky factorization of the Hankel matrix",
		dense: true,
	},
	"chebyshev": {
		short: "Coefficients from the 2n moments with the Chebyshev algorithm",
	},
	"chebyshev-modified": {
		short: "Coefficients from 2n modified moments and a reference recurrence",
	},
	"stieltjes": {
		short: "Coefficients with the Stieltjes procedure, exact mode recommended",
	},
	"check": {
		short: "Check coefficients against the moments with Gautschi's test #3",
		dense: true,
	},
	"jacobi": {
		short: "Moments of the Jacobi weight (1-x)^a (1+x)^b on [-1, 1]",
	},
}

func runOperation(cmd *cobra.Command, name string, opts *options) (err error) {

	mode, err := arith.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	in, err := readInput(opts.input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts.logger.Debug("input loaded",
		"operation", name,
		"mode", mode,
		"moments", len(in.Moments),
		"modified_moments", len(in.ModifiedMoments),
		"alpha", len(in.Alpha),
		"beta", len(in.Beta))

	var out *Output

	switch {
	case opts.dense && mode == arith.Float:
		out, err = executeDense(name, in, opts)
	case opts.dense:
		return fmt.Errorf("cannot %s: --dense requires --mode %s", name, arith.Float)
	case mode == arith.Float:
		out, err = execute[float64](arith.Float64{}, name, in, opts)
	case mode == arith.Exact:
		out, err = execute[*big.Rat](arith.Rational{}, name, in, opts)
	default:
		opts.logger.Debug("multiprecision field", "prec", opts.prec)
		out, err = execute[*big.Float](arith.NewBigFloat(opts.prec), name, in, opts)
	}

	if out != nil {
		if werr := writeOutput(cmd.OutOrStdout(), out); werr != nil {
			return werr
		}
	}

	return err
}

func execute[T any](f arith.Field[T], name string, in *Input, opts *options) (out *Output, err error) {

	out = &Output{Mode: f.Mode().String()}

	var c recurrence.Coefficients[T]

	switch name {

	case "golub-welsch":

		var moments []T
		if moments, err = arith.ParseAll(f, in.Moments...); err != nil {
			return nil, fmt.Errorf("cannot %s: moments: %w", name, err)
		}

		if c, err = recurrence.GolubWelsch(f, moments); err != nil {
			return nil, err
		}

	case "chebyshev":

		var moments []T
		if moments, err = arith.ParseAll(f, in.Moments...); err != nil {
			return nil, fmt.Errorf("cannot %s: moments: %w", name, err)
		}

		if c, err = recurrence.Chebyshev(f, moments); err != nil {
			return nil, err
		}

	case "chebyshev-modified":

		var nu, a, b []T
		if nu, err = arith.ParseAll(f, in.ModifiedMoments...); err != nil {
			return nil, fmt.Errorf("cannot %s: modified_moments: %w", name, err)
		}

		if a, err = arith.ParseAll(f, in.Reference.Alpha...); err != nil {
			return nil, fmt.Errorf("cannot %s: reference.alpha: %w", name, err)
		}

		if b, err = arith.ParseAll(f, in.Reference.Beta...); err != nil {
			return nil, fmt.Errorf("cannot %s: reference.beta: %w", name, err)
		}

		if c, err = recurrence.ChebyshevModified(f, nu, a, b); err != nil {
			return nil, err
		}

	case "stieltjes":

		var integrate polynomial.Integrator[T]
		if integrate, err = integrator(f, in); err != nil {
			return nil, fmt.Errorf("cannot %s: %w", name, err)
		}

		if f.Mode() != arith.Exact {
			opts.logger.Warn("the Stieltjes procedure amplifies rounding errors, prefer --mode exact", "mode", f.Mode())
		}

		if c, err = recurrence.Stieltjes(f, integrate, in.Count); err != nil {
			return nil, err
		}

	case "check":
		return check(f, in, opts, out)

	case "jacobi":

		var a, b T
		if a, err = f.Parse(in.Weight.A); err != nil {
			return nil, fmt.Errorf("cannot %s: weight.a: %w", name, err)
		}

		if b, err = f.Parse(in.Weight.B); err != nil {
			return nil, fmt.Errorf("cannot %s: weight.b: %w", name, err)
		}

		if f.IsUndefined(a) || f.IsUndefined(b) {
			return nil, fmt.Errorf("cannot %s: weight.a and weight.b are required", name)
		}

		var mu []T
		if mu, err = measure.JacobiMoments(f, a, b, in.Count); err != nil {
			return nil, err
		}

		out.Moments = arith.Strings(f, mu)
		opts.logger.Info("moments computed", "m", len(mu))

		return out, nil

	default:
		return nil, fmt.Errorf("unknown operation %q", name)
	}

	out.Alpha = arith.Strings(f, c.Alpha)
	out.Beta = arith.Strings(f, c.Beta)

	opts.logger.Info("coefficients computed", "operation", name, "n", c.Len())

	return out, nil
}

// integrator returns the moment integrator of in.Moments, or the Lebesgue
// measure on in.Interval if no moments are given.
func integrator[T any](f arith.Field[T], in *Input) (integrate polynomial.Integrator[T], err error) {

	if len(in.Moments) != 0 {
		var moments []T
		if moments, err = arith.ParseAll(f, in.Moments...); err != nil {
			return nil, fmt.Errorf("moments: %w", err)
		}
		return polynomial.MomentIntegrator(f, moments), nil
	}

	if len(in.Interval) != 2 {
		return nil, fmt.Errorf("either moments or an interval [a, b] is required")
	}

	var ab []T
	if ab, err = arith.ParseAll(f, in.Interval...); err != nil {
		return nil, fmt.Errorf("interval: %w", err)
	}

	return polynomial.IntervalIntegrator(f, ab[0], ab[1]), nil
}

func check[T any](f arith.Field[T], in *Input, opts *options, out *Output) (*Output, error) {

	moments, err := arith.ParseAll(f, in.Moments...)
	if err != nil {
		return nil, fmt.Errorf("cannot check: moments: %w", err)
	}

	alpha, err := arith.ParseAll(f, in.Alpha...)
	if err != nil {
		return nil, fmt.Errorf("cannot check: alpha: %w", err)
	}

	beta, err := arith.ParseAll(f, in.Beta...)
	if err != nil {
		return nil, fmt.Errorf("cannot check: beta: %w", err)
	}

	errAlpha, errBeta, err := recurrence.GautschiTest3(f, moments, alpha, beta)
	if err != nil {
		return nil, err
	}

	out.ErrorAlpha = arith.Strings(f, errAlpha)
	out.ErrorBeta = arith.Strings(f, errBeta)

	return report(out, recurrence.Summarize(f, errAlpha, errBeta), opts)
}

func report(out *Output, r recurrence.Report, opts *options) (*Output, error) {

	out.Report = newReport(r, opts.tol)

	if !out.Report.Passed {
		opts.logger.Warn("check failed", "report", r.String(), "tol", opts.tol)
		return out, errCheckFailed
	}

	opts.logger.Info("check passed", "report", r.String())

	return out, nil
}

// executeDense runs the gonum implementations of the float mode.
func executeDense(name string, in *Input, opts *options) (out *Output, err error) {

	f := arith.Float64{}

	out = &Output{Mode: f.Mode().String()}

	moments, err := arith.ParseAll[float64](f, in.Moments...)
	if err != nil {
		return nil, fmt.Errorf("cannot %s: moments: %w", name, err)
	}

	switch name {

	case "golub-welsch":

		c, err := recurrence.GolubWelschDense(moments)
		if err != nil {
			return nil, err
		}

		out.Alpha = arith.Strings[float64](f, c.Alpha)
		out.Beta = arith.Strings[float64](f, c.Beta)

		opts.logger.Info("coefficients computed", "operation", name, "n", c.Len(), "dense", true)

		return out, nil

	case "check":

		alpha, err := arith.ParseAll[float64](f, in.Alpha...)
		if err != nil {
			return nil, fmt.Errorf("cannot check: alpha: %w", err)
		}

		beta, err := arith.ParseAll[float64](f, in.Beta...)
		if err != nil {
			return nil, fmt.Errorf("cannot check: beta: %w", err)
		}

		errAlpha, errBeta, err := recurrence.GautschiTest3Dense(moments, alpha, beta)
		if err != nil {
			return nil, err
		}

		out.ErrorAlpha = arith.Strings[float64](f, errAlpha)
		out.ErrorBeta = arith.Strings[float64](f, errBeta)

		return report(out, recurrence.Summarize[float64](f, errAlpha, errBeta), opts)

	default:
		return nil, fmt.Errorf("cannot %s: no dense implementation", name)
	}
}
