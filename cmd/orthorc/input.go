package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tuneinsight/orthorc/recurrence"
)

// Input is the YAML document read by every subcommand. Numbers are strings
// parsed by the field of the selected mode: "2/3", "0.4", "1e-3" or "nan".
type Input struct {
	// Moments are the raw moments mu_k (golub-welsch, chebyshev, stieltjes, check).
	Moments []string `yaml:"moments"`

	// ModifiedMoments are the moments against the reference polynomials (chebyshev-modified).
	ModifiedMoments []string `yaml:"modified_moments"`

	// Reference is the recurrence of the reference polynomials (chebyshev-modified).
	Reference struct {
		Alpha []string `yaml:"alpha"`
		Beta  []string `yaml:"beta"`
	} `yaml:"reference"`

	// Alpha and Beta are the coefficients to check (check).
	Alpha []string `yaml:"alpha"`
	Beta  []string `yaml:"beta"`

	// Count is the number of coefficients (stieltjes) or of moments (jacobi).
	Count int `yaml:"count"`

	// Interval [a, b] of the Lebesgue measure integrated by stieltjes when no
	// moments are given.
	Interval []string `yaml:"interval"`

	// Weight holds the exponents of the Jacobi weight (1-x)^a (1+x)^b (jacobi).
	Weight struct {
		A string `yaml:"a"`
		B string `yaml:"b"`
	} `yaml:"weight"`
}

// Output is the YAML document written by every subcommand.
type Output struct {
	Mode       string   `yaml:"mode"`
	Alpha      []string `yaml:"alpha,omitempty"`
	Beta       []string `yaml:"beta,omitempty"`
	Moments    []string `yaml:"moments,omitempty"`
	ErrorAlpha []string `yaml:"error_alpha,omitempty"`
	ErrorBeta  []string `yaml:"error_beta,omitempty"`
	Report     *Report  `yaml:"report,omitempty"`
}

// Report is the YAML form of recurrence.Report.
type Report struct {
	MaxAlpha  float64 `yaml:"max_alpha"`
	MeanAlpha float64 `yaml:"mean_alpha"`
	MaxBeta   float64 `yaml:"max_beta"`
	MeanBeta  float64 `yaml:"mean_beta"`
	Undefined int     `yaml:"undefined"`
	Tolerance float64 `yaml:"tolerance"`
	Passed    bool    `yaml:"passed"`
}

func newReport(r recurrence.Report, tol float64) *Report {
	return &Report{
		MaxAlpha:  r.MaxAlpha,
		MeanAlpha: r.MeanAlpha,
		MaxBeta:   r.MaxBeta,
		MeanBeta:  r.MeanBeta,
		Undefined: r.Undefined,
		Tolerance: tol,
		Passed:    r.Passed(tol),
	}
}

// readInput decodes the Input read from path, or from stdin if path is "-".
func readInput(path string, stdin io.Reader) (in *Input, err error) {

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}

	in = &Input{}
	if err = yaml.Unmarshal(data, in); err != nil {
		return nil, fmt.Errorf("cannot parse input %s: %w", path, err)
	}

	return
}

func writeOutput(w io.Writer, out *Output) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	return enc.Close()
}
