// hashchart renders hash benchmark results (time vs. line count, one series
// per algorithm) to an image, and can produce those results itself.
//
// Usage:
//
//	hashchart                                  # results/konstitucija.txt -> results/konstitucija.png
//	hashchart render --variant headerless      # two column file, single series
//	hashchart render --output chart.html       # interactive echarts page
//	hashchart bench --corpus konstitucija.txt  # measure hashers, write results/konstitucija.txt
//	hashchart describe                         # tree summary of a results file
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/colorfulnotion/hashchart/charterrors"
)

const (
	exitOK           = 0
	exitMissingInput = 1
	exitFailure      = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(context.Background())
	code := exitCode(err)
	if err != nil && code != exitMissingInput {
		if charterrors.Classify(err) != nil {
			fmt.Fprintf(stderr, "hashchart: %v [%s %s]\n", err, charterrors.GetErrorCode(err), charterrors.GetErrorName(err))
		} else {
			fmt.Fprintf(stderr, "hashchart: %v\n", err)
		}
	}
	return code
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, charterrors.ErrMissingInput):
		return exitMissingInput
	default:
		return exitFailure
	}
}
