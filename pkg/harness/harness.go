// Package harness is the solution-side half of the aockit execution protocol
// for Go solutions kept inside a Go module: call RunSolutions from main and
// the contract is satisfied. Required --part selector, optional forwarded
// --args, input read from stdin, answer on the first stdout line, "RT <ns> ns"
// on the second, exit 0. The embedded Go template inlines the same contract
// instead of importing this package, so a scaffolded day builds standalone
// with no module on the user's disk.
package harness

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// SolveFn receives the full puzzle input plus any fixture-forwarded arguments
// and returns the answer to print.
type SolveFn func(input string, args []string) (string, error)

// RunSolutions parses the protocol arguments, dispatches to the selected
// part and prints the two protocol lines. Usage errors exit 2 before any
// work begins; solver errors exit 1.
func RunSolutions(solvePt1, solvePt2 SolveFn) {
	os.Exit(runSolutions(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, solvePt1, solvePt2))
}

func runSolutions(args []string, stdin io.Reader, stdout, stderr io.Writer, solvePt1, solvePt2 SolveFn) int {
	part, extra, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	solve := solvePt1
	if part == 2 {
		solve = solvePt2
	}

	started := time.Now()
	answer, err := solve(string(input), extra)
	elapsed := time.Since(started).Nanoseconds()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintf(stdout, "%s\n", answer)
	fmt.Fprintf(stdout, "RT %d ns\n", elapsed)
	return 0
}

func parseArgs(args []string) (int, []string, error) {
	part := 0
	var extra []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-p", "--part":
			i++
			if i >= len(args) {
				return 0, nil, errors.New("missing value for --part")
			}
			value, err := strconv.Atoi(args[i])
			if err != nil || (value != 1 && value != 2) {
				return 0, nil, fmt.Errorf("part %q does not exist, valid parts are 1 and 2", args[i])
			}
			part = value
		case "-a", "--args":
			// Forwarded values run until the next flag token, so --part may
			// appear on either side of --args.
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				extra = append(extra, args[i])
			}
		default:
			return 0, nil, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	if part == 0 {
		return 0, nil, errors.New("--part is required")
	}
	return part, extra, nil
}
