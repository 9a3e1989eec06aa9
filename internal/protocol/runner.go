package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/domain"
)

// echoThreshold is the number of buffered stdout lines after which the child's
// output starts streaming live, so long-running solutions can show progress
// without losing programmatic access to the final answer/timing lines.
const echoThreshold = 2

// Runner launches one child solution process per Execute call, feeds it the
// puzzle input on stdin and classifies the captured stdout against the
// two-line protocol. Child stderr is passed through unbuffered.
type Runner struct {
	logger primary.Logger
	out    io.Writer
	errOut io.Writer
	start  func(cmd *exec.Cmd) error
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithOutput redirects the live echo of child stdout.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) { r.out = w }
}

// WithStderr redirects the child stderr passthrough.
func WithStderr(w io.Writer) RunnerOption {
	return func(r *Runner) { r.errOut = w }
}

// WithStartFunc replaces the process launcher. Test seam.
func WithStartFunc(start func(cmd *exec.Cmd) error) RunnerOption {
	return func(r *Runner) { r.start = start }
}

// NewRunner creates a protocol runner.
func NewRunner(logger primary.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: logger,
		out:    os.Stdout,
		errOut: os.Stderr,
		start:  func(cmd *exec.Cmd) error { return cmd.Start() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type drainedOutput struct {
	text  string
	lines int
}

// Execute runs command + ["--part", part] in cwd with the contents of
// inputPath piped to stdin. A missing input file short-circuits to
// StatusInputMissing without spawning anything. A failure to establish the
// child's pipes or to launch it is returned as an error, fatal to this
// invocation only; every other deviation is folded into the result status.
func (r *Runner) Execute(ctx context.Context, command []string, part domain.Part, cwd string, inputPath string) (ExecutionResult, error) {
	if len(command) == 0 {
		return ExecutionResult{}, errors.New("protocol: empty command")
	}

	info, err := os.Stat(inputPath)
	if err != nil || !info.Mode().IsRegular() {
		return ExecutionResult{Status: StatusInputMissing}, nil
	}
	input, err := os.ReadFile(inputPath)
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("failed to read input %s: %w", inputPath, err)
	}

	argv := append(append([]string{}, command[1:]...), "--part", part.String())
	cmd := exec.CommandContext(ctx, command[0], argv...)
	cmd.Dir = cwd
	cmd.Stderr = r.errOut

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("could not open stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("could not open stdout: %w", err)
	}

	r.logger.Debug("Launching solution process",
		"command", command[0],
		"part", part.String(),
		"cwd", cwd)

	if err := r.start(cmd); err != nil {
		return ExecutionResult{}, fmt.Errorf("failed to launch %s: %w", command[0], err)
	}

	// The input write and the stdout drain run concurrently so a child that
	// fills its stdout pipe before consuming stdin cannot deadlock us, and
	// vice versa. Both are joined before the exit status is classified.
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		if _, werr := stdin.Write(input); werr != nil {
			// A child that exits without reading its input is judged by its
			// exit code and stdout shape, not by the broken pipe.
			r.logger.Debug("Input write interrupted", "error", werr)
		}
		if cerr := stdin.Close(); cerr != nil {
			r.logger.Debug("Could not close child stdin", "error", cerr)
		}
	}()

	drainDone := make(chan drainedOutput, 1)
	go func() {
		drainDone <- r.drainOutput(stdout)
	}()

	captured := <-drainDone
	<-writeDone
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return ExecutionResult{Status: StatusTimeout}, nil
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return ExecutionResult{Status: StatusProtocolError}, nil
		}
		return ExecutionResult{}, fmt.Errorf("failed waiting for %s: %w", command[0], waitErr)
	}

	return classify(captured), nil
}

// drainOutput accumulates the full child stdout while echoing lines beyond
// echoThreshold live. The first time the threshold is crossed everything
// buffered so far is flushed, then each further line streams as it arrives.
func (r *Runner) drainOutput(stdout io.Reader) drainedOutput {
	var buf strings.Builder
	lines := 0
	reader := bufio.NewReader(stdout)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			buf.WriteString(line)
			switch {
			case lines == echoThreshold:
				io.WriteString(r.out, buf.String()) //nolint:errcheck
			case lines > echoThreshold:
				io.WriteString(r.out, line) //nolint:errcheck
			}
			lines++
		}
		if err != nil {
			return drainedOutput{text: buf.String(), lines: lines}
		}
	}
}

// classify applies the two-line contract to a clean exit: exactly one line is
// the answer alone, exactly two lines are answer plus a timing line that must
// parse. The two-line shape is atomic, so a malformed timing line voids the
// whole result.
func classify(captured drainedOutput) ExecutionResult {
	if captured.lines != 1 && captured.lines != 2 {
		return ExecutionResult{Status: StatusProtocolError}
	}

	outLines := strings.Split(strings.TrimSpace(captured.text), "\n")
	switch len(outLines) {
	case 1:
		answer := outLines[0]
		return ExecutionResult{Status: StatusOk, Answer: &answer}
	case 2:
		answer := outLines[0]
		runningTime, unit, err := parseRunningTime(outLines[1])
		if err != nil {
			return ExecutionResult{Status: StatusProtocolError}
		}
		return ExecutionResult{
			Status:      StatusOk,
			Answer:      &answer,
			RunningTime: &runningTime,
			Unit:        &unit,
		}
	default:
		return ExecutionResult{Status: StatusProtocolError}
	}
}
