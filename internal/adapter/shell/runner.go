// Package shell executes auxiliary build/install commands on the host.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/core/ports/secondary"
)

var _ secondary.CommandRunner = (*Runner)(nil)

// Runner runs a command in a working directory with output passed straight
// through, so compiler diagnostics reach the user unmodified.
type Runner struct {
	logger primary.Logger
	out    io.Writer
	errOut io.Writer
}

func NewRunner(logger primary.Logger) *Runner {
	return &Runner{
		logger: logger,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// Run executes command in cwd and waits for it. A nonzero exit is returned
// as an error carrying the exit code.
func (r *Runner) Run(ctx context.Context, command []string, cwd string) error {
	if len(command) == 0 {
		return errors.New("shell: empty command")
	}

	r.logger.Debug("Running command", "command", command, "cwd", cwd)

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = cwd
	cmd.Stdout = r.out
	cmd.Stderr = r.errOut

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with code %d", command[0], exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s: %w", command[0], err)
	}
	return nil
}
