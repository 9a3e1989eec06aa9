package secondary

import (
	"context"

	"gitlab.com/aockit-2025.net/internal/domain"
	"gitlab.com/aockit-2025.net/internal/protocol"
)

// ProtocolExecutor runs one child solution process against one input file.
type ProtocolExecutor interface {
	// Execute launches command + ["--part", part] in cwd, feeding the file at
	// inputPath to stdin, and classifies the outcome. An error is returned
	// only for launch failures; contract violations live in the result.
	Execute(ctx context.Context, command []string, part domain.Part, cwd string, inputPath string) (protocol.ExecutionResult, error)
}

// CommandRunner executes an auxiliary command (build/install steps) in a
// working directory, passing its output straight through.
type CommandRunner interface {
	Run(ctx context.Context, command []string, cwd string) error
}
