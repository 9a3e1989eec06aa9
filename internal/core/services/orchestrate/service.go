package orchestrate

import (
	"context"

	"gitlab.com/aockit-2025.net/internal/domain"
)

// IOrchestrator drives solutions over the execution protocol, in test mode
// against declared fixtures and in run mode against the real cached input.
type IOrchestrator interface {
	// Test runs every declared fixture for language x years x days x parts.
	// Days without a solution source or without fixtures are skipped silently.
	// One report line is printed per test case; cases never retry and a
	// failing case never stops the sweep.
	Test(ctx context.Context, language string, years, days []int, parts []domain.Part) error

	// Run executes each selected part once against the real cached input,
	// records the outcome in the run archive and reconciles the answer against
	// the confirmed one when it is known.
	Run(ctx context.Context, language string, years, days []int, parts []domain.Part) error
}
