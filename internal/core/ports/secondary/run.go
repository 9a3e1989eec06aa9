package secondary

import (
	"context"

	"gitlab.com/aockit-2025.net/internal/domain"
)

// RunRecord is a run joined with its puzzle title, for status reporting.
type RunRecord struct {
	Run   domain.Run
	Title string
}

// RunRepository records protocol invocations against real puzzle inputs.
type RunRepository interface {
	// SaveRun inserts a run record.
	SaveRun(ctx context.Context, run *domain.Run) error

	// GetBestRun retrieves the fastest OK run for (year, day, language, part).
	// Nil when no OK run exists.
	GetBestRun(ctx context.Context, year, day int, language string, part domain.Part) (*domain.Run, error)

	// FetchRunHistory retrieves runs for a (year, day) with puzzle titles,
	// newest first.
	FetchRunHistory(ctx context.Context, year, day int) ([]*RunRecord, error)

	// UpdateAnswer rewrites the recorded answer and timing of an existing run,
	// keyed by id.
	UpdateAnswer(ctx context.Context, run *domain.Run) error
}
