package secondary

import (
	"context"

	"gitlab.com/aockit-2025.net/internal/domain"
)

// PuzzleRepository stores statement metadata and confirmed answers per day.
type PuzzleRepository interface {
	// SavePuzzle inserts a puzzle row, replacing any existing (year, day) row.
	SavePuzzle(ctx context.Context, puzzle *domain.Puzzle) error

	// GetPuzzle retrieves a puzzle by its (year, day) key. Nil when absent.
	GetPuzzle(ctx context.Context, year, day int) (*domain.Puzzle, error)

	// FetchAllPuzzles retrieves every known puzzle.
	FetchAllPuzzles(ctx context.Context) ([]*domain.Puzzle, error)

	// UpdateAnswers updates the confirmed answers of an existing puzzle.
	UpdateAnswers(ctx context.Context, puzzle *domain.Puzzle) error
}
