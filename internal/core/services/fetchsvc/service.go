package fetchsvc

import (
	"context"

	"gitlab.com/aockit-2025.net/internal/domain"
)

// IFetchService downloads puzzle material and records it in the archive.
type IFetchService interface {
	// FetchDay downloads the statement and input for (year, day), caches both
	// on disk and upserts the puzzle row. Material already present is left
	// alone unless force is set; a fully solved, fully cached day short
	// circuits entirely.
	FetchDay(ctx context.Context, year, day int, force bool) (*domain.Puzzle, error)
}
