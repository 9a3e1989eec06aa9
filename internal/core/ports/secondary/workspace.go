package secondary

import (
	"context"

	"gitlab.com/aockit-2025.net/internal/domain"
)

// WorkspaceRepository manages the singleton identity row of the archive.
type WorkspaceRepository interface {
	// CreateTables creates the archive schema.
	CreateTables(ctx context.Context) error

	// SaveInfo inserts the identity row.
	SaveInfo(ctx context.Context, info *domain.WorkspaceInfo) error

	// GetInfo retrieves the identity row. The archive holds exactly one; an
	// error is returned otherwise.
	GetInfo(ctx context.Context) (*domain.WorkspaceInfo, error)
}
