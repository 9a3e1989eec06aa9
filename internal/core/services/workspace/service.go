package workspace

import (
	"context"

	"gitlab.com/aockit-2025.net/internal/domain"
)

// IWorkspaceService manages the lifecycle of the workspace archive.
type IWorkspaceService interface {
	// Init creates the archive schema and mints the identity row.
	Init(ctx context.Context) (*domain.WorkspaceInfo, error)

	// Info retrieves the identity row of an initialized workspace.
	Info(ctx context.Context) (*domain.WorkspaceInfo, error)
}
