package workspace

import (
	"context"
	"fmt"

	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/core/ports/secondary"
	"gitlab.com/aockit-2025.net/internal/domain"
)

var _ IWorkspaceService = (*WorkspaceService)(nil)

// WorkspaceService implements the WorkspaceService interface
type WorkspaceService struct {
	workspaceRepo secondary.WorkspaceRepository
	logger        primary.Logger
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(workspaceRepo secondary.WorkspaceRepository, logger primary.Logger) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

// Init creates the archive schema and mints the identity row.
func (s *WorkspaceService) Init(ctx context.Context) (*domain.WorkspaceInfo, error) {
	if err := s.workspaceRepo.CreateTables(ctx); err != nil {
		s.logger.Error("Failed to create archive tables", "error", err)
		return nil, fmt.Errorf("failed to create archive tables: %w", err)
	}

	info := domain.NewWorkspaceInfo()
	if err := s.workspaceRepo.SaveInfo(ctx, info); err != nil {
		s.logger.Error("Failed to save workspace info", "error", err)
		return nil, fmt.Errorf("failed to save workspace info: %w", err)
	}

	s.logger.Info("Workspace initialized", "brigadistaId", info.BrigadistaID)
	return info, nil
}

// Info retrieves the identity row of an initialized workspace.
func (s *WorkspaceService) Info(ctx context.Context) (*domain.WorkspaceInfo, error) {
	info, err := s.workspaceRepo.GetInfo(ctx)
	if err != nil {
		s.logger.Error("Failed to get workspace info", "error", err)
		return nil, fmt.Errorf("failed to get workspace info: %w", err)
	}
	return info, nil
}
