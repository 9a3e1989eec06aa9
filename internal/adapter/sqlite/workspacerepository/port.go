// package workspacerepository holds the sqlite implementation of the
// workspace identity repository, including archive schema creation.
package workspacerepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/core/ports/secondary"
	"gitlab.com/aockit-2025.net/internal/domain"
	querybuilder "gitlab.com/aockit-2025.net/internal/utils"
)

var _ secondary.WorkspaceRepository = (*WorkspaceRepository)(nil)

// schema is the fixed archive layout. Checked here, not discovered at
// runtime: every column is declared once, next to the entity tables the
// repositories address by name.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS workspace_info (
		brigadista_id CHARACTER(36) NOT NULL,
		creation_date TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS puzzles (
		year INTEGER NOT NULL,
		day INTEGER NOT NULL,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		pt1_answer TEXT,
		pt2_answer TEXT,
		PRIMARY KEY (year, day)
	)`,
	`CREATE TABLE IF NOT EXISTS language_days (
		year INTEGER NOT NULL,
		day INTEGER NOT NULL,
		language TEXT NOT NULL,
		started BOOLEAN NOT NULL,
		finished_pt1 BOOLEAN NOT NULL,
		finished_pt2 BOOLEAN NOT NULL,
		PRIMARY KEY (year, day, language)
	)`,
	`CREATE TABLE IF NOT EXISTS runs (
		id CHARACTER(36) PRIMARY KEY,
		year INTEGER NOT NULL,
		day INTEGER NOT NULL,
		language TEXT NOT NULL,
		part INTEGER NOT NULL,
		status TEXT NOT NULL,
		answer TEXT,
		time_ns INTEGER,
		ran_at TIMESTAMP NOT NULL
	)`,
}

// WorkspaceRepository implements the WorkspaceRepository interface with sqlite
type WorkspaceRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewWorkspaceRepository creates a new sqlite workspace repository
func NewWorkspaceRepository(db *sqlx.DB, logger primary.Logger) *WorkspaceRepository {
	return &WorkspaceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTables creates the archive schema.
func (r *WorkspaceRepository) CreateTables(ctx context.Context) error {
	for _, ddl := range schema {
		if _, err := r.db.ExecContext(ctx, ddl); err != nil {
			r.logger.Error("Failed to create table", "error", err)
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

// SaveInfo inserts the identity row.
func (r *WorkspaceRepository) SaveInfo(ctx context.Context, info *domain.WorkspaceInfo) error {
	tbl := domain.GetWorkspaceInfoTable()
	query, args := querybuilder.NewQueryBuilder().
		InsertInto(tbl.TableName()).
		Columns(tbl.BrigadistaID, tbl.CreationDate).
		Values(info.BrigadistaID, info.CreationDate).
		Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save workspace info", "error", err)
		return fmt.Errorf("failed to save workspace info: %w", err)
	}
	return nil
}

// GetInfo retrieves the identity row and insists there is exactly one.
func (r *WorkspaceRepository) GetInfo(ctx context.Context) (*domain.WorkspaceInfo, error) {
	tbl := domain.GetWorkspaceInfoTable()
	query, args := querybuilder.NewQueryBuilder().
		Select(tbl.BrigadistaID, tbl.CreationDate).
		From(tbl.TableName()).
		Build()

	var rows []domain.WorkspaceInfo
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to get workspace info", "error", err)
		return nil, fmt.Errorf("failed to get workspace info: %w", err)
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("workspace_info should have exactly one row, got %d", len(rows))
	}
	return &rows[0], nil
}
