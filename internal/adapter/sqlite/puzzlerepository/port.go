// package puzzlerepository holds the sqlite implementation of the puzzle
// repository.
package puzzlerepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/core/ports/secondary"
	"gitlab.com/aockit-2025.net/internal/domain"
	querybuilder "gitlab.com/aockit-2025.net/internal/utils"
)

var _ secondary.PuzzleRepository = (*PuzzleRepository)(nil)

// PuzzleRepository implements the PuzzleRepository interface with sqlite
type PuzzleRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewPuzzleRepository creates a new sqlite puzzle repository
func NewPuzzleRepository(db *sqlx.DB, logger primary.Logger) *PuzzleRepository {
	return &PuzzleRepository{
		db:     db,
		logger: logger,
	}
}

// SavePuzzle inserts a puzzle, replacing the existing (year, day) row so
// re-fetching a statement refreshes its answers.
func (r *PuzzleRepository) SavePuzzle(ctx context.Context, puzzle *domain.Puzzle) error {
	tbl := domain.GetPuzzleTable()
	query, args := querybuilder.NewQueryBuilder().
		InsertInto(tbl.TableName()).
		OrReplace().
		Columns(tbl.Year, tbl.Day, tbl.Title, tbl.URL, tbl.Pt1Answer, tbl.Pt2Answer).
		Values(puzzle.Year, puzzle.Day, puzzle.Title, puzzle.URL, puzzle.Pt1Answer, puzzle.Pt2Answer).
		Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save puzzle", "error", err)
		return fmt.Errorf("failed to save puzzle: %w", err)
	}
	return nil
}

// GetPuzzle retrieves a puzzle by its (year, day) key. Nil when absent.
func (r *PuzzleRepository) GetPuzzle(ctx context.Context, year, day int) (*domain.Puzzle, error) {
	tbl := domain.GetPuzzleTable()
	query, args := querybuilder.NewQueryBuilder().
		Select(tbl.Year, tbl.Day, tbl.Title, tbl.URL, tbl.Pt1Answer, tbl.Pt2Answer).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.Year), year).
		And(fmt.Sprintf("%s = ?", tbl.Day), day).
		Limit(1).
		Build()

	var puzzle domain.Puzzle
	if err := r.db.GetContext(ctx, &puzzle, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get puzzle", "error", err)
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}
	return &puzzle, nil
}

// FetchAllPuzzles retrieves every known puzzle ordered by (year, day).
func (r *PuzzleRepository) FetchAllPuzzles(ctx context.Context) ([]*domain.Puzzle, error) {
	tbl := domain.GetPuzzleTable()
	query, args := querybuilder.NewQueryBuilder().
		Select(tbl.Year, tbl.Day, tbl.Title, tbl.URL, tbl.Pt1Answer, tbl.Pt2Answer).
		From(tbl.TableName()).
		OrderBy(tbl.Year, true).
		OrderBy(tbl.Day, true).
		Build()

	puzzles := make([]*domain.Puzzle, 0)
	if err := r.db.SelectContext(ctx, &puzzles, query, args...); err != nil {
		r.logger.Error("Failed to fetch puzzles", "error", err)
		return nil, fmt.Errorf("failed to fetch puzzles: %w", err)
	}
	return puzzles, nil
}

// UpdateAnswers rewrites the non-key columns of the (year, day) row: the
// WHERE clause is the key, the SET clause is everything else.
func (r *PuzzleRepository) UpdateAnswers(ctx context.Context, puzzle *domain.Puzzle) error {
	tbl := domain.GetPuzzleTable()
	query, args := querybuilder.NewQueryBuilder().
		Update(tbl.TableName(), querybuilder.UpdateData{
			tbl.Title:     puzzle.Title,
			tbl.URL:       puzzle.URL,
			tbl.Pt1Answer: puzzle.Pt1Answer,
			tbl.Pt2Answer: puzzle.Pt2Answer,
		}).
		Where(fmt.Sprintf("%s = ?", tbl.Year), puzzle.Year).
		And(fmt.Sprintf("%s = ?", tbl.Day), puzzle.Day).
		Build()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update puzzle answers", "error", err)
		return fmt.Errorf("failed to update puzzle answers: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("puzzle not found: %d day %d", puzzle.Year, puzzle.Day)
	}
	return nil
}
