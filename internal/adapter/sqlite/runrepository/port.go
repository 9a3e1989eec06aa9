// package runrepository holds the sqlite implementation of the run
// repository.
package runrepository

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

var _ secondary.RunRepository = (*RunRepository)(nil)

// RunRepository implements the RunRepository interface with sqlite
type RunRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewRunRepository creates a new sqlite run repository
func NewRunRepository(db *sqlx.DB, logger primary.Logger) *RunRepository {
	return &RunRepository{
		db:     db,
		logger: logger,
	}
}

func runColumns(tbl domain.RunTable) []string {
	return []string{tbl.ID, tbl.Year, tbl.Day, tbl.Language, tbl.Part, tbl.Status, tbl.Answer, tbl.TimeNs, tbl.RanAt}
}

// SaveRun inserts a run record.
func (r *RunRepository) SaveRun(ctx context.Context, run *domain.Run) error {
	tbl := domain.GetRunTable()
	query, args := querybuilder.NewQueryBuilder().
		InsertInto(tbl.TableName()).
		Columns(runColumns(tbl)...).
		Values(
			run.ID.String(),
			run.Year,
			run.Day,
			run.Language,
			run.Part,
			run.Status,
			run.Answer,
			run.TimeNs,
			run.RanAt,
		).
		Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save run", "error", err)
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetBestRun retrieves the fastest OK run for (year, day, language, part).
func (r *RunRepository) GetBestRun(ctx context.Context, year, day int, language string, part domain.Part) (*domain.Run, error) {
	tbl := domain.GetRunTable()
	query, args := querybuilder.NewQueryBuilder().
		Select(runColumns(tbl)...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.Year), year).
		And(fmt.Sprintf("%s = ?", tbl.Day), day).
		And(fmt.Sprintf("%s = ?", tbl.Language), language).
		And(fmt.Sprintf("%s = ?", tbl.Part), int(part)).
		And(fmt.Sprintf("%s = ?", tbl.Status), domain.RunStatusOk).
		And(fmt.Sprintf("%s IS NOT NULL", tbl.TimeNs)).
		OrderBy(tbl.TimeNs, true).
		Limit(1).
		Build()

	var run domain.Run
	if err := r.db.GetContext(ctx, &run, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get best run", "error", err)
		return nil, fmt.Errorf("failed to get best run: %w", err)
	}
	return &run, nil
}

// FetchRunHistory retrieves the runs for a (year, day) with puzzle titles,
// newest first.
func (r *RunRepository) FetchRunHistory(ctx context.Context, year, day int) ([]*secondary.RunRecord, error) {
	runTbl := domain.GetRunTable()
	puzzleTbl := domain.GetPuzzleTable()

	cols := make([]string, 0, 10)
	for _, col := range runColumns(runTbl) {
		cols = append(cols, "r."+col)
	}
	cols = append(cols, fmt.Sprintf("p.%s AS title", puzzleTbl.Title))

	query, args := querybuilder.NewQueryBuilder().
		Select(cols...).
		From(runTbl.TableName()+" r").
		Join(querybuilder.JoinTypeLeft, puzzleTbl.TableName(), "p",
			fmt.Sprintf("p.%s = r.%s AND p.%s = r.%s", puzzleTbl.Year, runTbl.Year, puzzleTbl.Day, runTbl.Day)).
		Where(fmt.Sprintf("r.%s = ?", runTbl.Year), year).
		And(fmt.Sprintf("r.%s = ?", runTbl.Day), day).
		OrderBy("r."+runTbl.RanAt, false).
		Build()

	type runRecordRow struct {
		domain.Run
		Title sql.NullString `db:"title"`
	}

	rows := make([]runRecordRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to fetch run history", "error", err)
		return nil, fmt.Errorf("failed to fetch run history: %w", err)
	}

	records := make([]*secondary.RunRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &secondary.RunRecord{
			Run:   row.Run,
			Title: row.Title.String,
		})
	}
	return records, nil
}

// UpdateAnswer rewrites the recorded outcome of an existing run: the WHERE
// clause is the id key, the SET clause is the mutable outcome columns.
func (r *RunRepository) UpdateAnswer(ctx context.Context, run *domain.Run) error {
	tbl := domain.GetRunTable()
	query, args := querybuilder.NewQueryBuilder().
		Update(tbl.TableName(), querybuilder.UpdateData{
			tbl.Status: run.Status,
			tbl.Answer: run.Answer,
			tbl.TimeNs: run.TimeNs,
		}).
		Where(fmt.Sprintf("%s = ?", tbl.ID), run.ID.String()).
		Build()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update run", "error", err)
		return fmt.Errorf("failed to update run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("run not found: %s", run.ID)
	}
	return nil
}
