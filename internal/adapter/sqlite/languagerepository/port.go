// package languagerepository holds the sqlite implementation of the
// language-day repository.
package languagerepository

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

var _ secondary.LanguageRepository = (*LanguageRepository)(nil)

// LanguageRepository implements the LanguageRepository interface with sqlite
type LanguageRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewLanguageRepository creates a new sqlite language repository
func NewLanguageRepository(db *sqlx.DB, logger primary.Logger) *LanguageRepository {
	return &LanguageRepository{
		db:     db,
		logger: logger,
	}
}

// SaveLanguageDay inserts a language-day row.
func (r *LanguageRepository) SaveLanguageDay(ctx context.Context, languageDay *domain.LanguageDay) error {
	tbl := domain.GetLanguageDayTable()
	query, args := querybuilder.NewQueryBuilder().
		InsertInto(tbl.TableName()).
		Columns(tbl.Year, tbl.Day, tbl.Language, tbl.Started, tbl.FinishedPt1, tbl.FinishedPt2).
		Values(
			languageDay.Year,
			languageDay.Day,
			languageDay.Language,
			languageDay.Started,
			languageDay.FinishedPt1,
			languageDay.FinishedPt2,
		).
		Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save language day", "error", err)
		return fmt.Errorf("failed to save language day: %w", err)
	}
	return nil
}

// GetLanguageDay retrieves the row for (year, day, language). Nil when absent.
func (r *LanguageRepository) GetLanguageDay(ctx context.Context, year, day int, language string) (*domain.LanguageDay, error) {
	tbl := domain.GetLanguageDayTable()
	query, args := querybuilder.NewQueryBuilder().
		Select(tbl.Year, tbl.Day, tbl.Language, tbl.Started, tbl.FinishedPt1, tbl.FinishedPt2).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.Year), year).
		And(fmt.Sprintf("%s = ?", tbl.Day), day).
		And(fmt.Sprintf("%s = ?", tbl.Language), language).
		Limit(1).
		Build()

	var languageDay domain.LanguageDay
	if err := r.db.GetContext(ctx, &languageDay, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get language day", "error", err)
		return nil, fmt.Errorf("failed to get language day: %w", err)
	}
	return &languageDay, nil
}

// FetchAllLanguageDays retrieves every language-day row.
func (r *LanguageRepository) FetchAllLanguageDays(ctx context.Context) ([]*domain.LanguageDay, error) {
	tbl := domain.GetLanguageDayTable()
	query, args := querybuilder.NewQueryBuilder().
		Select(tbl.Year, tbl.Day, tbl.Language, tbl.Started, tbl.FinishedPt1, tbl.FinishedPt2).
		From(tbl.TableName()).
		OrderBy(tbl.Year, true).
		OrderBy(tbl.Day, true).
		Build()

	rows := make([]*domain.LanguageDay, 0)
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to fetch language days", "error", err)
		return nil, fmt.Errorf("failed to fetch language days: %w", err)
	}
	return rows, nil
}

// UpdateFlags rewrites the non-key columns of the (year, day, language) row:
// the WHERE clause is the key, the SET clause is everything else.
func (r *LanguageRepository) UpdateFlags(ctx context.Context, languageDay *domain.LanguageDay) error {
	tbl := domain.GetLanguageDayTable()
	query, args := querybuilder.NewQueryBuilder().
		Update(tbl.TableName(), querybuilder.UpdateData{
			tbl.Started:     languageDay.Started,
			tbl.FinishedPt1: languageDay.FinishedPt1,
			tbl.FinishedPt2: languageDay.FinishedPt2,
		}).
		Where(fmt.Sprintf("%s = ?", tbl.Year), languageDay.Year).
		And(fmt.Sprintf("%s = ?", tbl.Day), languageDay.Day).
		And(fmt.Sprintf("%s = ?", tbl.Language), languageDay.Language).
		Build()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update language day", "error", err)
		return fmt.Errorf("failed to update language day: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("language day not found: %s %d day %d",
			languageDay.Language, languageDay.Year, languageDay.Day)
	}
	return nil
}

// DeleteLanguageDay removes the row for (year, day, language).
func (r *LanguageRepository) DeleteLanguageDay(ctx context.Context, year, day int, language string) error {
	tbl := domain.GetLanguageDayTable()
	query, args := querybuilder.NewQueryBuilder().
		Delete(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.Year), year).
		And(fmt.Sprintf("%s = ?", tbl.Day), day).
		And(fmt.Sprintf("%s = ?", tbl.Language), language).
		Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to delete language day", "error", err)
		return fmt.Errorf("failed to delete language day: %w", err)
	}
	return nil
}
