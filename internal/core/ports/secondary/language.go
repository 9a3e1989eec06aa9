package secondary

import (
	"context"

	"gitlab.com/aockit-2025.net/internal/domain"
)

// LanguageRepository tracks which (year, day) has been scaffolded per language.
type LanguageRepository interface {
	// SaveLanguageDay inserts a language-day row.
	SaveLanguageDay(ctx context.Context, languageDay *domain.LanguageDay) error

	// GetLanguageDay retrieves the row for (year, day, language). Nil when absent.
	GetLanguageDay(ctx context.Context, year, day int, language string) (*domain.LanguageDay, error)

	// FetchAllLanguageDays retrieves every language-day row.
	FetchAllLanguageDays(ctx context.Context) ([]*domain.LanguageDay, error)

	// UpdateFlags updates started/finished flags keyed by (year, day, language).
	UpdateFlags(ctx context.Context, languageDay *domain.LanguageDay) error

	// DeleteLanguageDay removes the row for (year, day, language).
	DeleteLanguageDay(ctx context.Context, year, day int, language string) error
}
