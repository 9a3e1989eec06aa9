package scaffold

import (
	"context"
	"fmt"

	"gitlab.com/aockit-2025.net/internal/boiler"
	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/core/ports/secondary"
	"gitlab.com/aockit-2025.net/internal/core/services/fetchsvc"
	"gitlab.com/aockit-2025.net/internal/domain"
	"gitlab.com/aockit-2025.net/internal/langs"
	"gitlab.com/aockit-2025.net/internal/static/errs"
)

var _ IScaffoldService = (*ScaffoldService)(nil)

// ScaffoldService implements the ScaffoldService interface
type ScaffoldService struct {
	fetchService fetchsvc.IFetchService
	languageRepo secondary.LanguageRepository
	langMap      *langs.LangMap
	root         string
	logger       primary.Logger
}

// NewScaffoldService creates a new scaffold service
func NewScaffoldService(
	fetchService fetchsvc.IFetchService,
	languageRepo secondary.LanguageRepository,
	langMap *langs.LangMap,
	root string,
	logger primary.Logger,
) *ScaffoldService {
	return &ScaffoldService{
		fetchService: fetchService,
		languageRepo: languageRepo,
		langMap:      langMap,
		root:         root,
		logger:       logger,
	}
}

// StartDay fetches the day if needed and instantiates the language template.
func (s *ScaffoldService) StartDay(ctx context.Context, language string, year, day int, force bool) (string, error) {
	spec, err := s.langMap.Get(language)
	if err != nil {
		return "", err
	}

	existing, err := s.languageRepo.GetLanguageDay(ctx, year, day, spec.Name)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.Started && !force {
		return "", fmt.Errorf("%w: %s %d day %d", errs.AlreadyStarted, spec.Name, year, day)
	}

	puzzle, err := s.fetchService.FetchDay(ctx, year, day, false)
	if err != nil {
		return "", err
	}

	runner := langs.NewRunner(spec, s.root)
	furnace := boiler.NewCodeFurnace(spec, runner, s.logger)
	path, err := furnace.Start(year, day, puzzle.Title, puzzle.URL, force)
	if err != nil {
		s.logger.Error("Failed to scaffold day", "language", spec.Name, "year", year, "day", day, "error", err)
		return "", err
	}

	if existing == nil {
		languageDay := &domain.LanguageDay{
			Year:     year,
			Day:      day,
			Language: spec.Name,
			Started:  true,
		}
		if err := s.languageRepo.SaveLanguageDay(ctx, languageDay); err != nil {
			return "", err
		}
	} else if !existing.Started {
		existing.Started = true
		if err := s.languageRepo.UpdateFlags(ctx, existing); err != nil {
			return "", err
		}
	}

	s.logger.Info("Day started", "language", spec.Name, "year", year, "day", day, "path", path)
	return path, nil
}
