package fetchsvc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/core/ports/secondary"
	"gitlab.com/aockit-2025.net/internal/domain"
	"gitlab.com/aockit-2025.net/internal/sled"
)

var _ IFetchService = (*FetchService)(nil)

// FetchService implements the FetchService interface
type FetchService struct {
	fetcher    secondary.PuzzleFetcher
	puzzleRepo secondary.PuzzleRepository
	cache      sled.CacheSled
	logger     primary.Logger
}

// NewFetchService creates a new fetch service
func NewFetchService(
	fetcher secondary.PuzzleFetcher,
	puzzleRepo secondary.PuzzleRepository,
	cache sled.CacheSled,
	logger primary.Logger,
) *FetchService {
	return &FetchService{
		fetcher:    fetcher,
		puzzleRepo: puzzleRepo,
		cache:      cache,
		logger:     logger,
	}
}

// FetchDay downloads the statement and input for (year, day).
func (s *FetchService) FetchDay(ctx context.Context, year, day int, force bool) (*domain.Puzzle, error) {
	puzzle, err := s.puzzleRepo.GetPuzzle(ctx, year, day)
	if err != nil {
		return nil, err
	}

	if !force && puzzle != nil && puzzle.Solved() == 2 &&
		fileExists(s.cache.StatementPath(year, day)) && fileExists(s.cache.InputPath(year, day)) {
		s.logger.Debug("Day already complete, skipping fetch", "year", year, "day", day)
		return puzzle, nil
	}

	page, err := s.fetcher.FetchStatement(ctx, year, day)
	if err != nil {
		s.logger.Error("Failed to fetch statement", "year", year, "day", day, "error", err)
		return nil, err
	}

	if err := writeCached(s.cache.StatementPath(year, day), []byte(page.Statement)); err != nil {
		return nil, fmt.Errorf("failed to cache statement: %w", err)
	}

	puzzle = &domain.Puzzle{
		Year:      year,
		Day:       day,
		Title:     page.Title,
		URL:       page.URL,
		Pt1Answer: page.Pt1Answer,
		Pt2Answer: page.Pt2Answer,
	}
	if err := s.puzzleRepo.SavePuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	inputPath := s.cache.InputPath(year, day)
	if force || !fileExists(inputPath) {
		input, err := s.fetcher.FetchInput(ctx, year, day)
		if err != nil {
			s.logger.Error("Failed to fetch input", "year", year, "day", day, "error", err)
			return nil, err
		}
		if err := writeCached(inputPath, []byte(input)); err != nil {
			return nil, fmt.Errorf("failed to cache input: %w", err)
		}
	} else {
		s.logger.Debug("Input already cached, skipping", "year", year, "day", day)
	}

	s.logger.Info("Fetched day", "year", year, "day", day, "title", puzzle.Title)
	return puzzle, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func writeCached(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
