package status

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/core/ports/secondary"
	"gitlab.com/aockit-2025.net/internal/domain"
	"gitlab.com/aockit-2025.net/internal/sled"
)

var _ IStatusService = (*StatusService)(nil)

// StatusService implements the StatusService interface
type StatusService struct {
	workspaceRepo secondary.WorkspaceRepository
	puzzleRepo    secondary.PuzzleRepository
	runRepo       secondary.RunRepository
	cache         sled.CacheSled
	logger        primary.Logger
}

// NewStatusService creates a new status service
func NewStatusService(
	workspaceRepo secondary.WorkspaceRepository,
	puzzleRepo secondary.PuzzleRepository,
	runRepo secondary.RunRepository,
	cache sled.CacheSled,
	logger primary.Logger,
) *StatusService {
	return &StatusService{
		workspaceRepo: workspaceRepo,
		puzzleRepo:    puzzleRepo,
		runRepo:       runRepo,
		cache:         cache,
		logger:        logger,
	}
}

// Show renders the cached statement plus the confirmed answers.
func (s *StatusService) Show(ctx context.Context, year, day int) (string, error) {
	statement, err := os.ReadFile(s.cache.StatementPath(year, day))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("statement for %d day %d is not cached, fetch it first", year, day)
		}
		return "", fmt.Errorf("failed to read cached statement: %w", err)
	}

	var b strings.Builder
	b.Write(statement)
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}

	puzzle, err := s.puzzleRepo.GetPuzzle(ctx, year, day)
	if err != nil {
		return "", err
	}
	if puzzle != nil {
		for _, part := range domain.AllParts {
			if answer := puzzle.AnswerFor(part); answer != nil {
				fmt.Fprintf(&b, "\nYour puzzle answer for part %s was %s.", part, *answer)
			}
		}
		if puzzle.Solved() > 0 {
			b.WriteString("\n")
		}
	}

	history, err := s.runRepo.FetchRunHistory(ctx, year, day)
	if err != nil {
		return "", err
	}
	if len(history) > 0 {
		b.WriteString("\nRuns:\n")
		for _, record := range history {
			fmt.Fprintf(&b, "  %s pt%d %s %s%s\n",
				record.Run.RanAt.Format("2006-01-02 15:04"),
				record.Run.Part,
				record.Run.Language,
				describeOutcome(&record.Run),
				describeTime(&record.Run))
		}
	}
	return b.String(), nil
}

func describeOutcome(run *domain.Run) string {
	if run.Status == domain.RunStatusOk && run.Answer != nil {
		return *run.Answer
	}
	return string(run.Status)
}

func describeTime(run *domain.Run) string {
	if run.TimeNs == nil {
		return ""
	}
	return fmt.Sprintf(" (%d ns)", *run.TimeNs)
}

// Summary renders the identity line and a per-year star grid.
func (s *StatusService) Summary(ctx context.Context) (string, error) {
	info, err := s.workspaceRepo.GetInfo(ctx)
	if err != nil {
		return "", err
	}

	puzzles, err := s.puzzleRepo.FetchAllPuzzles(ctx)
	if err != nil {
		return "", err
	}

	byYear := make(map[int][]*domain.Puzzle)
	for _, puzzle := range puzzles {
		byYear[puzzle.Year] = append(byYear[puzzle.Year], puzzle)
	}
	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	var b strings.Builder
	fmt.Fprintf(&b, "aockit workspace %s, initialized %s\n", info.BrigadistaID, info.CreationDate.Format("2006-01-02"))

	total := 0
	for _, year := range years {
		grid := []byte(strings.Repeat(".", 25))
		stars := 0
		for _, puzzle := range byYear[year] {
			if puzzle.Day < 1 || puzzle.Day > 25 {
				continue
			}
			switch puzzle.Solved() {
			case 1:
				grid[puzzle.Day-1] = '*'
				stars++
			case 2:
				grid[puzzle.Day-1] = '#'
				stars += 2
			}
		}
		total += stars
		fmt.Fprintf(&b, "%d  [%s]  %d star(s)\n", year, grid, stars)
	}
	fmt.Fprintf(&b, "total: %d star(s)\n", total)
	return b.String(), nil
}
