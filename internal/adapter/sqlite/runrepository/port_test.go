package runrepository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/aockit-2025.net/internal/adapter/sqlite"
	"gitlab.com/aockit-2025.net/internal/adapter/sqlite/puzzlerepository"
	"gitlab.com/aockit-2025.net/internal/adapter/sqlite/workspacerepository"
	"gitlab.com/aockit-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

type fixture struct {
	runs    *RunRepository
	puzzles *puzzlerepository.PuzzleRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "archive.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, workspacerepository.NewWorkspaceRepository(db, nopLogger{}).CreateTables(context.Background()))
	return fixture{
		runs:    NewRunRepository(db, nopLogger{}),
		puzzles: puzzlerepository.NewPuzzleRepository(db, nopLogger{}),
	}
}

func okRun(year, day int, language string, part domain.Part, answer string, timeNs int64, ranAt time.Time) *domain.Run {
	run := domain.NewRun(year, day, language, part, domain.RunStatusOk)
	run.Answer = &answer
	run.TimeNs = &timeNs
	run.RanAt = ranAt
	return run
}

func TestSaveRunAndGetBestRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, f.runs.SaveRun(ctx, okRun(2024, 7, "go", domain.Part1, "3749", 900, now)))
	require.NoError(t, f.runs.SaveRun(ctx, okRun(2024, 7, "go", domain.Part1, "3749", 400, now.Add(time.Minute))))
	require.NoError(t, f.runs.SaveRun(ctx, okRun(2024, 7, "go", domain.Part2, "11387", 100, now)))

	slow := domain.NewRun(2024, 7, "go", domain.Part1, domain.RunStatusTimeout)
	require.NoError(t, f.runs.SaveRun(ctx, slow))

	best, err := f.runs.GetBestRun(ctx, 2024, 7, "go", domain.Part1)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.NotNil(t, best.TimeNs)
	assert.Equal(t, int64(400), *best.TimeNs, "the fastest OK run wins, failures never place")
}

func TestGetBestRunAbsent(t *testing.T) {
	f := newFixture(t)
	best, err := f.runs.GetBestRun(context.Background(), 2024, 7, "go", domain.Part1)
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestFetchRunHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, f.puzzles.SavePuzzle(ctx, &domain.Puzzle{
		Year: 2024, Day: 7, Title: "Day 7: Bridge Repair", URL: "u",
	}))
	require.NoError(t, f.runs.SaveRun(ctx, okRun(2024, 7, "go", domain.Part1, "3749", 900, now.Add(-time.Hour))))
	require.NoError(t, f.runs.SaveRun(ctx, okRun(2024, 7, "python", domain.Part1, "3749", 12000, now)))
	require.NoError(t, f.runs.SaveRun(ctx, okRun(2024, 8, "go", domain.Part1, "x", 1, now)))

	records, err := f.runs.FetchRunHistory(ctx, 2024, 7)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "python", records[0].Run.Language, "newest first")
	assert.Equal(t, "Day 7: Bridge Repair", records[0].Title)
	assert.Equal(t, "go", records[1].Run.Language)
}

func TestFetchRunHistoryWithoutPuzzleRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.runs.SaveRun(ctx, okRun(2024, 9, "go", domain.Part1, "a", 1, time.Now())))

	records, err := f.runs.FetchRunHistory(ctx, 2024, 9)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Title, "left join tolerates a missing puzzle row")
}

func TestUpdateAnswer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	run := domain.NewRun(2024, 7, "go", domain.Part1, domain.RunStatusProtocolError)
	require.NoError(t, f.runs.SaveRun(ctx, run))

	answer := "3749"
	timeNs := int64(512)
	run.Status = domain.RunStatusOk
	run.Answer = &answer
	run.TimeNs = &timeNs
	require.NoError(t, f.runs.UpdateAnswer(ctx, run))

	best, err := f.runs.GetBestRun(ctx, 2024, 7, "go", domain.Part1)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, run.ID, best.ID)
	require.NotNil(t, best.Answer)
	assert.Equal(t, "3749", *best.Answer)
}

func TestUpdateAnswerMissingRow(t *testing.T) {
	f := newFixture(t)
	err := f.runs.UpdateAnswer(context.Background(), domain.NewRun(2024, 7, "go", domain.Part1, domain.RunStatusOk))
	assert.Error(t, err)
}
