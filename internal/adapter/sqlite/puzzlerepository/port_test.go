package puzzlerepository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/aockit-2025.net/internal/adapter/sqlite"
	"gitlab.com/aockit-2025.net/internal/adapter/sqlite/workspacerepository"
	"gitlab.com/aockit-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newRepo(t *testing.T) *PuzzleRepository {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "archive.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, workspacerepository.NewWorkspaceRepository(db, nopLogger{}).CreateTables(context.Background()))
	return NewPuzzleRepository(db, nopLogger{})
}

func strPtr(s string) *string { return &s }

func TestGetPuzzleAbsent(t *testing.T) {
	repo := newRepo(t)
	puzzle, err := repo.GetPuzzle(context.Background(), 2024, 7)
	require.NoError(t, err)
	assert.Nil(t, puzzle)
}

func TestSaveAndGetPuzzle(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	saved := &domain.Puzzle{
		Year:      2024,
		Day:       7,
		Title:     "Day 7: Bridge Repair",
		URL:       "https://adventofcode.com/2024/day/7",
		Pt1Answer: strPtr("3749"),
	}
	require.NoError(t, repo.SavePuzzle(ctx, saved))

	got, err := repo.GetPuzzle(ctx, 2024, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.Title, got.Title)
	require.NotNil(t, got.Pt1Answer)
	assert.Equal(t, "3749", *got.Pt1Answer)
	assert.Nil(t, got.Pt2Answer)
	assert.Equal(t, 1, got.Solved())
}

func TestSavePuzzleReplacesExistingRow(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SavePuzzle(ctx, &domain.Puzzle{Year: 2024, Day: 7, Title: "old", URL: "u"}))
	require.NoError(t, repo.SavePuzzle(ctx, &domain.Puzzle{Year: 2024, Day: 7, Title: "new", URL: "u", Pt1Answer: strPtr("1")}))

	got, err := repo.GetPuzzle(ctx, 2024, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.Title)
	require.NotNil(t, got.Pt1Answer)
}

func TestFetchAllPuzzlesOrdered(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SavePuzzle(ctx, &domain.Puzzle{Year: 2024, Day: 2, Title: "b", URL: "u"}))
	require.NoError(t, repo.SavePuzzle(ctx, &domain.Puzzle{Year: 2023, Day: 9, Title: "a", URL: "u"}))
	require.NoError(t, repo.SavePuzzle(ctx, &domain.Puzzle{Year: 2024, Day: 1, Title: "c", URL: "u"}))

	puzzles, err := repo.FetchAllPuzzles(ctx)
	require.NoError(t, err)
	require.Len(t, puzzles, 3)
	assert.Equal(t, 2023, puzzles[0].Year)
	assert.Equal(t, 1, puzzles[1].Day)
	assert.Equal(t, 2, puzzles[2].Day)
}

func TestUpdateAnswers(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	puzzle := &domain.Puzzle{Year: 2024, Day: 7, Title: "t", URL: "u"}
	require.NoError(t, repo.SavePuzzle(ctx, puzzle))

	puzzle.Pt1Answer = strPtr("3749")
	puzzle.Pt2Answer = strPtr("11387")
	require.NoError(t, repo.UpdateAnswers(ctx, puzzle))

	got, err := repo.GetPuzzle(ctx, 2024, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Solved())
}

func TestUpdateAnswersMissingRow(t *testing.T) {
	repo := newRepo(t)
	err := repo.UpdateAnswers(context.Background(), &domain.Puzzle{Year: 1999, Day: 1, Title: "t", URL: "u"})
	assert.Error(t, err)
}
