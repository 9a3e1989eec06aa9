package languagerepository

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

func newRepo(t *testing.T) *LanguageRepository {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "archive.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, workspacerepository.NewWorkspaceRepository(db, nopLogger{}).CreateTables(context.Background()))
	return NewLanguageRepository(db, nopLogger{})
}

func TestSaveAndGetLanguageDay(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveLanguageDay(ctx, &domain.LanguageDay{
		Year: 2024, Day: 7, Language: "go", Started: true,
	}))

	got, err := repo.GetLanguageDay(ctx, 2024, 7, "go")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Started)
	assert.False(t, got.FinishedPt1)

	absent, err := repo.GetLanguageDay(ctx, 2024, 7, "python")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUpdateFlags(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	languageDay := &domain.LanguageDay{Year: 2024, Day: 7, Language: "go", Started: true}
	require.NoError(t, repo.SaveLanguageDay(ctx, languageDay))

	languageDay.MarkFinished(domain.Part1)
	require.NoError(t, repo.UpdateFlags(ctx, languageDay))

	got, err := repo.GetLanguageDay(ctx, 2024, 7, "go")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.FinishedPt1)
	assert.False(t, got.FinishedPt2)
}

func TestUpdateFlagsMissingRow(t *testing.T) {
	repo := newRepo(t)
	err := repo.UpdateFlags(context.Background(), &domain.LanguageDay{Year: 1999, Day: 1, Language: "go"})
	assert.Error(t, err)
}

func TestFetchAllLanguageDays(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveLanguageDay(ctx, &domain.LanguageDay{Year: 2024, Day: 2, Language: "go", Started: true}))
	require.NoError(t, repo.SaveLanguageDay(ctx, &domain.LanguageDay{Year: 2023, Day: 9, Language: "python", Started: true}))

	rows, err := repo.FetchAllLanguageDays(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2023, rows[0].Year)
}

func TestDeleteLanguageDay(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveLanguageDay(ctx, &domain.LanguageDay{Year: 2024, Day: 7, Language: "go", Started: true}))
	require.NoError(t, repo.DeleteLanguageDay(ctx, 2024, 7, "go"))

	got, err := repo.GetLanguageDay(ctx, 2024, 7, "go")
	require.NoError(t, err)
	assert.Nil(t, got)
}
