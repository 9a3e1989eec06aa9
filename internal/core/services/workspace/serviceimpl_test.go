package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/aockit-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

type fakeWorkspaceRepo struct {
	tablesCreated bool
	saved         *domain.WorkspaceInfo
	createErr     error
}

func (f *fakeWorkspaceRepo) CreateTables(context.Context) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tablesCreated = true
	return nil
}

func (f *fakeWorkspaceRepo) SaveInfo(_ context.Context, info *domain.WorkspaceInfo) error {
	f.saved = info
	return nil
}

func (f *fakeWorkspaceRepo) GetInfo(context.Context) (*domain.WorkspaceInfo, error) {
	return f.saved, nil
}

func TestInitCreatesSchemaAndIdentity(t *testing.T) {
	repo := &fakeWorkspaceRepo{}
	service := NewWorkspaceService(repo, nopLogger{})

	info, err := service.Init(context.Background())
	require.NoError(t, err)
	assert.True(t, repo.tablesCreated)
	require.NotNil(t, repo.saved)
	assert.Equal(t, repo.saved.BrigadistaID, info.BrigadistaID)
	assert.NotEmpty(t, info.BrigadistaID)
}

func TestInitPropagatesSchemaFailure(t *testing.T) {
	repo := &fakeWorkspaceRepo{createErr: errors.New("disk full")}
	service := NewWorkspaceService(repo, nopLogger{})

	_, err := service.Init(context.Background())
	require.Error(t, err)
	assert.Nil(t, repo.saved, "no identity row without a schema")
}

func TestInfoReturnsIdentity(t *testing.T) {
	repo := &fakeWorkspaceRepo{}
	service := NewWorkspaceService(repo, nopLogger{})

	created, err := service.Init(context.Background())
	require.NoError(t, err)

	got, err := service.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, created.BrigadistaID, got.BrigadistaID)
}
