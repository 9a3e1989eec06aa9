package boiler

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/aockit-2025.net/internal/langs"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newFurnace(t *testing.T, root string) *CodeFurnace {
	t.Helper()
	m, err := langs.LoadDefaults()
	require.NoError(t, err)
	spec, err := m.Get("python")
	require.NoError(t, err)
	return NewCodeFurnace(spec, langs.NewRunner(spec, root), nopLogger{})
}

func TestStartWritesTemplate(t *testing.T) {
	root := t.TempDir()
	furnace := newFurnace(t, root)

	path, err := furnace.Start(2024, 7, "Bridge Repair", "https://adventofcode.com/2024/day/7", false)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "Bridge Repair")
	assert.Contains(t, text, "https://adventofcode.com/2024/day/7")
	assert.NotContains(t, text, "{title}")
	assert.NotContains(t, text, "{year}")
	assert.True(t, strings.HasSuffix(path, "aoc_2024_07.py"))
}

func TestStartPreservesExistingFile(t *testing.T) {
	root := t.TempDir()
	furnace := newFurnace(t, root)

	path, err := furnace.Start(2024, 7, "First", "url", false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("my work in progress"), 0o644))

	again, err := furnace.Start(2024, 7, "Second", "url", false)
	require.NoError(t, err)
	assert.Equal(t, path, again)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "my work in progress", string(content))
}

func TestStartForceOverwrites(t *testing.T) {
	root := t.TempDir()
	furnace := newFurnace(t, root)

	path, err := furnace.Start(2024, 7, "First", "url", false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("scratch"), 0o644))

	_, err = furnace.Start(2024, 7, "Second", "url", true)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Second")
}
