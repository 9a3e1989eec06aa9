package sled

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/aockit-2025.net/internal/domain"
)

func TestPadDay(t *testing.T) {
	assert.Equal(t, "01", PadDay(1))
	assert.Equal(t, "09", PadDay(9))
	assert.Equal(t, "25", PadDay(25))
}

func TestCacheSledPaths(t *testing.T) {
	cache := CacheSled{Root: "/ws"}
	assert.Equal(t, filepath.Join("/ws", ".cache", "2024", "day_07_statement.txt"), cache.StatementPath(2024, 7))
	assert.Equal(t, filepath.Join("/ws", ".cache", "2024", "day_07_input.txt"), cache.InputPath(2024, 7))
}

func TestLangSledPaths(t *testing.T) {
	lang := LangSled{Root: "/ws", Language: "go", Extension: "go"}
	assert.Equal(t, filepath.Join("/ws", "go", "2024", "07"), lang.DayDir(2024, 7))
	assert.Equal(t, "aoc_2024_07.go", lang.SourceFilename(2024, 7))
	assert.Equal(t, filepath.Join("/ws", "go", "2024", "07", "aoc_2024_07.go"), lang.SourcePath(2024, 7))
}

func TestLoadTestCases(t *testing.T) {
	root := t.TempDir()
	tests := TestSled{Root: root}

	dayFile := tests.DayFile(2024, 7)
	require.NoError(t, os.MkdirAll(filepath.Dir(dayFile), 0o755))
	fixture := `{
		"1": [
			{"name": "small", "input": "1 2 3\n", "expected": "6"},
			{"input": "4 5\n", "args": ["window", "3"], "expected": 9}
		],
		"2": []
	}`
	require.NoError(t, os.WriteFile(dayFile, []byte(fixture), 0o644))

	cases, err := tests.LoadTestCases(2024, 7, domain.Part1)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "small", cases[0].Name)
	assert.Equal(t, "1 2 3\n", cases[0].Input)
	assert.Equal(t, "6", cases[0].Expected.String())
	assert.Equal(t, "test_2", cases[1].Name, "unnamed cases get positional names")
	assert.Equal(t, []string{"window", "3"}, cases[1].Args)
	assert.Equal(t, "9", cases[1].Expected.String(), "numeric answers are coerced to text")

	cases, err = tests.LoadTestCases(2024, 7, domain.Part2)
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestLoadTestCasesMissingFile(t *testing.T) {
	tests := TestSled{Root: t.TempDir()}
	cases, err := tests.LoadTestCases(2024, 1, domain.Part1)
	require.NoError(t, err)
	assert.Nil(t, cases)
}

func TestLoadTestCasesMalformedFile(t *testing.T) {
	root := t.TempDir()
	tests := TestSled{Root: root}
	dayFile := tests.DayFile(2024, 7)
	require.NoError(t, os.MkdirAll(filepath.Dir(dayFile), 0o755))
	require.NoError(t, os.WriteFile(dayFile, []byte("not json"), 0o644))

	_, err := tests.LoadTestCases(2024, 7, domain.Part1)
	assert.Error(t, err)
}
