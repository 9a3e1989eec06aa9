// Package sled lays out the on-disk shape of an aockit workspace: the input
// and statement cache, per-language solution trees and test fixtures.
package sled

import (
	"fmt"
	"path/filepath"
)

const (
	CacheDir = ".cache"
	TestsDir = "tests"
)

// PadDay formats a day number as two digits, the form used in every path.
func PadDay(day int) string {
	return fmt.Sprintf("%02d", day)
}

// CacheSled locates cached statements and inputs under <root>/.cache.
type CacheSled struct {
	Root string
}

func (c CacheSled) YearDir(year int) string {
	return filepath.Join(c.Root, CacheDir, fmt.Sprintf("%d", year))
}

func (c CacheSled) StatementPath(year, day int) string {
	return filepath.Join(c.YearDir(year), fmt.Sprintf("day_%s_statement.txt", PadDay(day)))
}

func (c CacheSled) InputPath(year, day int) string {
	return filepath.Join(c.YearDir(year), fmt.Sprintf("day_%s_input.txt", PadDay(day)))
}

// LangSled locates one language's solution tree under <root>/<language>.
// The per-day directory doubles as the working directory for builds and runs.
type LangSled struct {
	Root      string
	Language  string
	Extension string
}

func (l LangSled) LangDir() string {
	return filepath.Join(l.Root, l.Language)
}

func (l LangSled) YearDir(year int) string {
	return filepath.Join(l.LangDir(), fmt.Sprintf("%d", year))
}

func (l LangSled) DayDir(year, day int) string {
	return filepath.Join(l.YearDir(year), PadDay(day))
}

func (l LangSled) SourceFilename(year, day int) string {
	return fmt.Sprintf("aoc_%d_%s.%s", year, PadDay(day), l.Extension)
}

func (l LangSled) SourcePath(year, day int) string {
	return filepath.Join(l.DayDir(year, day), l.SourceFilename(year, day))
}

// TestSled locates fixture files under <root>/tests/<year>.
type TestSled struct {
	Root string
}

func (t TestSled) DayFile(year, day int) string {
	return filepath.Join(t.Root, TestsDir, fmt.Sprintf("%d", year), fmt.Sprintf("day_%s_tests.json", PadDay(day)))
}
