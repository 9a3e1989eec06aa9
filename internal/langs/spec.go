// Package langs declares how each supported language scaffolds, builds and
// invokes a day's solution.
package langs

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gitlab.com/aockit-2025.net/internal/static/errs"
)

//go:embed specs/*.json templates/*
var assets embed.FS

// LangSpec describes one target language: the file extension of its
// solutions, the command that runs a day, an optional build step and the
// template a new day starts from. Command tokens may contain the
// placeholders {year}, {day} and {file}.
type LangSpec struct {
	Name         string   `json:"name"`
	Extension    string   `json:"extension"`
	RunCommand   []string `json:"command"`
	BuildCommand []string `json:"build,omitempty"`
	Template     string   `json:"template"`
}

// TemplateContent returns the raw solution template for this language.
func (s *LangSpec) TemplateContent() ([]byte, error) {
	raw, err := assets.ReadFile(s.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to read template for %s: %w", s.Name, err)
	}
	return raw, nil
}

// LangMap holds every known language spec, keyed by name.
type LangMap struct {
	langs map[string]*LangSpec
}

// LoadDefaults parses the embedded language specs.
func LoadDefaults() (*LangMap, error) {
	entries, err := fs.Glob(assets, "specs/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list language specs: %w", err)
	}

	m := &LangMap{langs: make(map[string]*LangSpec, len(entries))}
	for _, entry := range entries {
		raw, err := assets.ReadFile(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to read language spec %s: %w", entry, err)
		}
		var spec LangSpec
		if err := json.Unmarshal(raw, &spec); err != nil {
			return nil, fmt.Errorf("failed to parse language spec %s: %w", entry, err)
		}
		m.langs[spec.Name] = &spec
	}
	return m, nil
}

// Get resolves a language by name.
func (m *LangMap) Get(name string) (*LangSpec, error) {
	spec, ok := m.langs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", errs.UnknownLanguage, name, strings.Join(m.Names(), ", "))
	}
	return spec, nil
}

// Names lists the known language names, sorted.
func (m *LangMap) Names() []string {
	names := make([]string, 0, len(m.langs))
	for name := range m.langs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
