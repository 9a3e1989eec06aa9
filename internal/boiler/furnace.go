// Package boiler turns language templates into ready-to-edit day solutions.
package boiler

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/langs"
	"gitlab.com/aockit-2025.net/internal/sled"
)

// CodeFurnace instantiates a language template for one (year, day).
type CodeFurnace struct {
	spec   *langs.LangSpec
	runner *langs.Runner
	logger primary.Logger
}

func NewCodeFurnace(spec *langs.LangSpec, runner *langs.Runner, logger primary.Logger) *CodeFurnace {
	return &CodeFurnace{
		spec:   spec,
		runner: runner,
		logger: logger,
	}
}

// Start writes the day's solution file from the language template, filling in
// {year}, {day}, {title} and {url}. An existing file is preserved unless
// force is set.
func (f *CodeFurnace) Start(year, day int, title, url string, force bool) (string, error) {
	target := f.runner.Sled().SourcePath(year, day)
	if _, err := os.Stat(target); err == nil && !force {
		f.logger.Warn("Solution file already exists, skipping",
			"language", f.spec.Name,
			"year", year,
			"day", day,
			"path", target)
		return target, nil
	}

	template, err := f.spec.TemplateContent()
	if err != nil {
		return "", err
	}

	content := strings.NewReplacer(
		"{year}", strconv.Itoa(year),
		"{day}", sled.PadDay(day),
		"{title}", title,
		"{url}", url,
	).Replace(string(template))

	if err := os.MkdirAll(f.runner.WorkingDir(year, day), 0o755); err != nil {
		return "", fmt.Errorf("failed to create day directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write solution file: %w", err)
	}

	f.logger.Info("Scaffolded solution",
		"language", f.spec.Name,
		"year", year,
		"day", day,
		"path", target)
	return target, nil
}
