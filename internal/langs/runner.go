package langs

import (
	"strconv"
	"strings"

	"gitlab.com/aockit-2025.net/internal/sled"
)

// Runner resolves the concrete argv and working directory for one language's
// build and run steps by expanding spec placeholders for a given day.
type Runner struct {
	spec *LangSpec
	sled sled.LangSled
}

// NewRunner pairs a language spec with its on-disk sled.
func NewRunner(spec *LangSpec, root string) *Runner {
	return &Runner{
		spec: spec,
		sled: sled.LangSled{Root: root, Language: spec.Name, Extension: spec.Extension},
	}
}

// Sled exposes the language's path layout.
func (r *Runner) Sled() sled.LangSled {
	return r.sled
}

// WorkingDir is the per-day directory builds and runs execute in.
func (r *Runner) WorkingDir(year, day int) string {
	return r.sled.DayDir(year, day)
}

// PrepareRunCommand expands the run argv for (year, day). The protocol runner
// appends its own --part argument after this prefix.
func (r *Runner) PrepareRunCommand(year, day int) []string {
	return r.expand(r.spec.RunCommand, year, day)
}

// PrepareBuildCommand expands the build argv, or nil when the language has
// no build step.
func (r *Runner) PrepareBuildCommand(year, day int) []string {
	if len(r.spec.BuildCommand) == 0 {
		return nil
	}
	return r.expand(r.spec.BuildCommand, year, day)
}

func (r *Runner) expand(command []string, year, day int) []string {
	expanded := make([]string, len(command))
	for i, token := range command {
		token = strings.ReplaceAll(token, "{year}", strconv.Itoa(year))
		token = strings.ReplaceAll(token, "{day}", sled.PadDay(day))
		token = strings.ReplaceAll(token, "{file}", r.sled.SourceFilename(year, day))
		expanded[i] = token
	}
	return expanded
}
