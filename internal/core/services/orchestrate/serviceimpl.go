package orchestrate

import (
	"context"
	"fmt"
	"io"
	"os"

	"gitlab.com/aockit-2025.net/internal/config"
	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/core/ports/secondary"
	"gitlab.com/aockit-2025.net/internal/domain"
	"gitlab.com/aockit-2025.net/internal/langs"
	"gitlab.com/aockit-2025.net/internal/protocol"
	"gitlab.com/aockit-2025.net/internal/sled"
)

var _ IOrchestrator = (*Orchestrator)(nil)

// Orchestrator implements the Orchestrator interface
type Orchestrator struct {
	langMap      *langs.LangMap
	executor     secondary.ProtocolExecutor
	builder      secondary.CommandRunner
	puzzleRepo   secondary.PuzzleRepository
	languageRepo secondary.LanguageRepository
	runRepo      secondary.RunRepository
	cache        sled.CacheSled
	tests        sled.TestSled
	runnerCfg    *config.RunnerConfig
	root         string
	out          io.Writer
	logger       primary.Logger
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(
	langMap *langs.LangMap,
	executor secondary.ProtocolExecutor,
	builder secondary.CommandRunner,
	puzzleRepo secondary.PuzzleRepository,
	languageRepo secondary.LanguageRepository,
	runRepo secondary.RunRepository,
	root string,
	runnerCfg *config.RunnerConfig,
	out io.Writer,
	logger primary.Logger,
) *Orchestrator {
	return &Orchestrator{
		langMap:      langMap,
		executor:     executor,
		builder:      builder,
		puzzleRepo:   puzzleRepo,
		languageRepo: languageRepo,
		runRepo:      runRepo,
		cache:        sled.CacheSled{Root: root},
		tests:        sled.TestSled{Root: root},
		runnerCfg:    runnerCfg,
		root:         root,
		out:          out,
		logger:       logger,
	}
}

// Test runs every declared fixture for language x years x days x parts.
func (s *Orchestrator) Test(ctx context.Context, language string, years, days []int, parts []domain.Part) error {
	spec, err := s.langMap.Get(language)
	if err != nil {
		return err
	}
	runner := langs.NewRunner(spec, s.root)

	for _, year := range years {
		for _, day := range days {
			if !fileExists(runner.Sled().SourcePath(year, day)) {
				continue
			}

			casesByPart := make(map[domain.Part][]domain.TestCase, len(parts))
			total := 0
			for _, part := range parts {
				cases, err := s.tests.LoadTestCases(year, day, part)
				if err != nil {
					return err
				}
				casesByPart[part] = cases
				total += len(cases)
			}
			if total == 0 {
				continue
			}

			if err := s.buildDay(ctx, runner, year, day); err != nil {
				fmt.Fprintf(s.out, "✘ %d day %s: build failed: %v\n", year, sled.PadDay(day), err)
				continue
			}

			for _, part := range parts {
				for _, testCase := range casesByPart[part] {
					s.runCase(ctx, runner, year, day, part, testCase)
				}
			}
		}
	}
	return nil
}

// Run executes each selected part once against the real cached input.
func (s *Orchestrator) Run(ctx context.Context, language string, years, days []int, parts []domain.Part) error {
	spec, err := s.langMap.Get(language)
	if err != nil {
		return err
	}
	runner := langs.NewRunner(spec, s.root)

	for _, year := range years {
		for _, day := range days {
			if !fileExists(runner.Sled().SourcePath(year, day)) {
				continue
			}

			if err := s.buildDay(ctx, runner, year, day); err != nil {
				fmt.Fprintf(s.out, "✘ %d day %s: build failed: %v\n", year, sled.PadDay(day), err)
				continue
			}

			puzzle, err := s.puzzleRepo.GetPuzzle(ctx, year, day)
			if err != nil {
				return err
			}

			for _, part := range parts {
				if err := s.runDayPart(ctx, runner, spec.Name, puzzle, year, day, part); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// buildDay runs the language's build step once for a (year, day), when the
// language declares one.
func (s *Orchestrator) buildDay(ctx context.Context, runner *langs.Runner, year, day int) error {
	command := runner.PrepareBuildCommand(year, day)
	if command == nil {
		return nil
	}

	buildCtx, cancel := context.WithTimeout(ctx, s.runnerCfg.BuildTimeout)
	defer cancel()
	return s.builder.Run(buildCtx, command, runner.WorkingDir(year, day))
}

// runCase invokes one fixture and prints exactly one report line. Failures
// never abort the sweep.
func (s *Orchestrator) runCase(ctx context.Context, runner *langs.Runner, year, day int, part domain.Part, testCase domain.TestCase) {
	label := fmt.Sprintf("%d day %s pt%s %s", year, sled.PadDay(day), part, testCase.Name)

	inputPath, cleanup, err := stageInput(testCase.Input)
	if err != nil {
		fmt.Fprintf(s.out, "✘ %s: %v\n", label, err)
		return
	}
	defer cleanup()

	command := runner.PrepareRunCommand(year, day)
	if len(testCase.Args) > 0 {
		command = append(command, "--args")
		command = append(command, testCase.Args...)
	}

	execCtx, cancel := context.WithTimeout(ctx, s.runnerCfg.SolutionTimeout)
	defer cancel()
	result, err := s.executor.Execute(execCtx, command, part, runner.WorkingDir(year, day), inputPath)
	if err != nil {
		fmt.Fprintf(s.out, "✘ %s: %v\n", label, err)
		return
	}

	if result.Status != protocol.StatusOk {
		fmt.Fprintf(s.out, "✘ %s: %s\n", label, result.Status)
		return
	}

	answer := *result.Answer
	if answer != testCase.Expected.String() {
		fmt.Fprintf(s.out, "✘ %s: got %q, expected %q\n", label, answer, testCase.Expected)
		return
	}
	fmt.Fprintf(s.out, "✔ %s: %s%s\n", label, answer, timing(result))
}

// runDayPart invokes one part against the real input, archives the run and
// reconciles the answer against the confirmed one when known.
func (s *Orchestrator) runDayPart(ctx context.Context, runner *langs.Runner, language string, puzzle *domain.Puzzle, year, day int, part domain.Part) error {
	label := fmt.Sprintf("%d day %s pt%s", year, sled.PadDay(day), part)

	execCtx, cancel := context.WithTimeout(ctx, s.runnerCfg.SolutionTimeout)
	defer cancel()
	result, err := s.executor.Execute(execCtx, runner.PrepareRunCommand(year, day), part, runner.WorkingDir(year, day), s.cache.InputPath(year, day))
	if err != nil {
		fmt.Fprintf(s.out, "✘ %s: %v\n", label, err)
		return nil
	}

	best, err := s.runRepo.GetBestRun(ctx, year, day, language, part)
	if err != nil {
		return err
	}

	run := domain.NewRun(year, day, language, part, runStatus(result.Status))
	if result.Status == protocol.StatusOk {
		run.Answer = result.Answer
		if result.RunningTime != nil {
			ns := nanoseconds(*result.RunningTime, *result.Unit)
			run.TimeNs = &ns
		}
	}
	if err := s.runRepo.SaveRun(ctx, run); err != nil {
		return err
	}

	record := ""
	if run.TimeNs != nil && (best == nil || best.TimeNs == nil || *run.TimeNs < *best.TimeNs) {
		record = ", a personal best"
	}

	if result.Status != protocol.StatusOk {
		fmt.Fprintf(s.out, "✘ %s: %s\n", label, result.Status)
		return nil
	}

	answer := *result.Answer
	var known *string
	if puzzle != nil {
		known = puzzle.AnswerFor(part)
	}
	switch {
	case known == nil:
		fmt.Fprintf(s.out, "✔ %s: %s%s%s (no confirmed answer yet)\n", label, answer, timing(result), record)
	case *known == answer:
		fmt.Fprintf(s.out, "✔ %s: %s%s%s, matches the confirmed answer\n", label, answer, timing(result), record)
		if err := s.markFinished(ctx, language, year, day, part); err != nil {
			return err
		}
	default:
		fmt.Fprintf(s.out, "✘ %s: got %q, expected %q\n", label, answer, *known)
	}
	return nil
}

func (s *Orchestrator) markFinished(ctx context.Context, language string, year, day int, part domain.Part) error {
	languageDay, err := s.languageRepo.GetLanguageDay(ctx, year, day, language)
	if err != nil {
		return err
	}
	if languageDay == nil {
		languageDay = &domain.LanguageDay{Year: year, Day: day, Language: language, Started: true}
		languageDay.MarkFinished(part)
		return s.languageRepo.SaveLanguageDay(ctx, languageDay)
	}
	languageDay.MarkFinished(part)
	return s.languageRepo.UpdateFlags(ctx, languageDay)
}

// stageInput writes fixture input to a scratch file so the executor can feed
// it to the child the same way it feeds real inputs.
func stageInput(input string) (string, func(), error) {
	file, err := os.CreateTemp("", "aockit_case_*.txt")
	if err != nil {
		return "", nil, fmt.Errorf("failed to stage test input: %w", err)
	}
	if _, err := file.WriteString(input); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", nil, fmt.Errorf("failed to stage test input: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", nil, fmt.Errorf("failed to stage test input: %w", err)
	}
	return file.Name(), func() { os.Remove(file.Name()) }, nil
}

func timing(result protocol.ExecutionResult) string {
	if result.RunningTime == nil {
		return ""
	}
	return fmt.Sprintf(" (%d %s)", *result.RunningTime, result.Unit.Suffix("s"))
}

func runStatus(status protocol.Status) domain.RunStatus {
	switch status {
	case protocol.StatusOk:
		return domain.RunStatusOk
	case protocol.StatusInputMissing:
		return domain.RunStatusInputMissing
	case protocol.StatusTimeout:
		return domain.RunStatusTimeout
	default:
		return domain.RunStatusProtocolError
	}
}

// nanoseconds normalizes a timing magnitude in the given unit to nanoseconds.
func nanoseconds(magnitude int64, unit protocol.MetricPrefix) int64 {
	return int64(float64(magnitude) * unit.Scale() * 1e9)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
