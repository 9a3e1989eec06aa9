package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gitlab.com/aockit-2025.net/internal/adapter/advent"
	"gitlab.com/aockit-2025.net/internal/adapter/shell"
	"gitlab.com/aockit-2025.net/internal/adapter/sqlite"
	"gitlab.com/aockit-2025.net/internal/adapter/sqlite/languagerepository"
	"gitlab.com/aockit-2025.net/internal/adapter/sqlite/puzzlerepository"
	"gitlab.com/aockit-2025.net/internal/adapter/sqlite/runrepository"
	"gitlab.com/aockit-2025.net/internal/adapter/sqlite/workspacerepository"
	"gitlab.com/aockit-2025.net/internal/config"
	"gitlab.com/aockit-2025.net/internal/core/services/fetchsvc"
	"gitlab.com/aockit-2025.net/internal/core/services/orchestrate"
	"gitlab.com/aockit-2025.net/internal/core/services/scaffold"
	"gitlab.com/aockit-2025.net/internal/core/services/status"
	"gitlab.com/aockit-2025.net/internal/core/services/workspace"
	"gitlab.com/aockit-2025.net/internal/domain"
	logger2 "gitlab.com/aockit-2025.net/internal/global/logger"
	"gitlab.com/aockit-2025.net/internal/langs"
	"gitlab.com/aockit-2025.net/internal/protocol"
	"gitlab.com/aockit-2025.net/internal/sled"
	"gitlab.com/aockit-2025.net/internal/static/errs"
)

// firstAdventYear is the first Advent of Code event.
const firstAdventYear = 2015

var (
	yearFlag  string
	dayFlag   string
	partFlag  int
	forceFlag bool
)

func main() {
	// A missing .env is fine, the cookie can live in the real environment.
	godotenv.Load() //nolint:errcheck
	logger2.Configure(config.NewSystemConfig().DebugMode)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "aockit",
		Short:         "Advent of Code workspace: fetch, scaffold, test, run and track solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		initCommand(),
		fetchCommand(),
		startCommand(),
		testCommand(),
		runCommand(),
		showCommand(),
		statusCommand(),
	)
	return root
}

func initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the current directory as an aockit workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewSystemConfig()
			if sqlite.HasArchive(cfg.DatabaseConfig.Path) {
				return errs.WorkspaceConflict
			}

			db, err := sqlite.Open(cfg.DatabaseConfig.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			logger := logger2.Logger
			workspaceRepo := workspacerepository.NewWorkspaceRepository(db, logger)
			info, err := workspace.NewWorkspaceService(workspaceRepo, logger).Init(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "workspace initialized, id %s\n", info.BrigadistaID)
			return nil
		},
	}
}

func fetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch puzzle statements and inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			years, days, _, err := parseSelection()
			if err != nil {
				return err
			}

			return withArchive(func(app *application) error {
				fetchService, err := app.fetchService()
				if err != nil {
					return err
				}
				for _, year := range years {
					for _, day := range days {
						if _, err := fetchService.FetchDay(cmd.Context(), year, day, forceFlag); err != nil {
							return err
						}
					}
				}
				return nil
			})
		},
	}
	addSelectionFlags(cmd, false)
	cmd.Flags().BoolVar(&forceFlag, "force", false, "re-download cached material")
	return cmd
}

func startCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <language>",
		Short: "Scaffold a day's solution in the given language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, days, _, err := parseSelection()
			if err != nil {
				return err
			}

			return withArchive(func(app *application) error {
				scaffoldService, err := app.scaffoldService()
				if err != nil {
					return err
				}
				for _, year := range years {
					for _, day := range days {
						path, err := scaffoldService.StartDay(cmd.Context(), args[0], year, day, forceFlag)
						if err != nil {
							return err
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
					}
				}
				return nil
			})
		},
	}
	addSelectionFlags(cmd, false)
	cmd.Flags().BoolVar(&forceFlag, "force", false, "overwrite an already started day")
	return cmd
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <language>",
		Short: "Run a language's solutions against their test fixtures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, days, parts, err := parseSelection()
			if err != nil {
				return err
			}

			return withArchive(func(app *application) error {
				return app.orchestrator(cmd.OutOrStdout()).Test(cmd.Context(), args[0], years, days, parts)
			})
		},
	}
	addSelectionFlags(cmd, true)
	return cmd
}

func runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <language>",
		Short: "Run a language's solutions against the real inputs and record the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, days, parts, err := parseSelection()
			if err != nil {
				return err
			}

			return withArchive(func(app *application) error {
				return app.orchestrator(cmd.OutOrStdout()).Run(cmd.Context(), args[0], years, days, parts)
			})
		},
	}
	addSelectionFlags(cmd, true)
	return cmd
}

func showCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's cached statement, confirmed answers and run history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseSingle(yearFlag, firstAdventYear, currentYear(), "year")
			if err != nil {
				return err
			}
			day, err := parseSingle(dayFlag, 1, 25, "day")
			if err != nil {
				return err
			}

			return withArchive(func(app *application) error {
				rendered, err := app.statusService().Show(cmd.Context(), year, day)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&yearFlag, "year", "y", "", "event year")
	cmd.Flags().StringVarP(&dayFlag, "day", "d", "", "event day")
	cmd.MarkFlagRequired("year") //nolint:errcheck
	cmd.MarkFlagRequired("day")  //nolint:errcheck
	return cmd
}

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show workspace identity and per-year star progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchive(func(app *application) error {
				rendered, err := app.statusService().Summary(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			})
		},
	}
}

func addSelectionFlags(cmd *cobra.Command, withPart bool) {
	cmd.Flags().StringVarP(&yearFlag, "year", "y", "", `event year, or "all"`)
	cmd.Flags().StringVarP(&dayFlag, "day", "d", "", `event day, or "all"`)
	cmd.MarkFlagRequired("year") //nolint:errcheck
	cmd.MarkFlagRequired("day")  //nolint:errcheck
	if withPart {
		cmd.Flags().IntVarP(&partFlag, "part", "p", 0, "restrict to one part (1 or 2)")
	}
}

// parseSelection resolves the year/day/part flags into concrete ranges.
func parseSelection() (years, days []int, parts []domain.Part, err error) {
	years, err = parseRange(yearFlag, firstAdventYear, currentYear(), "year")
	if err != nil {
		return nil, nil, nil, err
	}
	days, err = parseRange(dayFlag, 1, 25, "day")
	if err != nil {
		return nil, nil, nil, err
	}

	parts = domain.AllParts
	if partFlag != 0 {
		part, err := domain.ParsePart(partFlag)
		if err != nil {
			return nil, nil, nil, err
		}
		parts = []domain.Part{part}
	}
	return years, days, parts, nil
}

func parseRange(value string, lo, hi int, name string) ([]int, error) {
	if strings.EqualFold(value, "all") {
		all := make([]int, 0, hi-lo+1)
		for v := lo; v <= hi; v++ {
			all = append(all, v)
		}
		return all, nil
	}
	single, err := parseSingle(value, lo, hi, name)
	if err != nil {
		return nil, err
	}
	return []int{single}, nil
}

func parseSingle(value string, lo, hi int, name string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if parsed < lo || parsed > hi {
		return 0, fmt.Errorf("%s %d out of range [%d, %d]", name, parsed, lo, hi)
	}
	return parsed, nil
}

func currentYear() int {
	return time.Now().Year()
}

// application wires the archive handle, config and repositories for one
// command invocation.
type application struct {
	cfg     *config.AppConfig
	db      *sqlx.DB
	langMap *langs.LangMap
}

// withArchive opens the workspace archive, runs fn and closes the handle.
func withArchive(fn func(app *application) error) error {
	cfg := config.NewSystemConfig()
	if !sqlite.HasArchive(cfg.DatabaseConfig.Path) {
		return errs.NotAWorkspace
	}

	db, err := sqlite.Open(cfg.DatabaseConfig.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	langMap, err := langs.LoadDefaults()
	if err != nil {
		return err
	}

	return fn(&application{cfg: cfg, db: db, langMap: langMap})
}

func (a *application) fetchService() (fetchsvc.IFetchService, error) {
	logger := logger2.Logger
	fetcher, err := advent.NewFetcher(a.cfg.FetchConfig, logger)
	if err != nil {
		return nil, err
	}
	return fetchsvc.NewFetchService(
		fetcher,
		puzzlerepository.NewPuzzleRepository(a.db, logger),
		sled.CacheSled{Root: "."},
		logger,
	), nil
}

func (a *application) scaffoldService() (scaffold.IScaffoldService, error) {
	logger := logger2.Logger
	fetchService, err := a.fetchService()
	if err != nil {
		return nil, err
	}
	return scaffold.NewScaffoldService(
		fetchService,
		languagerepository.NewLanguageRepository(a.db, logger),
		a.langMap,
		".",
		logger,
	), nil
}

func (a *application) orchestrator(out io.Writer) orchestrate.IOrchestrator {
	logger := logger2.Logger
	return orchestrate.NewOrchestrator(
		a.langMap,
		protocol.NewRunner(logger),
		shell.NewRunner(logger),
		puzzlerepository.NewPuzzleRepository(a.db, logger),
		languagerepository.NewLanguageRepository(a.db, logger),
		runrepository.NewRunRepository(a.db, logger),
		".",
		a.cfg.RunnerConfig,
		out,
		logger,
	)
}

func (a *application) statusService() status.IStatusService {
	logger := logger2.Logger
	return status.NewStatusService(
		workspacerepository.NewWorkspaceRepository(a.db, logger),
		puzzlerepository.NewPuzzleRepository(a.db, logger),
		runrepository.NewRunRepository(a.db, logger),
		sled.CacheSled{Root: "."},
		logger,
	)
}
