package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/database"
	"github.com/akyairhashvil/sessionplan/internal/models"
	"github.com/akyairhashvil/sessionplan/internal/tui"
	"github.com/akyairhashvil/sessionplan/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type options struct {
	project string
	dbFile  string
	plain   bool
	version bool
}

func parseFlags(args []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := options{}
	fs.StringVar(&opts.project, "project", cfg.Project, "project slug to plan")
	fs.StringVar(&opts.dbFile, "db", cfg.DBFile, "path to the SQLite database")
	fs.BoolVar(&opts.plain, "plan", false, "print the plan and exit")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	opts, err := parseFlags(os.Args[1:], cfg)
	if err != nil {
		fail(err)
	}
	if opts.version {
		fmt.Printf("%s %s (%s %s)\n", config.AppName, tui.AppVersion, tui.GitCommit, tui.BuildTime)
		return
	}

	ctx := context.Background()
	db, project, err := openProject(ctx, opts)
	if err != nil {
		fail(err)
	}
	defer db.Close()

	if opts.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printPlan(ctx, os.Stdout, db, project); err != nil {
			fail(err)
		}
		return
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, config.AppName)
		if err != nil {
			fail(err)
		}
		defer f.Close()
	} else {
		util.DiscardLogs()
	}

	model := tui.NewDashboardModel(ctx, db, project, tui.Options{
		ReportsDir:          cfg.ReportsDir,
		DefaultSessionHours: cfg.DefaultSessionHours,
		Theme:               cfg.Theme,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

// openProject opens the database, creating its directory, and makes sure the
// selected project exists.
func openProject(ctx context.Context, opts options) (*database.Database, models.Project, error) {
	if err := os.MkdirAll(filepath.Dir(opts.dbFile), 0o755); err != nil {
		return nil, models.Project{}, fmt.Errorf("create data dir: %w", err)
	}
	db, err := database.Open(ctx, opts.dbFile)
	if err != nil {
		return nil, models.Project{}, err
	}
	project, err := db.EnsureProject(ctx, opts.project)
	if err != nil {
		util.LogError("close database", db.Close())
		return nil, models.Project{}, err
	}
	return db, project, nil
}

func printPlan(ctx context.Context, w io.Writer, src tui.PlanSource, project models.Project) error {
	plan, err := tui.BuildPlan(ctx, src, project, util.Today())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, tui.RenderPlain(plan))
	return err
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
	os.Exit(1)
}
