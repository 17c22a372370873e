package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/timetrail/internal/cli"
	"github.com/julianstephens/timetrail/internal/config"
	"github.com/julianstephens/timetrail/internal/errors"
	"github.com/julianstephens/timetrail/internal/logger"
	"github.com/julianstephens/timetrail/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/timetrail/config.yaml"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Export cli.ExportCmd `cmd:"" help:"Generate the weekly review workbook." default:"1"`
	Weeks  cli.WeeksCmd  `cmd:"" help:"Print weekly project and task totals."`
	Import cli.ImportCmd `cmd:"" help:"Import a CSV export into the local record store."`
	Init   cli.InitCmd   `cmd:"" help:"Write the default config file and initialize the store."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run environment diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("timetrail"),
		kong.Description("Weekly review workbook generator for time-tracker exports"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		// Logging is best-effort; the pipeline itself does not need it.
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(cfg.Store, ".json") {
		store = storage.NewJSONStore(cfg.Store)
	} else {
		store = storage.NewSQLiteStore(cfg.Store)
	}

	appCtx := &cli.Context{
		Config:     cfg,
		ConfigPath: CLI.Config,
		Store:      store,
	}

	errors.Fatal(ctx.Run(appCtx))
}
