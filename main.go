package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/swipelist/internal/commands"
	"github.com/colonyops/swipelist/internal/core/config"
	"github.com/colonyops/swipelist/internal/core/styles"
	"github.com/colonyops/swipelist/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{Version: build()}

	app := &cli.Command{
		Name:      "swipelist",
		Usage:     "A reorderable list whose rows swipe open to reveal actions",
		UsageText: "swipelist [global options] command [command options]",
		Description: `swipelist shows a list of colored rows. Each row can slide aside to reveal
a delete action on one side and a close action on the other, and rows can be
picked up and moved. Only one row's panel is open at a time.

Run 'swipelist' with no arguments to open the interactive list.`,
		Version: flags.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("SWIPELIST_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("SWIPELIST_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SWIPELIST_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.IntFlag{
				Name:        "rows",
				Aliases:     []string{"n"},
				Usage:       "number of rows to seed (overrides config)",
				Sources:     cli.EnvVars("SWIPELIST_ROWS"),
				Destination: &flags.Rows,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(logutils.Options{Level: flags.LogLevel, File: flags.LogFile})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if c.IsSet("rows") {
				if flags.Rows < 1 {
					return ctx, fmt.Errorf("--rows must be at least 1, got %d", flags.Rows)
				}
				cfg.Rows = flags.Rows
			}
			flags.Config = cfg

			// Theme name is checked by config validate; unknown names keep the default.
			if palette, ok := styles.GetPalette(cfg.Theme); ok {
				styles.SetTheme(palette)
			} else {
				log.Warn().Str("theme", cfg.Theme).Msg("unknown theme, using default")
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = tuiCmd.Register(app)
	app = commands.NewRowsCmd(flags).Register(app)
	app = commands.NewReplayCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'swipelist --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
