package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/swipelist/internal/core/coordinator"
	"github.com/colonyops/swipelist/internal/tui"
	tuinotify "github.com/colonyops/swipelist/internal/tui/notify"
	"github.com/colonyops/swipelist/pkg/logutils"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Register adds the tui command to the application. It is also the root
// command's default action.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "tui",
		Usage:  "Open the interactive row list (default)",
		Action: cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config

	coord := coordinator.New(cfg.Rows,
		coordinator.WithLogger(logutils.Component(log.Logger, "coordinator")),
	)

	m := tui.New(tui.Deps{
		Config:      cfg,
		Coordinator: coord,
		Bus:         tuinotify.NewBus(logutils.Component(log.Logger, "notify")),
		Logger:      logutils.Component(log.Logger, "tui"),
		Build:       tui.BuildInfo{Version: cmd.flags.Version},
	})

	log.Info().Int("rows", cfg.Rows).Str("theme", cfg.Theme).Msg("starting tui")

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Info().Strs("order", keyStrings(coord)).Msg("tui stopped")
	return nil
}

func keyStrings(coord *coordinator.Coordinator) []string {
	list := coord.Rows()
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = string(r.Key)
	}
	return out
}
