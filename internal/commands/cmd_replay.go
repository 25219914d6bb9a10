package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/swipelist/internal/core/replay"
	"github.com/colonyops/swipelist/internal/printer"
	"github.com/colonyops/swipelist/pkg/iojson"
	"github.com/colonyops/swipelist/pkg/logutils"
)

type ReplayCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	script     iojson.FileReader[replay.Script]
}

// NewReplayCmd creates a new replay command
func NewReplayCmd(flags *Flags) *ReplayCmd {
	return &ReplayCmd{flags: flags}
}

// Register adds the replay command to the application
func (cmd *ReplayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "replay",
		Usage:     "Apply a scripted sequence of delete, reorder and open events",
		UsageText: "swipelist replay [-f script.json] [--json]",
		Description: `Reads a JSON script from a file or stdin, applies it to a freshly seeded
list and prints the final order along with the close commands each row's
panel received.

Script format:

  {"rows": 3, "events": [
    {"op": "delete", "key": "key-1"},
    {"op": "open", "key": "key-0"},
    {"op": "reorder", "order": ["key-2", "key-0"]}
  ]}`,
		Flags: []cli.Flag{
			cmd.script.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the result as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReplayCmd) run(ctx context.Context, c *cli.Command) error {
	res, err := cmd.replay()
	if err != nil {
		if cmd.jsonOutput {
			if werr := iojson.WriteError(c.Root().ErrWriter, "replay failed", map[string]any{"error": err.Error()}); werr != nil {
				return werr
			}
			return cli.Exit("", 1)
		}
		return err
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, res)
	}

	p := printer.Ctx(ctx)
	for _, s := range res.Steps {
		label := string(s.Op)
		if s.Key != "" {
			label += " " + string(s.Key)
		}
		if s.Applied {
			p.Successf("%d: %s", s.Index, label)
			continue
		}
		p.Warnf("%d: %s: %s", s.Index, label, s.Error)
	}

	p.Printf("")
	p.Infof("final order:")
	for i, r := range res.Rows {
		p.Printf("  %d. %s (%s) closes=%d", i, r.Key, r.Text, res.Closes[r.Key])
	}
	return nil
}

func (cmd *ReplayCmd) replay() (replay.Result, error) {
	script, err := cmd.script.Read()
	if err != nil {
		return replay.Result{}, fmt.Errorf("read script: %w", err)
	}

	res, err := replay.Run(script, cmd.flags.Config.Rows, logutils.Component(log.Logger, "replay"))
	if err != nil {
		return replay.Result{}, fmt.Errorf("replay: %w", err)
	}
	return res, nil
}
