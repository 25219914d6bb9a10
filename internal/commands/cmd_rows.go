package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/swipelist/internal/core/rows"
	"github.com/colonyops/swipelist/pkg/iojson"
)

type RowsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewRowsCmd creates a new rows command
func NewRowsCmd(flags *Flags) *RowsCmd {
	return &RowsCmd{flags: flags}
}

// Register adds the rows command to the application
func (cmd *RowsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rows",
		Usage:     "Print the seeded row list",
		UsageText: "swipelist rows [--json]",
		Description: `Prints every seeded row with its key, label, background color and the
swipe panels it offers.

Use --json for one JSON object per row.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RowsCmd) run(_ context.Context, c *cli.Command) error {
	list := rows.Seed(cmd.flags.Config.Rows)
	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, r := range list {
			if err := iojson.WriteLine(out, rowInfo(r)); err != nil {
				return fmt.Errorf("encode row: %w", err)
			}
		}
		return nil
	}

	swatches := out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tTEXT\tCOLOR\tDELETE\tCLOSE\t")
	for _, r := range list {
		swatch := ""
		if swatches {
			swatch = lipgloss.NewStyle().Background(r.Background.Color()).Render("    ")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Key, r.Text, r.Background.Hex(), yesNo(r.HasLeft), yesNo(r.HasRight), swatch)
	}
	return w.Flush()
}

type rowJSON struct {
	Key      rows.Key `json:"key"`
	Text     string   `json:"text"`
	Color    string   `json:"color"`
	HasLeft  bool     `json:"has_left"`
	HasRight bool     `json:"has_right"`
}

func rowInfo(r rows.Row) rowJSON {
	return rowJSON{
		Key:      r.Key,
		Text:     r.Text,
		Color:    r.Background.Hex(),
		HasLeft:  r.HasLeft,
		HasRight: r.HasRight,
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
