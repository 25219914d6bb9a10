package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/swipelist/internal/core/config"
	"github.com/colonyops/swipelist/internal/core/replay"
	"github.com/colonyops/swipelist/internal/core/rows"
	"github.com/colonyops/swipelist/internal/printer"
	"github.com/colonyops/swipelist/pkg/iojson"
)

func newTestApp(t *testing.T, cfg *config.Config) (*cli.Command, context.Context, *bytes.Buffer) {
	t.Helper()

	if cfg == nil {
		loaded, err := config.Load("")
		require.NoError(t, err)
		cfg = loaded
	}

	var buf bytes.Buffer
	flags := &Flags{Config: cfg}
	app := &cli.Command{
		Name:           "swipelist",
		Writer:         &buf,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = NewRowsCmd(flags).Register(app)
	app = NewReplayCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	ctx := printer.NewContext(context.Background(), printer.New(&buf))
	return app, ctx, &buf
}

func TestRowsCmd_JSON(t *testing.T) {
	app, ctx, buf := newTestApp(t, nil)

	require.NoError(t, app.Run(ctx, []string{"swipelist", "rows", "--json"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first rowJSON
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, rows.Key("key-0"), first.Key)
	assert.Equal(t, "Row 0", first.Text)
	assert.Equal(t, "#0080ff", first.Color)
	assert.True(t, first.HasLeft)
	assert.True(t, first.HasRight)
}

func TestRowsCmd_Table(t *testing.T) {
	app, ctx, buf := newTestApp(t, nil)

	require.NoError(t, app.Run(ctx, []string{"swipelist", "rows"}))

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "key-2")
	assert.Contains(t, out, "#ff7f00")
}

func TestReplayCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	script := `{"events":[{"op":"delete","key":"key-1"},{"op":"open","key":"key-0"}]}`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	app, ctx, buf := newTestApp(t, nil)
	require.NoError(t, app.Run(ctx, []string{"swipelist", "replay", "-f", path, "--json"}))

	var res replay.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, []rows.Key{"key-0", "key-2"}, rows.Keys(res.Rows))
	assert.Equal(t, 1, res.Closes["key-2"])
}

func TestReplayCmd_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	script := `{"events":[{"op":"delete","key":"key-9"}]}`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	app, ctx, buf := newTestApp(t, nil)
	require.NoError(t, app.Run(ctx, []string{"swipelist", "replay", "-f", path}))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, `delete key-9: no row "key-9"`)
	assert.Contains(t, out, "0. key-0 (Row 0) closes=0")
}

func TestReplayCmd_BadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"events":[{"op":"fly"}]}`), 0o644))

	app, ctx, _ := newTestApp(t, nil)
	err := app.Run(ctx, []string{"swipelist", "replay", "-f", path})

	require.Error(t, err)
	assert.True(t, errors.Is(err, replay.ErrUnknownOp))
}

func TestReplayCmd_BadScriptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"events":[{"op":"fly"}]}`), 0o644))

	app, ctx, buf := newTestApp(t, nil)
	var errBuf bytes.Buffer
	app.ErrWriter = &errBuf

	err := app.Run(ctx, []string{"swipelist", "replay", "-f", path, "--json"})

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Empty(t, buf.String())

	var out iojson.Error
	require.NoError(t, json.Unmarshal(errBuf.Bytes(), &out))
	assert.Equal(t, "replay failed", out.Message)
	assert.Contains(t, out.Data["error"], "fly")
}

func TestConfigValidateCmd_Valid(t *testing.T) {
	app, ctx, buf := newTestApp(t, nil)

	require.NoError(t, app.Run(ctx, []string{"swipelist", "config", "validate"}))
	assert.Contains(t, ansi.Strip(buf.String()), "Configuration is valid")
}

func TestConfigValidateCmd_JSONReportsFields(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Theme = "neon"

	app, ctx, buf := newTestApp(t, cfg)
	_ = app.Run(ctx, []string{"swipelist", "config", "validate", "--format", "json"})

	var out struct {
		Valid  bool              `json:"valid"`
		Errors []validationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.False(t, out.Valid)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "theme", out.Errors[0].Field)
}

func TestCollectErrors(t *testing.T) {
	assert.Nil(t, collectErrors(nil))

	plain := collectErrors(errors.New("boom"))
	assert.Equal(t, []validationError{{Message: "boom"}}, plain)

	fields := collectErrors(criterio.NewFieldErrors("theme", errors.New("unknown")))
	assert.Equal(t, []validationError{{Field: "theme", Message: "unknown"}}, fields)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")

	assert.Equal(t, filepath.Join("/cfg", "swipelist", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/state", "swipelist", "swipelist.log"), DefaultLogFile())
}
