package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/swipelist/internal/core/config"
	"github.com/colonyops/swipelist/internal/core/coordinator"
	"github.com/colonyops/swipelist/internal/core/rows"
	"github.com/colonyops/swipelist/internal/core/styles"
	"github.com/colonyops/swipelist/internal/tui/swipe"
	"github.com/colonyops/swipelist/pkg/tuitest"
)

var tick = frameTickMsg(time.Time{})

func newTestModel(t *testing.T, n int) (Model, *coordinator.Coordinator) {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.TUI.SwipeSpeed = 0
	cfg.TUI.ShiftTicks = 2

	coord := coordinator.New(n)
	m := New(Deps{Config: cfg, Coordinator: coord, Logger: zerolog.Nop()})
	return send(t, m, tuitest.WindowSize(80, 24)), coord
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	out, _ := tuitest.Send(m, msgs...)
	model, ok := out.(Model)
	require.True(t, ok)
	return model
}

func panel(t *testing.T, m Model, k rows.Key) *swipe.Panel {
	t.Helper()
	p, ok := m.Panel(k)
	require.True(t, ok, "panel for %s", k)
	return p
}

func TestNew_MountsPanelPerRow(t *testing.T) {
	m, coord := newTestModel(t, 3)

	assert.Equal(t, rows.Key("key-0"), m.Cursor())
	for _, r := range coord.Rows() {
		p := panel(t, m, r.Key)
		h, ok := coord.PanelHandle(r.Key)
		require.True(t, ok)
		assert.Same(t, p, h)
	}
}

func TestModel_DeleteThroughUnderlay(t *testing.T) {
	m, coord := newTestModel(t, 3)

	m = send(t, m, tuitest.KeyDown(), tuitest.KeyRight(), tick)
	require.True(t, panel(t, m, "key-1").IsOpen())

	m = send(t, m, tuitest.KeyEnter())

	assert.Equal(t, []rows.Key{"key-0", "key-2"}, rows.Keys(coord.Rows()))
	assert.Equal(t, rows.Key("key-2"), m.Cursor())
	_, ok := m.Panel("key-1")
	assert.False(t, ok)

	toasts := m.toastController.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Deleted Row 1", toasts[0].notification.Message)
}

func TestModel_DeleteThenOpenClosesOthers(t *testing.T) {
	m, coord := newTestModel(t, 3)

	// delete key-1
	m = send(t, m, tuitest.KeyDown(), tuitest.KeyRight(), tick, tuitest.KeyEnter())
	require.Equal(t, []rows.Key{"key-0", "key-2"}, rows.Keys(coord.Rows()))

	// open key-2's close panel
	m = send(t, m, tuitest.KeyLeft(), tick)
	require.True(t, panel(t, m, "key-2").IsOpen())

	// opening key-0 closes key-2
	m = send(t, m, tuitest.KeyUp(), tuitest.KeyRight(), tick)

	assert.True(t, panel(t, m, "key-0").IsOpen())
	assert.False(t, panel(t, m, "key-2").IsOpen())
	assert.Equal(t, 0, panel(t, m, "key-2").Offset())
}

func TestModel_ButtonsFollowRowFlags(t *testing.T) {
	m, _ := newTestModel(t, 3)

	// key-1 has no close panel
	m = send(t, m, tuitest.KeyDown(), tuitest.KeyLeft(), tick)
	assert.False(t, panel(t, m, "key-1").Animating())
	assert.Equal(t, 0, panel(t, m, "key-1").Offset())

	// key-2 has no delete panel
	m = send(t, m, tuitest.KeyDown(), tuitest.KeyRight(), tick)
	assert.Equal(t, 0, panel(t, m, "key-2").Offset())
}

func TestModel_ToggleClosesOpenPanel(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m = send(t, m, tuitest.KeyRight(), tick)
	require.True(t, panel(t, m, "key-0").IsOpen())

	m = send(t, m, tuitest.KeyRight(), tick)
	assert.False(t, panel(t, m, "key-0").IsOpen())
	assert.Equal(t, swipe.DirNone, panel(t, m, "key-0").Direction())
}

func TestModel_ToggleIgnoresMissingSideWhileOpen(t *testing.T) {
	m, _ := newTestModel(t, 3)

	// key-1 offers delete but not close
	m = send(t, m, tuitest.KeyDown(), tuitest.KeyRight(), tick)
	require.True(t, panel(t, m, "key-1").IsOpen())

	m = send(t, m, tuitest.KeyLeft(), tick)

	p := panel(t, m, "key-1")
	assert.True(t, p.IsOpen())
	assert.Equal(t, swipe.DirLeft, p.Direction())
}

func TestModel_RightPanelOpensFullWidthAndCloses(t *testing.T) {
	m, coord := newTestModel(t, 3)

	m = send(t, m, tuitest.KeyLeft(), tick)
	p := panel(t, m, "key-0")
	require.True(t, p.IsOpen())
	assert.Equal(t, m.rowWidth(), p.Offset())

	m = send(t, m, tuitest.KeyEnter(), tick)
	assert.False(t, p.IsOpen())
	assert.Equal(t, 3, coord.Len(), "CLOSE never deletes")
}

func TestModel_ActivateWithoutPanelIsNoop(t *testing.T) {
	m, coord := newTestModel(t, 3)

	send(t, m, tuitest.KeyEnter(), tick)

	assert.Equal(t, 3, coord.Len())
}

func TestModel_EscClosesPanels(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m = send(t, m, tuitest.KeyRight(), tick, tuitest.KeyEsc(), tick)

	assert.False(t, panel(t, m, "key-0").IsOpen())
}

func TestModel_DragReorderCommits(t *testing.T) {
	m, coord := newTestModel(t, 3)

	m = send(t, m, tuitest.KeySpace())
	require.Equal(t, stateDragging, m.State())
	s, ok := m.Dragging()
	require.True(t, ok)
	assert.Equal(t, rows.Key("key-0"), s.Held())

	m = send(t, m, tuitest.KeyDown(), tuitest.KeyDown())
	assert.Equal(t, []rows.Key{"key-0", "key-1", "key-2"}, rows.Keys(coord.Rows()), "uncommitted while held")

	m = send(t, m, tuitest.KeySpace())

	assert.Equal(t, stateBrowsing, m.State())
	assert.Equal(t, []rows.Key{"key-1", "key-2", "key-0"}, rows.Keys(coord.Rows()))
	assert.Equal(t, rows.Key("key-0"), m.Cursor())
	assert.True(t, m.shifts.Active())

	m = send(t, m, tick, tick)
	assert.False(t, m.shifts.Active())
}

func TestModel_DragCancelKeepsOrder(t *testing.T) {
	m, coord := newTestModel(t, 3)

	m = send(t, m, tuitest.KeySpace(), tuitest.KeyDown(), tuitest.KeyEsc())

	assert.Equal(t, stateBrowsing, m.State())
	_, ok := m.Dragging()
	assert.False(t, ok)
	assert.Equal(t, []rows.Key{"key-0", "key-1", "key-2"}, rows.Keys(coord.Rows()))
}

func TestModel_DragDropInPlaceIsNoop(t *testing.T) {
	m, coord := newTestModel(t, 3)
	changes := 0
	coord.Subscribe(func(coordinator.Change) { changes++ })

	m = send(t, m, tuitest.KeySpace(), tuitest.KeySpace())

	assert.Zero(t, changes)
	assert.Equal(t, stateBrowsing, m.State())
	assert.False(t, m.shifts.Active())
}

func TestModel_FinishedDragSessionFallsBackToBrowsing(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m = send(t, m, tuitest.KeySpace())
	require.Equal(t, stateDragging, m.State())
	m.drag.session.Cancel()

	m = send(t, m, tuitest.KeyDown())

	assert.Equal(t, stateBrowsing, m.State())
	_, dragging := m.Dragging()
	assert.False(t, dragging)
	assert.Equal(t, rows.Key("key-1"), m.Cursor())
}

func TestModel_DragFollowsHeldRowInView(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m = send(t, m, tuitest.KeySpace(), tuitest.KeyDown())

	assert.Equal(t, []rows.Key{"key-1", "key-0", "key-2"}, rows.Keys(m.displayRows()))
}

func TestModel_HelpToggles(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m = send(t, m, tuitest.KeyPress('?'))
	require.Equal(t, stateShowingHelp, m.State())

	// row keys are inert while help is shown
	m = send(t, m, tuitest.KeyDown())
	assert.Equal(t, rows.Key("key-0"), m.Cursor())

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateBrowsing, m.State())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, 3)

	out, cmds := tuitest.Send(m, tuitest.KeyPress('q'))

	require.NotEmpty(t, cmds)
	assert.True(t, out.(Model).quitting)
}

func TestModel_CursorClamps(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m = send(t, m, tuitest.KeyUp())
	assert.Equal(t, rows.Key("key-0"), m.Cursor())

	m = send(t, m, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyDown())
	assert.Equal(t, rows.Key("key-2"), m.Cursor())
}

func TestModel_DeleteLastRowEmptiesCursor(t *testing.T) {
	m, coord := newTestModel(t, 1)

	m = send(t, m, tuitest.KeyRight(), tick, tuitest.KeyEnter())

	assert.Zero(t, coord.Len())
	assert.Empty(t, m.Cursor())
	assert.Contains(t, tuitest.StripANSI(m.renderMain()), "No rows left")
}

func TestModel_RenderShowsButtonsAndUnderlay(t *testing.T) {
	m, _ := newTestModel(t, 3)

	out := tuitest.StripANSI(m.renderMain())
	assert.Contains(t, out, "Row 0")
	assert.Contains(t, out, "Row 2")
	assert.Contains(t, out, "3 rows")
	assert.Contains(t, out, styles.IconOpenLeft)
	assert.NotContains(t, out, "[x]")

	m = send(t, m, tuitest.KeyRight(), tick)
	out = tuitest.StripANSI(m.renderMain())
	assert.Contains(t, out, "[x]")

	m = send(t, m, tuitest.KeyRight(), tick, tuitest.KeyLeft(), tick)
	out = tuitest.StripANSI(m.renderMain())
	assert.Contains(t, out, "CLOSE")
}

func TestModel_RenderHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m = send(t, m, tuitest.KeyPress('?'))
	out := tuitest.StripANSI(m.helpOverlay(m.renderMain(), 80, 24))

	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "pick up / drop")
}

func TestUnderlayLabel(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{width: 8, want: "    [x] "},
		{width: 4, want: "[x] "},
		{width: 2, want: "] "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, underlayLabel("[x]", tt.width, true))
	}
	assert.Equal(t, "   ", underlayLabel("[x]", 3, false))
}

func TestModel_EscDismissesToastWhenNothingOpen(t *testing.T) {
	m, _ := newTestModel(t, 3)
	m.bus.Warnf("something")
	require.True(t, m.toastController.HasToasts())

	m = send(t, m, tuitest.KeyEsc())

	assert.False(t, m.toastController.HasToasts())
}

func TestModal_View(t *testing.T) {
	out := tuitest.StripANSI(NewModal("Title", "body text", "esc: close", 30).View())

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
	assert.Contains(t, out, "esc: close")
}

func TestBuildInfo_String(t *testing.T) {
	assert.Equal(t, "dev", BuildInfo{}.String())
	assert.Equal(t, "v1.2.0", BuildInfo{Version: "v1.2.0"}.String())
}
