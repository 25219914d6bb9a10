// Package tui renders the swipeable row list and translates key presses into
// swipe, drag and delete gestures against a coordinator.
package tui

import (
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/swipelist/internal/core/config"
	"github.com/colonyops/swipelist/internal/core/coordinator"
	"github.com/colonyops/swipelist/internal/core/notify"
	"github.com/colonyops/swipelist/internal/core/rows"
	"github.com/colonyops/swipelist/internal/tui/drag"
	tuinotify "github.com/colonyops/swipelist/internal/tui/notify"
	"github.com/colonyops/swipelist/internal/tui/swipe"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// gutterWidth is the cursor/held marker column left of each row.
	gutterWidth = 2
	// chromeHeight is header + divider + footer.
	chromeHeight = 3
)

// UIState represents the current input mode of the TUI.
type UIState int

const (
	stateBrowsing UIState = iota
	stateDragging
	stateShowingHelp
)

// Deps are the collaborators the Model is built from.
type Deps struct {
	Config      *config.Config
	Coordinator *coordinator.Coordinator
	Bus         *tuinotify.Bus
	Logger      zerolog.Logger
	Build       BuildInfo
}

// dragHolder lets the per-row drag hooks handed out by Present install a
// session on the Model across value copies.
type dragHolder struct {
	session *drag.Session
}

// Model is the Bubble Tea model for the row list.
type Model struct {
	cfg   *config.Config
	coord *coordinator.Coordinator
	bus   *tuinotify.Bus
	log   zerolog.Logger
	build BuildInfo

	keys KeyMap
	help help.Model

	panels map[rows.Key]*swipe.Panel
	cursor rows.Key
	drag   *dragHolder
	shifts *AnimationStore

	toastController *ToastController
	toastView       *ToastView

	width, height int
	state         UIState
	frameTicking  bool
	quitting      bool
}

type frameTickMsg time.Time

// New builds the model, mounts a swipe panel per row and subscribes to list
// changes.
func New(deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	bus := deps.Bus
	if bus == nil {
		bus = tuinotify.NewBus(deps.Logger)
	}

	toasts := NewToastController()
	m := Model{
		cfg:             cfg,
		coord:           deps.Coordinator,
		bus:             bus,
		log:             deps.Logger,
		build:           deps.Build,
		keys:            NewKeyMap(cfg.Keys),
		help:            help.New(),
		panels:          make(map[rows.Key]*swipe.Panel),
		drag:            &dragHolder{},
		shifts:          NewAnimationStore(cfg.TUI.ShiftTicks),
		toastController: toasts,
		toastView:       NewToastView(toasts),
		width:           defaultWidth,
		height:          defaultHeight,
	}

	bus.Subscribe(func(n notify.Notification) {
		toasts.Push(n)
	})
	m.coord.Subscribe(m.onListChanged)

	m.mount()
	if list := m.coord.Rows(); len(list) > 0 {
		m.cursor = list[0].Key
	}

	return m
}

// mount creates and registers a panel for every listed row that has none.
func (m Model) mount() {
	for _, v := range m.coord.Present(nil) {
		if _, ok := m.panels[v.Key]; ok {
			continue
		}
		p := swipe.New(v.Key, swipe.Options{
			LeftEnabled:  v.LeftEnabled,
			RightEnabled: v.RightEnabled,
			LeftSnaps:    m.leftSnaps(),
			RightSnaps:   m.rightSnaps(),
			Speed:        m.cfg.TUI.SwipeSpeed,
		})
		m.panels[v.Key] = p
		m.coord.RegisterPanelHandle(v.Key, p)
	}
}

func (m Model) rowWidth() int {
	return max(m.width-gutterWidth, 1)
}

func (m Model) leftSnaps() []int {
	return []int{min(m.cfg.TUI.LeftSnap, m.rowWidth())}
}

func (m Model) rightSnaps() []int {
	return []int{min(m.cfg.TUI.RightSnap, m.rowWidth()), m.rowWidth()}
}

// onListChanged runs inside coordinator mutations.
func (m Model) onListChanged(ch coordinator.Change) {
	m.shifts.RecordShift(ch.Before, ch.After)

	if ch.Kind != coordinator.ChangeDeleted {
		return
	}
	delete(m.panels, ch.Key)
	if r, ok := rows.Find(ch.Before, ch.Key); ok {
		m.bus.Infof("Deleted %s", r.Text)
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
	case frameTickMsg:
		m, cmd = m.handleFrameTick()
		return m, cmd
	case toastTickMsg:
		m, cmd = m.handleToastTick()
		return m, cmd
	case tea.KeyPressMsg:
		m, cmd = m.handleKey(msg)
	}

	ticks := m.scheduleTicks()
	return m, tea.Batch(cmd, ticks)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	for _, p := range m.panels {
		p.Resize(m.leftSnaps(), m.rightSnaps())
	}
	return m
}

// scheduleTicks starts the frame and toast tickers when there is work for
// them and they are not already running.
func (m *Model) scheduleTicks() tea.Cmd {
	var cmds []tea.Cmd
	if !m.frameTicking && m.animating() {
		m.frameTicking = true
		cmds = append(cmds, m.scheduleFrameTick())
	}
	if !m.toastController.Ticking() && m.toastController.HasToasts() {
		m.toastController.SetTicking(true)
		cmds = append(cmds, scheduleToastTick())
	}
	return tea.Batch(cmds...)
}

func (m Model) scheduleFrameTick() tea.Cmd {
	return tea.Tick(m.cfg.TUI.FrameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func (m Model) animating() bool {
	if m.shifts.Active() {
		return true
	}
	for _, p := range m.panels {
		if p.Animating() {
			return true
		}
	}
	return false
}

// handleFrameTick advances every panel one frame in list order. A panel that
// finishes opening makes the coordinator close all the others.
func (m Model) handleFrameTick() (Model, tea.Cmd) {
	m.step()

	if !m.animating() {
		m.frameTicking = false
		return m, nil
	}
	return m, m.scheduleFrameTick()
}

func (m Model) step() {
	for _, r := range m.coord.Rows() {
		p, ok := m.panels[r.Key]
		if !ok {
			continue
		}
		switch p.Tick() {
		case swipe.EventOpened:
			m.log.Debug().Str("key", string(r.Key)).Str("dir", p.Direction().String()).Msg("panel opened")
			m.coord.OnPanelOpened(r.Key)
		case swipe.EventClosed:
			m.log.Debug().Str("key", string(r.Key)).Msg("panel closed")
		}
	}
	m.shifts.Tick()
}

func (m Model) handleToastTick() (Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if !m.toastController.HasToasts() {
		m.toastController.SetTicking(false)
		return m, nil
	}
	return m, scheduleToastTick()
}

// cursorIndex returns the position of the cursor row, or -1.
func (m Model) cursorIndex() int {
	return rows.IndexOf(m.coord.Rows(), m.cursor)
}

func (m Model) moveCursor(delta int) Model {
	list := m.coord.Rows()
	if len(list) == 0 {
		m.cursor = ""
		return m
	}
	idx := max(0, min(rows.IndexOf(list, m.cursor)+delta, len(list)-1))
	m.cursor = list[idx].Key
	return m
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// Cursor returns the key of the highlighted row.
func (m Model) Cursor() rows.Key { return m.cursor }

// State returns the current input mode.
func (m Model) State() UIState { return m.state }

// Panel returns the swipe panel mounted for key.
func (m Model) Panel(key rows.Key) (*swipe.Panel, bool) {
	p, ok := m.panels[key]
	return p, ok
}

// Dragging returns the active drag session, if any.
func (m Model) Dragging() (*drag.Session, bool) {
	return m.drag.session, m.drag.session != nil
}
