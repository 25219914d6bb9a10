package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/swipelist/internal/core/rows"
	"github.com/colonyops/swipelist/internal/tui/drag"
	"github.com/colonyops/swipelist/internal/tui/swipe"
)

// handleKey routes a key press by input mode.
func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch m.state {
	case stateShowingHelp:
		return m.handleHelpKey(msg)
	case stateDragging:
		return m.handleDragKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel):
		m.state = stateBrowsing
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.state = stateShowingHelp
	case key.Matches(msg, m.keys.Up):
		m = m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m = m.moveCursor(1)
	case key.Matches(msg, m.keys.OpenLeft):
		m.toggle(swipe.DirLeft)
	case key.Matches(msg, m.keys.OpenRight):
		m.toggle(swipe.DirRight)
	case key.Matches(msg, m.keys.Activate):
		m = m.activate()
	case key.Matches(msg, m.keys.Drag):
		m = m.beginDrag()
	case key.Matches(msg, m.keys.Cancel):
		if !m.closeAll() {
			m.toastController.Dismiss()
		}
	}
	return m, nil
}

// toggle presses the overlay button on the cursor row. A row without the
// button for dir ignores the press, even while its other side is open.
func (m Model) toggle(dir swipe.Direction) {
	p, ok := m.panels[m.cursor]
	if !ok || !p.Enabled(dir) {
		return
	}
	p.Toggle(dir)
}

// activate presses the underlay action revealed on the cursor row.
func (m Model) activate() Model {
	p, ok := m.panels[m.cursor]
	if !ok || p.Offset() == 0 {
		return m
	}

	switch p.Direction() {
	case swipe.DirLeft:
		row, ok := m.coord.Row(m.cursor)
		if !ok {
			return m
		}
		idx := m.cursorIndex()
		if !m.coord.DeleteRow(row) {
			m.bus.Errorf("Could not delete %s", row.Text)
			return m
		}
		m = m.cursorAfterDelete(idx)
	case swipe.DirRight:
		p.Close()
	}
	return m
}

// cursorAfterDelete keeps the cursor at the deleted row's position, falling
// back to the new last row.
func (m Model) cursorAfterDelete(idx int) Model {
	list := m.coord.Rows()
	if len(list) == 0 {
		m.cursor = ""
		return m
	}
	m.cursor = list[min(idx, len(list)-1)].Key
	return m
}

// closeAll closes every displaced panel and reports whether there was one.
func (m Model) closeAll() bool {
	closed := false
	for _, p := range m.panels {
		if p.Offset() > 0 || p.Animating() {
			p.Close()
			closed = true
		}
	}
	return closed
}

// beginDrag picks up the cursor row through its drag hook.
func (m Model) beginDrag() Model {
	holder := m.drag
	hook := func(k rows.Key) {
		s, ok := drag.Begin(m.coord.Rows(), k)
		if !ok {
			return
		}
		holder.session = s
	}

	for _, v := range m.coord.Present(hook) {
		if v.Key == m.cursor {
			v.BeginDrag()
			break
		}
	}

	if holder.session == nil {
		return m
	}
	if p, ok := m.panels[m.cursor]; ok {
		p.Close()
	}
	m.state = stateDragging
	m.log.Debug().Str("key", string(m.cursor)).Msg("drag started")
	return m
}

func (m Model) handleDragKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	s := m.drag.session
	if s == nil || s.Done() {
		m = m.endDrag()
		return m.handleBrowseKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		s.Cancel()
		m = m.endDrag()
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		s.Up()
	case key.Matches(msg, m.keys.Down):
		s.Down()
	case key.Matches(msg, m.keys.Drag):
		moved := s.Moved()
		order := s.Drop()
		if !moved {
			m.log.Debug().Str("key", string(s.Held())).Msg("dropped in place")
		} else if err := m.coord.ReorderTo(order); err != nil {
			m.bus.Warnf("Reorder rejected: %v", err)
		}
		m = m.endDrag()
	case key.Matches(msg, m.keys.Cancel):
		s.Cancel()
		m = m.endDrag()
		m.log.Debug().Msg("drag cancelled")
	}
	return m, nil
}

func (m Model) endDrag() Model {
	m.drag.session = nil
	m.state = stateBrowsing
	return m
}
