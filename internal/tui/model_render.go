package tui

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/swipelist/internal/core/rows"
	"github.com/colonyops/swipelist/internal/core/styles"
	"github.com/colonyops/swipelist/internal/tui/swipe"
)

const (
	cursorMarker = "▌"
	// shiftFlash is how far a shifted row's background blends toward white
	// on the first frame of its highlight.
	shiftFlash = 0.5
)

var white = rows.RGB{R: 255, G: 255, B: 255}

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	content := m.renderMain()
	if m.state == stateShowingHelp {
		content = m.helpOverlay(content, w, h)
	}

	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) renderMain() string {
	list := m.displayRows()

	title := styles.TitleStyle.Render(styles.IconDragHandle + " swipelist")
	count := styles.TextMutedStyle.Render(fmt.Sprintf("%d rows", len(list)))
	header := lipgloss.JoinHorizontal(lipgloss.Left, " ", title, "  ", count)

	divider := styles.TextMutedStyle.Render(strings.Repeat("─", max(m.width, 1)))

	contentHeight := max(m.height-chromeHeight, 1)
	body := lipgloss.NewStyle().Height(contentHeight).Render(m.renderRows(list, contentHeight))

	bindings := m.keys.ShortHelp()
	if m.state == stateDragging {
		bindings = m.keys.DragHelp()
	}
	footer := " " + m.help.ShortHelpView(bindings)

	return lipgloss.JoinVertical(lipgloss.Left, header, divider, body, footer)
}

// displayRows is the list as the user sees it: the drag preview order while
// a row is held, the committed list otherwise.
func (m Model) displayRows() []rows.Row {
	if s := m.drag.session; s != nil {
		return s.Order()
	}
	return m.coord.Rows()
}

func (m Model) renderRows(list []rows.Row, height int) string {
	if len(list) == 0 {
		return "\n " + styles.TextMutedStyle.Render("No rows left. Press q to quit.")
	}

	rowHeight := max(m.cfg.TUI.RowHeight, 1)
	visible := max(height/rowHeight, 1)

	first := 0
	if idx := rows.IndexOf(list, m.cursor); idx >= visible {
		first = idx - visible + 1
	}
	last := min(first+visible, len(list))

	rendered := make([]string, 0, last-first)
	for _, r := range list[first:last] {
		rendered = append(rendered, m.renderRow(r, rowHeight))
	}
	return strings.Join(rendered, "\n")
}

// renderRow draws one row: a gutter with the cursor or held marker, then the
// overlay slid aside by the panel offset to reveal the underlay.
func (m Model) renderRow(r rows.Row, height int) string {
	width := m.rowWidth()
	mid := height / 2

	bg := r.Background
	if s := m.shifts.Strength(r.Key); s > 0 {
		bg = bg.Blend(white, s*shiftFlash)
	}

	var (
		dir    swipe.Direction
		offset int
		pct    float64
	)
	if p, ok := m.panels[r.Key]; ok {
		dir, offset, pct = p.Direction(), min(p.Offset(), width), p.PercentOpen()
	}

	overlayStyle := styles.RowTextStyle.Background(bg.Color())

	lines := make([]string, height)
	for i := range lines {
		text := strings.Repeat(" ", width)
		if i == mid {
			text = overlayLine(r, width)
		}

		var line string
		switch {
		case dir == swipe.DirLeft && offset > 0:
			under := underlayStyle(bg, styles.ColorDeleteUnderlay, pct).Render(underlayLabel(styles.IconDelete, offset, i == mid))
			line = overlayStyle.Render(ansi.Cut(text, offset, width)) + under
		case dir == swipe.DirRight && offset > 0:
			under := underlayStyle(bg, styles.ColorCloseUnderlay, pct).Render(underlayLabel(styles.IconClose, offset, i == mid))
			line = under + overlayStyle.Render(ansi.Cut(text, 0, width-offset))
		default:
			line = overlayStyle.Render(text)
		}

		lines[i] = m.gutter(r.Key, i == mid) + line
	}

	return strings.Join(lines, "\n")
}

func (m Model) gutter(k rows.Key, mid bool) string {
	pad := strings.Repeat(" ", gutterWidth-1)
	if !mid {
		return strings.Repeat(" ", gutterWidth)
	}
	if s := m.drag.session; s != nil && s.Held() == k {
		return styles.HeldMarkerStyle.Render(styles.IconDragHandle) + pad
	}
	if k == m.cursor {
		return styles.CursorMarkerStyle.Render(cursorMarker) + pad
	}
	return strings.Repeat(" ", gutterWidth)
}

// overlayLine is the labelled line of a row: the close button on the left
// edge, the text centered, the delete button on the right edge.
func overlayLine(r rows.Row, width int) string {
	line := lipgloss.PlaceHorizontal(width, lipgloss.Center, ansi.Truncate(r.Text, max(width-6, 0), ""))
	if width < 4 {
		return line
	}

	if r.HasRight {
		line = " " + styles.IconOpenRight + ansi.Cut(line, 2, width)
	}
	if r.HasLeft {
		line = ansi.Cut(line, 0, width-2) + styles.IconOpenLeft + " "
	}
	return line
}

// underlayLabel right-aligns label in a strip of width cells. Strips too
// narrow for the label show its trailing part, so it slides in with the edge.
func underlayLabel(label string, width int, mid bool) string {
	if !mid {
		return strings.Repeat(" ", width)
	}
	s := label + " "
	n := ansi.StringWidth(s)
	if width >= n {
		return strings.Repeat(" ", width-n) + s
	}
	return ansi.Cut(s, n-width, n)
}

// underlayStyle fades the underlay in from the row color as the panel opens.
func underlayStyle(bg rows.RGB, underlay color.Color, pct float64) lipgloss.Style {
	c := bg.Blend(toRGB(underlay), pct)
	return lipgloss.NewStyle().Foreground(styles.ColorRowText).Background(c.Color())
}

func toRGB(c color.Color) rows.RGB {
	cf, _ := colorful.MakeColor(c)
	return rows.RGB{R: cf.R * 255, G: cf.G * 255, B: cf.B * 255}
}
