package tui

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/swipelist/internal/core/styles"
)

// Modal is a titled dialog composited over the list.
type Modal struct {
	title string
	body  string
	hint  string
	width int
}

// NewModal creates a modal. width includes the border and padding; zero
// sizes to the content.
func NewModal(title, body, hint string, width int) Modal {
	return Modal{title: title, body: body, hint: hint, width: width}
}

// View renders the modal box on its own.
func (m Modal) View() string {
	parts := []string{styles.ModalTitleStyle.Render(m.title), "", m.body}
	if m.hint != "" {
		parts = append(parts, styles.ModalHelpStyle.Render(m.hint))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	style := styles.ModalStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(content)
}

// Overlay renders the modal centered as a layer over background.
func (m Modal) Overlay(background string, width, height int) string {
	modal := m.View()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)
	mW := lipgloss.Width(modal)
	mH := lipgloss.Height(modal)
	modalLayer.X(max((width-mW)/2, 0)).Y(max((height-mH)/2, 0)).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}
