package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/colonyops/swipelist/internal/core/styles"
)

const helpWidth = 56

// helpMarkdown documents the active key map as a markdown table.
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("| key | action |\n|---|---|\n")
	for _, kb := range m.keys.All() {
		h := kb.Help()
		if h.Key == "" {
			continue
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\n`>` reveals **[x]** (delete), `<` reveals **CLOSE**. ")
	b.WriteString("Opening one row's panel closes every other open panel.\n")
	return b.String()
}

// renderHelp renders the help markdown, falling back to the raw text when
// glamour fails.
func (m Model) renderHelp(width int) string {
	md := m.helpMarkdown()

	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw help")
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		m.log.Debug().Err(err).Msg("failed to render help markdown, showing raw help")
		return md
	}
	return strings.TrimSpace(rendered)
}

// helpOverlay centers the help modal over background.
func (m Model) helpOverlay(background string, w, h int) string {
	width := min(helpWidth, max(w-4, 20))
	title := "Help " + styles.TextMutedStyle.Render("swipelist "+m.build.String())

	return NewModal(title, m.renderHelp(width-6), "?/esc: close", width).Overlay(background, w, h)
}
