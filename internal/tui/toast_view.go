package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/swipelist/internal/core/notify"
	"github.com/colonyops/swipelist/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView draws the delete and reorder toasts in the top-right corner of
// the row area, just under the header.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View stacks the active toasts, newest last.
func (v *ToastView) View() string {
	var b strings.Builder
	for i, t := range v.controller.Toasts() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderToast(t))
	}
	return b.String()
}

func toastLook(level notify.Level) (string, lipgloss.Style) {
	switch level {
	case notify.LevelError:
		return styles.IconError, styles.ToastErrorStyle
	case notify.LevelWarning:
		return styles.IconWarning, styles.ToastWarningStyle
	default:
		return styles.IconInfo, styles.ToastInfoStyle
	}
}

func renderToast(t toast) string {
	icon, style := toastLook(t.notification.Level)

	text := fmt.Sprintf("%s %s", icon, t.notification.Message)
	if t.repeats > 1 {
		text += fmt.Sprintf(" (×%d)", t.repeats)
	}
	return style.Width(toastWidth).Render(text)
}

// Overlay places the toasts over the list below the header and divider.
// Rows under the toasts stay interactive; toasts never take focus.
func (v *ToastView) Overlay(background string, width, height int) string {
	stack := v.View()
	if stack == "" {
		return background
	}

	x := max(width-lipgloss.Width(stack)-1, 0)
	y := min(chromeHeight-1, max(height-lipgloss.Height(stack), 0))

	layer := lipgloss.NewLayer(stack).X(x).Y(y).Z(2)
	return lipgloss.NewCompositor(lipgloss.NewLayer(background), layer).Render()
}
