package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/swipelist/internal/core/notify"
	"github.com/colonyops/swipelist/internal/core/styles"
	"github.com/colonyops/swipelist/pkg/tuitest"
)

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Notification{Level: notify.LevelInfo, Message: time.Duration(i).String()})
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2ns", c.Toasts()[0].notification.Message)
}

func TestToastController_Push_folds_repeats(t *testing.T) {
	c := NewToastController()
	v := NewToastView(c)

	c.Push(notify.Notification{Level: notify.LevelWarning, Message: "Reorder rejected"})
	c.toasts[0].remaining = time.Millisecond
	c.Push(notify.Notification{Level: notify.LevelWarning, Message: "Reorder rejected"})

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, 2, c.Toasts()[0].repeats)
	assert.Equal(t, defaultToastTTL, c.Toasts()[0].remaining)
	assert.Contains(t, v.View(), "(×2)")

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "Reorder rejected"})
	assert.Len(t, c.Toasts(), 2, "different level stacks")
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "expires"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "survives"})

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Message)
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController()
	c.Dismiss() // should not panic

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "second"})
	c.Dismiss()

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].notification.Message)

	c.Dismiss()
	assert.False(t, c.HasToasts())
}

func TestToastView_View_renders_each_level(t *testing.T) {
	tests := []struct {
		level notify.Level
		icon  string
	}{
		{notify.LevelError, styles.IconError},
		{notify.LevelWarning, styles.IconWarning},
		{notify.LevelInfo, styles.IconInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			c := NewToastController()
			v := NewToastView(c)

			c.Push(notify.Notification{Level: tt.level, Message: "test msg"})

			out := v.View()
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToastView_View_stacks_oldest_first(t *testing.T) {
	c := NewToastController()
	v := NewToastView(c)
	assert.Empty(t, v.View())

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelError, Message: "second"})

	out := v.View()
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestToastView_Overlay_without_toasts_returns_background(t *testing.T) {
	v := NewToastView(NewToastController())
	assert.Equal(t, "bg", v.Overlay("bg", 80, 24))
}

func TestToastView_Overlay_places_stack_top_right_below_header(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "Deleted Row 1"})
	v := NewToastView(c)

	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	lines := strings.Split(tuitest.StripANSI(v.Overlay(bg, 80, 24)), "\n")
	require.Len(t, lines, 24)

	assert.Equal(t, strings.Repeat(".", 80), lines[0], "header row stays visible")
	assert.Equal(t, strings.Repeat(".", 80), lines[1], "divider row stays visible")

	row := -1
	for i, line := range lines {
		if strings.Contains(line, "Deleted Row 1") {
			row = i
			break
		}
	}
	require.GreaterOrEqual(t, row, 2)
	assert.Greater(t, strings.Index(lines[row], "Deleted Row 1"), 40)
}
