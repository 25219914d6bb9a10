package tui

import (
	"time"

	"github.com/colonyops/swipelist/internal/core/notify"
)

const (
	defaultToastTTL   = 3 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 36
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
	// repeats counts identical notifications folded into this toast.
	repeats int
}

// ToastController holds the toasts raised by deletes and rejected reorders.
// A notification identical to the newest toast refreshes it instead of
// stacking a copy.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds n to the stack, evicting the oldest toast beyond defaultMaxToasts.
func (c *ToastController) Push(n notify.Notification) {
	if last := len(c.toasts) - 1; last >= 0 {
		t := &c.toasts[last]
		if t.notification.Level == n.Level && t.notification.Message == n.Message {
			t.repeats++
			t.remaining = defaultToastTTL
			return
		}
	}

	c.toasts = append(c.toasts, toast{notification: n, remaining: defaultToastTTL, repeats: 1})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick ages every toast by d and drops the expired ones.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

func (c *ToastController) HasToasts() bool { return len(c.toasts) > 0 }

// Toasts returns the active toasts, oldest first.
func (c *ToastController) Toasts() []toast { return c.toasts }

// Ticking reports whether a toast tick is scheduled.
func (c *ToastController) Ticking() bool { return c.ticking }

func (c *ToastController) SetTicking(v bool) { c.ticking = v }
