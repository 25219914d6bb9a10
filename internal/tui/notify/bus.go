// Package notify provides the in-process notification bus used by the TUI.
package notify

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/swipelist/internal/core/notify"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus dispatches notifications to subscribers inline. It is meant to be used
// from the Bubble Tea Update loop and is not safe for concurrent use.
type Bus struct {
	subscribers []Subscriber
	log         zerolog.Logger
	now         func() time.Time
}

// NewBus creates a notification bus. Every notification is also logged.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{log: log, now: time.Now}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.subscribers = append(b.subscribers, fn)
}

// Publish stamps n and dispatches it to all subscribers.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now()
	}

	b.log.Debug().Str("level", string(n.Level)).Str("message", n.Message).Msg("notification")

	for _, fn := range b.subscribers {
		fn(n)
	}
}

// Errorf publishes an error-level notification.
func (b *Bus) Errorf(format string, args ...any) {
	b.Publish(notify.Notification{Level: notify.LevelError, Message: fmt.Sprintf(format, args...)})
}

// Warnf publishes a warning-level notification.
func (b *Bus) Warnf(format string, args ...any) {
	b.Publish(notify.Notification{Level: notify.LevelWarning, Message: fmt.Sprintf(format, args...)})
}

// Infof publishes an info-level notification.
func (b *Bus) Infof(format string, args ...any) {
	b.Publish(notify.Notification{Level: notify.LevelInfo, Message: fmt.Sprintf(format, args...)})
}
