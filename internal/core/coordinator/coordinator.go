// Package coordinator owns the ordered row list and enforces the rules that
// tie delete, reorder and swipe-panel exclusivity together.
//
// A Coordinator never initiates anything. It reacts to terminal events
// reported by the swipe and drag collaborators and replaces its list
// wholesale on every mutation, so readers always observe a consistent
// snapshot. It is not safe for concurrent use; all calls are expected to
// come from a single event loop.
package coordinator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/colonyops/swipelist/internal/core/rows"
)

// ErrInvalidOrder is returned by ReorderTo when the supplied order is not a
// permutation of the current rows.
var ErrInvalidOrder = errors.New("order is not a permutation of the current rows")

// ChangeKind identifies the mutation reported to listeners.
type ChangeKind int

const (
	ChangeDeleted ChangeKind = iota + 1
	ChangeReordered
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeDeleted:
		return "deleted"
	case ChangeReordered:
		return "reordered"
	default:
		return "unknown"
	}
}

// Change describes an effective mutation of the list.
type Change struct {
	Kind ChangeKind
	// Key is the deleted row. Empty for reorders.
	Key rows.Key
	// Before and After are snapshots of the list around the mutation.
	Before []rows.Row
	After  []rows.Row
}

// Listener is notified after every effective mutation.
type Listener func(Change)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used for absorbed precondition violations.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// WithListener registers a change listener.
func WithListener(fn Listener) Option {
	return func(c *Coordinator) { c.Subscribe(fn) }
}

// Coordinator holds the row list and the open-panel registry.
type Coordinator struct {
	list      []rows.Row
	panels    *registry
	listeners []Listener
	log       zerolog.Logger
}

// New seeds a coordinator with n rows.
func New(n int, opts ...Option) *Coordinator {
	c := &Coordinator{
		list:   rows.Seed(n),
		panels: newRegistry(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rows returns a snapshot of the current list.
func (c *Coordinator) Rows() []rows.Row {
	return slices.Clone(c.list)
}

// Len returns the number of rows in the list.
func (c *Coordinator) Len() int {
	return len(c.list)
}

// Row returns the row with the given key.
func (c *Coordinator) Row(key rows.Key) (rows.Row, bool) {
	return rows.Find(c.list, key)
}

// DeleteRow removes row from the list by key. Deleting a row that is not
// present leaves the list untouched and returns false.
func (c *Coordinator) DeleteRow(row rows.Row) bool {
	if rows.IndexOf(c.list, row.Key) < 0 {
		c.log.Debug().Str("key", string(row.Key)).Msg("delete of absent row ignored")
		return false
	}

	before := c.list
	next := make([]rows.Row, 0, len(before)-1)
	for _, r := range before {
		if r.Key != row.Key {
			next = append(next, r)
		}
	}
	c.list = next

	c.log.Info().Str("key", string(row.Key)).Int("remaining", len(next)).Msg("row deleted")
	c.emit(Change{Kind: ChangeDeleted, Key: row.Key, Before: before, After: next})
	return true
}

// ReorderTo replaces the list with order. order must contain exactly the
// current keys; otherwise the list is kept and ErrInvalidOrder is returned.
// Committing the order already in place is a no-op.
func (c *Coordinator) ReorderTo(order []rows.Row) error {
	if err := c.checkPermutation(order); err != nil {
		c.log.Warn().Err(err).Msg("reorder rejected")
		return err
	}

	if slices.Equal(rows.Keys(order), rows.Keys(c.list)) {
		return nil
	}

	before := c.list
	c.list = slices.Clone(order)

	c.log.Info().Strs("order", keyStrings(c.list)).Msg("rows reordered")
	c.emit(Change{Kind: ChangeReordered, Before: before, After: c.list})
	return nil
}

func (c *Coordinator) checkPermutation(order []rows.Row) error {
	if len(order) != len(c.list) {
		return fmt.Errorf("%w: got %d rows, have %d", ErrInvalidOrder, len(order), len(c.list))
	}

	seen := make(map[rows.Key]bool, len(order))
	for _, r := range order {
		if seen[r.Key] {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidOrder, r.Key)
		}
		if rows.IndexOf(c.list, r.Key) < 0 {
			return fmt.Errorf("%w: unknown key %q", ErrInvalidOrder, r.Key)
		}
		seen[r.Key] = true
	}
	return nil
}

// RegisterPanelHandle records the close handle for a row's swipe panel.
// The first handle registered for a key wins; later registrations and nil
// handles are ignored and report false.
func (c *Coordinator) RegisterPanelHandle(key rows.Key, h PanelHandle) bool {
	if h == nil {
		return false
	}
	ok := c.panels.add(key, h)
	if !ok {
		c.log.Debug().Str("key", string(key)).Msg("duplicate panel handle ignored")
	}
	return ok
}

// PanelHandle returns the handle registered for key.
func (c *Coordinator) PanelHandle(key rows.Key) (PanelHandle, bool) {
	return c.panels.get(key)
}

// OnPanelOpened enforces the single-open-panel rule: every other registered
// panel whose row is still listed is told to close.
func (c *Coordinator) OnPanelOpened(opened rows.Key) {
	closed := 0
	c.panels.each(func(key rows.Key, h PanelHandle) {
		if key == opened {
			return
		}
		if rows.IndexOf(c.list, key) < 0 {
			return
		}
		h.Close()
		closed++
	})

	c.log.Debug().Str("key", string(opened)).Int("closed", closed).Msg("panel opened")
}

// Subscribe registers a change listener after construction.
func (c *Coordinator) Subscribe(fn Listener) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

func (c *Coordinator) emit(ch Change) {
	for _, fn := range c.listeners {
		fn(ch)
	}
}

func keyStrings(rs []rows.Row) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r.Key)
	}
	return out
}
