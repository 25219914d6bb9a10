// Package drag implements the pick-up/move/drop gesture used to reorder
// rows. A Session works on its own copy of the order; nothing is committed
// until Drop returns the final permutation.
package drag

import (
	"slices"

	"github.com/colonyops/swipelist/internal/core/rows"
)

// Session is an in-progress drag of a single row.
type Session struct {
	order []rows.Row
	held  rows.Key
	start int
	done  bool
}

// Begin picks up the row with the given key. It returns false when the key
// is not in list.
func Begin(list []rows.Row, key rows.Key) (*Session, bool) {
	idx := rows.IndexOf(list, key)
	if idx < 0 {
		return nil, false
	}
	return &Session{
		order: slices.Clone(list),
		held:  key,
		start: idx,
	}, true
}

// Held returns the key of the row being dragged.
func (s *Session) Held() rows.Key { return s.held }

// Index returns the held row's current position.
func (s *Session) Index() int { return rows.IndexOf(s.order, s.held) }

// Moved reports whether the held row has left its starting position.
func (s *Session) Moved() bool { return s.Index() != s.start }

// Order returns the working order.
func (s *Session) Order() []rows.Row { return slices.Clone(s.order) }

// Up moves the held row one position toward the top.
func (s *Session) Up() bool { return s.move(-1) }

// Down moves the held row one position toward the bottom.
func (s *Session) Down() bool { return s.move(1) }

func (s *Session) move(delta int) bool {
	if s.done {
		return false
	}
	i := s.Index()
	j := i + delta
	if j < 0 || j >= len(s.order) {
		return false
	}
	s.order[i], s.order[j] = s.order[j], s.order[i]
	return true
}

// Drop ends the gesture and returns the final order.
func (s *Session) Drop() []rows.Row {
	s.done = true
	return slices.Clone(s.order)
}

// Cancel ends the gesture without producing an order.
func (s *Session) Cancel() {
	s.done = true
}

// Done reports whether the session has been dropped or cancelled.
func (s *Session) Done() bool { return s.done }
