package tui

import (
	"github.com/colonyops/swipelist/internal/core/rows"
)

// ShiftAnimation highlights a row that changed position after a delete or
// reorder. It fades out as TicksLeft reaches zero.
type ShiftAnimation struct {
	From, To  int
	TicksLeft int
}

// AnimationStore tracks shift animations per row key.
type AnimationStore struct {
	animations map[rows.Key]ShiftAnimation
	ticksMax   int
}

// NewAnimationStore creates a new animation store.
func NewAnimationStore(ticksMax int) *AnimationStore {
	return &AnimationStore{
		animations: make(map[rows.Key]ShiftAnimation),
		ticksMax:   ticksMax,
	}
}

// Strength is the remaining highlight for key in [0, 1].
func (s *AnimationStore) Strength(key rows.Key) float64 {
	anim, ok := s.animations[key]
	if !ok || s.ticksMax == 0 {
		return 0
	}
	return float64(anim.TicksLeft) / float64(s.ticksMax)
}

// RecordShift starts an animation for every row whose index differs
// between before and after. Rows absent from after are ignored.
func (s *AnimationStore) RecordShift(before, after []rows.Row) int {
	if s.ticksMax == 0 {
		return 0
	}

	recorded := 0
	for to, r := range after {
		from := rows.IndexOf(before, r.Key)
		if from < 0 || from == to {
			continue
		}
		s.animations[r.Key] = ShiftAnimation{From: from, To: to, TicksLeft: s.ticksMax}
		recorded++
	}
	return recorded
}

// Tick decrements all animation tick counts and removes expired ones.
// Returns true if any animations were updated (for triggering rerender).
func (s *AnimationStore) Tick() bool {
	changed := false
	for key, anim := range s.animations {
		anim.TicksLeft--
		if anim.TicksLeft <= 0 {
			delete(s.animations, key)
		} else {
			s.animations[key] = anim
		}
		changed = true
	}
	return changed
}

// Active reports whether any animation is running.
func (s *AnimationStore) Active() bool {
	return len(s.animations) > 0
}
