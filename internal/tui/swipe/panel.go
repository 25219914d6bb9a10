// Package swipe implements the per-row swipe panel: a small animated state
// machine that slides a row's overlay aside to reveal an action underlay.
//
// Panels report only terminal transitions (fully opened, fully closed) from
// Tick. Interrupted motion never reports an open.
package swipe

import (
	"slices"

	"github.com/colonyops/swipelist/internal/core/rows"
)

// Direction is the side a panel was opened toward.
type Direction int

const (
	DirNone Direction = iota
	// DirLeft slides the overlay left and reveals the delete underlay.
	DirLeft
	// DirRight slides the overlay right and reveals the close underlay.
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Event is a terminal transition reported by Tick.
type Event int

const (
	EventNone Event = iota
	EventOpened
	EventClosed
)

// Options configures a Panel.
type Options struct {
	LeftEnabled  bool
	RightEnabled bool
	// LeftSnaps and RightSnaps are the open positions in cells, ascending.
	LeftSnaps  []int
	RightSnaps []int
	// Speed is the number of cells moved per tick. Values < 1 snap instantly.
	Speed int
}

// Panel tracks the slide offset of a single row.
type Panel struct {
	key  rows.Key
	opts Options

	dir     Direction
	offset  int
	target  int
	open    bool
	closing bool
}

// New creates a closed panel for key.
func New(key rows.Key, opts Options) *Panel {
	opts.LeftSnaps = normalizeSnaps(opts.LeftSnaps)
	opts.RightSnaps = normalizeSnaps(opts.RightSnaps)
	return &Panel{key: key, opts: opts}
}

func normalizeSnaps(in []int) []int {
	out := make([]int, 0, len(in))
	for _, s := range in {
		if s > 0 {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Key returns the row the panel belongs to.
func (p *Panel) Key() rows.Key { return p.key }

// Enabled reports whether the panel may open toward dir.
func (p *Panel) Enabled(dir Direction) bool {
	switch dir {
	case DirLeft:
		return p.opts.LeftEnabled && len(p.opts.LeftSnaps) > 0
	case DirRight:
		return p.opts.RightEnabled && len(p.opts.RightSnaps) > 0
	default:
		return false
	}
}

func (p *Panel) snaps(dir Direction) []int {
	if dir == DirLeft {
		return p.opts.LeftSnaps
	}
	return p.opts.RightSnaps
}

// Open starts moving toward snap point idx in direction dir. Out-of-range
// indexes clamp to the nearest snap point. Opening toward the opposite side
// of a displaced panel restarts from rest.
func (p *Panel) Open(dir Direction, idx int) bool {
	if !p.Enabled(dir) {
		return false
	}

	snaps := p.snaps(dir)
	idx = max(0, min(idx, len(snaps)-1))

	if p.dir != dir && p.offset > 0 {
		p.offset = 0
		p.open = false
	}

	p.closing = false
	p.dir = dir
	p.target = snaps[idx]
	return true
}

// Close starts moving the panel back to rest. It satisfies the
// coordinator's panel handle contract and is safe on a closed panel.
func (p *Panel) Close() {
	p.target = 0
	if p.open {
		p.open = false
		p.closing = true
	}
	if p.offset == 0 {
		p.dir = DirNone
	}
}

// Toggle mirrors the overlay buttons: close when open or opening, otherwise
// open toward dir. Right opens to its widest snap point.
func (p *Panel) Toggle(dir Direction) bool {
	if p.target > 0 || p.offset > 0 {
		p.Close()
		return true
	}
	idx := 0
	if dir == DirRight {
		idx = len(p.opts.RightSnaps) - 1
	}
	return p.Open(dir, idx)
}

// Tick advances the animation by one frame.
func (p *Panel) Tick() Event {
	if p.offset == p.target {
		return EventNone
	}

	step := p.opts.Speed
	if step < 1 {
		step = abs(p.target - p.offset)
	}

	if p.offset < p.target {
		p.offset = min(p.offset+step, p.target)
	} else {
		p.offset = max(p.offset-step, p.target)
	}

	switch {
	case p.offset == 0 && p.target == 0:
		wasClosing := p.closing
		p.closing = false
		p.dir = DirNone
		if wasClosing {
			return EventClosed
		}
	case p.offset == p.target && !p.open:
		p.open = true
		return EventOpened
	}
	return EventNone
}

// Animating reports whether the panel is between positions.
func (p *Panel) Animating() bool { return p.offset != p.target }

// IsOpen reports whether the panel has fully opened and not yet closed.
func (p *Panel) IsOpen() bool { return p.open }

// Direction returns the side the panel is open or opening toward.
func (p *Panel) Direction() Direction { return p.dir }

// Offset returns the current slide distance in cells.
func (p *Panel) Offset() int { return p.offset }

// PercentOpen is the offset relative to the first snap point, capped at 1.
func (p *Panel) PercentOpen() float64 {
	if p.dir == DirNone || p.offset == 0 {
		return 0
	}
	first := p.snaps(p.dir)[0]
	return min(1, float64(p.offset)/float64(first))
}

// Resize replaces the snap points, e.g. after the terminal width changes.
// The current offset is clamped to the new widest snap point.
func (p *Panel) Resize(left, right []int) {
	p.opts.LeftSnaps = normalizeSnaps(left)
	p.opts.RightSnaps = normalizeSnaps(right)

	if p.dir == DirNone {
		return
	}
	snaps := p.snaps(p.dir)
	if len(snaps) == 0 {
		p.offset, p.target, p.open, p.closing, p.dir = 0, 0, false, false, DirNone
		return
	}
	widest := snaps[len(snaps)-1]
	p.offset = min(p.offset, widest)
	p.target = min(p.target, widest)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
