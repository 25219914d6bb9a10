// Package replay drives a coordinator from a scripted sequence of terminal
// gesture events without a terminal. Panel handles record the close commands
// they receive so the single-open-panel rule can be inspected.
package replay

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/swipelist/internal/core/coordinator"
	"github.com/colonyops/swipelist/internal/core/rows"
)

// Op names a scripted event.
type Op string

const (
	OpDelete  Op = "delete"
	OpReorder Op = "reorder"
	OpOpen    Op = "open"
)

// ErrUnknownOp is returned for events with an unsupported op.
var ErrUnknownOp = errors.New("unknown op")

// Event is one scripted gesture outcome.
type Event struct {
	Op Op `json:"op"`
	// Key is the row deleted or opened.
	Key rows.Key `json:"key,omitempty"`
	// Order is the committed key order for reorder events.
	Order []rows.Key `json:"order,omitempty"`
}

// Script seeds a list and lists the events to apply to it.
type Script struct {
	// Rows is the seed size. Zero defers to the caller's default.
	Rows   int     `json:"rows"`
	Events []Event `json:"events"`
}

// Step reports what a single event did.
type Step struct {
	Index   int      `json:"index"`
	Op      Op       `json:"op"`
	Key     rows.Key `json:"key,omitempty"`
	Applied bool     `json:"applied"`
	Error   string   `json:"error,omitempty"`
}

// Result is the state after a script has run.
type Result struct {
	Rows   []rows.Row       `json:"rows"`
	Closes map[rows.Key]int `json:"closes"`
	Steps  []Step           `json:"steps"`
}

// recorder counts close commands sent to one row's panel.
type recorder struct {
	key    rows.Key
	closes map[rows.Key]int
}

func (r *recorder) Close() { r.closes[r.key]++ }

// Run applies script to a fresh coordinator of defaultRows rows (or
// script.Rows when set). Rejected events are reported per step; only a
// malformed script fails the run.
func Run(script Script, defaultRows int, log zerolog.Logger) (Result, error) {
	n := script.Rows
	if n == 0 {
		n = defaultRows
	}
	if n < 0 {
		return Result{}, fmt.Errorf("rows must not be negative, got %d", n)
	}

	for i, ev := range script.Events {
		switch ev.Op {
		case OpDelete, OpReorder, OpOpen:
		default:
			return Result{}, fmt.Errorf("event %d: %w %q", i, ErrUnknownOp, ev.Op)
		}
	}

	coord := coordinator.New(n, coordinator.WithLogger(log))
	closes := make(map[rows.Key]int)
	for _, r := range coord.Rows() {
		coord.RegisterPanelHandle(r.Key, &recorder{key: r.Key, closes: closes})
	}

	steps := make([]Step, 0, len(script.Events))
	for i, ev := range script.Events {
		step := Step{Index: i, Op: ev.Op, Key: ev.Key}

		switch ev.Op {
		case OpDelete:
			if r, ok := coord.Row(ev.Key); ok {
				step.Applied = coord.DeleteRow(r)
			} else {
				step.Error = fmt.Sprintf("no row %q", ev.Key)
			}
		case OpReorder:
			step.Applied = true
			if err := coord.ReorderTo(resolve(coord, ev.Order)); err != nil {
				step.Applied = false
				step.Error = err.Error()
			}
		case OpOpen:
			if _, ok := coord.Row(ev.Key); ok {
				coord.OnPanelOpened(ev.Key)
				step.Applied = true
			} else {
				step.Error = fmt.Sprintf("no row %q", ev.Key)
			}
		}

		log.Debug().Int("index", i).Str("op", string(ev.Op)).Bool("applied", step.Applied).Msg("replay step")
		steps = append(steps, step)
	}

	return Result{Rows: coord.Rows(), Closes: closes, Steps: steps}, nil
}

// resolve maps keys to rows. Unknown keys become bare rows so the
// coordinator rejects the order.
func resolve(coord *coordinator.Coordinator, order []rows.Key) []rows.Row {
	out := make([]rows.Row, len(order))
	for i, k := range order {
		if r, ok := coord.Row(k); ok {
			out[i] = r
			continue
		}
		out[i] = rows.Row{Key: k}
	}
	return out
}
