package coordinator

import "github.com/colonyops/swipelist/internal/core/rows"

// PanelHandle commands a row's swipe panel to close.
type PanelHandle interface {
	Close()
}

// PanelHandleFunc adapts a function to PanelHandle.
type PanelHandleFunc func()

func (f PanelHandleFunc) Close() { f() }

// registry maps row keys to panel handles. Entries are never removed;
// iteration follows registration order.
type registry struct {
	handles map[rows.Key]PanelHandle
	order   []rows.Key
}

func newRegistry() *registry {
	return &registry{handles: make(map[rows.Key]PanelHandle)}
}

func (r *registry) add(key rows.Key, h PanelHandle) bool {
	if _, exists := r.handles[key]; exists {
		return false
	}
	r.handles[key] = h
	r.order = append(r.order, key)
	return true
}

func (r *registry) get(key rows.Key) (PanelHandle, bool) {
	h, ok := r.handles[key]
	return h, ok
}

func (r *registry) each(fn func(rows.Key, PanelHandle)) {
	for _, key := range r.order {
		fn(key, r.handles[key])
	}
}
