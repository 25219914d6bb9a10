package coordinator

import "github.com/colonyops/swipelist/internal/core/rows"

// RowView is what the rendering layer receives for each row, in list order.
type RowView struct {
	Index        int
	Key          rows.Key
	Text         string
	Background   rows.RGB
	LeftEnabled  bool
	RightEnabled bool
	// BeginDrag hands the row to the drag collaborator. Nil when no drag
	// callback was supplied.
	BeginDrag func()
}

// Present maps the current list to row views. drag, when non-nil, is bound
// to each row's key as its drag-initiation hook.
func (c *Coordinator) Present(drag func(rows.Key)) []RowView {
	views := make([]RowView, len(c.list))
	for i, r := range c.list {
		v := RowView{
			Index:        i,
			Key:          r.Key,
			Text:         r.Text,
			Background:   r.Background,
			LeftEnabled:  r.HasLeft,
			RightEnabled: r.HasRight,
		}
		if drag != nil {
			key := r.Key
			v.BeginDrag = func() { drag(key) }
		}
		views[i] = v
	}
	return views
}
