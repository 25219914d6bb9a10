// Package rows defines the list entries rendered by swipelist and the rules
// that derive their presentation attributes from their initial position.
package rows

import (
	"fmt"
	"slices"
)

// Key is the stable identity of a row. It survives reorders and deletes and
// is never derived from the row's current position.
type Key string

// Row is a single list entry. All fields are fixed at creation time.
type Row struct {
	Key        Key    `json:"key"`
	Text       string `json:"text"`
	Background RGB    `json:"background"`
	HasLeft    bool   `json:"has_left"`
	HasRight   bool   `json:"has_right"`
}

// KeyFor returns the key assigned to the row seeded at position i.
func KeyFor(i int) Key {
	return Key(fmt.Sprintf("key-%d", i))
}

// HasLeftAt reports whether the row seeded at position i offers the left
// (delete) panel.
func HasLeftAt(i int) bool {
	return i%3 == 0 || i%3 == 1
}

// HasRightAt reports whether the row seeded at position i offers the right
// (close) panel.
func HasRightAt(i int) bool {
	return i%3 == 0 || i%3 == 2
}

// Seed builds the initial list of n rows.
func Seed(n int) []Row {
	if n <= 0 {
		return []Row{}
	}

	out := make([]Row, n)
	for i := range n {
		out[i] = Row{
			Key:        KeyFor(i),
			Text:       fmt.Sprintf("Row %d", i),
			Background: ColorAt(i, n),
			HasLeft:    HasLeftAt(i),
			HasRight:   HasRightAt(i),
		}
	}
	return out
}

// Keys returns the keys of rs in order.
func Keys(rs []Row) []Key {
	keys := make([]Key, len(rs))
	for i, r := range rs {
		keys[i] = r.Key
	}
	return keys
}

// IndexOf returns the position of the row with the given key, or -1.
func IndexOf(rs []Row, key Key) int {
	return slices.IndexFunc(rs, func(r Row) bool { return r.Key == key })
}

// Find returns the row with the given key.
func Find(rs []Row, key Key) (Row, bool) {
	i := IndexOf(rs, key)
	if i < 0 {
		return Row{}, false
	}
	return rs[i], true
}
