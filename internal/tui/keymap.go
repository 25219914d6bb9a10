package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/swipelist/internal/core/config"
)

// KeyMap holds the resolved bindings for the row list.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	OpenLeft  key.Binding
	OpenRight key.Binding
	Activate  key.Binding
	Drag      key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// NewKeyMap builds bindings from the configured keys. Actions missing from
// keys fall back to no binding.
func NewKeyMap(keys map[string][]string) KeyMap {
	bind := func(action, desc string) key.Binding {
		ks := keys[action]
		return key.NewBinding(key.WithKeys(ks...), key.WithHelp(helpKey(ks), desc))
	}

	return KeyMap{
		Up:        bind(config.ActionUp, "up"),
		Down:      bind(config.ActionDown, "down"),
		OpenLeft:  bind(config.ActionOpenLeft, "delete panel"),
		OpenRight: bind(config.ActionOpenRight, "close panel"),
		Activate:  bind(config.ActionActivate, "press action"),
		Drag:      bind(config.ActionDrag, "pick up / drop"),
		Cancel:    bind(config.ActionCancel, "cancel"),
		Help:      bind(config.ActionHelp, "help"),
		Quit:      bind(config.ActionQuit, "quit"),
	}
}

// ShortHelp is shown in the footer while browsing.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.OpenLeft, k.OpenRight, k.Activate, k.Drag, k.Help, k.Quit}
}

// DragHelp is shown in the footer while a row is held.
func (k KeyMap) DragHelp() []key.Binding {
	return []key.Binding{
		withDesc(k.Up, "move up"),
		withDesc(k.Down, "move down"),
		withDesc(k.Drag, "drop"),
		withDesc(k.Cancel, "cancel"),
	}
}

// All returns every binding in help order.
func (k KeyMap) All() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.OpenLeft, k.OpenRight, k.Activate, k.Drag, k.Cancel, k.Help, k.Quit}
}

func withDesc(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}

var keyGlyphs = map[string]string{
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
	"space": "␣",
}

func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "/"
		}
		if g, ok := keyGlyphs[k]; ok {
			out += g
			continue
		}
		out += k
	}
	return out
}
