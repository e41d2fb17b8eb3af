package config

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keys []string

// KeyMappings lists every action vista binds. The type parameter lets one
// struct serve twice: raw key names decoded from TOML, and resolved
// bubbles bindings after GetKeyMap.
type KeyMappings[T any] struct {
	PanUp         T `toml:"pan_up"`
	PanDown       T `toml:"pan_down"`
	PanLeft       T `toml:"pan_left"`
	PanRight      T `toml:"pan_right"`
	FastPanUp     T `toml:"fast_pan_up"`
	FastPanDown   T `toml:"fast_pan_down"`
	FastPanLeft   T `toml:"fast_pan_left"`
	FastPanRight  T `toml:"fast_pan_right"`
	ZoomIn        T `toml:"zoom_in"`
	ZoomOut       T `toml:"zoom_out"`
	Origin        T `toml:"origin"`
	Goto          T `toml:"goto"`
	ToggleSidebar T `toml:"toggle_sidebar"`
	NextShape     T `toml:"next_shape"`
	PrevShape     T `toml:"prev_shape"`
	CenterShape   T `toml:"center_shape"`
	CopyFrame     T `toml:"copy_frame"`
	Help          T `toml:"help"`
	Quit          T `toml:"quit"`
	Cancel        T `toml:"cancel"`
	Apply         T `toml:"apply"`
}

func defaultKeys() KeyMappings[keys] {
	return KeyMappings[keys]{
		PanUp:         keys{"up", "k"},
		PanDown:       keys{"down", "j"},
		PanLeft:       keys{"left", "h"},
		PanRight:      keys{"right", "l"},
		FastPanUp:     keys{"shift+up", "K"},
		FastPanDown:   keys{"shift+down", "J"},
		FastPanLeft:   keys{"shift+left", "H"},
		FastPanRight:  keys{"shift+right", "L"},
		ZoomIn:        keys{"+", "="},
		ZoomOut:       keys{"-"},
		Origin:        keys{"0"},
		Goto:          keys{"g"},
		ToggleSidebar: keys{"s"},
		NextShape:     keys{"n", "tab"},
		PrevShape:     keys{"p", "shift+tab"},
		CenterShape:   keys{"c"},
		CopyFrame:     keys{"y"},
		Help:          keys{"?"},
		Quit:          keys{"q", "ctrl+c"},
		Cancel:        keys{"esc"},
		Apply:         keys{"enter"},
	}
}

// GetKeyMap resolves the configured key names into bubbles bindings.
func (c *Config) GetKeyMap() KeyMappings[key.Binding] {
	k := c.Keys
	return KeyMappings[key.Binding]{
		PanUp:         bind(k.PanUp, "pan up"),
		PanDown:       bind(k.PanDown, "pan down"),
		PanLeft:       bind(k.PanLeft, "pan left"),
		PanRight:      bind(k.PanRight, "pan right"),
		FastPanUp:     bind(k.FastPanUp, "pan up fast"),
		FastPanDown:   bind(k.FastPanDown, "pan down fast"),
		FastPanLeft:   bind(k.FastPanLeft, "pan left fast"),
		FastPanRight:  bind(k.FastPanRight, "pan right fast"),
		ZoomIn:        bind(k.ZoomIn, "zoom in"),
		ZoomOut:       bind(k.ZoomOut, "zoom out"),
		Origin:        bind(k.Origin, "go to origin"),
		Goto:          bind(k.Goto, "go to coordinates"),
		ToggleSidebar: bind(k.ToggleSidebar, "toggle sidebar"),
		NextShape:     bind(k.NextShape, "select next shape"),
		PrevShape:     bind(k.PrevShape, "select previous shape"),
		CenterShape:   bind(k.CenterShape, "center on selection"),
		CopyFrame:     bind(k.CopyFrame, "copy frame"),
		Help:          bind(k.Help, "toggle help"),
		Quit:          bind(k.Quit, "quit"),
		Cancel:        bind(k.Cancel, "cancel"),
		Apply:         bind(k.Apply, "apply"),
	}
}

func bind(names keys, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}
