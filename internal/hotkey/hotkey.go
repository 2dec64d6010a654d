// Package hotkey delivers OS-global hotkey presses (lock / toggle / close)
// as events. Registration failure is surfaced once and is non-fatal: the
// overlay keeps its local key bindings either way.
package hotkey

import "errors"

// Action is a hotkey-initiated command.
type Action int

const (
	ActionLock Action = iota
	ActionToggle
	ActionClose
)

func (a Action) String() string {
	switch a {
	case ActionLock:
		return "lock"
	case ActionToggle:
		return "toggle"
	case ActionClose:
		return "close"
	}
	return "unknown"
}

// Bindings holds the configured key names.
type Bindings struct {
	Lock   string
	Toggle string
	Close  string
}

var (
	// ErrUnsupported is returned on platforms without global hotkeys.
	ErrUnsupported = errors.New("hotkey: global hotkeys unsupported on this platform")

	// ErrUnknownKey is returned for key names missing from the key map.
	ErrUnknownKey = errors.New("hotkey: unknown key name")
)
