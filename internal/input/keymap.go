package input

import (
	"strconv"
	"strings"
)

// Windows virtual-key codes for the key names accepted in config files.
// Shared by the sender and the global hotkey registration.
var keyCodes = map[string]uint16{
	"backspace": 0x08,
	"tab":       0x09,
	"enter":     0x0D,
	"shift":     0x10,
	"ctrl":      0x11,
	"alt":       0x12,
	"pause":     0x13,
	"esc":       0x1B,
	"space":     0x20,
	"pageup":    0x21,
	"pagedown":  0x22,
	"end":       0x23,
	"home":      0x24,
	"left":      0x25,
	"up":        0x26,
	"right":     0x27,
	"down":      0x28,
	"insert":    0x2D,
	"delete":    0x2E,
}

func init() {
	for c := '0'; c <= '9'; c++ {
		keyCodes[string(c)] = uint16(0x30 + c - '0')
	}
	for c := 'a'; c <= 'z'; c++ {
		keyCodes[string(c)] = uint16(0x41 + c - 'a')
	}
	for i := uint16(1); i <= 12; i++ {
		keyCodes["f"+strconv.Itoa(int(i))] = 0x70 + i - 1
	}
}

// KeyCode resolves a config key name ("r", "home", "f5", ...) to its
// virtual-key code. Names are case-insensitive.
func KeyCode(name string) (uint16, bool) {
	vk, ok := keyCodes[strings.ToLower(strings.TrimSpace(name))]
	return vk, ok
}
