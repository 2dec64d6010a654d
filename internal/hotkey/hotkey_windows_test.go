//go:build windows

package hotkey

import (
	"errors"
	"testing"
)

func TestRegisterAllUnwindsOnPartialFailure(t *testing.T) {
	savedReg, savedUnreg := registerHotKey, unregisterHotKey
	defer func() { registerHotKey, unregisterHotKey = savedReg, savedUnreg }()

	var registered, unregistered []uintptr
	registerHotKey = func(id uintptr, vk uint16) error {
		if id == 2 {
			return errors.New("already in use")
		}
		registered = append(registered, id)
		return nil
	}
	unregisterHotKey = func(id uintptr) {
		unregistered = append(unregistered, id)
	}

	bs := []binding{
		{1, "home", ActionLock},
		{2, "insert", ActionToggle},
		{3, "end", ActionClose},
	}
	err := registerAll(bs, []uint16{0x24, 0x2D, 0x23})
	if err == nil {
		t.Fatal("expected registration error")
	}

	if len(registered) != 1 || registered[0] != 1 {
		t.Fatalf("registered = %v, want [1]", registered)
	}
	if len(unregistered) != 1 || unregistered[0] != 1 {
		t.Fatalf("unregistered = %v, want [1]; ids must not stay bound after a failure", unregistered)
	}
}

func TestRegisterAllStopsAfterFirstFailure(t *testing.T) {
	savedReg, savedUnreg := registerHotKey, unregisterHotKey
	defer func() { registerHotKey, unregisterHotKey = savedReg, savedUnreg }()

	var calls []uintptr
	registerHotKey = func(id uintptr, vk uint16) error {
		calls = append(calls, id)
		return errors.New("denied")
	}
	unregisterHotKey = func(id uintptr) {}

	bs := []binding{{1, "home", ActionLock}, {2, "insert", ActionToggle}}
	if err := registerAll(bs, []uint16{0x24, 0x2D}); err == nil {
		t.Fatal("expected registration error")
	}
	if len(calls) != 1 {
		t.Fatalf("register calls = %v, want just the first id", calls)
	}
}
