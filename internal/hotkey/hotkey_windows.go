//go:build windows

package hotkey

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/leobrqz/AutoPot-DR/internal/input"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey    = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey  = user32.NewProc("UnregisterHotKey")
	procGetMessageW       = user32.NewProc("GetMessageW")
	procPostThreadMessage = user32.NewProc("PostThreadMessageW")
)

const (
	wmHotkey = 0x0312
	wmQuit   = 0x0012
)

type message struct {
	hwnd    uintptr
	msg     uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	ptX     int32
	ptY     int32
}

type binding struct {
	id     uintptr
	name   string
	action Action
}

// Indirection over the user32 calls so registration can be exercised in
// tests without a message queue.
var (
	registerHotKey = func(id uintptr, vk uint16) error {
		ret, _, err := procRegisterHotKey.Call(0, id, 0, uintptr(vk))
		if ret == 0 {
			return err
		}
		return nil
	}
	unregisterHotKey = func(id uintptr) {
		procUnregisterHotKey.Call(0, id)
	}
)

// registerAll registers every binding or none: a failure part way through
// unregisters the ids already bound, so no hotkey is left attached to a
// thread that will never pump messages.
func registerAll(bs []binding, vks []uint16) error {
	for i, b := range bs {
		if err := registerHotKey(b.id, vks[i]); err != nil {
			for _, done := range bs[:i] {
				unregisterHotKey(done.id)
			}
			return fmt.Errorf("hotkey: register %q: %v", b.name, err)
		}
	}
	return nil
}

// Listen registers the three hotkeys and pumps the thread message queue
// until ctx is cancelled. RegisterHotKey and GetMessage must share an OS
// thread, so the whole lifecycle runs on one locked goroutine.
func Listen(ctx context.Context, b Bindings) (<-chan Action, error) {
	ids := []binding{
		{1, b.Lock, ActionLock},
		{2, b.Toggle, ActionToggle},
		{3, b.Close, ActionClose},
	}

	vks := make([]uint16, len(ids))
	for i, h := range ids {
		vk, ok := input.KeyCode(h.name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, h.name)
		}
		vks[i] = vk
	}

	out := make(chan Action, 8)
	regErr := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := registerAll(ids, vks); err != nil {
			regErr <- err
			return
		}
		regErr <- nil
		defer func() {
			for _, h := range ids {
				unregisterHotKey(h.id)
			}
		}()

		tid := windows.GetCurrentThreadId()
		stop := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				procPostThreadMessage.Call(uintptr(tid), wmQuit, 0, 0)
			case <-stop:
			}
		}()
		defer close(stop)

		var m message
		for {
			ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
			switch int32(ret) {
			case 0, -1: // WM_QUIT or queue failure
				return
			}
			if m.msg != wmHotkey {
				continue
			}
			for _, h := range ids {
				if m.wParam == h.id {
					select {
					case out <- h.action:
					default:
					}
				}
			}
		}
	}()

	if err := <-regErr; err != nil {
		return nil, err
	}
	return out, nil
}
