//go:build windows

package input

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard  = 1
	keyEventfKeyUp = 0x0002
)

// keyboardInput mirrors the 64-bit INPUT struct with a KEYBDINPUT payload.
type keyboardInput struct {
	inputType uint32
	_         uint32 // struct alignment padding
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
	_         [8]byte // INPUT is the size of its largest member (MOUSEINPUT)
}

type winSender struct{}

// NewSender returns the SendInput-backed keystroke sender.
func NewSender() Sender {
	return winSender{}
}

func (winSender) Press(key string) error {
	vk, ok := KeyCode(key)
	if !ok {
		return fmt.Errorf("input: unknown key %q", key)
	}

	events := [2]keyboardInput{
		{inputType: inputKeyboard, vk: vk},
		{inputType: inputKeyboard, vk: vk, flags: keyEventfKeyUp},
	}

	n, _, err := procSendInput.Call(
		uintptr(len(events)),
		uintptr(unsafe.Pointer(&events[0])),
		unsafe.Sizeof(events[0]),
	)
	if n != uintptr(len(events)) {
		return fmt.Errorf("input: SendInput sent %d of %d events: %v", n, len(events), err)
	}
	return nil
}
