//go:build !windows

package input

// NewSender returns a recording no-op sender on non-windows platforms so
// the loop and UI remain exercisable during development.
func NewSender() Sender {
	return &Recorder{}
}
