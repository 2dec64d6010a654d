// Package input synthesizes keystrokes toward the foreground window. The
// monitor only sees the Sender interface; the OS-level mechanism lives in
// the windows backend.
package input

// Sender delivers a single keypress (down + up) to the foreground
// application.
type Sender interface {
	Press(key string) error
}

// Recorder is a Sender that only records presses. Used for --dry-run and
// in tests.
type Recorder struct {
	Presses []string
}

func (r *Recorder) Press(key string) error {
	r.Presses = append(r.Presses, key)
	return nil
}
