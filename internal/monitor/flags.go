package monitor

import "sync/atomic"

// Flags is the shared toggle state mutated by hotkey callbacks and read by
// the polling loop. Each loop tick performs exactly one atomic load per
// flag, so a toggle takes effect on the next tick without locking.
type Flags struct {
	enabled atomic.Bool
	locked  atomic.Bool
}

func NewFlags(enabled, locked bool) *Flags {
	f := &Flags{}
	f.enabled.Store(enabled)
	f.locked.Store(locked)
	return f
}

func (f *Flags) Enabled() bool     { return f.enabled.Load() }
func (f *Flags) SetEnabled(v bool) { f.enabled.Store(v) }
func (f *Flags) Locked() bool      { return f.locked.Load() }
func (f *Flags) SetLocked(v bool)  { f.locked.Store(v) }

// ToggleEnabled flips the enabled flag and returns the new value.
func (f *Flags) ToggleEnabled() bool {
	for {
		old := f.enabled.Load()
		if f.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// ToggleLocked flips the locked flag and returns the new value.
func (f *Flags) ToggleLocked() bool {
	for {
		old := f.locked.Load()
		if f.locked.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
