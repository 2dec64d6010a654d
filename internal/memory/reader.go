// Package memory resolves health values out of the game process by walking
// static pointer chains. All raw process access lives behind the Reader and
// Process interfaces; the windows backend is the only file that touches the
// OS, and nothing in this package ever writes to the target.
package memory

import (
	"errors"
	"fmt"
	"time"
)

// Reader is the narrow read-only view of a foreign address space.
type Reader interface {
	ReadPointer(addr uintptr) (uint64, error)
	ReadFloat64(addr uintptr) (float64, error)
	ReadInt32(addr uintptr) (int32, error)
}

// Process is an attached game process. Owned by the control loop; never
// shared across goroutines.
type Process interface {
	Reader

	Name() string
	Pid() int32
	ModuleBase() uintptr
	Alive() bool
	Close() error
}

// Snapshot is one immutable health reading. Produced once per poll tick
// and discarded after the trigger decision.
type Snapshot struct {
	Current float64
	Max     float64

	// Potions is the remaining potion count when the potion chain is
	// configured; PotionsKnown is false otherwise.
	Potions      int32
	PotionsKnown bool

	At time.Time
}

// Valid reports whether the snapshot can participate in trigger decisions.
// Max == 0 means the chains resolved to a dead or unloaded player object.
func (s Snapshot) Valid() bool {
	return s.Max > 0
}

// Percent returns HP% in [0, 100] territory, 0 for invalid snapshots.
func (s Snapshot) Percent() float64 {
	if !s.Valid() {
		return 0
	}
	return s.Current / s.Max * 100
}

// ResolveHealth performs a single best-effort read of current and max HP
// (and the optional potion count). Either both HP chains resolve or the
// call fails; a partial snapshot is never returned. Retry policy belongs
// to the caller.
func ResolveHealth(p Process, cur, max, potions PointerChain) (Snapshot, error) {
	snap := Snapshot{At: time.Now()}

	// An unconfigured chain points at the module base, where a read would
	// decode PE header bytes as health. Report "unavailable" instead: the
	// snapshot stays invalid and can never trigger.
	if cur.IsZero() || max.IsZero() {
		return snap, nil
	}

	curAddr, err := Resolve(p, p.ModuleBase(), cur)
	if err != nil {
		return Snapshot{}, classify(p, err)
	}
	maxAddr, err := Resolve(p, p.ModuleBase(), max)
	if err != nil {
		return Snapshot{}, classify(p, err)
	}

	// Health fields are little-endian doubles (Cheat Engine verified).
	if snap.Current, err = p.ReadFloat64(curAddr); err != nil {
		return Snapshot{}, classify(p, err)
	}
	if snap.Max, err = p.ReadFloat64(maxAddr); err != nil {
		return Snapshot{}, classify(p, err)
	}

	if !potions.IsZero() {
		addr, err := Resolve(p, p.ModuleBase(), potions)
		if err == nil {
			if n, err := p.ReadInt32(addr); err == nil {
				snap.Potions = n
				snap.PotionsKnown = true
			}
		}
		// Potion count is advisory; a broken potion chain never fails
		// the health snapshot.
	}

	return snap, nil
}

// classify upgrades a read failure to ErrProcessNotFound when the target
// has exited, so the control loop can fall back to searching instead of
// skipping ticks forever.
func classify(p Process, err error) error {
	if !p.Alive() {
		return ErrProcessNotFound
	}
	if errors.Is(err, ErrInaccessibleMemory) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInaccessibleMemory, err)
}
