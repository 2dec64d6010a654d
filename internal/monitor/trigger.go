package monitor

import (
	"time"

	"github.com/leobrqz/AutoPot-DR/internal/memory"
)

// DefaultCooldown is the minimum gap between two potion presses. Re-arming
// is purely elapsed-time: on sustained low HP the tool keeps pressing once
// per cooldown window rather than waiting for HP to climb back over the
// threshold (potions may be gated by the game's own cooldown anyway).
const DefaultCooldown = 200 * time.Millisecond

// Decide reports whether a potion should be used for the given snapshot.
// It fires iff the feature is enabled, the snapshot is valid, HP% is
// strictly below the threshold, the cooldown has elapsed, and the potion
// count (when readable) is non-zero. Pure; the loop owns all state.
func Decide(snap memory.Snapshot, enabled bool, threshold float64, sinceLast, cooldown time.Duration) bool {
	if !enabled {
		return false
	}
	if !snap.Valid() {
		return false
	}
	if snap.PotionsKnown && snap.Potions <= 0 {
		return false
	}
	if sinceLast < cooldown {
		return false
	}
	return snap.Percent() < threshold
}
