package state

import (
	"time"

	"github.com/leobrqz/AutoPot-DR/internal/history"
	"github.com/leobrqz/AutoPot-DR/internal/memory"
	"github.com/leobrqz/AutoPot-DR/internal/monitor"
)

// AppState holds the current snapshot of the overlay.
type AppState struct {
	Snapshot  memory.Snapshot
	HPPct     float64
	LoopState monitor.State

	Enabled   bool
	Locked    bool
	Threshold float64

	HPHistory []float64
	Logs      []string
	Recent    []history.Entry

	PosX int
	PosY int

	LastUpdate time.Time
	Err        error
}
