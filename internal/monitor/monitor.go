// Package monitor runs the polling loop: a fixed-interval state machine
// that attaches to the game process, reads health snapshots, and presses
// the potion key when the trigger condition holds. The loop never
// terminates on read failures; only context cancellation stops it.
package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/leobrqz/AutoPot-DR/internal/input"
	"github.com/leobrqz/AutoPot-DR/internal/memory"
)

// State of the polling loop.
type State int

const (
	// StateSearching: process not found yet; every tick retries the attach
	// silently.
	StateSearching State = iota
	// StateAttached: handle open; every tick takes one health snapshot.
	StateAttached
)

func (s State) String() string {
	if s == StateAttached {
		return "attached"
	}
	return "searching"
}

// EventKind classifies events sent to the UI.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventSnapshot
	EventPotionUsed
	EventReadSkipped
	EventPressFailed
)

// Event is the loop-to-UI message. Snapshot fields are only meaningful for
// EventSnapshot and EventPotionUsed.
type Event struct {
	Kind     EventKind
	State    State
	Snapshot memory.Snapshot
	HPPct    float64
	Err      error
	At       time.Time
}

// Opener attaches to a process by executable name.
type Opener func(name string) (memory.Process, error)

// Recorder persists trigger events; display-only, so failures are ignored.
type Recorder interface {
	RecordTrigger(at time.Time, current, max, hpPct float64)
}

// Config is the immutable runtime configuration of the loop.
type Config struct {
	ProcessName string
	Interval    time.Duration
	Cooldown    time.Duration
	Threshold   float64
	PotionKey   string

	Current memory.PointerChain
	Max     memory.PointerChain
	Potions memory.PointerChain
}

// Monitor owns the process handle exclusively; no other goroutine ever
// touches it.
type Monitor struct {
	cfg    Config
	open   Opener
	sender input.Sender
	flags  *Flags
	rec    Recorder
	now    func() time.Time

	proc        memory.Process
	state       State
	lastTrigger time.Time
}

func New(cfg Config, open Opener, sender input.Sender, flags *Flags, rec Recorder) (*Monitor, error) {
	if cfg.ProcessName == "" {
		return nil, errors.New("monitor: process name required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("monitor: interval must be > 0")
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	return &Monitor{
		cfg:    cfg,
		open:   open,
		sender: sender,
		flags:  flags,
		rec:    rec,
		now:    time.Now,
		state:  StateSearching,
	}, nil
}

// Run drives the loop until ctx is cancelled. Cancellation is observed
// within one poll interval and the process handle is released before
// returning. Events are sent non-blockingly: a slow UI drops events, it
// never stalls the polling cadence.
func (m *Monitor) Run(ctx context.Context, out chan<- Event) {
	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()
	defer m.detach()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.tick(out)
		}
	}
}

func (m *Monitor) tick(out chan<- Event) {
	switch m.state {
	case StateSearching:
		proc, err := m.open(m.cfg.ProcessName)
		if err != nil {
			return // silent retry next tick
		}
		m.proc = proc
		m.state = StateAttached
		emit(out, Event{Kind: EventStateChanged, State: m.state, At: m.now()})

	case StateAttached:
		snap, err := memory.ResolveHealth(m.proc, m.cfg.Current, m.cfg.Max, m.cfg.Potions)
		switch {
		case errors.Is(err, memory.ErrProcessNotFound):
			m.detach()
			m.state = StateSearching
			emit(out, Event{Kind: EventStateChanged, State: m.state, Err: err, At: m.now()})

		case err != nil:
			// Transient read race (loading screen, teleport); skip the tick.
			emit(out, Event{Kind: EventReadSkipped, State: m.state, Err: err, At: m.now()})

		default:
			m.evaluate(snap, out)
		}
	}
}

func (m *Monitor) evaluate(snap memory.Snapshot, out chan<- Event) {
	hpPct := snap.Percent()
	emit(out, Event{Kind: EventSnapshot, State: m.state, Snapshot: snap, HPPct: hpPct, At: snap.At})

	// One atomic flag load per tick.
	enabled := m.flags.Enabled()

	now := m.now()
	if !Decide(snap, enabled, m.cfg.Threshold, now.Sub(m.lastTrigger), m.cfg.Cooldown) {
		return
	}

	if err := m.sender.Press(m.cfg.PotionKey); err != nil {
		emit(out, Event{Kind: EventPressFailed, State: m.state, Err: err, At: now})
		return
	}
	m.lastTrigger = now
	if m.rec != nil {
		m.rec.RecordTrigger(now, snap.Current, snap.Max, hpPct)
	}
	emit(out, Event{Kind: EventPotionUsed, State: m.state, Snapshot: snap, HPPct: hpPct, At: now})
}

func (m *Monitor) detach() {
	if m.proc != nil {
		m.proc.Close()
		m.proc = nil
	}
}

func emit(out chan<- Event, ev Event) {
	select {
	case out <- ev:
	default:
	}
}
