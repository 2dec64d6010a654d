// Package tui renders the status overlay. The polling loop feeds it
// events over a channel; the overlay never calls back into the loop, it
// only flips the shared flags and persists overlay settings.
package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/leobrqz/AutoPot-DR/internal/config"
	"github.com/leobrqz/AutoPot-DR/internal/history"
	"github.com/leobrqz/AutoPot-DR/internal/hotkey"
	"github.com/leobrqz/AutoPot-DR/internal/monitor"
	"github.com/leobrqz/AutoPot-DR/ui/tui/state"
	"github.com/leobrqz/AutoPot-DR/ui/tui/views"
)

const (
	hpHistoryCap  = 31
	maxLogLines   = 100
	recentEntries = 5
)

// Messages
type EventMsg monitor.Event
type AnimateMsg time.Time
type HotkeyMsg hotkey.Action

// OverlayModel is the Bubble Tea model acting as the controller.
type OverlayModel struct {
	cfg      *config.Store
	flags    *monitor.Flags
	events   <-chan monitor.Event
	triggers *history.Store

	state    state.AppState
	spinner  spinner.Model
	hpChart  linechart.Model
	spring   harmonica.Spring
	animHP   float64
	velocity float64

	width    int
	height   int
	quitting bool
}

func InitialModel(cfg *config.Store, flags *monitor.Flags, events <-chan monitor.Event, triggers *history.Store) OverlayModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	lc := linechart.New(30, 8, 0, hpHistoryCap-1, 0, 100)

	// Spring tuned for the HP bar: quick response, no overshoot.
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	return OverlayModel{
		cfg:      cfg,
		flags:    flags,
		events:   events,
		triggers: triggers,
		spinner:  s,
		hpChart:  lc,
		spring:   spring,
		state: state.AppState{
			LoopState: monitor.StateSearching,
			Enabled:   flags.Enabled(),
			Locked:    flags.Locked(),
			Threshold: cfg.HealthThreshold,
			PosX:      cfg.PosX,
			PosY:      cfg.PosY,
			HPHistory: make([]float64, 0, hpHistoryCap),
		},
	}
}

func (m *OverlayModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		waitForEvent(m.events),
		animateCmd(),
	)
}

// Commands
func waitForEvent(events <-chan monitor.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg(ev)
	}
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *OverlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case EventMsg:
		return m.handleEventMsg(monitor.Event(msg))

	case HotkeyMsg:
		return m.handleHotkey(hotkey.Action(msg))

	case AnimateMsg:
		var v float64 = m.velocity
		m.animHP, v = m.spring.Update(m.animHP, m.state.HPPct, v)
		m.velocity = v
		return m, animateCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *OverlayModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "i":
		return m.toggleEnabled()

	case "l":
		return m.toggleLocked()

	case "up", "down", "left", "right":
		if m.state.Locked {
			return m, nil
		}
		dx, dy := 0, 0
		switch msg.String() {
		case "up":
			dy = -10
		case "down":
			dy = 10
		case "left":
			dx = -10
		case "right":
			dx = 10
		}
		m.state.PosX += dx
		m.state.PosY += dy
		if err := m.cfg.SetOverlayPos(m.state.PosX, m.state.PosY); err != nil {
			m.state.Err = err
		}
	}
	return m, nil
}

func (m *OverlayModel) handleHotkey(a hotkey.Action) (tea.Model, tea.Cmd) {
	switch a {
	case hotkey.ActionToggle:
		return m.toggleEnabled()
	case hotkey.ActionLock:
		return m.toggleLocked()
	case hotkey.ActionClose:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *OverlayModel) toggleEnabled() (tea.Model, tea.Cmd) {
	m.state.Enabled = m.flags.ToggleEnabled()
	m.log(fmt.Sprintf("auto potion %s", onOff(m.state.Enabled)))
	return m, nil
}

func (m *OverlayModel) toggleLocked() (tea.Model, tea.Cmd) {
	m.state.Locked = m.flags.ToggleLocked()
	if err := m.cfg.SetLocked(m.state.Locked); err != nil {
		m.state.Err = err
	}
	m.log(fmt.Sprintf("overlay %s", lockState(m.state.Locked)))
	return m, nil
}

func (m *OverlayModel) handleEventMsg(ev monitor.Event) (tea.Model, tea.Cmd) {
	m.state.LoopState = ev.State
	m.state.LastUpdate = ev.At

	switch ev.Kind {
	case monitor.EventStateChanged:
		m.log(fmt.Sprintf("process %s", ev.State))
		if ev.State == monitor.StateSearching {
			m.state.Snapshot = ev.Snapshot
			m.state.HPPct = 0
		}

	case monitor.EventSnapshot:
		m.state.Snapshot = ev.Snapshot
		m.state.HPPct = ev.HPPct
		m.pushHistory(ev.HPPct)
		m.redrawChart()

	case monitor.EventPotionUsed:
		m.log(fmt.Sprintf("potion used at %.1f%% HP", ev.HPPct))
		m.refreshRecent()

	case monitor.EventReadSkipped:
		// Transient; surface only in the log buffer.
		if ev.Err != nil {
			m.log(ev.Err.Error())
		}

	case monitor.EventPressFailed:
		m.log(fmt.Sprintf("potion key press failed: %v", ev.Err))
	}

	return m, waitForEvent(m.events)
}

func (m *OverlayModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if zone.Get(views.ZoneAutoBadge).InBounds(msg) {
		return m.toggleEnabled()
	}
	if zone.Get(views.ZoneLockBadge).InBounds(msg) {
		return m.toggleLocked()
	}
	return m, nil
}

func (m *OverlayModel) pushHistory(pct float64) {
	m.state.HPHistory = append(m.state.HPHistory, pct)
	if len(m.state.HPHistory) > hpHistoryCap {
		m.state.HPHistory = m.state.HPHistory[1:]
	}
}

func (m *OverlayModel) redrawChart() {
	m.hpChart.Clear()
	for i := 0; i < len(m.state.HPHistory)-1; i++ {
		m.hpChart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: m.state.HPHistory[i]},
			canvas.Float64Point{X: float64(i + 1), Y: m.state.HPHistory[i+1]},
		)
	}
	m.hpChart.DrawXYAxisAndLabel()
}

func (m *OverlayModel) refreshRecent() {
	if m.triggers == nil {
		return
	}
	recent, err := m.triggers.Recent(recentEntries)
	if err == nil {
		m.state.Recent = recent
	}
}

func (m *OverlayModel) log(line string) {
	stamped := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), line)
	m.state.Logs = append(m.state.Logs, stamped)
	if len(m.state.Logs) > maxLogLines {
		m.state.Logs = m.state.Logs[1:]
	}
}

func (m *OverlayModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	return views.RenderOverlay(m.state, views.ViewProps{
		SpinnerView: m.spinner.View(),
		ChartView:   m.hpChart.View(),
		AnimatedHP:  m.animHP,
		Width:       m.width,
		Height:      m.height,
	})
}

// NewProgram builds the overlay program; the caller forwards hotkey
// actions with p.Send(HotkeyMsg(...)).
func NewProgram(cfg *config.Store, flags *monitor.Flags, events <-chan monitor.Event, triggers *history.Store) *tea.Program {
	m := InitialModel(cfg, flags, events, triggers)
	return tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}

func onOff(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

func lockState(v bool) string {
	if v {
		return "locked"
	}
	return "unlocked"
}
