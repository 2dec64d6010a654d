package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/leobrqz/AutoPot-DR/internal/monitor"
	"github.com/leobrqz/AutoPot-DR/ui/tui/state"
	"github.com/leobrqz/AutoPot-DR/ui/tui/styles"
)

// ViewProps carries pre-rendered widgets into the view.
type ViewProps struct {
	SpinnerView string
	ChartView   string
	AnimatedHP  float64
	Width       int
	Height      int
}

const hpBarWidth = 24

// Zone IDs for clickable badges.
const (
	ZoneAutoBadge = "auto_badge"
	ZoneLockBadge = "lock_badge"
)

// RenderOverlay draws the whole overlay: header, HP bar, history chart,
// badges and the recent trigger log.
func RenderOverlay(s state.AppState, props ViewProps) string {
	header := renderHeader(s, props)
	bar := renderHPCard(s, props)
	badges := renderBadges(s)
	log := renderTriggerLog(s)

	help := styles.HelpStyle.Render("i: toggle  l: lock  arrows: move  q: quit")

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		bar,
		badges,
		log,
		help,
	))
}

func renderHeader(s state.AppState, props ViewProps) string {
	var status string
	if s.LoopState == monitor.StateAttached {
		status = lipgloss.NewStyle().Foreground(styles.HPHealthy).Render("attached")
	} else {
		status = props.SpinnerView + styles.HelpStyle.Render("searching...")
	}
	return lipgloss.JoinHorizontal(lipgloss.Left,
		styles.TitleStyle.Render("AutoPot-DR"),
		status,
	)
}

func renderHPCard(s state.AppState, props ViewProps) string {
	var lines []string

	if s.LoopState == monitor.StateAttached && s.Snapshot.Valid() {
		lines = append(lines,
			fmt.Sprintf("HP %s %.1f%%", RenderHPBar(props.AnimatedHP, s.Threshold, hpBarWidth), s.HPPct),
			styles.HelpStyle.Render(fmt.Sprintf("%.0f / %.0f", s.Snapshot.Current, s.Snapshot.Max)),
		)
		if s.Snapshot.PotionsKnown {
			lines = append(lines, fmt.Sprintf("Potions: %d", s.Snapshot.Potions))
		}
	} else {
		lines = append(lines,
			"HP "+RenderHPBar(0, s.Threshold, hpBarWidth)+" --",
			styles.HelpStyle.Render("health unavailable"),
		)
	}

	if props.ChartView != "" {
		lines = append(lines, props.ChartView)
	}

	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderHPBar draws a fixed-width bar, red below the threshold and green
// above it.
func RenderHPBar(pct, threshold float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct/100*float64(width) + 0.5)

	color := styles.HPHealthy
	switch {
	case pct == 0:
		color = styles.HPUnknown
	case pct < threshold:
		color = styles.HPLow
	}

	full := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	empty := lipgloss.NewStyle().Foreground(styles.BarEmpty).Render(strings.Repeat("░", width-filled))
	return full + empty
}

func renderBadges(s state.AppState) string {
	var auto string
	if s.Enabled {
		auto = zone.Mark(ZoneAutoBadge, styles.BadgeOn.Render("AUTO ON"))
	} else {
		auto = zone.Mark(ZoneAutoBadge, styles.BadgeOff.Render("AUTO OFF"))
	}

	var lock string
	if s.Locked {
		lock = zone.Mark(ZoneLockBadge, styles.BadgeAlert.Render("LOCKED"))
	} else {
		lock = zone.Mark(ZoneLockBadge, styles.BadgeOff.Render("UNLOCKED"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, " ", auto, " ", lock)
}

func renderTriggerLog(s state.AppState) string {
	if len(s.Recent) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Recent potions"))
	for _, e := range s.Recent {
		lines = append(lines, fmt.Sprintf("%s  %.1f%% (%.0f/%.0f)",
			e.At.Format("15:04:05"), e.HPPct, e.Current, e.Max))
	}
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
