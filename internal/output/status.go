// Package output converts monitor state into renderer-agnostic sections
// shared by the TUI overlay and the plain console mode. No printing here.
package output

import (
	"fmt"

	"github.com/leobrqz/AutoPot-DR/internal/history"
	"github.com/leobrqz/AutoPot-DR/internal/memory"
	"github.com/leobrqz/AutoPot-DR/internal/monitor"
)

// Section constants to avoid hardcoded strings.
const (
	SectionHealth   = "health"
	SectionState    = "state"
	SectionTriggers = "triggers"
)

const (
	StatusOK  = "OK"
	StatusLow = "LOW"
	StatusOff = "OFF"
	StatusNA  = "N/A"
)

// Item is one labeled value in a section.
type Item struct {
	Key    string
	Label  string
	Value  float64
	Unit   string
	Status string
	Note   string
}

// Section groups related items.
type Section struct {
	ID    string
	Title string
	Items []Item
}

// StatusView is the UI-ready model of the current application state.
type StatusView struct {
	Sections []Section
}

// SectionByID returns the named section or nil.
func (v *StatusView) SectionByID(id string) *Section {
	for i := range v.Sections {
		if v.Sections[i].ID == id {
			return &v.Sections[i]
		}
	}
	return nil
}

// BuildStatus assembles the view from the latest loop state.
func BuildStatus(st monitor.State, snap memory.Snapshot, enabled, locked bool, threshold float64, recent []history.Entry) StatusView {
	health := Section{ID: SectionHealth, Title: "Health"}

	if st != monitor.StateAttached || !snap.Valid() {
		health.Items = append(health.Items, Item{
			Key:    "hp_pct",
			Label:  "HP",
			Status: StatusNA,
			Note:   "unavailable",
		})
	} else {
		pct := snap.Percent()
		status := StatusOK
		if pct < threshold {
			status = StatusLow
		}
		health.Items = append(health.Items,
			Item{Key: "hp_pct", Label: "HP", Value: pct, Unit: "%", Status: status},
			Item{Key: "hp", Label: "Current", Value: snap.Current},
			Item{Key: "hp_max", Label: "Max", Value: snap.Max},
		)
		if snap.PotionsKnown {
			potStatus := StatusOK
			if snap.Potions <= 0 {
				potStatus = StatusLow
			}
			health.Items = append(health.Items, Item{
				Key: "potions", Label: "Potions", Value: float64(snap.Potions), Status: potStatus,
			})
		}
	}

	stateSec := Section{ID: SectionState, Title: "State"}
	stateSec.Items = append(stateSec.Items, Item{
		Key: "process", Label: "Process", Note: st.String(),
	})
	autoStatus := StatusOK
	if !enabled {
		autoStatus = StatusOff
	}
	stateSec.Items = append(stateSec.Items, Item{
		Key: "auto", Label: "Auto potion", Status: autoStatus,
	})
	if locked {
		stateSec.Items = append(stateSec.Items, Item{
			Key: "locked", Label: "Overlay", Note: "locked",
		})
	}

	trigSec := Section{ID: SectionTriggers, Title: "Triggers"}
	for _, e := range recent {
		trigSec.Items = append(trigSec.Items, Item{
			Key:   "trigger",
			Label: e.At.Format("15:04:05"),
			Value: e.HPPct,
			Unit:  "%",
			Note:  fmt.Sprintf("%.0f/%.0f", e.Current, e.Max),
		})
	}

	return StatusView{Sections: []Section{health, stateSec, trigSec}}
}
