package output

import (
	"testing"
	"time"

	"github.com/leobrqz/AutoPot-DR/internal/history"
	"github.com/leobrqz/AutoPot-DR/internal/memory"
	"github.com/leobrqz/AutoPot-DR/internal/monitor"
)

func itemByKey(t *testing.T, view StatusView, section, key string) Item {
	t.Helper()
	sec := view.SectionByID(section)
	if sec == nil {
		t.Fatalf("section %q missing", section)
	}
	for _, it := range sec.Items {
		if it.Key == key {
			return it
		}
	}
	t.Fatalf("item %q missing in section %q", key, section)
	return Item{}
}

func TestBuildStatusHealth(t *testing.T) {
	tests := []struct {
		name       string
		state      monitor.State
		snap       memory.Snapshot
		threshold  float64
		wantStatus string
	}{
		{"healthy", monitor.StateAttached, memory.Snapshot{Current: 80, Max: 100}, 30, StatusOK},
		{"low", monitor.StateAttached, memory.Snapshot{Current: 20, Max: 100}, 30, StatusLow},
		{"at threshold", monitor.StateAttached, memory.Snapshot{Current: 30, Max: 100}, 30, StatusOK},
		{"searching", monitor.StateSearching, memory.Snapshot{}, 30, StatusNA},
		{"invalid snapshot", monitor.StateAttached, memory.Snapshot{Current: 50, Max: 0}, 30, StatusNA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildStatus(tt.state, tt.snap, true, false, tt.threshold, nil)
			got := itemByKey(t, view, SectionHealth, "hp_pct")
			if got.Status != tt.wantStatus {
				t.Errorf("hp_pct status = %q, want %q", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestBuildStatusAutoFlag(t *testing.T) {
	snap := memory.Snapshot{Current: 80, Max: 100}

	on := BuildStatus(monitor.StateAttached, snap, true, false, 30, nil)
	if got := itemByKey(t, on, SectionState, "auto").Status; got != StatusOK {
		t.Errorf("enabled auto status = %q, want %q", got, StatusOK)
	}

	off := BuildStatus(monitor.StateAttached, snap, false, false, 30, nil)
	if got := itemByKey(t, off, SectionState, "auto").Status; got != StatusOff {
		t.Errorf("disabled auto status = %q, want %q", got, StatusOff)
	}
}

func TestBuildStatusPotions(t *testing.T) {
	snap := memory.Snapshot{Current: 80, Max: 100, Potions: 0, PotionsKnown: true}
	view := BuildStatus(monitor.StateAttached, snap, true, false, 30, nil)
	if got := itemByKey(t, view, SectionHealth, "potions").Status; got != StatusLow {
		t.Errorf("empty potion status = %q, want %q", got, StatusLow)
	}
}

func TestBuildStatusTriggers(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 30, 45, 0, time.Local)
	recent := []history.Entry{{At: at, Current: 25, Max: 100, HPPct: 25}}
	view := BuildStatus(monitor.StateAttached, memory.Snapshot{Current: 80, Max: 100}, true, false, 30, recent)

	sec := view.SectionByID(SectionTriggers)
	if sec == nil || len(sec.Items) != 1 {
		t.Fatalf("expected one trigger item, got %+v", sec)
	}
	if sec.Items[0].Label != "12:30:45" {
		t.Errorf("trigger label = %q, want timestamp", sec.Items[0].Label)
	}
	if sec.Items[0].Note != "25/100" {
		t.Errorf("trigger note = %q, want 25/100", sec.Items[0].Note)
	}
}
