package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/leobrqz/AutoPot-DR/internal/history"
	"github.com/leobrqz/AutoPot-DR/internal/memory"
	"github.com/leobrqz/AutoPot-DR/internal/monitor"
	"github.com/leobrqz/AutoPot-DR/internal/output"
)

func TestPrintAttached(t *testing.T) {
	snap := memory.Snapshot{Current: 20, Max: 100, At: time.Now()}
	view := output.BuildStatus(monitor.StateAttached, snap, true, false, 30.0, nil)

	var buf bytes.Buffer
	Print(&buf, view)
	out := buf.String()

	for _, want := range []string{"AUTOPOT STATUS", "Health", "HP", "20.0%", "[LOW]", "Auto potion", "[OK]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSearching(t *testing.T) {
	view := output.BuildStatus(monitor.StateSearching, memory.Snapshot{}, false, false, 30.0, nil)

	var buf bytes.Buffer
	Print(&buf, view)
	out := buf.String()

	if !strings.Contains(out, "unavailable") {
		t.Errorf("searching state should render HP as unavailable:\n%s", out)
	}
	if !strings.Contains(out, "[OFF]") {
		t.Errorf("disabled auto potion should render OFF:\n%s", out)
	}
}

func TestPrintTriggerLog(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 30, 45, 0, time.Local)
	recent := []history.Entry{{At: at, Current: 25, Max: 100, HPPct: 25}}
	snap := memory.Snapshot{Current: 80, Max: 100, At: time.Now()}
	view := output.BuildStatus(monitor.StateAttached, snap, true, false, 30.0, recent)

	var buf bytes.Buffer
	Print(&buf, view)
	out := buf.String()

	for _, want := range []string{"Triggers", "12:30:45", "25/100"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
