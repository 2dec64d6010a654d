// Package console renders the status view as compact colored lines for
// --no-ui mode.
package console

import (
	"fmt"
	"io"

	"github.com/leobrqz/AutoPot-DR/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Print renders the status view to the writer.
func Print(w io.Writer, view output.StatusView) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "AUTOPOT STATUS", colorReset)

	for _, sec := range view.Sections {
		if len(sec.Items) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		for _, it := range sec.Items {
			valStr := ""
			switch {
			case it.Unit != "":
				valStr = fmt.Sprintf("%.1f%s", it.Value, it.Unit)
			case it.Value != 0:
				valStr = fmt.Sprintf("%.1f", it.Value)
			}
			if it.Note != "" {
				if valStr != "" {
					valStr += " "
				}
				valStr += it.Note
			}

			marker := ""
			if it.Status != "" {
				marker = fmt.Sprintf(" %s[%s]%s", colorFor(it.Status), it.Status, colorReset)
			}

			fmt.Fprintf(w, "  %-12s %s%s\n", it.Label, valStr, marker)
		}
	}
}

func colorFor(status string) string {
	switch status {
	case output.StatusOK:
		return colorGreen
	case output.StatusLow:
		return colorRed
	case output.StatusOff, output.StatusNA:
		return colorYellow
	}
	return colorReset
}
