// Package console renders query results and status lines for terminal output.
package console

import (
	"fmt"
	"io"

	"cypherlab/internal/graph"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

const maxValueWidth = 60

// PrintHeader renders a section title.
func PrintHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s=== %s ===%s\n", colorCyan, title, colorReset)
}

// PrintRecords renders a numbered list of records in field order.
// An empty result prints a note rather than nothing.
func PrintRecords(w io.Writer, records []*graph.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results returned.")
		return
	}

	fmt.Fprintf(w, "Results (%d records):\n", len(records))
	for i, rec := range records {
		fmt.Fprintf(w, "  %d. %s\n", i+1, FormatRecord(rec))
	}
}

// PrintError renders an error line in red.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%sError: %v%s\n", colorRed, err, colorReset)
}

// PrintSuccess renders a confirmation line in green.
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s✓ %s%s\n", colorGreen, msg, colorReset)
}

// PrintWarning renders a cautionary line in yellow.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s! %s%s\n", colorYellow, msg, colorReset)
}

// FormatRecord renders a record on one line in field order, truncating
// oversized values.
func FormatRecord(rec *graph.Record) string {
	out := "{"
	for i, key := range rec.Keys {
		if i > 0 {
			out += ", "
		}
		v, _ := rec.Get(key)
		out += key + ": " + formatValue(v)
	}
	return out + "}"
}

func formatValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) > maxValueWidth {
		s = s[:maxValueWidth-3] + "..."
	}
	return s
}
