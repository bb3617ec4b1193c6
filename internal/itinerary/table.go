// Package itinerary recovers a structured day-by-day travel table from the
// unstructured text the generation service returns.
package itinerary

import "strings"

// Canonical column names the generation prompt asks for.
const (
	ColumnDate     = "DATA"
	ColumnDay      = "DIA"
	ColumnLocation = "LOCAL"
)

// Table is an ordered itinerary: a header row plus data rows. Every row has
// exactly as many cells as the header; malformed rows are dropped at parse
// time, never merged or truncated.
type Table struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the table carries no data rows.
func (t Table) Empty() bool {
	return len(t.Header) == 0 || len(t.Rows) == 0
}

// Render writes the table back out as a Markdown-style block, one row per
// line. Used for chat transcripts; Render of an empty table is "".
func (t Table) Render() string {
	if t.Empty() {
		return ""
	}
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
	}
	writeRow(t.Header)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}
