package itinerary

import "strings"

// ExtractLines scans text line by line and returns the Markdown table lines
// in original order. A line qualifies when, after trimming, it starts with
// '|' and contains more than two '|' characters. Separator rows (only '|',
// ':', '-' and spaces) are discarded.
func ExtractLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") || strings.Count(line, "|") <= 2 {
			continue
		}
		if isSeparatorRow(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Parse turns extracted table lines into a Table. The first line is the
// header; data rows whose cell count differs from the header are dropped.
func Parse(lines []string) Table {
	if len(lines) == 0 {
		return Table{}
	}
	header := splitCells(lines[0])
	if len(header) == 0 {
		return Table{}
	}
	t := Table{Header: header}
	for _, line := range lines[1:] {
		cells := splitCells(line)
		if len(cells) != len(header) {
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// Extract pulls the itinerary table out of an arbitrary text blob and returns
// it together with the remaining narrative (the input with all table-shaped
// lines removed). It is a pure function and never fails: text without a
// single qualifying line yields an empty table and the input as narrative.
func Extract(text string) (Table, string) {
	table := Parse(ExtractLines(text))

	var narrative []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") && strings.Count(trimmed, "|") > 2 {
			continue
		}
		narrative = append(narrative, line)
	}
	return table, strings.TrimSpace(strings.Join(narrative, "\n"))
}

func isSeparatorRow(line string) bool {
	stripped := strings.ReplaceAll(line, " ", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		switch r {
		case '|', ':', '-':
		default:
			return false
		}
	}
	return true
}

func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	// Leading and trailing '|' produce empty edge fragments.
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}
