package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/viajante-ai/trip-planner/internal/itinerary"
)

// WriteCSV renders the itinerary table as a semicolon-delimited CSV under dir
// and returns the file path. An empty table yields ErrEmptyItinerary.
func WriteCSV(table itinerary.Table, sessionID, dir string) (string, error) {
	if table.Empty() {
		return "", ErrEmptyItinerary
	}
	if err := ensureDir(dir); err != nil {
		return "", err
	}

	name := fmt.Sprintf("itinerario_%s_%s.csv", shortID(sessionID, 6), randSuffix(4))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(table.Header); err != nil {
		return "", fmt.Errorf("export: write csv header: %w", err)
	}

	year := time.Now().Year()
	for _, row := range table.Rows {
		out := append([]string(nil), row...)
		if len(out) > 0 {
			out[0] = withYear(out[0], year)
		}
		if err := w.Write(out); err != nil {
			return "", fmt.Errorf("export: write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export: flush csv: %w", err)
	}
	return path, nil
}

// withYear turns a short date like "19-set" into "19-set-2026". Works only
// for current-year trips; anything not matching DD-MMM passes through.
func withYear(cell string, year int) string {
	parts := strings.Split(strings.TrimSpace(cell), "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return cell
	}
	if _, err := strconv.Atoi(parts[0]); err != nil {
		return cell
	}
	return fmt.Sprintf("%s-%s-%d", parts[0], parts[1], year)
}
