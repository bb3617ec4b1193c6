// Package export renders a parsed itinerary into downloadable artifacts.
package export

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/viajante-ai/trip-planner/internal/validate"
)

// ErrEmptyItinerary signals the distinct "itinerary incomplete" condition:
// the caller asked for an export but no table rows survived extraction.
// It is an expected state, not a generic failure.
var ErrEmptyItinerary = errors.New("export: empty itinerary table")

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create dir %s: %w", dir, err)
	}
	return nil
}

// shortID truncates a session key for use in filenames.
func shortID(sessionID string, n int) string {
	if len(sessionID) <= n {
		return sessionID
	}
	return sessionID[:n]
}

// randSuffix returns a short random hex fragment for collision resistance.
func randSuffix(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

// slug lowercases, folds accents and replaces non-alphanumerics, so a
// destination like "Itália" becomes a safe filename fragment "italia".
func slug(s string) string {
	folded := strings.ToLower(validate.FoldAccents(strings.TrimSpace(s)))
	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "viagem"
	}
	return b.String()
}
