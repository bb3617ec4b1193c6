// Package bot implements the trip-planning conversation: a per-session state
// machine that collects destination, dates and budget, asks the generation
// service for an itinerary, and hands the parsed result to the exporters.
package bot

import (
	"time"

	"github.com/viajante-ai/trip-planner/internal/itinerary"
)

// State identifies where a session is in the linear planning flow.
type State string

const (
	StateAwaitingDestination State = "AWAITING_DESTINATION"
	StateAwaitingDates       State = "AWAITING_DATES"
	StateAwaitingBudget      State = "AWAITING_BUDGET"
	StateGenerating          State = "GENERATING_ITINERARY"
	StateReady               State = "ITINERARY_READY"
)

// Session is one user's in-progress or completed planning conversation.
// Each field is written exactly once per planning cycle; a restart or an
// unrecoverable generation failure resets everything.
type Session struct {
	Key         string          `json:"key"`
	State       State           `json:"state"`
	Destination string          `json:"destination,omitempty"`
	DateRange   string          `json:"date_range,omitempty"`
	Budget      string          `json:"budget,omitempty"`
	Table       itinerary.Table `json:"table,omitempty"`
	Narrative   string          `json:"narrative,omitempty"`
	ReturnBase  string          `json:"return_base,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewSession creates a fresh session at the start of the flow.
func NewSession(key string) *Session {
	return &Session{
		Key:       key,
		State:     StateAwaitingDestination,
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
