package bot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/viajante-ai/trip-planner/internal/export"
	"github.com/viajante-ai/trip-planner/internal/itinerary"
	"github.com/viajante-ai/trip-planner/internal/llm"
	"github.com/viajante-ai/trip-planner/internal/observability/metrics"
	"github.com/viajante-ai/trip-planner/internal/validate"
	"github.com/viajante-ai/trip-planner/pkg/logging"
)

// Config tunes machine behavior.
type Config struct {
	// DestinationPolicy selects destination validation strictness
	// ("allowlist" or "open").
	DestinationPolicy string
	// GenerationTimeout bounds the external generation call; expiry is
	// treated as a generation failure.
	GenerationTimeout time.Duration
	// ExportDir is where rendered PDF/CSV artifacts are written.
	ExportDir string
}

// Machine drives one inbound message through the conversation flow and
// produces exactly one outbound reply. It is safe for concurrent use;
// messages for the same session key are serialized.
type Machine struct {
	store            Store
	generator        llm.Client
	validDestination validate.DestinationValidator
	cfg              Config
	metrics          *metrics.BotMetrics
	logger           *logging.Logger
	locks            *keyedMutex
}

func NewMachine(store Store, generator llm.Client, cfg Config, m *metrics.BotMetrics, logger *logging.Logger) *Machine {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = 60 * time.Second
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "arquivos"
	}
	return &Machine{
		store:            store,
		generator:        generator,
		validDestination: validate.DestinationByPolicy(cfg.DestinationPolicy),
		cfg:              cfg,
		metrics:          m,
		logger:           logger.Named("bot"),
		locks:            newKeyedMutex(),
	}
}

// Handle is the single entry point: one inbound message in, one reply out.
// The transport always gets a reply; panics and store failures degrade to an
// internal-error message instead of escaping.
func (m *Machine) Handle(ctx context.Context, key, text, returnBase string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("panic while handling message", "session", key, "panic", r)
			reply = replyInternalError
		}
	}()

	unlock := m.locks.lock(key)
	defer unlock()

	sess, found, err := m.store.Get(ctx, key)
	if err != nil {
		m.logger.Error("session lookup failed", "session", key, "error", err)
		return replyInternalError
	}

	if !found {
		sess = NewSession(key)
		sess.ReturnBase = returnBase
		if err := m.store.Put(ctx, sess); err != nil {
			m.logger.Error("session create failed", "session", key, "error", err)
			return replyInternalError
		}
		m.metrics.ObserveMessage(string(sess.State), "greeting")
		return replyGreeting
	}
	if returnBase != "" {
		sess.ReturnBase = returnBase
	}

	norm := strings.ToLower(strings.TrimSpace(text))
	if norm == "reiniciar" || norm == "restart" {
		if _, err := m.store.Reset(ctx, key); err != nil {
			m.logger.Error("session reset failed", "session", key, "error", err)
			return replyInternalError
		}
		m.metrics.ObserveMessage(string(sess.State), "restart")
		return replyRestart
	}

	switch sess.State {
	case StateAwaitingDestination:
		return m.handleDestination(ctx, sess, text)
	case StateAwaitingDates:
		return m.handleDates(ctx, sess, norm)
	case StateAwaitingBudget:
		return m.handleBudget(ctx, sess, norm)
	case StateGenerating:
		return m.handleGenerate(ctx, sess)
	case StateReady:
		return m.handleReady(ctx, sess, norm)
	}

	// Unknown state in the store (e.g. stale data from an older build):
	// recover by restarting the flow.
	m.logger.Warn("session in unknown state, resetting", "session", key, "state", sess.State)
	if _, err := m.store.Reset(ctx, key); err != nil {
		return replyInternalError
	}
	return replyRestart
}

func (m *Machine) handleDestination(ctx context.Context, sess *Session, text string) string {
	if !m.validDestination(text) {
		m.metrics.ObserveMessage(string(sess.State), "rejected")
		return replyInvalidDestination
	}
	sess.Destination = validate.TitleCase(strings.TrimSpace(text))
	sess.State = StateAwaitingDates
	if err := m.store.Put(ctx, sess); err != nil {
		m.logger.Error("session save failed", "session", sess.Key, "error", err)
		return replyInternalError
	}
	m.metrics.ObserveMessage(string(StateAwaitingDestination), "accepted")
	return fmt.Sprintf(replyAskDates, sess.Destination)
}

func (m *Machine) handleDates(ctx context.Context, sess *Session, norm string) string {
	if !validate.DateRange(norm) {
		m.metrics.ObserveMessage(string(sess.State), "rejected")
		return replyInvalidDates
	}
	sess.DateRange = norm
	sess.State = StateAwaitingBudget
	if err := m.store.Put(ctx, sess); err != nil {
		m.logger.Error("session save failed", "session", sess.Key, "error", err)
		return replyInternalError
	}
	m.metrics.ObserveMessage(string(StateAwaitingDates), "accepted")
	return replyAskBudget
}

func (m *Machine) handleBudget(ctx context.Context, sess *Session, norm string) string {
	value, ok := validate.ParseBudget(norm)
	if !ok {
		m.metrics.ObserveMessage(string(sess.State), "rejected")
		return replyInvalidBudget
	}
	sess.Budget = validate.FormatBRL(value)
	sess.State = StateGenerating
	if err := m.store.Put(ctx, sess); err != nil {
		m.logger.Error("session save failed", "session", sess.Key, "error", err)
		return replyInternalError
	}
	m.metrics.ObserveMessage(string(StateAwaitingBudget), "accepted")
	return fmt.Sprintf(replyConfirmGenerate, sess.Destination)
}

// handleGenerate calls the generation service. Any inbound message in this
// state (conventionally "ok") triggers the call.
func (m *Machine) handleGenerate(ctx context.Context, sess *Session) string {
	genCtx, cancel := context.WithTimeout(ctx, m.cfg.GenerationTimeout)
	defer cancel()

	prompt := llm.BuildItineraryPrompt(sess.Destination, sess.DateRange, sess.Budget)
	start := time.Now()
	raw, err := m.generator.Generate(genCtx, prompt)
	if err != nil {
		m.metrics.ObserveGenerationFailure()
		m.logger.Error("itinerary generation failed", "session", sess.Key, "error", err)
		if _, resetErr := m.store.Reset(ctx, sess.Key); resetErr != nil {
			m.logger.Error("session reset failed", "session", sess.Key, "error", resetErr)
			return replyInternalError
		}
		return fmt.Sprintf(replyGenerationFailed, err)
	}
	m.metrics.ObserveGeneration(time.Since(start).Seconds())

	table, narrative := itinerary.Extract(raw)
	sess.Table = table
	sess.Narrative = narrative
	// READY even when extraction found nothing: a missing table is a
	// degraded result, not a failure.
	sess.State = StateReady
	if err := m.store.Put(ctx, sess); err != nil {
		m.logger.Error("session save failed", "session", sess.Key, "error", err)
		return replyInternalError
	}
	m.metrics.ObserveMessage(string(StateGenerating), "generated")

	if table.Empty() {
		m.logger.Warn("generation response had no extractable table", "session", sess.Key)
		return fmt.Sprintf(replyReadyDegraded, narrative)
	}
	return fmt.Sprintf(replyReady, sess.Destination, table.Render())
}

func (m *Machine) handleReady(_ context.Context, sess *Session, norm string) string {
	switch norm {
	case "pdf":
		path, err := export.WritePDF(export.PDFRequest{
			Destination: sess.Destination,
			DateRange:   sess.DateRange,
			Budget:      sess.Budget,
			Table:       sess.Table,
			Narrative:   sess.Narrative,
			SessionID:   sess.Key,
		}, m.cfg.ExportDir)
		switch {
		case errors.Is(err, export.ErrEmptyItinerary):
			m.metrics.ObserveExport("pdf", "incomplete")
			return replyPDFIncomplete
		case err != nil:
			m.metrics.ObserveExport("pdf", "error")
			m.logger.Error("pdf export failed", "session", sess.Key, "error", err)
			return replyExportFailed
		}
		m.metrics.ObserveExport("pdf", "ok")
		return fmt.Sprintf(replyPDFReady, m.downloadURL(sess, path))

	case "csv":
		path, err := export.WriteCSV(sess.Table, sess.Key, m.cfg.ExportDir)
		switch {
		case errors.Is(err, export.ErrEmptyItinerary):
			m.metrics.ObserveExport("csv", "incomplete")
			return replyCSVIncomplete
		case err != nil:
			m.metrics.ObserveExport("csv", "error")
			m.logger.Error("csv export failed", "session", sess.Key, "error", err)
			return replyExportFailed
		}
		m.metrics.ObserveExport("csv", "ok")
		return fmt.Sprintf(replyCSVReady, m.downloadURL(sess, path))

	default:
		m.metrics.ObserveMessage(string(StateReady), "unknown_command")
		return replyUnknownCommand
	}
}

func (m *Machine) downloadURL(sess *Session, path string) string {
	base := strings.TrimRight(sess.ReturnBase, "/")
	return base + "/arquivos/" + filepath.Base(path)
}
