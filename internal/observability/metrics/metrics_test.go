package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestBotMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBotMetrics(reg)
	m.ObserveMessage("AWAITING_DESTINATION", "accepted")
	m.ObserveGeneration(1.5)
	m.ObserveGenerationFailure()
	m.ObserveExport("csv", "ok")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 4 {
		t.Fatalf("expected 4 metric families, got %d", len(families))
	}
}

func TestBotMetricsNilSafe(t *testing.T) {
	var m *BotMetrics
	m.ObserveMessage("state", "outcome")
	m.ObserveGeneration(0.1)
	m.ObserveGenerationFailure()
	m.ObserveExport("pdf", "error")
}
