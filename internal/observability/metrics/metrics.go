package metrics

import "github.com/prometheus/client_golang/prometheus"

// BotMetrics exposes counters/histograms for the conversation flow.
type BotMetrics struct {
	messagesTotal      *prometheus.CounterVec
	generationLatency  prometheus.Histogram
	generationFailures prometheus.Counter
	exportsTotal       *prometheus.CounterVec
}

func NewBotMetrics(reg prometheus.Registerer) *BotMetrics {
	m := &BotMetrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "viajante",
			Subsystem: "bot",
			Name:      "messages_total",
			Help:      "Inbound messages handled, by session state and outcome",
		}, []string{"state", "outcome"}),
		generationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "viajante",
			Subsystem: "bot",
			Name:      "generation_latency_seconds",
			Help:      "Latency of itinerary generation calls",
			Buckets:   prometheus.DefBuckets,
		}),
		generationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "viajante",
			Subsystem: "bot",
			Name:      "generation_failures_total",
			Help:      "Failed itinerary generation calls",
		}),
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "viajante",
			Subsystem: "export",
			Name:      "exports_total",
			Help:      "Export attempts, by format and status",
		}, []string{"format", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.messagesTotal, m.generationLatency, m.generationFailures, m.exportsTotal)
	return m
}

func (m *BotMetrics) ObserveMessage(state, outcome string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(state, outcome).Inc()
}

func (m *BotMetrics) ObserveGeneration(seconds float64) {
	if m == nil {
		return
	}
	m.generationLatency.Observe(seconds)
}

func (m *BotMetrics) ObserveGenerationFailure() {
	if m == nil {
		return
	}
	m.generationFailures.Inc()
}

func (m *BotMetrics) ObserveExport(format, status string) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(format, status).Inc()
}
