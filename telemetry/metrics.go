// Package telemetry provides Prometheus metrics and correlation-id aware logging helpers.
package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// Counters
	CommandsTotal *prometheus.CounterVec
	CommandErrors prometheus.Counter
	EventsDropped prometheus.Counter
	SavesTotal    prometheus.Counter
	SaveErrors    prometheus.Counter

	// Histograms (seconds)
	SaveDuration prometheus.Observer

	// Gauges
	ActiveMatchesGauge prometheus.Gauge
	AliasesGauge       prometheus.Gauge
)

// Init registers metrics (idempotent).
func Init() {
	once.Do(func() {
		CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{Name: "matchbot_commands_total", Help: "Chat commands processed, by command name"}, []string{"command"})
		CommandErrors = promauto.NewCounter(prometheus.CounterOpts{Name: "matchbot_command_errors_total", Help: "Commands that produced a user-input error response"})
		EventsDropped = promauto.NewCounter(prometheus.CounterOpts{Name: "matchbot_events_dropped_total", Help: "Inbound chat events dropped because the event queue was full"})
		SavesTotal = promauto.NewCounter(prometheus.CounterOpts{Name: "matchbot_saves_total", Help: "Data file write-through saves attempted"})
		SaveErrors = promauto.NewCounter(prometheus.CounterOpts{Name: "matchbot_save_errors_total", Help: "Data file saves that failed"})
		SaveDuration = promauto.NewHistogram(prometheus.HistogramOpts{Name: "matchbot_save_duration_seconds", Help: "Data file save duration seconds", Buckets: prometheus.DefBuckets})
		ActiveMatchesGauge = promauto.NewGauge(prometheus.GaugeOpts{Name: "matchbot_active_matches", Help: "Current number of non-deleted matches"})
		AliasesGauge = promauto.NewGauge(prometheus.GaugeOpts{Name: "matchbot_aliases", Help: "Current number of alias table entries"})
	})
}

// ObserveCommand counts one processed command by name.
func ObserveCommand(name string) {
	if CommandsTotal != nil {
		CommandsTotal.WithLabelValues(name).Inc()
	}
}

// ObserveCommandError counts one user-input error response.
func ObserveCommandError() {
	if CommandErrors != nil {
		CommandErrors.Inc()
	}
}

// ObserveDroppedEvent counts one event rejected by a full queue.
func ObserveDroppedEvent() {
	if EventsDropped != nil {
		EventsDropped.Inc()
	}
}

// ObserveSave records one save attempt and its outcome.
func ObserveSave(d time.Duration, ok bool) {
	if SavesTotal != nil {
		SavesTotal.Inc()
	}
	if !ok && SaveErrors != nil {
		SaveErrors.Inc()
	}
	if SaveDuration != nil {
		SaveDuration.Observe(d.Seconds())
	}
}

// SetActiveMatches records the current non-deleted match count.
func SetActiveMatches(n int) {
	if ActiveMatchesGauge != nil {
		ActiveMatchesGauge.Set(float64(n))
	}
}

// SetAliases records the current alias table size.
func SetAliases(n int) {
	if AliasesGauge != nil {
		AliasesGauge.Set(float64(n))
	}
}

// TimeFunc measures the duration of fn and records in observer if non-nil.
func TimeFunc(obs prometheus.Observer, fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)
	if obs != nil {
		obs.Observe(d.Seconds())
	}
	return d
}

// Correlation ID helpers ----------------------------------------------------
type corrKeyType struct{}

var corrKey corrKeyType

// WithCorrelation returns a new context embedding correlation id (if absent) and the id.
func WithCorrelation(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, corrKey, id)
}

// GetCorrelation returns correlation id or empty string.
func GetCorrelation(ctx context.Context) string {
	v := ctx.Value(corrKey)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// LoggerWithCorr returns a logger with corr attribute if present.
func LoggerWithCorr(ctx context.Context) *slog.Logger {
	if id := GetCorrelation(ctx); id != "" {
		return slog.Default().With(slog.String("corr", id))
	}
	return slog.Default()
}
