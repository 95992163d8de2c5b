// Package metrics exposes Prometheus instruments for the alert pipeline.
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Live push outcomes
const (
	PushSent      = "sent"
	PushNoChannel = "no_channel"
	PushFailed    = "failed"
)

// Metrics holds the pipeline instruments. A nil *Metrics records nothing.
type Metrics struct {
	SamplesIngested   prometheus.Counter
	IngestDuration    prometheus.Histogram
	AlertsRecorded    *prometheus.CounterVec
	AlertRecordErrors prometheus.Counter
	LivePushes        *prometheus.CounterVec
	LiveSessions      prometheus.Gauge
	EventsPublished   *prometheus.CounterVec

	reg prometheus.Registerer
}

// New registers the instruments with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		SamplesIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "guardian_location_samples_ingested_total",
			Help: "Total number of location samples persisted",
		}),
		IngestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "guardian_location_ingest_duration_seconds",
			Help:    "Time spent ingesting one location sample including alert dispatch",
			Buckets: prometheus.DefBuckets,
		}),
		AlertsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_alerts_recorded_total",
			Help: "Total number of alerts persisted by type",
		}, []string{"type"}),
		AlertRecordErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "guardian_alert_record_errors_total",
			Help: "Total number of alerts that failed to persist",
		}),
		LivePushes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_live_pushes_total",
			Help: "Live channel push attempts by outcome",
		}, []string{"outcome"}),
		LiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "guardian_live_sessions",
			Help: "Current number of connected parent sessions",
		}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_alert_events_published_total",
			Help: "Alert events handed to the event publisher by outcome",
		}, []string{"outcome"}),
	}
}

// NewDefault registers with the process-wide default registerer.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}

func (m *Metrics) ObserveIngest(start time.Time) {
	if m == nil {
		return
	}
	m.SamplesIngested.Inc()
	m.IngestDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncAlertRecorded(alertType string) {
	if m == nil {
		return
	}
	m.AlertsRecorded.WithLabelValues(alertType).Inc()
}

func (m *Metrics) IncAlertRecordError() {
	if m == nil {
		return
	}
	m.AlertRecordErrors.Inc()
}

func (m *Metrics) IncLivePush(outcome string) {
	if m == nil {
		return
	}
	m.LivePushes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetLiveSessions(count int) {
	if m == nil {
		return
	}
	m.LiveSessions.Set(float64(count))
}

func (m *Metrics) IncEventPublished(success bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	m.EventsPublished.WithLabelValues(outcome).Inc()
}

// WatchDB exports the connection pool stats of db under the given name.
func (m *Metrics) WatchDB(db *sql.DB, name string) error {
	if m == nil || m.reg == nil {
		return nil
	}

	return m.reg.Register(collectors.NewDBStatsCollector(db, name))
}
