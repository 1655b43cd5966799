// Package metrics owns the Prometheus registry and the collectors shared by the HTTP servers.
package metrics

import (
	"log/slog"
	"net/http"

	"pixelforge/config"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const namespace = "pixelforge"

// Metrics groups the collectors recorded by middleware and services.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	// EventsPublished counts audit publications by type and result (ok|failed).
	EventsPublished *prometheus.CounterVec
	// EventsStored counts audit events handled by the worker by result (stored|rejected|failed).
	EventsStored *prometheus.CounterVec
}

// NewMetrics registers every collector on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method", "route"},
		),
		EventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "audit",
				Name:      "events_published_total",
				Help:      "Audit events handed to the publisher, by type and result.",
			},
			[]string{"event_type", "result"},
		),
		EventsStored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "audit",
				Name:      "events_stored_total",
				Help:      "Audit events received by the worker, by type and result.",
			},
			[]string{"event_type", "result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestsDuration,
		m.InFlight,
		m.EventsPublished,
		m.EventsStored,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDB adds connection pool statistics of db.
func (m *Metrics) RegisterDB(db *gorm.DB, dbName string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for metrics")
	}

	if err := m.registry.Register(collectors.NewDBStatsCollector(sqlDB, dbName)); err != nil {
		return errors.Wrap(err, "failed to register db stats collector")
	}

	return nil
}

// Params holds dependencies for Metrics, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// New creates Metrics and attaches the database pool when one is available.
func New(params Params) (*Metrics, error) {
	m := NewMetrics()

	if params.DB != nil {
		dbName := params.Config.Env.ServiceName
		if dbName == "" {
			dbName = namespace
		}
		if err := m.RegisterDB(params.DB, dbName); err != nil {
			return nil, err
		}
	}

	if params.Config.Metrics == nil || !params.Config.Metrics.Enabled {
		params.Logger.Debug("Metrics endpoint disabled")
	}

	return m, nil
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
