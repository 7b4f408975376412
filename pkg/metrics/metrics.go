package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farmshop"

// HTTPMetrics instruments the API surface.
type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method, and status class.",
		}, []string{"route", "method", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Requests currently being served.",
		}),
	}
}

// GiftMetrics tracks preset resolution outcomes. Unresolved lines are not
// errors for the customer, but a sustained count means the catalog drifted
// away from the compiled presets and someone should look.
type GiftMetrics struct {
	UnresolvedPresetLines *prometheus.CounterVec
	BundlesResolved       *prometheus.CounterVec
}

func NewGiftMetrics(reg prometheus.Registerer) *GiftMetrics {
	factory := promauto.With(reg)
	return &GiftMetrics{
		UnresolvedPresetLines: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gifts",
			Name:      "unresolved_preset_lines_total",
			Help:      "Preset lines dropped because no catalog product or option matched.",
		}, []string{"package_id"}),
		BundlesResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gifts",
			Name:      "bundles_resolved_total",
			Help:      "Gift bundle resolutions by package id.",
		}, []string{"package_id"}),
	}
}

// AnalyticsMetrics instruments the storefront event pipeline.
type AnalyticsMetrics struct {
	EventsPublished *prometheus.CounterVec
	EventsWritten   prometheus.Counter
	WriteFailures   prometheus.Counter
}

func NewAnalyticsMetrics(reg prometheus.Registerer) *AnalyticsMetrics {
	factory := promauto.With(reg)
	return &AnalyticsMetrics{
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "events_published_total",
			Help:      "Storefront events published by type.",
		}, []string{"event_type"}),
		EventsWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "events_written_total",
			Help:      "Storefront events written to the warehouse.",
		}),
		WriteFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "event_write_failures_total",
			Help:      "Warehouse writes that failed after retries.",
		}),
	}
}
