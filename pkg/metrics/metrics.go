package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Campaign store metrics
	CampaignOpsTotal    *prometheus.CounterVec
	CampaignsCurrent    prometheus.Gauge
	ValidationFailures  *prometheus.CounterVec
	PersistenceFailures *prometheus.CounterVec
	SeedFallbacksTotal  prometheus.Counter

	// Geometry editor metrics
	EditorOpsTotal     *prometheus.CounterVec
	PolygonsCommitted  prometheus.Counter
	PolygonVertexCount prometheus.Histogram
	BoundsFitsTotal    prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		CampaignOpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_operations_total",
				Help: "Total number of campaign store operations",
			},
			[]string{"operation", "status"},
		),

		CampaignsCurrent: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "campaigns_current",
				Help: "Number of campaigns currently in the store",
			},
		),

		ValidationFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_validation_failures_total",
				Help: "Total number of rejected campaign creation attempts",
			},
			[]string{"field"},
		),

		PersistenceFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persistence_failures_total",
				Help: "Total number of durable slot read/write failures",
			},
			[]string{"kind"},
		),

		SeedFallbacksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "seed_fallbacks_total",
				Help: "Times the store fell back to the seed dataset on startup",
			},
		),

		EditorOpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "editor_operations_total",
				Help: "Total number of geometry editor operations",
			},
			[]string{"operation", "outcome"},
		),

		PolygonsCommitted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "editor_polygons_committed_total",
				Help: "Total number of polygons committed in the editor",
			},
		),

		PolygonVertexCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "editor_polygon_vertices",
				Help:    "Vertex count of committed polygons",
				Buckets: []float64{3, 4, 5, 8, 12, 20, 50},
			},
		),

		BoundsFitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "editor_bounds_fits_total",
				Help: "Total number of viewport bounds-fit commands issued",
			},
		),
	}
}

// HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Campaign store operation metrics
func (m *Metrics) RecordCampaignOp(operation, status string) {
	m.CampaignOpsTotal.WithLabelValues(operation, status).Inc()
}

// Current campaign count gauge
func (m *Metrics) SetCampaignCount(count int) {
	m.CampaignsCurrent.Set(float64(count))
}

// Creation validation failure metrics
func (m *Metrics) RecordValidationFailure(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}

// Durable slot failure metrics
func (m *Metrics) RecordPersistenceFailure(kind string) {
	m.PersistenceFailures.WithLabelValues(kind).Inc()
}

// Seed dataset fallback counter
func (m *Metrics) RecordSeedFallback() {
	m.SeedFallbacksTotal.Inc()
}

// Editor operation metrics
func (m *Metrics) RecordEditorOp(operation, outcome string) {
	m.EditorOpsTotal.WithLabelValues(operation, outcome).Inc()
}

// Committed polygon metrics
func (m *Metrics) RecordPolygonCommit(vertices int) {
	m.PolygonsCommitted.Inc()
	m.PolygonVertexCount.Observe(float64(vertices))
}

// Viewport bounds-fit counter
func (m *Metrics) RecordBoundsFit() {
	m.BoundsFitsTotal.Inc()
}

// HTTP requests in flight counter
func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// HTTP requests in flight counter
func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
