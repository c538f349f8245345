package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_myarea_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks session cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_myarea_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_myarea_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_myarea_active_connections",
			Help: "Number of active connections",
		},
	)

	// SessionsActive tracks live client sessions
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_myarea_sessions_active",
			Help: "Number of live client sessions",
		},
	)

	// Navigations counts screen changes. declared is false when the move is
	// not listed in the transition table.
	Navigations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_myarea_navigations_total",
			Help: "Number of screen changes",
		},
		[]string{"from", "to", "declared"},
	)

	// ValidationFailures counts rejected form submissions
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_myarea_validation_failures_total",
			Help: "Number of form submissions rejected by validation",
		},
		[]string{"form"},
	)

	// OTPEvents counts one-time code lifecycle events
	OTPEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_myarea_otp_events_total",
			Help: "Number of one-time code events",
		},
		[]string{"event"},
	)

	// SOSDispatches counts emergency alerts
	SOSDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_myarea_sos_dispatches_total",
			Help: "Number of SOS alerts dispatched",
		},
		[]string{"status"},
	)

	// HelpSubmissions counts need-help and offer-help submissions
	HelpSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_myarea_help_submissions_total",
			Help: "Number of help submissions",
		},
		[]string{"kind"},
	)
)
