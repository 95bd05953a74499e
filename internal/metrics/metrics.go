package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	// HTTPRequestsTotal counts requests by method, route pattern and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	// HTTPErrorsTotal counts error responses by error type
	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total HTTP errors by error type",
		},
		[]string{"type"},
	)
)

// Intake Metrics
var (
	// IntakesTotal counts stored join requests and referrals
	IntakesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intakes_total",
			Help: "Total stored intake forms by kind (join/referral)",
		},
		[]string{"kind"},
	)

	// PortalLoginsTotal counts portal logins by tier, or "rejected"
	PortalLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_logins_total",
			Help: "Total portal login attempts by resulting tier",
		},
		[]string{"result"},
	)
)
