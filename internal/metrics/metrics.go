// Package metrics declares the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP traffic
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_http_requests_total",
		Help: "HTTP requests served, by route pattern and status code",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "website_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Page and estimator usage
	PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_page_views_total",
		Help: "Rendered landing page views",
	}, []string{"preset"})

	Estimates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_estimates_total",
		Help: "Revenue-loss estimates served by the API",
	}, []string{"clamped"})

	BookingClicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_booking_clicks_total",
		Help: "Clicks through to the booking calendar, by page section",
	}, []string{"source"})

	// Analytics pipeline
	AnalyticsEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_analytics_events_total",
		Help: "Analytics events accepted, by event name",
	}, []string{"name"})

	AnalyticsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_analytics_events_rejected_total",
		Help: "Analytics events rejected at ingestion, by reason",
	}, []string{"reason"})

	AnalyticsForwardFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "website_analytics_forward_failures_total",
		Help: "Events that could not be forwarded to the measurement endpoint",
	})
)
