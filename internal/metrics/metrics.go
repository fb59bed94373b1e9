// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Contact form metrics
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backstory_contact_submissions_total",
		Help: "Contact submissions by form and resulting status",
	}, []string{"form", "status"})

	RelayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backstory_relay_duration_seconds",
		Help:    "Time spent in a single email relay call",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider", "outcome"})

	// Content metrics
	ContentReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backstory_content_reloads_total",
		Help: "Content file reload attempts by outcome",
	}, []string{"outcome"})

	ContentItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "backstory_content_items",
		Help: "Number of items currently loaded per content section",
	}, []string{"section"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
