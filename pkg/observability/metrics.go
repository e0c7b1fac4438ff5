// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the mannequin proxy.
package observability

import "github.com/prometheus/client_golang/prometheus"

// ImageBuckets covers image generation latencies from 250ms to 2 minutes.
var ImageBuckets = []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120}

var (
	// RequestsTotal counts HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mannequin_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records HTTP request duration in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mannequin_request_duration_seconds",
			Help:    "Request duration",
			Buckets: ImageBuckets,
		},
		[]string{"method"},
	)

	// VendorRequestsTotal counts calls to the image generation API by outcome.
	VendorRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mannequin_vendor_requests_total",
			Help: "Vendor requests",
		},
		[]string{"model", "status"},
	)

	// VendorLatency records image generation API latency in seconds.
	VendorLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mannequin_vendor_latency_seconds",
			Help:    "Vendor latency",
			Buckets: ImageBuckets,
		},
		[]string{"model"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		VendorRequestsTotal,
		VendorLatency,
	)
}
