package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetricsRegistered verifies that all metrics are visible in the default
// registry once they have been observed.
func TestMetricsRegistered(t *testing.T) {
	RequestsTotal.WithLabelValues("GET", "2xx").Inc()
	RequestDuration.WithLabelValues("GET").Observe(0.1)
	VendorRequestsTotal.WithLabelValues("imagen-test", "ok").Inc()
	VendorLatency.WithLabelValues("imagen-test").Observe(0.1)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	expected := map[string]bool{
		"mannequin_requests_total":           false,
		"mannequin_request_duration_seconds": false,
		"mannequin_vendor_requests_total":    false,
		"mannequin_vendor_latency_seconds":   false,
	}
	for _, mf := range families {
		if _, ok := expected[mf.GetName()]; ok {
			expected[mf.GetName()] = true
		}
	}

	for name, found := range expected {
		assert.True(t, found, "metric %q not found in default registry", name)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	t.Run("records the status class of the response", func(t *testing.T) {
		before := testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "4xx"))

		handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/generate-mannequin", nil))

		after := testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "4xx"))
		assert.Equal(t, before+1, after)
	})

	t.Run("implicit 200 when the handler only writes a body", func(t *testing.T) {
		before := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "2xx"))

		handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

		after := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "2xx"))
		assert.Equal(t, before+1, after)
	})
}

func TestStatusWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := NewStatusWriter(rec)

	sw.WriteHeader(http.StatusTooManyRequests)
	sw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusTooManyRequests, sw.Status())
	assert.Same(t, sw, NewStatusWriter(sw))
	assert.Equal(t, "5xx", StatusClass(http.StatusServiceUnavailable))
}
