package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnk/DocBooking/pkg/metrics"
)

func TestMetricsMiddleware_RecordsRequest(t *testing.T) {
	collector := metrics.New("metrics-middleware-test")

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(collector))
	router.HandleFunc("/api/v1/services", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	// Счётчик помечен статусом, гистограмма - только методом и путём
	assert.Equal(t, float64(1), testutil.ToFloat64(
		collector.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/services", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.HTTPRequestDuration))
}

func TestMetricsMiddleware_RecordsErrorStatus(t *testing.T) {
	collector := metrics.New("metrics-middleware-error-test")

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(collector))
	router.HandleFunc("/api/v1/bookings/{code}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/APT-1", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	// path - шаблон роута, а не фактический URL
	assert.Equal(t, float64(1), testutil.ToFloat64(
		collector.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/bookings/{code}", "404")))
}
