package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-management/internal/infrastructure/monitoring"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	monitoring.HTTP.RequestsTotal.Reset()
	monitoring.HTTP.RequestDuration.Reset()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware())
	r.Get("/customers/{customerID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	for _, id := range []string{"CUST001", "CUST002"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers/"+id, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(monitoring.HTTP.RequestsTotal.WithLabelValues("GET", "/customers/{customerID}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(monitoring.HTTP.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
