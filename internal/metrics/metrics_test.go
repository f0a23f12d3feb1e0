package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentLabelsByRoutePattern(t *testing.T) {
	m := New("api")
	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/api/intern", func(w http.ResponseWriter, r *http.Request) {})
	r.Post("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/intern", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/intern", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/login", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/intern", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/login", "400")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestInstrumentFoldsUnmatchedPaths(t *testing.T) {
	m := New("api")
	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/no/such/path/x", "/xx", "/xxx"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requests))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New("portal")
	m.AuthAttempt("login", "ok")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `intern_portal_portal_auth_attempts_total{flow="login",outcome="ok"} 1`)
}

func TestNilMetricsAuthAttemptIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.AuthAttempt("login", "ok") })
}
