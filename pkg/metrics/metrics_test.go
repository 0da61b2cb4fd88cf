package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/posts", "200", 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/posts", "200", 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/posts", "401", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/posts", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPost, "/posts", "401")))
}

func TestInFlight(t *testing.T) {
	m := New()

	m.IncInFlight()
	m.IncInFlight()
	m.DecInFlight()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/todo", "200", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "placeholder_http_request_duration_seconds")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
