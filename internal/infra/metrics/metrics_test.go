package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_HandlerExposesCollectors(t *testing.T) {
	m := NewMetrics()

	m.RequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	m.EventsPublished.WithLabelValues("USER_LOGIN", "ok").Add(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `pixelforge_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, string(body), `pixelforge_audit_events_published_total{event_type="USER_LOGIN",result="ok"} 2`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_CounterValues(t *testing.T) {
	m := NewMetrics()

	m.EventsStored.WithLabelValues("USER_SIGNUP", "stored").Inc()
	m.EventsStored.WithLabelValues("USER_SIGNUP", "stored").Inc()
	m.EventsStored.WithLabelValues("USER_SIGNUP", "failed").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsStored.WithLabelValues("USER_SIGNUP", "stored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsStored.WithLabelValues("USER_SIGNUP", "failed")))

	expected := `
# HELP pixelforge_audit_events_stored_total Audit events received by the worker, by type and result.
# TYPE pixelforge_audit_events_stored_total counter
pixelforge_audit_events_stored_total{event_type="USER_SIGNUP",result="failed"} 1
pixelforge_audit_events_stored_total{event_type="USER_SIGNUP",result="stored"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "pixelforge_audit_events_stored_total"))
}
