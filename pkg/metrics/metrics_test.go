package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordBasketOperation(t *testing.T) {
	m := New("bays-test")

	m.RecordBasketOperation("add", "ok")
	m.RecordBasketOperation("add", "ok")
	m.RecordBasketOperation("add", "rejected")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.basketOperations.WithLabelValues("add", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.basketOperations.WithLabelValues("add", "rejected")))
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	m := New("bays-test")

	m.RecordHTTPRequest("GET", "/api/v1/sessions", "200", 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/sessions", "200")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordBasketOperation("add", "ok")
		m.RecordHTTPRequest("GET", "/", "200", 0.1)
		m.RecordSessionsAssembled("2", 10)
		m.RecordQuoteTotal(70)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("bays-test")
	m.RecordQuoteTotal(72)
	m.RecordSessionsAssembled("2", 4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "quote_total_amount")
	assert.Contains(t, rec.Body.String(), `service="bays-test"`)
}
