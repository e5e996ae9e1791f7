package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStarted(t *testing.T) {
	m := New()

	done := m.RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpInFlight))

	done("get", "/dashboard/invoices", http.StatusOK)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/dashboard/invoices", "200")))

	m.RequestStarted()("POST", "", http.StatusNotFound)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "unmatched", "404")))
}

func TestCacheAndActionCounters(t *testing.T) {
	m := New()

	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)
	m.CacheRevalidated("/dashboard")
	m.CacheStalePutDropped()
	m.ActionResult("create_invoice", "validation_error")
	m.SessionsRemoved(3)
	m.SessionsRemoved(0)
	m.InvoiceEventReceived("invoice.created", "processed")
	m.InvoiceEventReceived("", "rejected")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheRevalidations.WithLabelValues("/dashboard")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheStalePuts))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.actionResults.WithLabelValues("create_invoice", "validation_error")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.janitorRemoved))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.invoiceEvents.WithLabelValues("invoice.created", "processed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.invoiceEvents.WithLabelValues("unknown", "rejected")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.CacheLookup(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acorn_view_cache_lookups_total")
}

func TestRegisterDBStats(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := New()
	require.NoError(t, m.RegisterDBStats(db, "primary"))
	assert.Error(t, m.RegisterDBStats(db, "primary"))
}
