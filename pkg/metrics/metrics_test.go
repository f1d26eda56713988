package metrics

import (
	"database/sql"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	// New регистрируется в глобальном registry, поэтому единственный вызов на весь пакет
	m := New("test-service")

	m.ObserveHTTPRequest("test-service", "GET", "/api/v1/tables", "200", 0.030)
	m.ObserveHTTPRequest("test-service", "GET", "/api/v1/tables", "200", 0.015)
	m.ObserveHTTPRequest("test-service", "POST", "/api/v1/reservations", "409", 0.020)

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues("test-service", "GET", "/api/v1/tables", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues("test-service", "POST", "/api/v1/reservations", "409")))

	m.ObserveDBQuery("test-service", "SELECT", "ok", 0.002)
	m.ObserveDBQuery("test-service", "SELECT", "error", 0.001)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.dbQueriesTotal.WithLabelValues("test-service", "SELECT", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.dbQueriesTotal.WithLabelValues("test-service", "SELECT", "error")))

	m.SetDBPoolStats("test-service", sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3})

	assert.Equal(t, 5.0, testutil.ToFloat64(m.dbPoolOpenConnections.WithLabelValues("test-service")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbPoolInUseConnections.WithLabelValues("test-service")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbPoolIdleConnections.WithLabelValues("test-service")))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.serviceUp.WithLabelValues("test-service")))
}
