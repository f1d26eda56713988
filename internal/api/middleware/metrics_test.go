package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	service string
	method  string
	path    string
	status  string
	seconds float64
}

type fakeCollector struct {
	requests []recordedRequest
}

func (f *fakeCollector) ObserveHTTPRequest(service, method, path, status string, seconds float64) {
	f.requests = append(f.requests, recordedRequest{service, method, path, status, seconds})
}

func TestMetricsMiddleware_RecordsRouteTemplate(t *testing.T) {
	collector := &fakeCollector{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector, "reservation-service"))
	r.HandleFunc("/reservations/{reservationId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/reservations/42", nil))

	require.Len(t, collector.requests, 1)
	recorded := collector.requests[0]
	assert.Equal(t, "reservation-service", recorded.service)
	assert.Equal(t, "GET", recorded.method)
	assert.Equal(t, "/reservations/{reservationId}", recorded.path)
	assert.Equal(t, "200", recorded.status)
	assert.GreaterOrEqual(t, recorded.seconds, 0.0)
}

func TestMetricsMiddleware_RecordsErrorStatus(t *testing.T) {
	collector := &fakeCollector{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector, "reservation-service"))
	r.HandleFunc("/reservations", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPost)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/reservations", nil))

	require.Len(t, collector.requests, 1)
	assert.Equal(t, "409", collector.requests[0].status)
}
