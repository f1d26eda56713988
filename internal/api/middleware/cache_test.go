package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func countingHandler(hits *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"hits":%d}`, *hits)
	})
}

func newTestCache() *cache.Cache {
	return cache.New(time.Minute, time.Minute)
}

func TestCache_ServesSecondRequestFromCache(t *testing.T) {
	var hits int
	handler := Cache(newTestCache(), time.Minute)(countingHandler(&hits))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest("GET", "/tables", nil))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest("GET", "/tables", nil))

	assert.Equal(t, 1, hits)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
}

func TestCache_KeyIncludesQueryString(t *testing.T) {
	var hits int
	handler := Cache(newTestCache(), time.Minute)(countingHandler(&hits))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/availability?date=2026-05-01", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/availability?date=2026-05-02", nil))

	assert.Equal(t, 2, hits)
}

func TestCache_SkipsNonGETRequests(t *testing.T) {
	var hits int
	handler := Cache(newTestCache(), time.Minute)(countingHandler(&hits))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/tables", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/tables", nil))

	assert.Equal(t, 2, hits)
}

func TestCache_DoesNotCacheErrors(t *testing.T) {
	var hits int
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	})
	handler := Cache(newTestCache(), time.Minute)(failing)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/tables", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/tables", nil))

	assert.Equal(t, 2, hits)
}
