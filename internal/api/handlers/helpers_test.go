package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Alice"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Alice", dst.Name)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	var dst struct{}

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, 201, map[string]int{"id": 7})

	assert.Equal(t, 201, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondError(w, 409, "стол занят")

	assert.Equal(t, 409, w.Code)
	assert.JSONEq(t, `{"error":"стол занят"}`, w.Body.String())
}

func TestNamedResponders(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w *httptest.ResponseRecorder)
		status  int
	}{
		{"bad request", func(w *httptest.ResponseRecorder) { RespondBadRequest(w, "msg") }, 400},
		{"unauthorized", func(w *httptest.ResponseRecorder) { RespondUnauthorized(w, "msg") }, 401},
		{"forbidden", func(w *httptest.ResponseRecorder) { RespondForbidden(w, "msg") }, 403},
		{"not found", func(w *httptest.ResponseRecorder) { RespondNotFound(w, "msg") }, 404},
		{"internal", func(w *httptest.ResponseRecorder) { RespondInternalError(w) }, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.respond(w)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}
