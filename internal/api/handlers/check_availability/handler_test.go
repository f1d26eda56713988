package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/CTRS-ReservationService/internal/usecase/check_availability"
)

type fakeUseCase struct {
	resp    *checkAvailability.Response
	err     error
	lastReq *checkAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_ReportsAvailability(t *testing.T) {
	suggested := "T1"
	uc := &fakeUseCase{
		resp: &checkAvailability.Response{
			Date:      time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			StartTime: "19:00",
			EndTime:   "20:30",
			PartySize: 2,
			Available: []checkAvailability.TableInfo{
				{ID: "T1", Name: "Window 2-Seater", Capacity: 2},
				{ID: "T3", Name: "Center 4-Seater", Capacity: 4},
			},
			SuggestedTableID: &suggested,
		},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2026-05-01&time=19:00&partySize=2", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-05-01", resp.Date)
	assert.Equal(t, "20:30", resp.EndTime)
	require.Len(t, resp.Available, 2)
	assert.Equal(t, "T1", resp.Available[0].ID)
	require.NotNil(t, resp.SuggestedTableID)
	assert.Equal(t, "T1", *resp.SuggestedTableID)
	assert.Empty(t, resp.Alternatives)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, 2, uc.lastReq.PartySize)
}

func TestHandler_RendersAlternatives(t *testing.T) {
	uc := &fakeUseCase{
		resp: &checkAvailability.Response{
			Date:      time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			StartTime: "19:30",
			EndTime:   "21:00",
			PartySize: 2,
			Available: []checkAvailability.TableInfo{},
			Alternatives: []checkAvailability.Alternative{
				{StartTime: "18:30", EndTime: "20:00", TablesAvailable: 1},
				{StartTime: "20:30", EndTime: "22:00", TablesAvailable: 1},
			},
		},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2026-05-01&time=19:30&partySize=2", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Available)
	assert.Nil(t, resp.SuggestedTableID)
	require.Len(t, resp.Alternatives, 2)
	assert.Equal(t, "18:30", resp.Alternatives[0].StartTime)
	assert.Equal(t, 1, resp.Alternatives[0].TablesAvailable)
}

func TestHandler_MissingParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"no params", ""},
		{"no date", "?time=19:00&partySize=2"},
		{"no time", "?date=2026-05-01&partySize=2"},
		{"no party size", "?date=2026-05-01&time=19:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/availability"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.lastReq)
		})
	}
}

func TestHandler_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad date", "?date=01.05.2026&time=19:00&partySize=2"},
		{"bad time", "?date=2026-05-01&time=7pm&partySize=2"},
		{"bad party size", "?date=2026-05-01&time=19:00&partySize=two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/availability"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.lastReq)
		})
	}
}

func TestHandler_WindowOutOfDay(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: checkAvailability.ErrWindowOutOfDay}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2026-05-01&time=23:30&partySize=2", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
