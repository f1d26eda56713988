package assign_table

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	assignTable "github.com/m04kA/CTRS-ReservationService/internal/usecase/assign_table"
)

type fakeUseCase struct {
	resp    *assignTable.Response
	err     error
	lastReq *assignTable.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *assignTable.Request) (*assignTable.Response, error) {
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

func newRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/reservations/{reservationId}/assign", h.Handle).Methods(http.MethodPatch)
	return router
}

func TestHandler_AssignsTable(t *testing.T) {
	uc := &fakeUseCase{
		resp: &assignTable.Response{
			ID:           42,
			CustomerName: "Alice",
			Contact:      "alice@example.com",
			Date:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			StartTime:    "19:00",
			EndTime:      "20:30",
			PartySize:    3,
			TableID:      "T3",
			TableName:    "Center 4-Seater",
			Status:       "confirmed",
		},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/reservations/42/assign",
		strings.NewReader(`{"tableId":"T3"}`))
	rec := httptest.NewRecorder()

	newRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AssignedReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-05-01", resp.Date)
	assert.Equal(t, "19:00", resp.StartTime)
	assert.Equal(t, "20:30", resp.EndTime)
	assert.Equal(t, "T3", resp.TableID)
	assert.Equal(t, "Center 4-Seater", resp.TableName)
	assert.Equal(t, "confirmed", resp.Status)

	// Use case получил ID из URL и стол из тела
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.ReservationID)
	assert.Equal(t, "T3", uc.lastReq.TableID)
}

func TestHandler_InvalidReservationID(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/reservations/abc/assign",
		strings.NewReader(`{"tableId":"T3"}`))
	rec := httptest.NewRecorder()

	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandler_MalformedBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/reservations/42/assign",
		strings.NewReader(`{"tableId":`))
	rec := httptest.NewRecorder()

	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", assignTable.ErrInvalidInput, http.StatusBadRequest},
		{"reservation not found", assignTable.ErrReservationNotFound, http.StatusNotFound},
		{"table not found", assignTable.ErrTableNotFound, http.StatusNotFound},
		{"reservation cancelled", assignTable.ErrReservationCancelled, http.StatusConflict},
		{"table too small", assignTable.ErrTableTooSmall, http.StatusConflict},
		{"table conflict", assignTable.ErrTableConflict, http.StatusConflict},
		{"store conflict", assignTable.ErrStoreConflict, http.StatusServiceUnavailable},
		{"internal", assignTable.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/reservations/42/assign",
				strings.NewReader(`{"tableId":"T3"}`))
			rec := httptest.NewRecorder()

			newRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var errResp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}
