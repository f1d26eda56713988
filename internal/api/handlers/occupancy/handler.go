package occupancy

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	occupancyUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/occupancy"
)

const (
	msgMissingDate = "не указана дата"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase OccupancyUseCase
	logger  Logger
}

func NewHandler(useCase OccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/occupancy
// Query params: date (обязательный)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/occupancy - Missing date query param")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/occupancy - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &occupancyUC.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, occupancyUC.ErrInvalidInput):
			h.logger.Warn("GET /admin/occupancy - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/occupancy - Failed to build occupancy: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /admin/occupancy - Occupancy built: date=%s, tables=%d, unassigned=%d, total=%d",
		dateStr, len(response.Tables), len(response.Unassigned), result.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
