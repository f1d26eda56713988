package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	checkAvailability "github.com/m04kA/CTRS-ReservationService/internal/usecase/check_availability"
)

const (
	msgMissingParams  = "обязательные параметры: date, time, partySize"
	msgInvalidParams  = "некорректные параметры запроса"
	msgWindowOutOfDay = "окно брони выходит за пределы дня"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date, time, partySize (обязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	timeStr := r.URL.Query().Get("time")
	partySizeStr := r.URL.Query().Get("partySize")

	if dateStr == "" || timeStr == "" || partySizeStr == "" {
		h.logger.Warn("GET /availability - Missing query params: date=%q, time=%q, partySize=%q",
			dateStr, timeStr, partySizeStr)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	// Формируем запрос к use case
	useCaseReq, err := ToUseCaseRequest(dateStr, timeStr, partySizeStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: date=%s, time=%s, party=%s, error=%v",
				dateStr, timeStr, partySizeStr, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, checkAvailability.ErrWindowOutOfDay):
			h.logger.Warn("GET /availability - Window out of day: time=%s", timeStr)
			handlers.RespondBadRequest(w, msgWindowOutOfDay)

		default:
			h.logger.Error("GET /availability - Failed to check availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability checked: date=%s, time=%s, party=%s, tables_available=%d",
		dateStr, timeStr, partySizeStr, len(response.Available))
	handlers.RespondJSON(w, http.StatusOK, response)
}
