package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/CTRS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные брони"
	msgDateInPast         = "дата брони уже прошла"
	msgWindowOutOfDay     = "окно брони выходит за пределы дня"
	msgNoTablesAvailable  = "нет свободных столов на выбранное время"
	msgStoreConflict      = "не удалось обработать запрос, попробуйте еще раз"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: customer=%s, error=%v", req.CustomerName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrWindowOutOfDay):
			h.logger.Warn("POST /reservations - Window out of day: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgWindowOutOfDay)

		case errors.Is(err, createReservation.ErrNoTablesAvailable):
			h.logger.Warn("POST /reservations - No tables available: date=%s, time=%s, party=%d",
				req.Date, req.StartTime, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgNoTablesAvailable)

		case errors.Is(err, createReservation.ErrStoreConflict):
			h.logger.Warn("POST /reservations - Storage conflict: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreConflict)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: customer=%s, error=%v",
				req.CustomerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
