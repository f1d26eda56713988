package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	"github.com/m04kA/CTRS-ReservationService/internal/api/middleware"
	cancelReservation "github.com/m04kA/CTRS-ReservationService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingContact       = "не указан контакт гостя"
	msgReservationNotFound  = "бронь не найдена"
	msgAlreadyCancelled     = "бронь уже отменена"
	msgStoreConflict        = "не удалось обработать запрос, попробуйте еще раз"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
// и PATCH /api/v1/admin/reservations/{reservationId}/cancel
// Публичный маршрут требует контакт гостя, административный отменяет без проверки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	useCaseReq := &cancelReservation.Request{ReservationID: reservationID}

	// Гость подтверждает право на отмену контактом, администратору контакт не нужен
	if !middleware.IsAdmin(r.Context()) {
		var req CancelReservationRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		if req.Contact == "" {
			h.logger.Warn("PATCH /reservations/{id}/cancel - Missing contact: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgMissingContact)
			return
		}
		useCaseReq.Contact = &req.Contact
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Already cancelled: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, cancelReservation.ErrStoreConflict):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Storage conflict: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreConflict)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
