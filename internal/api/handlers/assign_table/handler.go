package assign_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	assignTable "github.com/m04kA/CTRS-ReservationService/internal/usecase/assign_table"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgReservationNotFound  = "бронь не найдена"
	msgTableNotFound        = "стол не найден"
	msgReservationCancelled = "бронь отменена, стол не назначается"
	msgTableTooSmall        = "вместимость стола меньше размера компании"
	msgTableConflict        = "стол занят другой бронью в это время"
	msgStoreConflict        = "не удалось обработать запрос, попробуйте еще раз"
)

type Handler struct {
	useCase AssignTableUseCase
	logger  Logger
}

func NewHandler(useCase AssignTableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{reservationId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/assign - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req AssignTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &assignTable.Request{
		ReservationID: reservationID,
		TableID:       req.TableID,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignTable.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{id}/assign - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, assignTable.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/assign - Reservation not found: reservation_id=%d",
				reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, assignTable.ErrTableNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/assign - Table not found: table_id=%s", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, assignTable.ErrReservationCancelled):
			h.logger.Warn("PATCH /admin/reservations/{id}/assign - Reservation cancelled: reservation_id=%d",
				reservationID)
			handlers.RespondError(w, http.StatusConflict, msgReservationCancelled)

		case errors.Is(err, assignTable.ErrTableTooSmall):
			h.logger.Warn("PATCH /admin/reservations/{id}/assign - Table too small: reservation_id=%d, table_id=%s",
				reservationID, req.TableID)
			handlers.RespondError(w, http.StatusConflict, msgTableTooSmall)

		case errors.Is(err, assignTable.ErrTableConflict):
			h.logger.Warn("PATCH /admin/reservations/{id}/assign - Table conflict: reservation_id=%d, table_id=%s",
				reservationID, req.TableID)
			handlers.RespondError(w, http.StatusConflict, msgTableConflict)

		case errors.Is(err, assignTable.ErrStoreConflict):
			h.logger.Warn("PATCH /admin/reservations/{id}/assign - Storage conflict: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreConflict)

		default:
			h.logger.Error("PATCH /admin/reservations/{id}/assign - Failed to assign table: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /admin/reservations/{id}/assign - Table assigned successfully: reservation_id=%d, table_id=%s",
		result.ID, result.TableID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
