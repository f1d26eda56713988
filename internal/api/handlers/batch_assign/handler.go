package batch_assign

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	batchAssign "github.com/m04kA/CTRS-ReservationService/internal/usecase/batch_assign"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase BatchAssignUseCase
	logger  Logger
}

func NewHandler(useCase BatchAssignUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reservations/batch-assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BatchAssignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations/batch-assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/reservations/batch-assign - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, batchAssign.ErrInvalidInput):
			h.logger.Warn("POST /admin/reservations/batch-assign - Invalid input: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /admin/reservations/batch-assign - Failed to assign tables: date=%s, error=%v",
				req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /admin/reservations/batch-assign - Batch completed: date=%s, pending=%d, assigned=%d",
		req.Date, result.Pending, result.Assigned)
	handlers.RespondJSON(w, http.StatusOK, response)
}
