package audit_conflicts

import (
	"net/http"
	"time"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	auditConflicts "github.com/m04kA/CTRS-ReservationService/internal/usecase/audit_conflicts"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase AuditConflictsUseCase
	logger  Logger
}

func NewHandler(useCase AuditConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/conflicts
// Query params: date (опционально, без даты проверяется всё расписание)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq := &auditConflicts.Request{}

	dateStr := r.URL.Query().Get("date")
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/conflicts - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		useCaseReq.Date = &date
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /admin/conflicts - Failed to audit conflicts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /admin/conflicts - Audit completed: checked=%d, conflicts=%d",
		result.ReservationsChecked, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, response)
}
