package delete_table

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	"github.com/m04kA/CTRS-ReservationService/internal/service/tables"
)

const (
	msgInvalidTableID = "некорректный ID стола"
	msgTableNotFound  = "стол не найден"
	msgTableInUse     = "на стол ссылаются брони, удаление невозможно"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tableId из URL
	vars := mux.Vars(r)
	tableID := vars["tableId"]

	// Удаляем стол
	err := h.service.Delete(r.Context(), tableID)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/tables/{id} - Invalid table ID: table_id=%s", tableID)
			handlers.RespondBadRequest(w, msgInvalidTableID)

		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("DELETE /admin/tables/{id} - Table not found: table_id=%s", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, tables.ErrTableInUse):
			h.logger.Warn("DELETE /admin/tables/{id} - Table is referenced by reservations: table_id=%s", tableID)
			handlers.RespondError(w, http.StatusConflict, msgTableInUse)

		default:
			h.logger.Error("DELETE /admin/tables/{id} - Failed to delete table: table_id=%s, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/tables/{id} - Table deleted successfully: table_id=%s", tableID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
