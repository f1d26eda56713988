package create_table

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
	"github.com/m04kA/CTRS-ReservationService/internal/service/tables"
	"github.com/m04kA/CTRS-ReservationService/internal/service/tables/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTable       = "некорректные данные стола"
	msgTableAlreadyExists = "стол с таким ID уже существует"
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

// Handle POST /api/v1/admin/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем стол
	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /admin/tables - Invalid table data: table_id=%s, error=%v", req.ID, err)
			handlers.RespondBadRequest(w, msgInvalidTable)

		case errors.Is(err, tables.ErrTableAlreadyExists):
			h.logger.Warn("POST /admin/tables - Table already exists: table_id=%s", req.ID)
			handlers.RespondError(w, http.StatusConflict, msgTableAlreadyExists)

		default:
			h.logger.Error("POST /admin/tables - Failed to create table: table_id=%s, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/tables - Table created successfully: table_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
