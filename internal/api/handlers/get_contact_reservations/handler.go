package get_contact_reservations

import (
	"net/http"

	"github.com/m04kA/CTRS-ReservationService/internal/api/handlers"
)

const (
	msgMissingContact = "не указан контакт гостя"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?contact={contact}
// История гостя: все его брони, включая отменённые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	contact := r.URL.Query().Get("contact")
	if contact == "" {
		h.logger.Warn("GET /reservations - Missing contact query param")
		handlers.RespondBadRequest(w, msgMissingContact)
		return
	}

	result, err := h.service.GetByContact(r.Context(), contact)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to get reservations: contact=%s, error=%v", contact, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: contact=%s, count=%d",
		contact, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
