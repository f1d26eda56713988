package get_contact_reservations

import (
	"context"

	"github.com/m04kA/CTRS-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByContact(ctx context.Context, contact string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
