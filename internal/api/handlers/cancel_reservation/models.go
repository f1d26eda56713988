package cancel_reservation

import (
	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	cancelReservation "github.com/m04kA/CTRS-ReservationService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Contact string `json:"contact"`
}

// CancelledReservationResponse HTTP response model
type CancelledReservationResponse struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customerName"`
	Contact      string  `json:"contact"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	PartySize    int     `json:"partySize"`
	TableID      *string `json:"tableId,omitempty"`
	Status       string  `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelledReservationResponse {
	return &CancelledReservationResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		Contact:      resp.Contact,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		PartySize:    resp.PartySize,
		TableID:      resp.TableID,
		Status:       resp.Status,
	}
}
