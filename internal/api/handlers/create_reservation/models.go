package create_reservation

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	createReservation "github.com/m04kA/CTRS-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerName string `json:"customerName"`
	Contact      string `json:"contact"`
	Date         string `json:"date"`      // "2026-05-01"
	StartTime    string `json:"startTime"` // "19:00"
	PartySize    int    `json:"partySize"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customerName"`
	Contact      string  `json:"contact"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	PartySize    int     `json:"partySize"`
	TableID      *string `json:"tableId,omitempty"`
	TableName    *string `json:"tableName,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		CustomerName: r.CustomerName,
		Contact:      r.Contact,
		Date:         date,
		StartTime:    startTime,
		PartySize:    r.PartySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		Contact:      resp.Contact,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		PartySize:    resp.PartySize,
		TableID:      resp.TableID,
		TableName:    resp.TableName,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
