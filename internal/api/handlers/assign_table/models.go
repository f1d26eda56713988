package assign_table

import (
	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	assignTable "github.com/m04kA/CTRS-ReservationService/internal/usecase/assign_table"
)

// AssignTableRequest HTTP request model
type AssignTableRequest struct {
	TableID string `json:"tableId"`
}

// AssignedReservationResponse HTTP response model
type AssignedReservationResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Contact      string `json:"contact"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	PartySize    int    `json:"partySize"`
	TableID      string `json:"tableId"`
	TableName    string `json:"tableName"`
	Status       string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignTable.Response) *AssignedReservationResponse {
	return &AssignedReservationResponse{
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
	}
}
