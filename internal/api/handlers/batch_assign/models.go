package batch_assign

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	batchAssign "github.com/m04kA/CTRS-ReservationService/internal/usecase/batch_assign"
)

// BatchAssignRequest HTTP request model
type BatchAssignRequest struct {
	Date string `json:"date"` // "2026-05-01"
}

// ItemResult исход обработки одной ожидающей брони
type ItemResult struct {
	ReservationID int64   `json:"reservationId"`
	Outcome       string  `json:"outcome"`
	TableID       *string `json:"tableId,omitempty"`
	TableName     *string `json:"tableName,omitempty"`
}

// BatchAssignResponse HTTP response model
type BatchAssignResponse struct {
	Date     string       `json:"date"`
	Pending  int          `json:"pending"`
	Assigned int          `json:"assigned"`
	Results  []ItemResult `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BatchAssignRequest) ToUseCaseRequest() (*batchAssign.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &batchAssign.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *batchAssign.Response) *BatchAssignResponse {
	out := &BatchAssignResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Pending:  resp.Pending,
		Assigned: resp.Assigned,
		Results:  make([]ItemResult, 0, len(resp.Results)),
	}

	for _, item := range resp.Results {
		out.Results = append(out.Results, ItemResult{
			ReservationID: item.ReservationID,
			Outcome:       item.Outcome,
			TableID:       item.TableID,
			TableName:     item.TableName,
		})
	}

	return out
}
