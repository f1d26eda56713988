package check_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	checkAvailability "github.com/m04kA/CTRS-ReservationService/internal/usecase/check_availability"
	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// TableInfo свободный стол в ответе
type TableInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Alternative соседнее время со свободными столами
type Alternative struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	TablesAvailable int    `json:"tablesAvailable"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date             string        `json:"date"`
	StartTime        string        `json:"startTime"`
	EndTime          string        `json:"endTime"`
	PartySize        int           `json:"partySize"`
	Available        []TableInfo   `json:"available"`
	SuggestedTableID *string       `json:"suggestedTableId,omitempty"`
	Alternatives     []Alternative `json:"alternatives,omitempty"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(dateStr, timeStr, partySizeStr string) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	partySize, err := strconv.Atoi(partySizeStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Date:      date,
		StartTime: startTime,
		PartySize: partySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		PartySize:        resp.PartySize,
		Available:        make([]TableInfo, 0, len(resp.Available)),
		SuggestedTableID: resp.SuggestedTableID,
	}

	for _, table := range resp.Available {
		out.Available = append(out.Available, TableInfo{
			ID:       table.ID,
			Name:     table.Name,
			Capacity: table.Capacity,
		})
	}

	for _, alt := range resp.Alternatives {
		out.Alternatives = append(out.Alternatives, Alternative{
			StartTime:       alt.StartTime.String(),
			EndTime:         alt.EndTime.String(),
			TablesAvailable: alt.TablesAvailable,
		})
	}

	return out
}
