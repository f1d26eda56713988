package occupancy

import (
	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	occupancyUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/occupancy"
)

// ReservationSlot бронь в расписании стола
type ReservationSlot struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	PartySize    int    `json:"partySize"`
	Status       string `json:"status"`
}

// TableOccupancy стол и его брони на дату
type TableOccupancy struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Capacity     int               `json:"capacity"`
	Reservations []ReservationSlot `json:"reservations"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	Date       string            `json:"date"`
	Tables     []TableOccupancy  `json:"tables"`
	Unassigned []ReservationSlot `json:"unassigned"`
	Total      int               `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *occupancyUC.Response) *OccupancyResponse {
	out := &OccupancyResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		Tables:     make([]TableOccupancy, 0, len(resp.Tables)),
		Unassigned: make([]ReservationSlot, 0, len(resp.Unassigned)),
		Total:      resp.Total,
	}

	for _, table := range resp.Tables {
		slots := make([]ReservationSlot, 0, len(table.Reservations))
		for _, slot := range table.Reservations {
			slots = append(slots, fromReservationSlot(slot))
		}
		out.Tables = append(out.Tables, TableOccupancy{
			ID:           table.ID,
			Name:         table.Name,
			Capacity:     table.Capacity,
			Reservations: slots,
		})
	}

	for _, slot := range resp.Unassigned {
		out.Unassigned = append(out.Unassigned, fromReservationSlot(slot))
	}

	return out
}

func fromReservationSlot(slot occupancyUC.ReservationSlot) ReservationSlot {
	return ReservationSlot{
		ID:           slot.ID,
		CustomerName: slot.CustomerName,
		StartTime:    slot.StartTime.String(),
		EndTime:      slot.EndTime.String(),
		PartySize:    slot.PartySize,
		Status:       slot.Status,
	}
}
