package audit_conflicts

import (
	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	auditConflicts "github.com/m04kA/CTRS-ReservationService/internal/usecase/audit_conflicts"
)

// ReservationRef краткое описание брони в отчёте
type ReservationRef struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	PartySize    int    `json:"partySize"`
	Status       string `json:"status"`
}

// ConflictInfo пара броней, деливших один стол в пересекающихся окнах
type ConflictInfo struct {
	TableID string         `json:"tableId"`
	Date    string         `json:"date"`
	First   ReservationRef `json:"first"`
	Second  ReservationRef `json:"second"`
}

// AuditResponse HTTP response model
type AuditResponse struct {
	Date                *string        `json:"date,omitempty"`
	ReservationsChecked int            `json:"reservationsChecked"`
	Conflicts           []ConflictInfo `json:"conflicts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *auditConflicts.Response) *AuditResponse {
	out := &AuditResponse{
		ReservationsChecked: resp.ReservationsChecked,
		Conflicts:           make([]ConflictInfo, 0, len(resp.Conflicts)),
	}

	if resp.Date != nil {
		dateStr := resp.Date.Format(domain.DateFormat)
		out.Date = &dateStr
	}

	for _, conflict := range resp.Conflicts {
		out.Conflicts = append(out.Conflicts, ConflictInfo{
			TableID: conflict.TableID,
			Date:    conflict.Date.Format(domain.DateFormat),
			First:   fromReservationRef(conflict.First),
			Second:  fromReservationRef(conflict.Second),
		})
	}

	return out
}

func fromReservationRef(ref auditConflicts.ReservationRef) ReservationRef {
	return ReservationRef{
		ID:           ref.ID,
		CustomerName: ref.CustomerName,
		StartTime:    ref.StartTime.String(),
		EndTime:      ref.EndTime.String(),
		PartySize:    ref.PartySize,
		Status:       ref.Status,
	}
}
