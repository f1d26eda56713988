package audit_conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	"github.com/m04kA/CTRS-ReservationService/internal/scheduling"
)

// UseCase use case для аудита конфликтов расписания
type UseCase struct {
	reservationRepo ReservationRepository
	durationMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, durationMinutes int, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		durationMinutes: durationMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case аудита конфликтов
// Диагностическое чтение вне пути бронирования: пустой отчёт - норма,
// непустой означает последствия гонки или ручной правки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date != nil {
		uc.logger.Info("AuditConflicts: date=%s", req.Date.Format(domain.DateFormat))
	} else {
		uc.logger.Info("AuditConflicts: full schedule")
	}

	// 1. Получаем неотменённые брони (на дату или все)
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("AuditConflicts: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 2. Попарная проверка окон
	pairs := scheduling.FindConflicts(reservations, uc.durationMinutes)

	response := &Response{
		Date:                req.Date,
		ReservationsChecked: len(reservations),
		Conflicts:           make([]ConflictInfo, 0, len(pairs)),
	}
	for _, pair := range pairs {
		response.Conflicts = append(response.Conflicts, ConflictInfo{
			TableID: *pair.First.TableID,
			Date:    pair.First.Date,
			First:   toReservationRef(pair.First, uc.durationMinutes),
			Second:  toReservationRef(pair.Second, uc.durationMinutes),
		})
	}

	if len(response.Conflicts) > 0 {
		uc.logger.Warn("AuditConflicts: found %d conflicts across %d reservations",
			len(response.Conflicts), len(reservations))
	} else {
		uc.logger.Info("AuditConflicts: no conflicts across %d reservations", len(reservations))
	}

	return response, nil
}

// toReservationRef сжимает бронь до полей, нужных отчёту
func toReservationRef(r *domain.Reservation, durationMinutes int) ReservationRef {
	ref := ReservationRef{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		StartTime:    r.StartTime,
		PartySize:    r.PartySize,
		Status:       string(r.Status),
	}
	if window, err := scheduling.NewWindow(r.StartTime, durationMinutes); err == nil {
		ref.EndTime = window.End
	}
	return ref
}
