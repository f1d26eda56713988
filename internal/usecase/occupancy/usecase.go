package occupancy

import (
	"context"
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	"github.com/m04kA/CTRS-ReservationService/internal/scheduling"
)

// UseCase use case для обзора занятости зала
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	durationMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	durationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		durationMinutes: durationMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case обзора занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Occupancy: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("Occupancy: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем все столы зала
	tables, err := uc.tableRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Occupancy: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	// 3. Получаем активные брони на дату (по возрастанию времени начала)
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("Occupancy: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Раскладываем брони по столам; порядок внутри стола унаследован
	// от сортировки хранилища
	byTable := make(map[string][]ReservationSlot, len(tables))
	unassigned := make([]ReservationSlot, 0)

	for _, r := range reservations {
		slot := toReservationSlot(r, uc.durationMinutes)
		if r.IsAssigned() {
			byTable[*r.TableID] = append(byTable[*r.TableID], slot)
		} else {
			unassigned = append(unassigned, slot)
		}
	}

	response := &Response{
		Date:       req.Date,
		Tables:     make([]TableOccupancy, 0, len(tables)),
		Unassigned: unassigned,
		Total:      len(reservations),
	}
	for _, table := range tables {
		slots := byTable[table.ID]
		if slots == nil {
			slots = make([]ReservationSlot, 0)
		}
		response.Tables = append(response.Tables, TableOccupancy{
			ID:           table.ID,
			Name:         table.Name,
			Capacity:     table.Capacity,
			Reservations: slots,
		})
	}

	uc.logger.Info("Occupancy: date=%s, tables=%d, reservations=%d, unassigned=%d",
		req.Date.Format(domain.DateFormat), len(tables), len(reservations), len(unassigned))

	return response, nil
}

// toReservationSlot сжимает бронь до полей расписания
func toReservationSlot(r *domain.Reservation, durationMinutes int) ReservationSlot {
	slot := ReservationSlot{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		StartTime:    r.StartTime,
		PartySize:    r.PartySize,
		Status:       string(r.Status),
	}
	if window, err := scheduling.NewWindow(r.StartTime, durationMinutes); err == nil {
		slot.EndTime = window.End
	}
	return slot
}
