package batch_assign

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/CTRS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/CTRS-ReservationService/internal/scheduling"
)

// UseCase use case для пакетного назначения столов ожидающим броням
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	notifier        Notifier
	txManager       TransactionManager
	durationMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	notifier Notifier,
	txManager TransactionManager,
	durationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		notifier:        notifier,
		txManager:       txManager,
		durationMinutes: durationMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case пакетного назначения
// Очередь обрабатывается в порядке создания броней, каждая бронь в своей
// сериализуемой транзакции: сбой в середине пакета не откатывает уже
// подтверждённые назначения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BatchAssign: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("BatchAssign: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Снимок очереди ожидающих броней (по времени создания, FCFS)
	pending, err := uc.reservationRepo.GetUnassignedByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("BatchAssign: failed to get pending reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get pending reservations: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:    req.Date,
		Pending: len(pending),
		Results: make([]ItemResult, 0, len(pending)),
	}

	// 3. Обрабатываем очередь по одной брони
	for _, candidate := range pending {
		item, confirmed := uc.assignOne(ctx, candidate.ID)
		resp.Results = append(resp.Results, item)

		if item.Outcome == OutcomeAssigned {
			resp.Assigned++
			// Уведомляем после фиксации транзакции этой брони
			uc.notifier.ReservationConfirmed(confirmed, *item.TableName)
			continue
		}

		if item.Outcome == OutcomeFailed {
			// Хранилище нездорово: остаток очереди не трогаем, уже сделанные
			// назначения зафиксированы, администратор повторит запуск
			uc.logger.Error("BatchAssign: aborting batch after failure on reservation id=%d", candidate.ID)
			return resp, nil
		}
	}

	uc.logger.Info("BatchAssign: date=%s, pending=%d, assigned=%d",
		req.Date.Format(domain.DateFormat), resp.Pending, resp.Assigned)

	return resp, nil
}

// assignOne обрабатывает одну бронь в собственной сериализуемой транзакции.
// Статус перечитывается внутри транзакции: между снимком очереди и обработкой
// бронь могла быть отменена или уже получить стол
func (uc *UseCase) assignOne(ctx context.Context, id int64) (ItemResult, *domain.Reservation) {
	var result *domain.Reservation
	var assignedTable *domain.Table
	var skipped, noCapacity bool

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Перечитываем бронь
		reservation, err := uc.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				skipped = true
				return nil
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Бронь всё ещё ждёт стол?
		if reservation.Status != domain.StatusPending || reservation.IsAssigned() {
			skipped = true
			return nil
		}

		// 3. Получаем все столы зала
		tables, err := uc.tableRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
		}

		// 4. Получаем активные брони на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByDate(txCtx, reservation.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5. Фильтр и эвристика, те же, что при создании брони
		candidates, err := scheduling.AvailableTables(
			tables, reservations, reservation.StartTime, uc.durationMinutes, reservation.PartySize)
		if err != nil {
			return fmt.Errorf("%w: failed to compute available tables: %v", ErrInternal, err)
		}

		table := scheduling.SelectTable(candidates, reservation.PartySize)
		if table == nil {
			// Свободного стола нет: бронь остаётся в ожидании
			noCapacity = true
			return nil
		}

		// 6. Назначаем стол и подтверждаем бронь
		if err := uc.reservationRepo.AssignTable(txCtx, reservation.ID, table.ID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: failed to assign table: %v", ErrInternal, err)
		}

		reservation.TableID = &table.ID
		reservation.Status = domain.StatusConfirmed
		result = reservation
		assignedTable = table
		return nil
	})

	item := ItemResult{ReservationID: id}

	switch {
	case err != nil:
		// Включая исчерпанные повторы сериализации
		uc.logger.Error("BatchAssign: reservation id=%d failed: %v", id, err)
		item.Outcome = OutcomeFailed
	case skipped:
		uc.logger.Info("BatchAssign: reservation id=%d skipped, no longer pending", id)
		item.Outcome = OutcomeSkipped
	case noCapacity:
		uc.logger.Info("BatchAssign: reservation id=%d left pending, no table available", id)
		item.Outcome = OutcomeNoCapacity
	default:
		uc.logger.Info("BatchAssign: reservation id=%d confirmed at table id=%s", id, assignedTable.ID)
		item.Outcome = OutcomeAssigned
		item.TableID = &assignedTable.ID
		item.TableName = &assignedTable.Name
		return item, result
	}

	return item, nil
}
