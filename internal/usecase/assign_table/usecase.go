package assign_table

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/CTRS-ReservationService/internal/infra/storage/cafetable"
	reservationRepo "github.com/m04kA/CTRS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/CTRS-ReservationService/internal/scheduling"
	"github.com/m04kA/CTRS-ReservationService/pkg/txmanager"
)

// UseCase use case для ручного назначения стола брони
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

// Execute выполняет use case назначения стола
// Администратор обходит эвристику подбора, но не инварианты: вместимость
// и свободность окна проверяются в той же сериализуемой транзакции,
// что и запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignTable: reservation_id=%d, table_id=%s", req.ReservationID, req.TableID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignTable: validation failed: %v", err)
		return nil, err
	}

	// Переменные для хранения результата
	var result *domain.Reservation
	var table *domain.Table
	var window scheduling.Window

	// 2. Проверки и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронь
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("AssignTable: reservation id=%d not found", req.ReservationID)
				return fmt.Errorf("%w: id %d", ErrReservationNotFound, req.ReservationID)
			}
			uc.logger.Error("AssignTable: failed to get reservation: %v", err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Отменённая бронь стол не получает
		if reservation.IsCancelled() {
			uc.logger.Warn("AssignTable: reservation id=%d is cancelled", req.ReservationID)
			return fmt.Errorf("%w: id %d", ErrReservationCancelled, req.ReservationID)
		}

		// 2.3. Получаем стол
		table, err = uc.tableRepo.GetByID(txCtx, req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("AssignTable: table id=%s not found", req.TableID)
				return fmt.Errorf("%w: id %s", ErrTableNotFound, req.TableID)
			}
			uc.logger.Error("AssignTable: failed to get table: %v", err)
			return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}

		// 2.4. Стол должен вмещать компанию
		if !table.Fits(reservation.PartySize) {
			uc.logger.Warn("AssignTable: table id=%s capacity=%d is too small for party=%d",
				table.ID, table.Capacity, reservation.PartySize)
			return fmt.Errorf("%w: capacity %d < party %d", ErrTableTooSmall, table.Capacity, reservation.PartySize)
		}

		window, err = scheduling.NewWindow(reservation.StartTime, uc.durationMinutes)
		if err != nil {
			uc.logger.Error("AssignTable: failed to build window for reservation id=%d: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to build window: %v", ErrInternal, err)
		}

		// 2.5. Получаем активные брони на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByDate(txCtx, reservation.Date)
		if err != nil {
			uc.logger.Error("AssignTable: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 2.6. Проверяем, что стол свободен в окне брони.
		// Сама бронь исключается из проверки: перенос подтверждённой брони
		// на другой стол не должен конфликтовать с её же текущим окном
		others := make([]*domain.Reservation, 0, len(reservations))
		for _, r := range reservations {
			if r.ID != reservation.ID {
				others = append(others, r)
			}
		}

		free, err := scheduling.AvailableTables(
			[]*domain.Table{table}, others, reservation.StartTime, uc.durationMinutes, reservation.PartySize)
		if err != nil {
			uc.logger.Error("AssignTable: failed to check table availability: %v", err)
			return fmt.Errorf("%w: failed to check table availability: %v", ErrInternal, err)
		}
		if len(free) == 0 {
			uc.logger.Warn("AssignTable: table id=%s is occupied at %s on %s",
				table.ID, reservation.StartTime, reservation.Date.Format(domain.DateFormat))
			return fmt.Errorf("%w: table %s at %s", ErrTableConflict, table.ID, reservation.StartTime)
		}

		// 2.7. Назначаем стол и подтверждаем бронь
		if err := uc.reservationRepo.AssignTable(txCtx, reservation.ID, table.ID, domain.StatusConfirmed); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("%w: id %d", ErrReservationNotFound, req.ReservationID)
			}
			uc.logger.Error("AssignTable: failed to assign table: %v", err)
			return fmt.Errorf("%w: failed to assign table: %v", ErrInternal, err)
		}

		reservation.TableID = &table.ID
		reservation.Status = domain.StatusConfirmed
		result = reservation
		return nil
	})

	if err != nil {
		// Повторы сериализуемой транзакции исчерпаны: временная ошибка хранилища
		if errors.Is(err, txmanager.ErrSerializationFailed) {
			uc.logger.Error("AssignTable: serialization retries exhausted: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("AssignTable: reservation id=%d confirmed at table id=%s", result.ID, table.ID)

	// 3. Уведомляем гостя после фиксации транзакции
	uc.notifier.ReservationConfirmed(result, table.Name)

	return &Response{
		ID:           result.ID,
		CustomerName: result.CustomerName,
		Contact:      result.Contact,
		Date:         result.Date,
		StartTime:    result.StartTime,
		EndTime:      window.End,
		PartySize:    result.PartySize,
		TableID:      table.ID,
		TableName:    table.Name,
		Status:       string(result.Status),
	}, nil
}
