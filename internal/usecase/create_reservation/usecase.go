package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	"github.com/m04kA/CTRS-ReservationService/internal/scheduling"
	"github.com/m04kA/CTRS-ReservationService/pkg/txmanager"
)

// UseCase use case для создания брони стола
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	durationMinutes int
	policy          NoAvailabilityPolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	notifier Notifier,
	txManager TransactionManager,
	durationMinutes int,
	policy NoAvailabilityPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		durationMinutes: durationMinutes,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Подбор стола и запись выполняются в сериализуемой транзакции:
// параллельные запросы не могут получить один стол на пересекающиеся окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%s, date=%s, time=%s, party=%d",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Окно брони должно помещаться в день
	window, err := scheduling.NewWindow(req.StartTime, uc.durationMinutes)
	if err != nil {
		uc.logger.Warn("CreateReservation: window validation failed: %v", err)
		return nil, fmt.Errorf("%w: %s + %d min", ErrWindowOutOfDay, req.StartTime, uc.durationMinutes)
	}

	// Переменные для хранения результата
	var result *domain.Reservation
	var assignedTable *domain.Table

	// 4. Подбор стола и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем все столы зала
		tables, err := uc.tableRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list tables: %v", err)
			return fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
		}

		// 4.2. Получаем активные брони на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.3. Фильтруем столы по вместимости и свободности окна
		candidates, err := scheduling.AvailableTables(tables, reservations, req.StartTime, uc.durationMinutes, req.PartySize)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to compute available tables: %v", err)
			return fmt.Errorf("%w: failed to compute available tables: %v", ErrInternal, err)
		}

		// 4.4. Выбираем стол с минимальным запасом мест
		table := scheduling.SelectTable(candidates, req.PartySize)

		reservation := &domain.Reservation{
			CustomerName: req.CustomerName,
			Contact:      req.Contact,
			Date:         req.Date,
			StartTime:    req.StartTime,
			PartySize:    req.PartySize,
		}

		if table == nil {
			// 4.5. Свободного стола нет: поведение определяется политикой
			if uc.policy == PolicyReject {
				uc.logger.Warn("CreateReservation: no tables available for party=%d at %s, rejecting",
					req.PartySize, req.StartTime)
				return ErrNoTablesAvailable
			}

			uc.logger.Info("CreateReservation: no tables available for party=%d at %s, queueing as pending",
				req.PartySize, req.StartTime)
			reservation.Status = domain.StatusPending
		} else {
			uc.logger.Info("CreateReservation: selected table id=%s (capacity=%d) for party=%d",
				table.ID, table.Capacity, req.PartySize)
			reservation.TableID = &table.ID
			reservation.Status = domain.StatusConfirmed
		}

		// 4.6. Сохраняем бронь
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		assignedTable = table
		return nil
	})

	if err != nil {
		// Повторы сериализуемой транзакции исчерпаны: временная ошибка хранилища
		if errors.Is(err, txmanager.ErrSerializationFailed) {
			uc.logger.Error("CreateReservation: serialization retries exhausted: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d status=%s", result.ID, result.Status)

	// 5. Уведомляем гостя после фиксации транзакции
	if assignedTable != nil {
		uc.notifier.ReservationConfirmed(result, assignedTable.Name)
	} else {
		uc.notifier.ReservationPending(result)
	}

	// Конвертируем в response
	response := &Response{
		ID:           result.ID,
		CustomerName: result.CustomerName,
		Contact:      result.Contact,
		Date:         result.Date,
		StartTime:    result.StartTime,
		EndTime:      window.End,
		PartySize:    result.PartySize,
		TableID:      result.TableID,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}
	if assignedTable != nil {
		response.TableName = &assignedTable.Name
	}

	return response, nil
}
