package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/CTRS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/CTRS-ReservationService/pkg/txmanager"
)

// UseCase use case для отмены брони
type UseCase struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case отмены брони
// Проверка статуса и запись выполняются в одной сериализуемой транзакции,
// чтобы параллельная отмена или назначение стола не потерялись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: id=%d", req.ReservationID)

	// 1. Валидация входных данных
	if req.ReservationID <= 0 {
		uc.logger.Warn("CancelReservation: invalid reservation id=%d", req.ReservationID)
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.Contact != nil && *req.Contact == "" {
		uc.logger.Warn("CancelReservation: empty contact for id=%d", req.ReservationID)
		return nil, fmt.Errorf("%w: contact must not be empty", ErrInvalidInput)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 2. Проверка и отмена в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронь
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CancelReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Публичная отмена: контакт должен совпадать.
		// Чужая бронь неотличима от несуществующей, чтобы не раскрывать данные гостей.
		if req.Contact != nil && reservation.Contact != *req.Contact {
			uc.logger.Warn("CancelReservation: contact mismatch for reservation id=%d", req.ReservationID)
			return ErrReservationNotFound
		}

		// 2.3. Повторная отмена запрещена
		if !reservation.CanBeCancelled() {
			uc.logger.Warn("CancelReservation: reservation id=%d is already cancelled", req.ReservationID)
			return ErrAlreadyCancelled
		}

		// 2.4. Отменяем бронь
		if err := uc.reservationRepo.Cancel(txCtx, req.ReservationID); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to cancel reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
		}

		reservation.Status = domain.StatusCancelled
		result = reservation
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailed) {
			uc.logger.Error("CancelReservation: serialization retries exhausted: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("CancelReservation: successfully cancelled reservation id=%d", result.ID)

	// 3. Уведомляем гостя после фиксации транзакции
	uc.notifier.ReservationCancelled(result)

	return &Response{
		ID:           result.ID,
		CustomerName: result.CustomerName,
		Contact:      result.Contact,
		Date:         result.Date,
		StartTime:    result.StartTime,
		PartySize:    result.PartySize,
		TableID:      result.TableID,
		Status:       string(result.Status),
	}, nil
}
