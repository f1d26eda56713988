package batch_assign

import (
	"context"
	"time"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetUnassignedByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	AssignTable(ctx context.Context, id int64, tableID string, status domain.ReservationStatus) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	List(ctx context.Context) ([]*domain.Table, error)
}

// Notifier интерфейс отправки уведомлений гостям
type Notifier interface {
	ReservationConfirmed(reservation *domain.Reservation, tableName string)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
