package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/CTRS-ReservationService/pkg/dbmetrics"
)

const (
	maxAttempts    = 3
	retryBaseDelay = 20 * time.Millisecond
)

// ErrSerializationFailed конфликт сериализации не ушёл после всех повторов.
// На границе API транслируется в "хранилище временно занято, повторите запрос".
var ErrSerializationFailed = errors.New("txmanager: serialization failure, retries exhausted")

// DB источник транзакций; реализуется *dbmetrics.DB
type DB interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакций БД.
// Транзакция кладётся в контекст, репозитории подхватывают её через dbmetrics.GetExecutor.
type TransactionManager struct {
	db DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE.
// Конфликты сериализации (SQLSTATE 40001) и deadlock (40P01) повторяются
// с нарастающей задержкой; после maxAttempts попыток возвращается
// ErrSerializationFailed.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	delay := retryBaseDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = m.run(ctx, opts, fn)
		if lastErr == nil {
			return nil
		}
		if !IsRetryableError(lastErr) {
			return lastErr
		}

		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return fmt.Errorf("%w: %v", ErrSerializationFailed, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}

// IsRetryableError распознает конфликты сериализации и deadlock.
// Репозитории оборачивают ошибки через %v и теряют исходный *pq.Error,
// поэтому дополнительно проверяется текст сообщения postgres.
func IsRetryableError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}

	msg := err.Error()
	return strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "deadlock detected")
}
