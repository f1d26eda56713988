package simpletxmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTRS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/CTRS-ReservationService/pkg/txmanager"
)

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	manager := NewTransactionManager(db)

	var sawTxInContext bool
	err = manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		sawTxInContext = dbmetrics.IsInTransaction(ctx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, sawTxInContext)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	manager := NewTransactionManager(db)

	wantErr := errors.New("validation failed")
	err = manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Две неудачные попытки и успешная третья
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	manager := NewTransactionManager(db)

	attempts := 0
	err = manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("pq: could not serialize access due to concurrent update")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_SurfacesSentinelAfterRetries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < maxAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	manager := NewTransactionManager(db)

	err = manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return errors.New("pq: could not serialize access due to concurrent update")
	})

	require.ErrorIs(t, err, txmanager.ErrSerializationFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
