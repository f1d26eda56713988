package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTRS-ReservationService/pkg/dbmetrics"
)

type fakeTx struct {
	commits   int
	rollbacks int
}

func (t *fakeTx) ExecContext(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(_ context.Context, _ string, _ ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(_ context.Context, _ string, _ ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeDB struct {
	begins  int
	lastTx  *fakeTx
	lastOpt *sql.TxOptions
}

func (db *fakeDB) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	db.begins++
	db.lastTx = &fakeTx{}
	db.lastOpt = opts
	return db.lastTx, nil
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	db := &fakeDB{}
	manager := NewTransactionManager(db)

	var sawTxInContext bool
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		sawTxInContext = dbmetrics.IsInTransaction(ctx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, sawTxInContext)
	assert.Equal(t, 1, db.begins)
	assert.Equal(t, 1, db.lastTx.commits)
	assert.Equal(t, 0, db.lastTx.rollbacks)
	require.NotNil(t, db.lastOpt)
	assert.Equal(t, sql.LevelSerializable, db.lastOpt.Isolation)
}

func TestDoSerializable_RollsBackAndReturnsFnError(t *testing.T) {
	db := &fakeDB{}
	manager := NewTransactionManager(db)

	wantErr := errors.New("no capacity")
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, db.begins, "non-retryable errors must not be retried")
	assert.Equal(t, 1, db.lastTx.rollbacks)
	assert.Equal(t, 0, db.lastTx.commits)
}

func TestDoSerializable_RetriesSerializationFailures(t *testing.T) {
	db := &fakeDB{}
	manager := NewTransactionManager(db)

	serializationErr := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return serializationErr
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, db.begins)
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	db := &fakeDB{}
	manager := NewTransactionManager(db)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return &pq.Error{Code: "40001"}
	})

	require.ErrorIs(t, err, ErrSerializationFailed)
	assert.Equal(t, maxAttempts, attempts)
}

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "pq serialization failure", err: &pq.Error{Code: "40001"}, want: true},
		{name: "pq deadlock", err: &pq.Error{Code: "40P01"}, want: true},
		{name: "pq other code", err: &pq.Error{Code: "23505"}, want: false},
		{
			name: "wrapped text without pq chain",
			err:  fmt.Errorf("storage: execute query: %v", errors.New("pq: could not serialize access due to read/write dependencies among transactions")),
			want: true,
		},
		{
			name: "deadlock text without pq chain",
			err:  fmt.Errorf("storage: execute query: %v", errors.New("pq: deadlock detected")),
			want: true,
		},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsRetryableError(tc.err))
		})
	}
}
