//go:build unit

package db_test

import (
	"context"
	"errors"
	"testing"

	"vehicle-rental/internal/infra/db"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs   []*fakeTx
	err   error
	calls int
}

func (f *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if f.err != nil {
		return nil, f.err
	}
	tx := &fakeTx{}
	f.txs = append(f.txs, tx)
	f.calls++
	return tx, nil
}

func TestRunInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success: commits", func(t *testing.T) {
		b := &fakeBeginner{}
		got, err := db.RunInTx(ctx, b, func(sqlc.DBTX) (int, error) { return 7, nil })

		require.NoError(t, err)
		assert.Equal(t, 7, got)
		assert.True(t, b.txs[0].committed)
		assert.False(t, b.txs[0].rolledBack)
	})

	t.Run("error: fn failure rolls back", func(t *testing.T) {
		b := &fakeBeginner{}
		boom := errors.New("boom")
		_, err := db.RunInTx(ctx, b, func(sqlc.DBTX) (int, error) { return 0, boom })

		assert.ErrorIs(t, err, boom)
		assert.True(t, b.txs[0].rolledBack)
	})

	t.Run("error: begin failure is marked", func(t *testing.T) {
		b := &fakeBeginner{err: errors.New("pool closed")}
		_, err := db.RunInTx(ctx, b, func(sqlc.DBTX) (int, error) { return 0, nil })

		assert.True(t, errs.Is(err, db.ErrTransactionBegin))
	})
}

func TestRunInTxWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("success: serialization failure is retried", func(t *testing.T) {
		b := &fakeBeginner{}
		attempts := 0
		got, err := db.RunInTxWithRetry(ctx, b, 2, func(sqlc.DBTX) (string, error) {
			attempts++
			if attempts == 1 {
				return "", &pgconn.PgError{Code: "40001"}
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 2, b.calls)
	})

	t.Run("error: non-retryable errors return at once", func(t *testing.T) {
		b := &fakeBeginner{}
		_, err := db.RunInTxWithRetry(ctx, b, 3, func(sqlc.DBTX) (string, error) {
			return "", &pgconn.PgError{Code: "23505"}
		})

		require.Error(t, err)
		assert.Equal(t, 1, b.calls)
	})
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, db.IsRetryableError(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, db.IsRetryableError(errors.New("plain")))
}
