package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewTransactionManager(dbmetrics.Wrap(db, nil)), mock
}

func TestDoSerializable_Commits(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var inTx bool
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		inTx = dbmetrics.IsInTransaction(ctx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, inTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("slot taken")
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_SerializationFailureOnCommit(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})

	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrSerialization)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_NestedCallJoinsOuterTransaction(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return mgr.DoSerializable(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginFailure(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not be called")
		return nil
	})

	assert.ErrorIs(t, err, ErrTransaction)
}
