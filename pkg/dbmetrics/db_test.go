package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/metrics"
)

func TestGetExecutor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)
	ctx := context.Background()

	assert.Equal(t, DBExecutor(wrapped), GetExecutor(ctx, wrapped))
	assert.False(t, IsInTransaction(ctx))

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, wrapped))
}

func TestDB_ObservesQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	wrapped := Wrap(db, m)

	mock.ExpectExec("DELETE FROM blocked_slots").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM blocked_slots WHERE id = $1", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("  SELECT id FROM reservations"))
	assert.Equal(t, "insert", operationOf("INSERT INTO reservations"))
	assert.Equal(t, "unknown", operationOf(""))
}
