package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennizCann/RandevuApp-sub000/pkg/metrics"
)

func TestDB_ObservesQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.NewWithRegisterer(prometheus.NewRegistry(), "test")
	stop := make(chan struct{})
	defer close(stop)
	db := WrapWithDefault(sqlDB, m, "main", stop)

	mock.ExpectExec("DELETE FROM appointments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM appointments").WillReturnError(assert.AnError)

	ctx := WithOperation(context.Background(), "appointment.Delete")
	_, err = db.ExecContext(ctx, "DELETE FROM appointments WHERE id = $1", "a-1")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "DELETE FROM appointments WHERE id = $1", "a-2")
	require.Error(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("appointment.Delete")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationFrom_Default(t *testing.T) {
	assert.Equal(t, "unknown", OperationFrom(context.Background()))
}
