package sequence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	domainseq "github.com/ims/backend/internal/domain/shared/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestScanGenerator_Next(t *testing.T) {
	t.Run("increments the highest stored number", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT "number" FROM "sales_orders" WHERE number LIKE \$1 ORDER BY number DESC LIMIT .*`).
			WithArgs("SO-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"number"}).AddRow("SO-00041"))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "sales_orders" WHERE number = \$1`).
			WithArgs("SO-00042").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		number, err := NewScanGenerator(db).Next(context.Background(), domainseq.SalesOrders)

		require.NoError(t, err)
		assert.Equal(t, "SO-00042", number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counter past the pad width skips stored numbers", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		// "PO-999" sorts above "PO-1000" as a string, so the scan
		// yields a stale maximum and the candidate already exists
		mock.ExpectQuery(`SELECT "number" FROM "purchase_orders" WHERE number LIKE \$1 ORDER BY number DESC LIMIT .*`).
			WithArgs("PO-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"number"}).AddRow("PO-999"))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "purchase_orders" WHERE number = \$1`).
			WithArgs("PO-1000").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "purchase_orders" WHERE number = \$1`).
			WithArgs("PO-1001").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		number, err := NewScanGenerator(db).Next(context.Background(), domainseq.PurchaseOrders)

		require.NoError(t, err)
		assert.Equal(t, "PO-1001", number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table starts at one", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT "number" FROM "purchase_orders" WHERE number LIKE \$1 ORDER BY number DESC LIMIT .*`).
			WithArgs("PO-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"number"}))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "purchase_orders" WHERE number = \$1`).
			WithArgs("PO-001").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		number, err := NewScanGenerator(db).Next(context.Background(), domainseq.PurchaseOrders)

		require.NoError(t, err)
		assert.Equal(t, "PO-001", number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unparseable latest number restarts at one", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT "number" FROM "delivery_orders" WHERE number LIKE \$1 ORDER BY number DESC LIMIT .*`).
			WithArgs("DO-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"number"}).AddRow("DO-legacy"))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "delivery_orders" WHERE number = \$1`).
			WithArgs("DO-00001").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		number, err := NewScanGenerator(db).Next(context.Background(), domainseq.DeliveryOrders)

		require.NoError(t, err)
		assert.Equal(t, "DO-00001", number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown class", func(t *testing.T) {
		db, _, mockDB := newMockDB(t)
		defer mockDB.Close()

		_, err := NewScanGenerator(db).Next(context.Background(), domainseq.Class{Name: "invoice", Prefix: "IN-"})

		assert.Error(t, err)
	})
}

func TestTimestampGenerator_Next(t *testing.T) {
	gen := NewTimestampGenerator()
	gen.now = func() time.Time {
		return time.Date(2026, 8, 31, 9, 30, 45, 0, time.UTC)
	}

	number, err := gen.Next(context.Background(), domainseq.SalesReturns)

	require.NoError(t, err)
	assert.Equal(t, "SR-20260831093045", number)
}
