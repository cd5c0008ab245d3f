package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/billing/backend/internal/domain/billing"
	"github.com/billing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockInvoiceRepository creates a GormInvoiceRepository with a mocked SQL connection
func newMockInvoiceRepository(t *testing.T) (*GormInvoiceRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormInvoiceRepository(gormDB), mock, mockDB
}

func TestGormInvoiceRepository_FindAll(t *testing.T) {
	t.Run("returns invoices ordered by id", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		addDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}).
			AddRow(int64(1), "apple", decimal.NewFromInt(100), false, addDate, nil).
			AddRow(int64(2), "ibm", decimal.NewFromInt(200), true, addDate, addDate)

		mock.ExpectQuery(`SELECT \* FROM "invoices" ORDER BY id`).
			WillReturnRows(rows)

		invoices, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		require.Len(t, invoices, 2)
		assert.Equal(t, int64(1), invoices[0].ID)
		assert.Equal(t, "apple", invoices[0].CompCode)
		assert.True(t, invoices[1].Paid)
		require.NotNil(t, invoices[1].PaidDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_FindByID(t *testing.T) {
	t.Run("finds existing invoice", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		addDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}).
			AddRow(int64(7), "apple", decimal.NewFromInt(300), false, addDate, nil)

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnRows(rows)

		invoice, err := repo.FindByID(context.Background(), 7)

		assert.NoError(t, err)
		require.NotNil(t, invoice)
		assert.Equal(t, int64(7), invoice.ID)
		assert.Nil(t, invoice.PaidDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing invoice", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(99), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		invoice, err := repo.FindByID(context.Background(), 99)

		assert.Nil(t, invoice)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_FindByIDWithCompany(t *testing.T) {
	t.Run("loads invoice and its company", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		addDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		invoiceRows := sqlmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}).
			AddRow(int64(7), "apple", decimal.NewFromInt(300), false, addDate, nil)
		companyRows := sqlmock.NewRows([]string{"code", "name", "description"}).
			AddRow("apple", "Apple", "Maker of OSX.")

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnRows(invoiceRows)
		mock.ExpectQuery(`SELECT \* FROM "companies" WHERE "companies"\."code" = \$1`).
			WithArgs("apple").
			WillReturnRows(companyRows)

		invoice, company, err := repo.FindByIDWithCompany(context.Background(), 7)

		assert.NoError(t, err)
		require.NotNil(t, invoice)
		require.NotNil(t, company)
		assert.Equal(t, "apple", invoice.CompCode)
		assert.Equal(t, "Apple", company.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing invoice", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(99), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		invoice, company, err := repo.FindByIDWithCompany(context.Background(), 99)

		assert.Nil(t, invoice)
		assert.Nil(t, company)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_FindIDsByCompany(t *testing.T) {
	t.Run("returns invoice ids for company", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id"}).
			AddRow(int64(1)).
			AddRow(int64(3))

		mock.ExpectQuery(`SELECT "id" FROM "invoices" WHERE comp_code = \$1 ORDER BY id`).
			WithArgs("apple").
			WillReturnRows(rows)

		ids, err := repo.FindIDsByCompany(context.Background(), "apple")

		assert.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_CountByCompany(t *testing.T) {
	t.Run("counts invoices for company", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" WHERE comp_code = \$1`).
			WithArgs("apple").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountByCompany(context.Background(), "apple")

		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_Create(t *testing.T) {
	t.Run("inserts invoice and backfills id", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		addDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`INSERT INTO "invoices"`).
			WithArgs("apple", decimal.NewFromInt(100), false, addDate, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

		invoice := &billing.Invoice{
			CompCode: "apple",
			Amount:   decimal.NewFromInt(100),
			AddDate:  addDate,
		}
		err := repo.Create(context.Background(), invoice)

		assert.NoError(t, err)
		assert.Equal(t, int64(5), invoice.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_UpdateLocked(t *testing.T) {
	t.Run("applies changes under a row lock", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		addDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		paidAt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}).
			AddRow(int64(7), "apple", decimal.NewFromInt(100), false, addDate, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(int64(7), 1).
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE "invoices" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		invoice, err := repo.UpdateLocked(context.Background(), 7, func(inv *billing.Invoice) error {
			inv.ApplyPayment(true, paidAt)
			return nil
		})

		assert.NoError(t, err)
		require.NotNil(t, invoice)
		assert.True(t, invoice.Paid)
		require.NotNil(t, invoice.PaidDate)
		assert.Equal(t, paidAt, *invoice.PaidDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when invoice is missing", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(int64(99), 1).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectRollback()

		invoice, err := repo.UpdateLocked(context.Background(), 99, func(inv *billing.Invoice) error {
			return nil
		})

		assert.Nil(t, invoice)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the apply function fails", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		addDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}).
			AddRow(int64(7), "apple", decimal.NewFromInt(100), false, addDate, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(int64(7), 1).
			WillReturnRows(rows)
		mock.ExpectRollback()

		invoice, err := repo.UpdateLocked(context.Background(), 7, func(inv *billing.Invoice) error {
			return inv.SetAmount(decimal.NewFromInt(-5))
		})

		assert.Nil(t, invoice)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_Delete(t *testing.T) {
	t.Run("deletes existing invoice", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "invoices" WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 7)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "invoices" WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
