package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/babyheaven/backend/internal/domain/catalog"
	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
	"github.com/babyheaven/backend/internal/domain/trade"
)

// newMockSalesOrderRepository creates a GormSalesOrderRepository with a mocked SQL connection
func newMockSalesOrderRepository(t *testing.T) (*GormSalesOrderRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormSalesOrderRepository(gormDB), mock, mockDB
}

// newDraftOrder builds an unplaced order with a single line item
func newDraftOrder(t *testing.T, product *catalog.Product, quantity int) *trade.SalesOrder {
	t.Helper()

	order, err := trade.NewSalesOrder(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), trade.PaymentMethodCash)
	require.NoError(t, err)

	_, err = order.AddItem(product.ID, product.Name, quantity, valueobject.NewMoneyHNL(product.SellingPrice))
	require.NoError(t, err)

	return order
}

func newStockedProduct(t *testing.T, name string, inventory int) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(
		name,
		valueobject.NewMoneyHNLFromFloat(100),
		valueobject.NewMoneyHNLFromFloat(120),
		valueobject.NewMoneyHNLFromFloat(80),
		inventory,
	)
	require.NoError(t, err)
	product.ClearDomainEvents()
	return product
}

func TestGormSalesOrderRepository_Place(t *testing.T) {
	t.Run("numbers, persists, and decrements inventory in one transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesOrderRepository(t)
		defer mockDB.Close()

		product := newStockedProduct(t, "Baby Bottle", 10)
		order := newDraftOrder(t, product, 2)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "sales_orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))
		mock.ExpectExec(`INSERT INTO "sales_orders"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO "sales_order_items"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`UPDATE "products" SET "inventory"=inventory - \$1 WHERE id = \$2`).
			WithArgs(2, product.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Place(context.Background(), order)

		assert.NoError(t, err)
		assert.Equal(t, "BO-000042", order.OrderNumber, "number derives from the in-transaction count")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back everything when a line references a missing product", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesOrderRepository(t)
		defer mockDB.Close()

		product := newStockedProduct(t, "Pacifier", 5)
		order := newDraftOrder(t, product, 1)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "sales_orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`INSERT INTO "sales_orders"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO "sales_order_items"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`UPDATE "products" SET "inventory"=inventory - \$1 WHERE id = \$2`).
			WithArgs(1, product.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Place(context.Background(), order)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet(), "the rollback must be issued")
	})

	t.Run("rolls back when the order insert fails", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesOrderRepository(t)
		defer mockDB.Close()

		product := newStockedProduct(t, "Bib", 3)
		order := newDraftOrder(t, product, 1)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "sales_orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		mock.ExpectExec(`INSERT INTO "sales_orders"`).
			WillReturnError(gorm.ErrInvalidData)
		mock.ExpectRollback()

		err := repo.Place(context.Background(), order)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSalesOrderRepository_FindByOrderNumber(t *testing.T) {
	t.Run("returns not found for unknown number", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "sales_orders" WHERE order_number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("BO-999999", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		order, err := repo.FindByOrderNumber(context.Background(), "BO-999999")

		assert.Nil(t, order)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
