package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mdm/backend/internal/domain/shared"
)

// newMockCatalogProductRepository creates a GormCatalogProductRepository with a mocked SQL connection
func newMockCatalogProductRepository(t *testing.T) (*GormCatalogProductRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormCatalogProductRepository(gormDB), mock, mockDB
}

func TestGormCatalogProductRepository_FindByCatalog(t *testing.T) {
	t.Run("joins product columns into the listing", func(t *testing.T) {
		repo, mock, mockDB := newMockCatalogProductRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		catalogID := uuid.New()
		productID := uuid.New()
		entryID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"id", "tenant_id", "catalog_id", "product_id", "pricing_mode",
			"product_sku", "product_name", "base_price",
		}).AddRow(entryID, tenantID, catalogID, productID, "discount", "WIDGET-1", "Widget", decimal.NewFromInt(100))

		mock.ExpectQuery(`SELECT catalog_products\.\*, products\.sku AS product_sku, products\.name AS product_name, products\.base_price AS base_price FROM "catalog_products" JOIN products ON products\.id = catalog_products\.product_id WHERE catalog_products\.tenant_id = \$1 AND catalog_products\.catalog_id = \$2 ORDER BY products\.name ASC LIMIT .*`).
			WithArgs(tenantID, catalogID, 20).
			WillReturnRows(rows)

		filter := shared.Filter{Page: 1, Limit: 20}
		listings, err := repo.FindByCatalog(context.Background(), tenantID, catalogID, filter)

		assert.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "WIDGET-1", listings[0].ProductSKU)
		assert.Equal(t, "Widget", listings[0].ProductName)
		assert.True(t, listings[0].BasePrice.Equal(decimal.NewFromInt(100)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCatalogProductRepository_FindByPair(t *testing.T) {
	t.Run("returns ErrNotFound for an unassigned product", func(t *testing.T) {
		repo, mock, mockDB := newMockCatalogProductRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		catalogID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "catalog_products" WHERE tenant_id = \$1 AND catalog_id = \$2 AND product_id = \$3 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, catalogID, productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		entry, err := repo.FindByPair(context.Background(), tenantID, catalogID, productID)

		assert.Nil(t, entry)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCatalogProductRepository_CountByProduct(t *testing.T) {
	t.Run("counts catalog assignments of a product", func(t *testing.T) {
		repo, mock, mockDB := newMockCatalogProductRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "catalog_products" WHERE tenant_id = \$1 AND product_id = \$2`).
			WithArgs(tenantID, productID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		count, err := repo.CountByProduct(context.Background(), tenantID, productID)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
