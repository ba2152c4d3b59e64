package mdm

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mdm/backend/internal/domain/shared"
)

// CatalogProductListing is a catalog entry joined with live product data
type CatalogProductListing struct {
	CatalogProduct
	ProductSKU  string          `gorm:"column:product_sku"`
	ProductName string          `gorm:"column:product_name"`
	BasePrice   decimal.Decimal `gorm:"column:base_price"`
}

// CatalogProductRepository defines the interface for catalog entry persistence
type CatalogProductRepository interface {
	// FindByID finds an entry by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CatalogProduct, error)

	// FindByPair finds an entry by its catalog+product composite key
	FindByPair(ctx context.Context, tenantID, catalogID, productID uuid.UUID) (*CatalogProduct, error)

	// FindByCatalog finds entries for a catalog joined with product data.
	// The filter's search term matches the joined product name and SKU.
	FindByCatalog(ctx context.Context, tenantID, catalogID uuid.UUID, filter shared.Filter) ([]CatalogProductListing, error)

	// CountByCatalog counts entries for a catalog matching the filter
	CountByCatalog(ctx context.Context, tenantID, catalogID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByProduct counts catalogs a product is assigned to
	CountByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error)

	// Save creates or updates an entry
	Save(ctx context.Context, entry *CatalogProduct) error

	// Delete removes an entry. Pending domain events on the aggregate are
	// written to the outbox in the same transaction.
	Delete(ctx context.Context, entry *CatalogProduct) error

	// ExistsByPair checks if an entry exists for the composite key
	ExistsByPair(ctx context.Context, tenantID, catalogID, productID uuid.UUID) (bool, error)
}
