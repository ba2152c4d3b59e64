package mdm

import (
	"context"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDForTenant finds a product by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product by its SKU within a tenant
	FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*Product, error)

	// FindAllForTenant finds all products for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindByStatus finds products by status for a tenant
	FindByStatus(ctx context.Context, tenantID uuid.UUID, status ProductStatus, filter shared.Filter) ([]Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product. Pending domain events on the aggregate are
	// written to the outbox in the same transaction.
	Delete(ctx context.Context, product *Product) error

	// CountForTenant counts products for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus returns product counts grouped by status
	CountByStatus(ctx context.Context, tenantID uuid.UUID) (map[ProductStatus]int64, error)

	// CountByType returns product counts grouped by product type
	CountByType(ctx context.Context, tenantID uuid.UUID) (map[string]int64, error)

	// DistinctTypes returns the distinct product types in use
	DistinctTypes(ctx context.Context, tenantID uuid.UUID) ([]string, error)

	// ExistsBySKU checks if a product with the given SKU exists in the tenant
	ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error)
}
