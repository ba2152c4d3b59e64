package mdm

import (
	"context"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/mdm"
)

// ProductCache is the read-optimized store active products are projected
// into. Sync and Remove failures are logged, never surfaced to callers:
// the database remains the source of truth.
type ProductCache interface {
	// Sync writes the product's current state to the cache
	Sync(ctx context.Context, product *mdm.Product) error

	// Remove deletes the product from the cache
	Remove(ctx context.Context, tenantID, productID uuid.UUID) error
}
