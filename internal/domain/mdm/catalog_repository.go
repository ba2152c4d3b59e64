package mdm

import (
	"context"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// CatalogRepository defines the interface for catalog persistence
type CatalogRepository interface {
	// FindByID finds a catalog by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Catalog, error)

	// FindByIDForTenant finds a catalog by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Catalog, error)

	// FindByCode finds a catalog by code within a tenant, region, and channel
	FindByCode(ctx context.Context, tenantID, regionID, channelID uuid.UUID, code string) (*Catalog, error)

	// FindAllForTenant finds all catalogs for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Catalog, error)

	// FindDefault finds the default catalog for a region+channel pair
	FindDefault(ctx context.Context, tenantID, regionID, channelID uuid.UUID) (*Catalog, error)

	// ClearDefault clears the default flag for all catalogs in a region+channel pair
	ClearDefault(ctx context.Context, tenantID, regionID, channelID uuid.UUID) error

	// Save creates or updates a catalog
	Save(ctx context.Context, catalog *Catalog) error

	// Delete deletes a catalog. Pending domain events on the aggregate are
	// written to the outbox in the same transaction.
	Delete(ctx context.Context, catalog *Catalog) error

	// CountForTenant counts catalogs for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a catalog code exists within a tenant, region, and channel
	ExistsByCode(ctx context.Context, tenantID, regionID, channelID uuid.UUID, code string) (bool, error)
}

// ChannelRepository defines the interface for sales channel persistence
type ChannelRepository interface {
	// FindByID finds a channel by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Channel, error)

	// FindByCode finds a channel by code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Channel, error)

	// FindAllForTenant finds all channels for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Channel, error)

	// Save creates or updates a channel
	Save(ctx context.Context, channel *Channel) error
}
