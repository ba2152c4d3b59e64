package mdm

import (
	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeCatalog = "Catalog"

// Event type constants
const (
	EventTypeCatalogCreated = "CatalogCreated"
	EventTypeCatalogUpdated = "CatalogUpdated"
	EventTypeCatalogDeleted = "CatalogDeleted"
)

// CatalogCreatedEvent is published when a new catalog is created
type CatalogCreatedEvent struct {
	shared.BaseDomainEvent
	CatalogID uuid.UUID `json:"catalog_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	RegionID  uuid.UUID `json:"region_id"`
	ChannelID uuid.UUID `json:"channel_id"`
}

// NewCatalogCreatedEvent creates a new CatalogCreatedEvent
func NewCatalogCreatedEvent(catalog *Catalog) *CatalogCreatedEvent {
	return &CatalogCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCatalogCreated, AggregateTypeCatalog, catalog.ID, catalog.TenantID),
		CatalogID:       catalog.ID,
		Code:            catalog.Code,
		Name:            catalog.Name,
		RegionID:        catalog.RegionID,
		ChannelID:       catalog.ChannelID,
	}
}

// CatalogUpdatedEvent is published when a catalog is updated
type CatalogUpdatedEvent struct {
	shared.BaseDomainEvent
	CatalogID uuid.UUID     `json:"catalog_id"`
	Code      string        `json:"code"`
	Name      string        `json:"name"`
	IsDefault bool          `json:"is_default"`
	Status    CatalogStatus `json:"status"`
}

// NewCatalogUpdatedEvent creates a new CatalogUpdatedEvent
func NewCatalogUpdatedEvent(catalog *Catalog) *CatalogUpdatedEvent {
	return &CatalogUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCatalogUpdated, AggregateTypeCatalog, catalog.ID, catalog.TenantID),
		CatalogID:       catalog.ID,
		Code:            catalog.Code,
		Name:            catalog.Name,
		IsDefault:       catalog.IsDefault,
		Status:          catalog.Status,
	}
}

// CatalogDeletedEvent is published when a catalog is deleted
type CatalogDeletedEvent struct {
	shared.BaseDomainEvent
	CatalogID uuid.UUID `json:"catalog_id"`
	Code      string    `json:"code"`
}

// NewCatalogDeletedEvent creates a new CatalogDeletedEvent
func NewCatalogDeletedEvent(catalog *Catalog) *CatalogDeletedEvent {
	return &CatalogDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCatalogDeleted, AggregateTypeCatalog, catalog.ID, catalog.TenantID),
		CatalogID:       catalog.ID,
		Code:            catalog.Code,
	}
}
