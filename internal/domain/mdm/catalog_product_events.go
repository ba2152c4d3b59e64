package mdm

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mdm/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeCatalogProduct = "CatalogProduct"

// Event type constants
const (
	EventTypeCatalogProductAdded          = "CatalogProductAdded"
	EventTypeCatalogProductPricingChanged = "CatalogProductPricingChanged"
	EventTypeCatalogProductRemoved        = "CatalogProductRemoved"
)

// CatalogProductAddedEvent is published when a product is added to a catalog
type CatalogProductAddedEvent struct {
	shared.BaseDomainEvent
	CatalogID uuid.UUID `json:"catalog_id"`
	ProductID uuid.UUID `json:"product_id"`
}

// NewCatalogProductAddedEvent creates a new CatalogProductAddedEvent
func NewCatalogProductAddedEvent(cp *CatalogProduct) *CatalogProductAddedEvent {
	return &CatalogProductAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCatalogProductAdded, AggregateTypeCatalogProduct, cp.ID, cp.TenantID),
		CatalogID:       cp.CatalogID,
		ProductID:       cp.ProductID,
	}
}

// CatalogProductPricingChangedEvent is published when an entry's pricing changes
type CatalogProductPricingChangedEvent struct {
	shared.BaseDomainEvent
	CatalogID          uuid.UUID        `json:"catalog_id"`
	ProductID          uuid.UUID        `json:"product_id"`
	PricingMode        PricingMode      `json:"pricing_mode"`
	OverridePrice      *decimal.Decimal `json:"override_price,omitempty"`
	DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
}

// NewCatalogProductPricingChangedEvent creates a new CatalogProductPricingChangedEvent
func NewCatalogProductPricingChangedEvent(cp *CatalogProduct) *CatalogProductPricingChangedEvent {
	return &CatalogProductPricingChangedEvent{
		BaseDomainEvent:    shared.NewBaseDomainEvent(EventTypeCatalogProductPricingChanged, AggregateTypeCatalogProduct, cp.ID, cp.TenantID),
		CatalogID:          cp.CatalogID,
		ProductID:          cp.ProductID,
		PricingMode:        cp.EffectiveMode(),
		OverridePrice:      cp.OverridePrice,
		DiscountPercentage: cp.DiscountPercentage,
	}
}

// CatalogProductRemovedEvent is published when a product is removed from a catalog
type CatalogProductRemovedEvent struct {
	shared.BaseDomainEvent
	CatalogID uuid.UUID `json:"catalog_id"`
	ProductID uuid.UUID `json:"product_id"`
}

// NewCatalogProductRemovedEvent creates a new CatalogProductRemovedEvent
func NewCatalogProductRemovedEvent(cp *CatalogProduct) *CatalogProductRemovedEvent {
	return &CatalogProductRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCatalogProductRemoved, AggregateTypeCatalogProduct, cp.ID, cp.TenantID),
		CatalogID:       cp.CatalogID,
		ProductID:       cp.ProductID,
	}
}
