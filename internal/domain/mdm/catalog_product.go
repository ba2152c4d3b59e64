package mdm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mdm/backend/internal/domain/shared"
)

// PricingMode determines how a catalog entry prices its product
type PricingMode string

const (
	// PricingModeNone sells at the product's base price
	PricingModeNone PricingMode = "none"
	// PricingModeOverride replaces the base price with a fixed price
	PricingModeOverride PricingMode = "override"
	// PricingModeDiscount applies a percentage discount to the base price
	PricingModeDiscount PricingMode = "discount"
)

// CatalogProduct is the assignment of a product to a catalog with
// catalog-specific pricing and merchandising settings.
type CatalogProduct struct {
	shared.TenantAggregateRoot
	CatalogID             uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_catalog_product_pair,priority:2"`
	ProductID             uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_catalog_product_pair,priority:3"`
	IsActive              bool             `gorm:"not null;default:true"`
	PricingMode           PricingMode      `gorm:"type:varchar(16);not null;default:'none'"`
	OverridePrice         *decimal.Decimal `gorm:"type:decimal(18,4)"`
	DiscountPercentage    decimal.Decimal  `gorm:"type:decimal(7,4);not null;default:0"`
	IsFeatured            bool             `gorm:"not null;default:false"`
	MinQuantity           int              `gorm:"not null;default:1"`
	MaxQuantity           int              `gorm:"not null;default:0"`
	FulfillmentType       string           `gorm:"type:varchar(50)"`
	SupportTier           string           `gorm:"type:varchar(50)"`
	LocalizedContentCount int              `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CatalogProduct) TableName() string {
	return "catalog_products"
}

// NewCatalogProduct assigns a product to a catalog at the base price
func NewCatalogProduct(tenantID, catalogID, productID uuid.UUID) (*CatalogProduct, error) {
	if catalogID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Catalog ID is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product ID is required")
	}

	cp := &CatalogProduct{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CatalogID:           catalogID,
		ProductID:           productID,
		IsActive:            true,
		PricingMode:         PricingModeNone,
		DiscountPercentage:  decimal.Zero,
		MinQuantity:         1,
	}

	cp.AddDomainEvent(NewCatalogProductAddedEvent(cp))

	return cp, nil
}

// SetOverridePrice switches the entry to override pricing.
// The discount percentage is reset so only one mode is ever in effect.
func (cp *CatalogProduct) SetOverridePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Override price cannot be negative")
	}

	cp.PricingMode = PricingModeOverride
	cp.OverridePrice = &price
	cp.DiscountPercentage = decimal.Zero
	cp.UpdatedAt = time.Now()
	cp.IncrementVersion()

	cp.AddDomainEvent(NewCatalogProductPricingChangedEvent(cp))

	return nil
}

// SetDiscountPercentage switches the entry to discount pricing.
// The override price is cleared so only one mode is ever in effect.
func (cp *CatalogProduct) SetDiscountPercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount percentage must be between 0 and 100")
	}

	cp.PricingMode = PricingModeDiscount
	cp.OverridePrice = nil
	cp.DiscountPercentage = pct
	cp.UpdatedAt = time.Now()
	cp.IncrementVersion()

	cp.AddDomainEvent(NewCatalogProductPricingChangedEvent(cp))

	return nil
}

// ClearPricing returns the entry to base-price selling
func (cp *CatalogProduct) ClearPricing() {
	cp.PricingMode = PricingModeNone
	cp.OverridePrice = nil
	cp.DiscountPercentage = decimal.Zero
	cp.UpdatedAt = time.Now()
	cp.IncrementVersion()

	cp.AddDomainEvent(NewCatalogProductPricingChangedEvent(cp))
}

// SetActive toggles whether the entry is sellable
func (cp *CatalogProduct) SetActive(active bool) {
	if cp.IsActive == active {
		return
	}
	cp.IsActive = active
	cp.UpdatedAt = time.Now()
	cp.IncrementVersion()
}

// SetMerchandising sets the merchandising attributes
func (cp *CatalogProduct) SetMerchandising(featured bool, minQty, maxQty int, fulfillmentType, supportTier string) error {
	if minQty < 0 || maxQty < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantities cannot be negative")
	}
	if maxQty > 0 && minQty > maxQty {
		return shared.NewDomainError("INVALID_INPUT", "Minimum quantity cannot exceed maximum quantity")
	}

	cp.IsFeatured = featured
	cp.MinQuantity = minQty
	cp.MaxQuantity = maxQty
	cp.FulfillmentType = fulfillmentType
	cp.SupportTier = supportTier
	cp.UpdatedAt = time.Now()
	cp.IncrementVersion()

	return nil
}

// EffectiveMode resolves the pricing mode for this entry, handling legacy
// rows written before the mode column existed. A row carrying both an
// override price and a discount resolves as override.
func (cp *CatalogProduct) EffectiveMode() PricingMode {
	switch cp.PricingMode {
	case PricingModeOverride, PricingModeDiscount:
		return cp.PricingMode
	}
	if cp.OverridePrice != nil && !cp.OverridePrice.IsZero() {
		return PricingModeOverride
	}
	if !cp.DiscountPercentage.IsZero() {
		return PricingModeDiscount
	}
	return PricingModeNone
}

// FinalPrice computes the sell price for this entry given the product's
// base price.
func (cp *CatalogProduct) FinalPrice(basePrice decimal.Decimal) decimal.Decimal {
	switch cp.EffectiveMode() {
	case PricingModeOverride:
		if cp.OverridePrice != nil {
			return *cp.OverridePrice
		}
		return basePrice
	case PricingModeDiscount:
		hundred := decimal.NewFromInt(100)
		return basePrice.Mul(hundred.Sub(cp.DiscountPercentage)).Div(hundred)
	default:
		return basePrice
	}
}
