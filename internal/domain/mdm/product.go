package mdm

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mdm/backend/internal/domain/shared"
)

// ProductStatus represents the lifecycle status of a product
type ProductStatus string

const (
	ProductStatusDraft      ProductStatus = "draft"
	ProductStatusActive     ProductStatus = "active"
	ProductStatusDeprecated ProductStatus = "deprecated"
	ProductStatusArchived   ProductStatus = "archived"
)

// ValidProductStatuses lists every accepted product status value
var ValidProductStatuses = []ProductStatus{
	ProductStatusDraft,
	ProductStatusActive,
	ProductStatusDeprecated,
	ProductStatusArchived,
}

// Product is the master record for a sellable item.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.TenantAggregateRoot
	SKU             string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_product_tenant_sku,priority:2"`
	Name            string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text"`
	LongDescription string          `gorm:"type:text"`
	ProductType     string          `gorm:"type:varchar(50);index"`
	ProductClass    string          `gorm:"type:varchar(50)"`
	Subtype         string          `gorm:"type:varchar(50)"`
	BasePrice       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CostPrice       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TaxCode         string          `gorm:"type:varchar(32)"`
	Slug            string          `gorm:"type:varchar(200);index"`
	Available       bool            `gorm:"not null;default:false"`
	WebDisplay      bool            `gorm:"not null;default:false"`
	LicenseRequired bool            `gorm:"not null;default:false"`
	ContractItem    bool            `gorm:"not null;default:false"`
	SeatBasedPrice  bool            `gorm:"not null;default:false"`
	Status          ProductStatus   `gorm:"type:varchar(20);not null;default:'draft'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in draft status
func NewProduct(tenantID uuid.UUID, sku, name string) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	product := &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SKU:                 strings.ToUpper(sku),
		Name:                name,
		BasePrice:           decimal.Zero,
		CostPrice:           decimal.Zero,
		Status:              ProductStatusDraft,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's descriptive fields
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// UpdateSKU updates the product's SKU.
// Other systems may reference the SKU, so callers must re-check uniqueness.
func (p *Product) UpdateSKU(sku string) error {
	if err := validateSKU(sku); err != nil {
		return err
	}

	p.SKU = strings.ToUpper(sku)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetClassification sets type, class, and subtype
func (p *Product) SetClassification(productType, productClass, subtype string) {
	p.ProductType = productType
	p.ProductClass = productClass
	p.Subtype = subtype
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetPrices sets base and cost prices
func (p *Product) SetPrices(basePrice, costPrice decimal.Decimal) error {
	if basePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Base price cannot be negative")
	}
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}

	p.BasePrice = basePrice
	p.CostPrice = costPrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetFlags sets the merchandising flags
func (p *Product) SetFlags(available, webDisplay, licenseRequired, contractItem, seatBasedPrice bool) {
	p.Available = available
	p.WebDisplay = webDisplay
	p.LicenseRequired = licenseRequired
	p.ContractItem = contractItem
	p.SeatBasedPrice = seatBasedPrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// ChangeStatus transitions the product to a new lifecycle status
func (p *Product) ChangeStatus(status ProductStatus) error {
	if !IsValidProductStatus(status) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown product status: "+string(status))
	}
	if p.Status == status {
		return nil
	}
	if p.Status == ProductStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Cannot change status of an archived product")
	}

	oldStatus := p.Status
	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, oldStatus, status))

	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// ProductSnapshot captures the fields whose changes require a cache
// resynchronization of an active product.
type ProductSnapshot struct {
	Name            string
	Description     string
	LongDescription string
	ProductType     string
	BasePrice       decimal.Decimal
	CostPrice       decimal.Decimal
	TaxCode         string
	Slug            string
	Available       bool
	WebDisplay      bool
	LicenseRequired bool
	ContractItem    bool
	SeatBasedPrice  bool
	Status          ProductStatus
}

// Snapshot captures the significant fields of the product
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		ProductType:     p.ProductType,
		BasePrice:       p.BasePrice,
		CostPrice:       p.CostPrice,
		TaxCode:         p.TaxCode,
		Slug:            p.Slug,
		Available:       p.Available,
		WebDisplay:      p.WebDisplay,
		LicenseRequired: p.LicenseRequired,
		ContractItem:    p.ContractItem,
		SeatBasedPrice:  p.SeatBasedPrice,
		Status:          p.Status,
	}
}

// HasSignificantChange reports whether any cache-relevant field differs
// between the two snapshots. Status is compared separately by callers.
func (s ProductSnapshot) HasSignificantChange(other ProductSnapshot) bool {
	return s.Name != other.Name ||
		s.Description != other.Description ||
		s.LongDescription != other.LongDescription ||
		s.ProductType != other.ProductType ||
		!s.BasePrice.Equal(other.BasePrice) ||
		!s.CostPrice.Equal(other.CostPrice) ||
		s.TaxCode != other.TaxCode ||
		s.Slug != other.Slug ||
		s.Available != other.Available ||
		s.WebDisplay != other.WebDisplay ||
		s.LicenseRequired != other.LicenseRequired ||
		s.ContractItem != other.ContractItem ||
		s.SeatBasedPrice != other.SeatBasedPrice
}

// IsValidProductStatus reports whether the given status is a known value
func IsValidProductStatus(status ProductStatus) bool {
	for _, s := range ValidProductStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// validateSKU validates the product SKU
func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 64 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 64 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' || r == '.') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, hyphens, and dots")
		}
	}
	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
