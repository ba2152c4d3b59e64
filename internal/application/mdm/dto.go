package mdm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mdm/backend/internal/domain/mdm"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	SKU             string           `json:"sku" binding:"required,min=1,max=64"`
	Name            string           `json:"name" binding:"required,min=1,max=200"`
	Description     string           `json:"description" binding:"max=2000"`
	LongDescription string           `json:"long_description"`
	ProductType     string           `json:"product_type" binding:"max=50"`
	ProductClass    string           `json:"product_class" binding:"max=50"`
	Subtype         string           `json:"subtype" binding:"max=50"`
	BasePrice       *decimal.Decimal `json:"base_price"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	TaxCode         string           `json:"tax_code" binding:"max=32"`
	Slug            string           `json:"slug" binding:"max=200"`
	Available       bool             `json:"available"`
	WebDisplay      bool             `json:"web_display"`
	LicenseRequired bool             `json:"license_required"`
	ContractItem    bool             `json:"contract_item"`
	SeatBasedPrice  bool             `json:"seat_based_price"`
	Status          string           `json:"status" binding:"omitempty,oneof=draft active deprecated archived"`
	CreatedBy       *uuid.UUID       `json:"-"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	SKU             *string          `json:"sku" binding:"omitempty,min=1,max=64"`
	Name            *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description     *string          `json:"description" binding:"omitempty,max=2000"`
	LongDescription *string          `json:"long_description"`
	ProductType     *string          `json:"product_type" binding:"omitempty,max=50"`
	ProductClass    *string          `json:"product_class" binding:"omitempty,max=50"`
	Subtype         *string          `json:"subtype" binding:"omitempty,max=50"`
	BasePrice       *decimal.Decimal `json:"base_price"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	TaxCode         *string          `json:"tax_code" binding:"omitempty,max=32"`
	Slug            *string          `json:"slug" binding:"omitempty,max=200"`
	Available       *bool            `json:"available"`
	WebDisplay      *bool            `json:"web_display"`
	LicenseRequired *bool            `json:"license_required"`
	ContractItem    *bool            `json:"contract_item"`
	SeatBasedPrice  *bool            `json:"seat_based_price"`
	Status          *string          `json:"status" binding:"omitempty,oneof=draft active deprecated archived"`
	UpdatedBy       *uuid.UUID       `json:"-"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search          string `form:"search"`
	Status          string `form:"status" binding:"omitempty,oneof=draft active deprecated archived"`
	ProductType     string `form:"product_type"`
	Available       *bool  `form:"available"`
	WebDisplay      *bool  `form:"web_display"`
	LicenseRequired *bool  `form:"license_required"`
	ContractItem    *bool  `form:"contract_item"`
	Page            int    `form:"page"`
	Limit           int    `form:"limit"`
	SortBy          string `form:"sort_by"`
	SortOrder       string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description"`
	ProductType     string          `json:"product_type"`
	ProductClass    string          `json:"product_class"`
	Subtype         string          `json:"subtype"`
	BasePrice       decimal.Decimal `json:"base_price"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	TaxCode         string          `json:"tax_code"`
	Slug            string          `json:"slug"`
	Available       bool            `json:"available"`
	WebDisplay      bool            `json:"web_display"`
	LicenseRequired bool            `json:"license_required"`
	ContractItem    bool            `json:"contract_item"`
	SeatBasedPrice  bool            `json:"seat_based_price"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Version         int             `json:"version"`
}

// ProductSummaryResponse aggregates product counts for the dashboard
type ProductSummaryResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
	ByType   map[string]int64 `json:"by_type"`
}

// CreateCatalogRequest represents a request to create a new catalog
type CreateCatalogRequest struct {
	Code          string     `json:"code" binding:"required,min=1,max=64"`
	Name          string     `json:"name" binding:"required,min=1,max=200"`
	Description   string     `json:"description"`
	RegionID      *uuid.UUID `json:"region_id"`
	RegionCode    string     `json:"region_code"`
	ChannelID     uuid.UUID  `json:"channel_id" binding:"required"`
	Currency      string     `json:"currency" binding:"omitempty,len=3"`
	Priority      int        `json:"priority"`
	EffectiveFrom *time.Time `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to"`
	IsDefault     bool       `json:"is_default"`
	CreatedBy     *uuid.UUID `json:"-"`
}

// UpdateCatalogRequest represents a request to update a catalog
type UpdateCatalogRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string    `json:"description"`
	Priority      *int       `json:"priority"`
	EffectiveFrom *time.Time `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to"`
	IsDefault     *bool      `json:"is_default"`
	Status        *string    `json:"status" binding:"omitempty,oneof=draft active archived"`
	UpdatedBy     *uuid.UUID `json:"-"`
}

// CatalogListFilter represents filter options for the catalog list
type CatalogListFilter struct {
	Search    string     `form:"search"`
	RegionID  *uuid.UUID `form:"region_id"`
	ChannelID *uuid.UUID `form:"channel_id"`
	Status    string     `form:"status" binding:"omitempty,oneof=draft active archived"`
	Page      int        `form:"page"`
	Limit     int        `form:"limit"`
	SortBy    string     `form:"sort_by"`
	SortOrder string     `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// CatalogResponse represents a catalog in API responses
type CatalogResponse struct {
	ID            uuid.UUID  `json:"id"`
	TenantID      uuid.UUID  `json:"tenant_id"`
	RegionID      uuid.UUID  `json:"region_id"`
	ChannelID     uuid.UUID  `json:"channel_id"`
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Currency      string     `json:"currency"`
	Priority      int        `json:"priority"`
	EffectiveFrom *time.Time `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to"`
	IsDefault     bool       `json:"is_default"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Version       int        `json:"version"`
}

// ChannelResponse represents a sales channel in API responses
type ChannelResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
}

// RegionRefResponse is a lightweight region reference for catalog screens
type RegionRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

// AddCatalogProductRequest represents a request to add a product to a catalog
type AddCatalogProductRequest struct {
	CatalogID          uuid.UUID        `json:"catalog_id" binding:"required"`
	ProductID          uuid.UUID        `json:"product_id" binding:"required"`
	OverridePrice      *decimal.Decimal `json:"override_price"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	IsFeatured         bool             `json:"is_featured"`
	MinQuantity        *int             `json:"min_quantity"`
	MaxQuantity        *int             `json:"max_quantity"`
	FulfillmentType    string           `json:"fulfillment_type" binding:"max=50"`
	SupportTier        string           `json:"support_tier" binding:"max=50"`
	CreatedBy          *uuid.UUID       `json:"-"`
}

// UpdateCatalogProductRequest represents a request to update a catalog entry
type UpdateCatalogProductRequest struct {
	IsActive           *bool            `json:"is_active"`
	OverridePrice      *decimal.Decimal `json:"override_price"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	ClearPricing       bool             `json:"clear_pricing"`
	IsFeatured         *bool            `json:"is_featured"`
	MinQuantity        *int             `json:"min_quantity"`
	MaxQuantity        *int             `json:"max_quantity"`
	FulfillmentType    *string          `json:"fulfillment_type" binding:"omitempty,max=50"`
	SupportTier        *string          `json:"support_tier" binding:"omitempty,max=50"`
	UpdatedBy          *uuid.UUID       `json:"-"`
}

// CatalogProductListFilter represents filter options for catalog entries
type CatalogProductListFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// CatalogProductResponse represents a catalog entry in API responses
type CatalogProductResponse struct {
	ID                    uuid.UUID        `json:"id"`
	CatalogID             uuid.UUID        `json:"catalog_id"`
	ProductID             uuid.UUID        `json:"product_id"`
	IsActive              bool             `json:"is_active"`
	PricingMode           string           `json:"pricing_mode"`
	OverridePrice         *decimal.Decimal `json:"override_price,omitempty"`
	DiscountPercentage    decimal.Decimal  `json:"discount_percentage"`
	IsFeatured            bool             `json:"is_featured"`
	MinQuantity           int              `json:"min_quantity"`
	MaxQuantity           int              `json:"max_quantity"`
	FulfillmentType       string           `json:"fulfillment_type"`
	SupportTier           string           `json:"support_tier"`
	LocalizedContentCount int              `json:"localized_content_count"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// CatalogProductListingResponse is a catalog entry enriched with product data
type CatalogProductListingResponse struct {
	CatalogProductResponse
	ProductSKU  string          `json:"product_sku"`
	ProductName string          `json:"product_name"`
	BasePrice   decimal.Decimal `json:"base_price"`
	FinalPrice  decimal.Decimal `json:"final_price"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *mdm.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		TenantID:        p.TenantID,
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		ProductType:     p.ProductType,
		ProductClass:    p.ProductClass,
		Subtype:         p.Subtype,
		BasePrice:       p.BasePrice,
		CostPrice:       p.CostPrice,
		TaxCode:         p.TaxCode,
		Slug:            p.Slug,
		Available:       p.Available,
		WebDisplay:      p.WebDisplay,
		LicenseRequired: p.LicenseRequired,
		ContractItem:    p.ContractItem,
		SeatBasedPrice:  p.SeatBasedPrice,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Version:         p.Version,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []mdm.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToCatalogResponse converts a domain Catalog to CatalogResponse
func ToCatalogResponse(c *mdm.Catalog) CatalogResponse {
	return CatalogResponse{
		ID:            c.ID,
		TenantID:      c.TenantID,
		RegionID:      c.RegionID,
		ChannelID:     c.ChannelID,
		Code:          c.Code,
		Name:          c.Name,
		Description:   c.Description,
		Currency:      c.Currency,
		Priority:      c.Priority,
		EffectiveFrom: c.EffectiveFrom,
		EffectiveTo:   c.EffectiveTo,
		IsDefault:     c.IsDefault,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Version:       c.Version,
	}
}

// ToCatalogResponses converts a slice of domain Catalogs
func ToCatalogResponses(catalogs []mdm.Catalog) []CatalogResponse {
	responses := make([]CatalogResponse, len(catalogs))
	for i := range catalogs {
		responses[i] = ToCatalogResponse(&catalogs[i])
	}
	return responses
}

// ToChannelResponse converts a domain Channel to ChannelResponse
func ToChannelResponse(c *mdm.Channel) ChannelResponse {
	return ChannelResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
	}
}

// ToCatalogProductResponse converts a domain CatalogProduct
func ToCatalogProductResponse(cp *mdm.CatalogProduct) CatalogProductResponse {
	return CatalogProductResponse{
		ID:                    cp.ID,
		CatalogID:             cp.CatalogID,
		ProductID:             cp.ProductID,
		IsActive:              cp.IsActive,
		PricingMode:           string(cp.EffectiveMode()),
		OverridePrice:         cp.OverridePrice,
		DiscountPercentage:    cp.DiscountPercentage,
		IsFeatured:            cp.IsFeatured,
		MinQuantity:           cp.MinQuantity,
		MaxQuantity:           cp.MaxQuantity,
		FulfillmentType:       cp.FulfillmentType,
		SupportTier:           cp.SupportTier,
		LocalizedContentCount: cp.LocalizedContentCount,
		CreatedAt:             cp.CreatedAt,
		UpdatedAt:             cp.UpdatedAt,
	}
}

// ToCatalogProductListingResponse converts a joined listing row
func ToCatalogProductListingResponse(row *mdm.CatalogProductListing) CatalogProductListingResponse {
	return CatalogProductListingResponse{
		CatalogProductResponse: ToCatalogProductResponse(&row.CatalogProduct),
		ProductSKU:             row.ProductSKU,
		ProductName:            row.ProductName,
		BasePrice:              row.BasePrice,
		FinalPrice:             row.FinalPrice(row.BasePrice),
	}
}
