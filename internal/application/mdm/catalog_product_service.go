package mdm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
)

// CatalogProductService manages product assignments inside catalogs
type CatalogProductService struct {
	entryRepo   mdm.CatalogProductRepository
	catalogRepo mdm.CatalogRepository
	productRepo mdm.ProductRepository
}

// NewCatalogProductService creates a new CatalogProductService
func NewCatalogProductService(
	entryRepo mdm.CatalogProductRepository,
	catalogRepo mdm.CatalogRepository,
	productRepo mdm.ProductRepository,
) *CatalogProductService {
	return &CatalogProductService{
		entryRepo:   entryRepo,
		catalogRepo: catalogRepo,
		productRepo: productRepo,
	}
}

// Add assigns a product to a catalog
func (s *CatalogProductService) Add(ctx context.Context, tenantID uuid.UUID, req AddCatalogProductRequest) (*CatalogProductResponse, error) {
	if _, err := s.catalogRepo.FindByIDForTenant(ctx, tenantID, req.CatalogID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Catalog not found")
		}
		return nil, err
	}
	if _, err := s.productRepo.FindByIDForTenant(ctx, tenantID, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	exists, err := s.entryRepo.ExistsByPair(ctx, tenantID, req.CatalogID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product is already in this catalog")
	}

	entry, err := mdm.NewCatalogProduct(tenantID, req.CatalogID, req.ProductID)
	if err != nil {
		return nil, err
	}

	if req.CreatedBy != nil {
		entry.SetCreatedBy(*req.CreatedBy)
	}

	if err := applyPricing(entry, req.OverridePrice, req.DiscountPercentage, false); err != nil {
		return nil, err
	}

	minQty := entry.MinQuantity
	maxQty := entry.MaxQuantity
	if req.MinQuantity != nil {
		minQty = *req.MinQuantity
	}
	if req.MaxQuantity != nil {
		maxQty = *req.MaxQuantity
	}
	if err := entry.SetMerchandising(req.IsFeatured, minQty, maxQty, req.FulfillmentType, req.SupportTier); err != nil {
		return nil, err
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToCatalogProductResponse(entry)
	return &response, nil
}

// Update updates a catalog entry addressed by its composite key
func (s *CatalogProductService) Update(ctx context.Context, tenantID, catalogID, productID uuid.UUID, req UpdateCatalogProductRequest) (*CatalogProductResponse, error) {
	entry, err := s.entryRepo.FindByPair(ctx, tenantID, catalogID, productID)
	if err != nil {
		return nil, err
	}

	if req.IsActive != nil {
		entry.SetActive(*req.IsActive)
	}

	if err := applyPricing(entry, req.OverridePrice, req.DiscountPercentage, req.ClearPricing); err != nil {
		return nil, err
	}

	if req.IsFeatured != nil || req.MinQuantity != nil || req.MaxQuantity != nil || req.FulfillmentType != nil || req.SupportTier != nil {
		featured := entry.IsFeatured
		minQty := entry.MinQuantity
		maxQty := entry.MaxQuantity
		fulfillment := entry.FulfillmentType
		support := entry.SupportTier
		if req.IsFeatured != nil {
			featured = *req.IsFeatured
		}
		if req.MinQuantity != nil {
			minQty = *req.MinQuantity
		}
		if req.MaxQuantity != nil {
			maxQty = *req.MaxQuantity
		}
		if req.FulfillmentType != nil {
			fulfillment = *req.FulfillmentType
		}
		if req.SupportTier != nil {
			support = *req.SupportTier
		}
		if err := entry.SetMerchandising(featured, minQty, maxQty, fulfillment, support); err != nil {
			return nil, err
		}
	}

	if req.UpdatedBy != nil {
		entry.SetUpdatedBy(*req.UpdatedBy)
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToCatalogProductResponse(entry)
	return &response, nil
}

// Remove deletes a catalog entry by its composite key
func (s *CatalogProductService) Remove(ctx context.Context, tenantID, catalogID, productID uuid.UUID) error {
	entry, err := s.entryRepo.FindByPair(ctx, tenantID, catalogID, productID)
	if err != nil {
		return err
	}

	entry.AddDomainEvent(mdm.NewCatalogProductRemovedEvent(entry))

	return s.entryRepo.Delete(ctx, entry)
}

// ListByCatalog returns the entries of a catalog enriched with product data
func (s *CatalogProductService) ListByCatalog(ctx context.Context, tenantID, catalogID uuid.UUID, filter CatalogProductListFilter) (*shared.Paginated[CatalogProductListingResponse], error) {
	if _, err := s.catalogRepo.FindByIDForTenant(ctx, tenantID, catalogID); err != nil {
		return nil, err
	}

	domainFilter := shared.Filter{
		Page:   filter.Page,
		Limit:  filter.Limit,
		Search: filter.Search,
	}
	domainFilter.Normalize()

	rows, err := s.entryRepo.FindByCatalog(ctx, tenantID, catalogID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.entryRepo.CountByCatalog(ctx, tenantID, catalogID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]CatalogProductListingResponse, len(rows))
	for i := range rows {
		responses[i] = ToCatalogProductListingResponse(&rows[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit)
	return &page, nil
}

// applyPricing applies at most one pricing mode from a request. Supplying
// both is rejected rather than silently resolved.
func applyPricing(entry *mdm.CatalogProduct, override, discount *decimal.Decimal, clear bool) error {
	if clear {
		entry.ClearPricing()
		return nil
	}
	if override != nil && discount != nil {
		return shared.NewDomainError("INVALID_INPUT", "Supply either an override price or a discount percentage, not both")
	}
	if override != nil {
		return entry.SetOverridePrice(*override)
	}
	if discount != nil {
		return entry.SetDiscountPercentage(*discount)
	}
	return nil
}
