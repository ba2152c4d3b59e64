package mdm

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo mdm.ProductRepository
	cache       ProductCache
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo mdm.ProductRepository, cache ProductCache, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, tenantID, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	product, err := mdm.NewProduct(tenantID, req.SKU, req.Name)
	if err != nil {
		return nil, err
	}

	if req.CreatedBy != nil {
		product.SetCreatedBy(*req.CreatedBy)
	}

	if req.Description != "" || req.LongDescription != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
		product.LongDescription = req.LongDescription
	}

	product.SetClassification(req.ProductType, req.ProductClass, req.Subtype)
	product.TaxCode = req.TaxCode
	product.Slug = req.Slug

	if req.BasePrice != nil || req.CostPrice != nil {
		basePrice := product.BasePrice
		costPrice := product.CostPrice
		if req.BasePrice != nil {
			basePrice = *req.BasePrice
		}
		if req.CostPrice != nil {
			costPrice = *req.CostPrice
		}
		if err := product.SetPrices(basePrice, costPrice); err != nil {
			return nil, err
		}
	}

	product.SetFlags(req.Available, req.WebDisplay, req.LicenseRequired, req.ContractItem, req.SeatBasedPrice)

	if req.Status != "" && req.Status != string(mdm.ProductStatusDraft) {
		if err := product.ChangeStatus(mdm.ProductStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	if product.IsActive() {
		product.AddDomainEvent(mdm.NewProductLaunchedEvent(product))
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	if product.IsActive() {
		s.syncCache(ctx, product)
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := shared.Filter{
		Page:    filter.Page,
		Limit:   filter.Limit,
		SortBy:  filter.SortBy,
		SortDir: filter.SortOrder,
		Search:  filter.Search,
		Filters: make(map[string]interface{}),
	}
	if domainFilter.SortBy == "" {
		domainFilter.SortBy = "name"
	}
	if domainFilter.SortDir == "" {
		domainFilter.SortDir = "asc"
	}
	domainFilter.Normalize()

	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.ProductType != "" {
		domainFilter.Filters["product_type"] = filter.ProductType
	}
	if filter.Available != nil {
		domainFilter.Filters["available"] = *filter.Available
	}
	if filter.WebDisplay != nil {
		domainFilter.Filters["web_display"] = *filter.WebDisplay
	}
	if filter.LicenseRequired != nil {
		domainFilter.Filters["license_required"] = *filter.LicenseRequired
	}
	if filter.ContractItem != nil {
		domainFilter.Filters["contract_item"] = *filter.ContractItem
	}

	products, err := s.productRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToProductResponses(products), total, domainFilter.Page, domainFilter.Limit)
	return &page, nil
}

// Update updates a product, keeping the cache in step with lifecycle and
// significant-field transitions.
func (s *ProductService) Update(ctx context.Context, tenantID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	wasActive := product.IsActive()
	before := product.Snapshot()

	if req.SKU != nil && *req.SKU != product.SKU {
		exists, err := s.productRepo.ExistsBySKU(ctx, tenantID, *req.SKU)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
		}
		if err := product.UpdateSKU(*req.SKU); err != nil {
			return nil, err
		}
	}

	if req.Name != nil || req.Description != nil {
		name := product.Name
		description := product.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description); err != nil {
			return nil, err
		}
	}
	if req.LongDescription != nil {
		product.LongDescription = *req.LongDescription
	}

	if req.ProductType != nil || req.ProductClass != nil || req.Subtype != nil {
		productType := product.ProductType
		productClass := product.ProductClass
		subtype := product.Subtype
		if req.ProductType != nil {
			productType = *req.ProductType
		}
		if req.ProductClass != nil {
			productClass = *req.ProductClass
		}
		if req.Subtype != nil {
			subtype = *req.Subtype
		}
		product.SetClassification(productType, productClass, subtype)
	}

	if req.BasePrice != nil || req.CostPrice != nil {
		basePrice := product.BasePrice
		costPrice := product.CostPrice
		if req.BasePrice != nil {
			basePrice = *req.BasePrice
		}
		if req.CostPrice != nil {
			costPrice = *req.CostPrice
		}
		if err := product.SetPrices(basePrice, costPrice); err != nil {
			return nil, err
		}
	}

	if req.TaxCode != nil {
		product.TaxCode = *req.TaxCode
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}

	if req.Available != nil || req.WebDisplay != nil || req.LicenseRequired != nil || req.ContractItem != nil || req.SeatBasedPrice != nil {
		available := product.Available
		webDisplay := product.WebDisplay
		licenseRequired := product.LicenseRequired
		contractItem := product.ContractItem
		seatBasedPrice := product.SeatBasedPrice
		if req.Available != nil {
			available = *req.Available
		}
		if req.WebDisplay != nil {
			webDisplay = *req.WebDisplay
		}
		if req.LicenseRequired != nil {
			licenseRequired = *req.LicenseRequired
		}
		if req.ContractItem != nil {
			contractItem = *req.ContractItem
		}
		if req.SeatBasedPrice != nil {
			seatBasedPrice = *req.SeatBasedPrice
		}
		product.SetFlags(available, webDisplay, licenseRequired, contractItem, seatBasedPrice)
	}

	if req.Status != nil {
		if err := product.ChangeStatus(mdm.ProductStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if req.UpdatedBy != nil {
		product.SetUpdatedBy(*req.UpdatedBy)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	// One cache call per qualifying transition: activation or a
	// significant change while active syncs, deactivation removes.
	isActive := product.IsActive()
	switch {
	case !wasActive && isActive:
		s.syncCache(ctx, product)
	case wasActive && !isActive:
		s.removeFromCache(ctx, tenantID, product.ID)
	case wasActive && isActive && before.HasSignificantChange(product.Snapshot()):
		s.syncCache(ctx, product)
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return err
	}

	wasActive := product.IsActive()

	product.AddDomainEvent(mdm.NewProductDeletedEvent(product))

	if err := s.productRepo.Delete(ctx, product); err != nil {
		return err
	}

	if wasActive {
		s.removeFromCache(ctx, tenantID, productID)
	}

	return nil
}

// Summary returns aggregate product counts for the tenant
func (s *ProductService) Summary(ctx context.Context, tenantID uuid.UUID) (*ProductSummaryResponse, error) {
	byStatus, err := s.productRepo.CountByStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	byType, err := s.productRepo.CountByType(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	summary := &ProductSummaryResponse{
		ByStatus: make(map[string]int64, len(byStatus)),
		ByType:   byType,
	}
	for status, count := range byStatus {
		summary.ByStatus[string(status)] = count
		summary.Total += count
	}

	return summary, nil
}

// Types returns the distinct product types in use for the tenant
func (s *ProductService) Types(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	return s.productRepo.DistinctTypes(ctx, tenantID)
}

func (s *ProductService) syncCache(ctx context.Context, product *mdm.Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Sync(ctx, product); err != nil {
		s.logger.Warn("product cache sync failed",
			zap.String("product_id", product.ID.String()),
			zap.Error(err))
	}
}

func (s *ProductService) removeFromCache(ctx context.Context, tenantID, productID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Remove(ctx, tenantID, productID); err != nil {
		s.logger.Warn("product cache removal failed",
			zap.String("product_id", productID.String()),
			zap.Error(err))
	}
}
