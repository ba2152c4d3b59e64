package mdm

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/geo"
	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
)

// CatalogService handles catalog-related business operations
type CatalogService struct {
	catalogRepo mdm.CatalogRepository
	channelRepo mdm.ChannelRepository
	regionRepo  geo.RegionRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalogRepo mdm.CatalogRepository, channelRepo mdm.ChannelRepository, regionRepo geo.RegionRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		channelRepo: channelRepo,
		regionRepo:  regionRepo,
	}
}

// Create creates a new catalog. The region may be given by ID or resolved
// from its code.
func (s *CatalogService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCatalogRequest) (*CatalogResponse, error) {
	regionID, err := s.resolveRegion(ctx, tenantID, req.RegionID, req.RegionCode)
	if err != nil {
		return nil, err
	}

	if _, err := s.channelRepo.FindByID(ctx, req.ChannelID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CHANNEL", "Channel not found")
		}
		return nil, err
	}

	exists, err := s.catalogRepo.ExistsByCode(ctx, tenantID, regionID, req.ChannelID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Catalog with this code already exists for the region and channel")
	}

	catalog, err := mdm.NewCatalog(tenantID, regionID, req.ChannelID, req.Code, req.Name, req.Currency)
	if err != nil {
		return nil, err
	}

	if req.CreatedBy != nil {
		catalog.SetCreatedBy(*req.CreatedBy)
	}
	catalog.Description = req.Description
	catalog.Priority = req.Priority

	if req.EffectiveFrom != nil || req.EffectiveTo != nil {
		if err := catalog.SetEffectiveWindow(req.EffectiveFrom, req.EffectiveTo); err != nil {
			return nil, err
		}
	}

	if req.IsDefault {
		if err := s.catalogRepo.ClearDefault(ctx, tenantID, regionID, req.ChannelID); err != nil {
			return nil, err
		}
		catalog.MarkDefault()
	}

	if err := s.catalogRepo.Save(ctx, catalog); err != nil {
		return nil, err
	}

	response := ToCatalogResponse(catalog)
	return &response, nil
}

// GetByID retrieves a catalog by ID
func (s *CatalogService) GetByID(ctx context.Context, tenantID, catalogID uuid.UUID) (*CatalogResponse, error) {
	catalog, err := s.catalogRepo.FindByIDForTenant(ctx, tenantID, catalogID)
	if err != nil {
		return nil, err
	}

	response := ToCatalogResponse(catalog)
	return &response, nil
}

// List retrieves catalogs with filtering and pagination
func (s *CatalogService) List(ctx context.Context, tenantID uuid.UUID, filter CatalogListFilter) (*shared.Paginated[CatalogResponse], error) {
	domainFilter := shared.Filter{
		Page:    filter.Page,
		Limit:   filter.Limit,
		SortBy:  filter.SortBy,
		SortDir: filter.SortOrder,
		Search:  filter.Search,
		Filters: make(map[string]interface{}),
	}
	if domainFilter.SortBy == "" {
		domainFilter.SortBy = "priority"
	}
	if domainFilter.SortDir == "" {
		domainFilter.SortDir = "asc"
	}
	domainFilter.Normalize()

	if filter.RegionID != nil {
		domainFilter.Filters["region_id"] = *filter.RegionID
	}
	if filter.ChannelID != nil {
		domainFilter.Filters["channel_id"] = *filter.ChannelID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	catalogs, err := s.catalogRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.catalogRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToCatalogResponses(catalogs), total, domainFilter.Page, domainFilter.Limit)
	return &page, nil
}

// Update updates a catalog
func (s *CatalogService) Update(ctx context.Context, tenantID, catalogID uuid.UUID, req UpdateCatalogRequest) (*CatalogResponse, error) {
	catalog, err := s.catalogRepo.FindByIDForTenant(ctx, tenantID, catalogID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil || req.Priority != nil {
		name := catalog.Name
		description := catalog.Description
		priority := catalog.Priority
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if req.Priority != nil {
			priority = *req.Priority
		}
		if err := catalog.Update(name, description, priority); err != nil {
			return nil, err
		}
	}

	if req.EffectiveFrom != nil || req.EffectiveTo != nil {
		from := catalog.EffectiveFrom
		to := catalog.EffectiveTo
		if req.EffectiveFrom != nil {
			from = req.EffectiveFrom
		}
		if req.EffectiveTo != nil {
			to = req.EffectiveTo
		}
		if err := catalog.SetEffectiveWindow(from, to); err != nil {
			return nil, err
		}
	}

	if req.IsDefault != nil {
		if *req.IsDefault && !catalog.IsDefault {
			if err := s.catalogRepo.ClearDefault(ctx, tenantID, catalog.RegionID, catalog.ChannelID); err != nil {
				return nil, err
			}
			catalog.MarkDefault()
		} else if !*req.IsDefault {
			catalog.ClearDefault()
		}
	}

	if req.Status != nil {
		if err := catalog.ChangeStatus(mdm.CatalogStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if req.UpdatedBy != nil {
		catalog.SetUpdatedBy(*req.UpdatedBy)
	}

	if err := s.catalogRepo.Save(ctx, catalog); err != nil {
		return nil, err
	}

	response := ToCatalogResponse(catalog)
	return &response, nil
}

// Delete removes a catalog
func (s *CatalogService) Delete(ctx context.Context, tenantID, catalogID uuid.UUID) error {
	catalog, err := s.catalogRepo.FindByIDForTenant(ctx, tenantID, catalogID)
	if err != nil {
		return err
	}

	catalog.AddDomainEvent(mdm.NewCatalogDeletedEvent(catalog))

	return s.catalogRepo.Delete(ctx, catalog)
}

// Channels returns the sales channels for the tenant
func (s *CatalogService) Channels(ctx context.Context, tenantID uuid.UUID) ([]ChannelResponse, error) {
	channels, err := s.channelRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]ChannelResponse, len(channels))
	for i := range channels {
		responses[i] = ToChannelResponse(&channels[i])
	}
	return responses, nil
}

// Regions returns the regions catalogs can target
func (s *CatalogService) Regions(ctx context.Context, tenantID uuid.UUID) ([]RegionRefResponse, error) {
	regions, err := s.regionRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]RegionRefResponse, len(regions))
	for i, region := range regions {
		responses[i] = RegionRefResponse{
			ID:   region.ID,
			Code: region.Code,
			Name: region.Name,
		}
	}
	return responses, nil
}

func (s *CatalogService) resolveRegion(ctx context.Context, tenantID uuid.UUID, regionID *uuid.UUID, regionCode string) (uuid.UUID, error) {
	if regionID != nil && *regionID != uuid.Nil {
		if _, err := s.regionRepo.FindByID(ctx, tenantID, *regionID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return uuid.Nil, shared.NewDomainError("INVALID_REGION", "Region not found")
			}
			return uuid.Nil, err
		}
		return *regionID, nil
	}

	if regionCode == "" {
		return uuid.Nil, shared.NewDomainError("INVALID_INPUT", "Either region_id or region_code is required")
	}

	region, err := s.regionRepo.FindByCode(ctx, tenantID, regionCode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.NewDomainError("INVALID_REGION", "Region not found: "+regionCode)
		}
		return uuid.Nil, err
	}
	return region.ID, nil
}
