package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
)

// GormCatalogRepository implements CatalogRepository using GORM
type GormCatalogRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver // optional, for transactional outbox pattern
}

// NewGormCatalogRepository creates a new GormCatalogRepository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// SetOutboxEventSaver sets the outbox event saver for transactional event publishing
func (r *GormCatalogRepository) SetOutboxEventSaver(saver shared.OutboxEventSaver) {
	r.outboxSaver = saver
}

// FindByID finds a catalog by its ID
func (r *GormCatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*mdm.Catalog, error) {
	var catalog mdm.Catalog
	if err := r.db.WithContext(ctx).First(&catalog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &catalog, nil
}

// FindByIDForTenant finds a catalog by ID within a tenant
func (r *GormCatalogRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*mdm.Catalog, error) {
	var catalog mdm.Catalog
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&catalog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &catalog, nil
}

// FindByCode finds a catalog by code within a tenant, region, and channel
func (r *GormCatalogRepository) FindByCode(ctx context.Context, tenantID, regionID, channelID uuid.UUID, code string) (*mdm.Catalog, error) {
	var catalog mdm.Catalog
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND region_id = ? AND channel_id = ? AND code = ?",
			tenantID, regionID, channelID, strings.ToUpper(code)).
		First(&catalog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &catalog, nil
}

// FindAllForTenant finds all catalogs for a tenant
func (r *GormCatalogRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]mdm.Catalog, error) {
	var catalogs []mdm.Catalog
	query := r.applyFilter(r.db.WithContext(ctx).Model(&mdm.Catalog{}).Where("tenant_id = ?", tenantID), filter)

	if err := query.Find(&catalogs).Error; err != nil {
		return nil, err
	}
	return catalogs, nil
}

// FindDefault finds the default catalog for a region+channel pair
func (r *GormCatalogRepository) FindDefault(ctx context.Context, tenantID, regionID, channelID uuid.UUID) (*mdm.Catalog, error) {
	var catalog mdm.Catalog
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND region_id = ? AND channel_id = ? AND is_default = ?",
			tenantID, regionID, channelID, true).
		First(&catalog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &catalog, nil
}

// ClearDefault clears the default flag for all catalogs in a region+channel pair
func (r *GormCatalogRepository) ClearDefault(ctx context.Context, tenantID, regionID, channelID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&mdm.Catalog{}).
		Where("tenant_id = ? AND region_id = ? AND channel_id = ? AND is_default = ?",
			tenantID, regionID, channelID, true).
		Update("is_default", false).Error
}

// Save creates or updates a catalog. Pending domain events are written to
// the outbox table in the same transaction.
func (r *GormCatalogRepository) Save(ctx context.Context, catalog *mdm.Catalog) error {
	events := catalog.GetDomainEvents()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(catalog).Error; err != nil {
			return err
		}
		if r.outboxSaver != nil && len(events) > 0 {
			if err := r.outboxSaver.SaveEvents(ctx, tx, events...); err != nil {
				return fmt.Errorf("failed to save events to outbox: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	catalog.ClearDomainEvents()
	return nil
}

// Delete deletes a catalog along with its entries. Pending domain events on
// the aggregate are written to the outbox in the same transaction.
func (r *GormCatalogRepository) Delete(ctx context.Context, catalog *mdm.Catalog) error {
	events := catalog.GetDomainEvents()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ? AND catalog_id = ?", catalog.TenantID, catalog.ID).
			Delete(&mdm.CatalogProduct{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&mdm.Catalog{}, "tenant_id = ? AND id = ?", catalog.TenantID, catalog.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if r.outboxSaver != nil && len(events) > 0 {
			if err := r.outboxSaver.SaveEvents(ctx, tx, events...); err != nil {
				return fmt.Errorf("failed to save events to outbox: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	catalog.ClearDomainEvents()
	return nil
}

// CountForTenant counts catalogs for a tenant
func (r *GormCatalogRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&mdm.Catalog{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a catalog code exists within a tenant, region, and channel
func (r *GormCatalogRepository) ExistsByCode(ctx context.Context, tenantID, regionID, channelID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&mdm.Catalog{}).
		Where("tenant_id = ? AND region_id = ? AND channel_id = ? AND code = ?",
			tenantID, regionID, channelID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormCatalogRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Offset(offset).Limit(filter.Limit)
	}

	sortField := ValidateSortField(filter.SortBy, CatalogSortFields, "priority")
	query = query.Order(sortField + " " + ValidateSortOrder(filter.SortDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCatalogRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "region_id":
			query = query.Where("region_id = ?", value)
		case "channel_id":
			query = query.Where("channel_id = ?", value)
		case "currency":
			query = query.Where("currency = ?", value)
		case "is_default":
			query = query.Where("is_default = ?", value)
		}
	}

	return query
}

// Ensure GormCatalogRepository implements CatalogRepository
var _ mdm.CatalogRepository = (*GormCatalogRepository)(nil)
