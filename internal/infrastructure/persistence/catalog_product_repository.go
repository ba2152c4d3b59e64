package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
)

// GormCatalogProductRepository implements CatalogProductRepository using GORM
type GormCatalogProductRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver // optional, for transactional outbox pattern
}

// NewGormCatalogProductRepository creates a new GormCatalogProductRepository
func NewGormCatalogProductRepository(db *gorm.DB) *GormCatalogProductRepository {
	return &GormCatalogProductRepository{db: db}
}

// SetOutboxEventSaver sets the outbox event saver for transactional event publishing
func (r *GormCatalogProductRepository) SetOutboxEventSaver(saver shared.OutboxEventSaver) {
	r.outboxSaver = saver
}

// FindByID finds an entry by its ID
func (r *GormCatalogProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*mdm.CatalogProduct, error) {
	var entry mdm.CatalogProduct
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByPair finds an entry by its catalog+product composite key
func (r *GormCatalogProductRepository) FindByPair(ctx context.Context, tenantID, catalogID, productID uuid.UUID) (*mdm.CatalogProduct, error) {
	var entry mdm.CatalogProduct
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND catalog_id = ? AND product_id = ?", tenantID, catalogID, productID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByCatalog finds entries for a catalog joined with product data.
// The filter's search term matches the joined product name and SKU.
func (r *GormCatalogProductRepository) FindByCatalog(ctx context.Context, tenantID, catalogID uuid.UUID, filter shared.Filter) ([]mdm.CatalogProductListing, error) {
	var listings []mdm.CatalogProductListing
	query := r.listingQuery(ctx, tenantID, catalogID)
	query = r.applyListingFilter(query, filter)

	if filter.Page > 0 && filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Offset(offset).Limit(filter.Limit)
	}

	sortField := ValidateSortField(filter.SortBy, CatalogEntrySortFields, "product_name")
	switch sortField {
	case "product_sku":
		sortField = "products.sku"
	case "product_name":
		sortField = "products.name"
	case "base_price":
		sortField = "products.base_price"
	default:
		sortField = "catalog_products." + sortField
	}
	query = query.Order(sortField + " " + ValidateSortOrder(filter.SortDir))

	if err := query.Scan(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// CountByCatalog counts entries for a catalog matching the filter
func (r *GormCatalogProductRepository) CountByCatalog(ctx context.Context, tenantID, catalogID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&mdm.CatalogProduct{}).
		Joins("JOIN products ON products.id = catalog_products.product_id").
		Where("catalog_products.tenant_id = ? AND catalog_products.catalog_id = ?", tenantID, catalogID)
	query = r.applyListingFilter(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByProduct counts catalogs a product is assigned to
func (r *GormCatalogProductRepository) CountByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&mdm.CatalogProduct{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an entry. Pending domain events are written to
// the outbox table in the same transaction.
func (r *GormCatalogProductRepository) Save(ctx context.Context, entry *mdm.CatalogProduct) error {
	events := entry.GetDomainEvents()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(entry).Error; err != nil {
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

	entry.ClearDomainEvents()
	return nil
}

// Delete removes an entry. Pending domain events on the aggregate are
// written to the outbox in the same transaction.
func (r *GormCatalogProductRepository) Delete(ctx context.Context, entry *mdm.CatalogProduct) error {
	events := entry.GetDomainEvents()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&mdm.CatalogProduct{}, "tenant_id = ? AND id = ?", entry.TenantID, entry.ID)
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

	entry.ClearDomainEvents()
	return nil
}

// ExistsByPair checks if an entry exists for the composite key
func (r *GormCatalogProductRepository) ExistsByPair(ctx context.Context, tenantID, catalogID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&mdm.CatalogProduct{}).
		Where("tenant_id = ? AND catalog_id = ? AND product_id = ?", tenantID, catalogID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// listingQuery builds the base join selecting entry columns plus the
// product columns the listing exposes.
func (r *GormCatalogProductRepository) listingQuery(ctx context.Context, tenantID, catalogID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&mdm.CatalogProduct{}).
		Select("catalog_products.*, products.sku AS product_sku, products.name AS product_name, products.base_price AS base_price").
		Joins("JOIN products ON products.id = catalog_products.product_id").
		Where("catalog_products.tenant_id = ? AND catalog_products.catalog_id = ?", tenantID, catalogID)
}

// applyListingFilter applies search and filter criteria without pagination
func (r *GormCatalogProductRepository) applyListingFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("products.name ILIKE ? OR products.sku ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("catalog_products.is_active = ?", value)
		case "is_featured":
			query = query.Where("catalog_products.is_featured = ?", value)
		case "pricing_mode":
			query = query.Where("catalog_products.pricing_mode = ?", value)
		case "product_status":
			query = query.Where("products.status = ?", value)
		}
	}

	return query
}

// Ensure GormCatalogProductRepository implements CatalogProductRepository
var _ mdm.CatalogProductRepository = (*GormCatalogProductRepository)(nil)
