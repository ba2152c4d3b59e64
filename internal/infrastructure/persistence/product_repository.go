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

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver // optional, for transactional outbox pattern
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// SetOutboxEventSaver sets the outbox event saver for transactional event publishing
func (r *GormProductRepository) SetOutboxEventSaver(saver shared.OutboxEventSaver) {
	r.outboxSaver = saver
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*mdm.Product, error) {
	var product mdm.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDForTenant finds a product by ID within a tenant
func (r *GormProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*mdm.Product, error) {
	var product mdm.Product
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindBySKU finds a product by its SKU within a tenant
func (r *GormProductRepository) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*mdm.Product, error) {
	var product mdm.Product
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND sku = ?", tenantID, strings.ToUpper(sku)).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAllForTenant finds all products for a tenant
func (r *GormProductRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]mdm.Product, error) {
	var products []mdm.Product
	query := r.applyFilter(r.db.WithContext(ctx).Model(&mdm.Product{}).Where("tenant_id = ?", tenantID), filter)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByStatus finds products by status for a tenant
func (r *GormProductRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status mdm.ProductStatus, filter shared.Filter) ([]mdm.Product, error) {
	var products []mdm.Product
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&mdm.Product{}).
			Where("tenant_id = ? AND status = ?", tenantID, status),
		filter,
	)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByIDs finds multiple products by their IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]mdm.Product, error) {
	if len(ids) == 0 {
		return []mdm.Product{}, nil
	}

	var products []mdm.Product
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a product. Pending domain events are written to
// the outbox table in the same transaction.
func (r *GormProductRepository) Save(ctx context.Context, product *mdm.Product) error {
	events := product.GetDomainEvents()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
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

	product.ClearDomainEvents()
	return nil
}

// Delete deletes a product. Pending domain events on the aggregate are
// written to the outbox in the same transaction.
func (r *GormProductRepository) Delete(ctx context.Context, product *mdm.Product) error {
	events := product.GetDomainEvents()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&mdm.Product{}, "tenant_id = ? AND id = ?", product.TenantID, product.ID)
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

	product.ClearDomainEvents()
	return nil
}

// CountForTenant counts products for a tenant
func (r *GormProductRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&mdm.Product{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus returns product counts grouped by status
func (r *GormProductRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID) (map[mdm.ProductStatus]int64, error) {
	var rows []struct {
		Status mdm.ProductStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&mdm.Product{}).
		Select("status, count(*) as count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[mdm.ProductStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountByType returns product counts grouped by product type
func (r *GormProductRepository) CountByType(ctx context.Context, tenantID uuid.UUID) (map[string]int64, error) {
	var rows []struct {
		ProductType string
		Count       int64
	}
	if err := r.db.WithContext(ctx).
		Model(&mdm.Product{}).
		Select("product_type, count(*) as count").
		Where("tenant_id = ? AND product_type != ''", tenantID).
		Group("product_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ProductType] = row.Count
	}
	return counts, nil
}

// DistinctTypes returns the distinct product types in use
func (r *GormProductRepository) DistinctTypes(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	var types []string
	if err := r.db.WithContext(ctx).
		Model(&mdm.Product{}).
		Distinct("product_type").
		Where("tenant_id = ? AND product_type != ''", tenantID).
		Order("product_type ASC").
		Pluck("product_type", &types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// ExistsBySKU checks if a product with the given SKU exists in the tenant
func (r *GormProductRepository) ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&mdm.Product{}).
		Where("tenant_id = ? AND sku = ?", tenantID, strings.ToUpper(sku)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Offset(offset).Limit(filter.Limit)
	}

	sortField := ValidateSortField(filter.SortBy, ProductSortFields, "name")
	query = query.Order(sortField + " " + ValidateSortOrder(filter.SortDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormProductRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ? OR description ILIKE ?", searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "product_type":
			query = query.Where("product_type = ?", value)
		case "product_class":
			query = query.Where("product_class = ?", value)
		case "available":
			query = query.Where("available = ?", value)
		case "web_display":
			query = query.Where("web_display = ?", value)
		case "min_price":
			query = query.Where("base_price >= ?", value)
		case "max_price":
			query = query.Where("base_price <= ?", value)
		}
	}

	return query
}

// Ensure GormProductRepository implements ProductRepository
var _ mdm.ProductRepository = (*GormProductRepository)(nil)
