package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdm/backend/internal/domain/dictionary"
	"github.com/mdm/backend/internal/domain/shared"
)

// GormDictionaryRepository implements dictionary.Repository using GORM
type GormDictionaryRepository struct {
	db *gorm.DB
}

// NewGormDictionaryRepository creates a new GormDictionaryRepository
func NewGormDictionaryRepository(db *gorm.DB) *GormDictionaryRepository {
	return &GormDictionaryRepository{db: db}
}

// FindAll finds entries matching the query for a tenant
func (r *GormDictionaryRepository) FindAll(ctx context.Context, tenantID uuid.UUID, query dictionary.Query) ([]dictionary.Entry, error) {
	var entries []dictionary.Entry
	q := r.db.WithContext(ctx).
		Model(&dictionary.Entry{}).
		Where("tenant_id = ?", tenantID)

	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}
	if query.MaintenanceRole != "" {
		q = q.Where("maintenance_role = ?", query.MaintenanceRole)
	}
	switch query.Schema {
	case dictionary.SchemaProduct:
		q = q.Where("in_product_schema = ?", true)
	case dictionary.SchemaCatalog:
		q = q.Where("in_catalog_schema = ?", true)
	case dictionary.SchemaPricing:
		q = q.Where("in_pricing_schema = ?", true)
	}
	if query.RequiredOnly {
		q = q.Where("required_for_active = ?", true)
	}
	if query.Search != "" {
		searchPattern := "%" + query.Search + "%"
		q = q.Where("column_name ILIKE ? OR display_name ILIKE ? OR description ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	if err := q.Order("entity_name ASC, column_name ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByColumn finds an entry by column name within a tenant
func (r *GormDictionaryRepository) FindByColumn(ctx context.Context, tenantID uuid.UUID, columnName string) (*dictionary.Entry, error) {
	var entry dictionary.Entry
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND column_name = ?", tenantID, columnName).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// DistinctCategories returns the distinct categories in use
func (r *GormDictionaryRepository) DistinctCategories(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&dictionary.Entry{}).
		Distinct("category").
		Where("tenant_id = ? AND category != ''", tenantID).
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindWithValidationRules finds entries that carry validation constraints
func (r *GormDictionaryRepository) FindWithValidationRules(ctx context.Context, tenantID uuid.UUID) ([]dictionary.Entry, error) {
	var entries []dictionary.Entry
	if err := r.db.WithContext(ctx).
		Model(&dictionary.Entry{}).
		Where("tenant_id = ?", tenantID).
		Where("required_for_active = ? OR validation_pattern != '' OR min_length IS NOT NULL OR max_length IS NOT NULL OR allowed_values IS NOT NULL",
			true).
		Order("column_name ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates an entry
func (r *GormDictionaryRepository) Save(ctx context.Context, entry *dictionary.Entry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Ensure GormDictionaryRepository implements dictionary.Repository
var _ dictionary.Repository = (*GormDictionaryRepository)(nil)
