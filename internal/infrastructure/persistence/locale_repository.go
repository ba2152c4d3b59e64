package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdm/backend/internal/domain/geo"
	"github.com/mdm/backend/internal/domain/shared"
)

// GormLocaleRepository implements LocaleRepository using GORM
type GormLocaleRepository struct {
	db *gorm.DB
}

// NewGormLocaleRepository creates a new GormLocaleRepository
func NewGormLocaleRepository(db *gorm.DB) *GormLocaleRepository {
	return &GormLocaleRepository{db: db}
}

// FindByID finds a locale by its ID
func (r *GormLocaleRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*geo.Locale, error) {
	var locale geo.Locale
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&locale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &locale, nil
}

// FindByCountry finds all locales under a country ordered by priority
func (r *GormLocaleRepository) FindByCountry(ctx context.Context, tenantID, countryID uuid.UUID) ([]geo.Locale, error) {
	var locales []geo.Locale
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND country_id = ?", tenantID, countryID).
		Order("priority ASC, code ASC").
		Find(&locales).Error; err != nil {
		return nil, err
	}
	return locales, nil
}

// FindAllForTenant finds all locales for a tenant
func (r *GormLocaleRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]geo.Locale, error) {
	var locales []geo.Locale
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("priority ASC, code ASC").
		Find(&locales).Error; err != nil {
		return nil, err
	}
	return locales, nil
}

// CodesByCountry returns the locale codes in use under a country
func (r *GormLocaleRepository) CodesByCountry(ctx context.Context, tenantID, countryID uuid.UUID) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&geo.Locale{}).
		Where("tenant_id = ? AND country_id = ?", tenantID, countryID).
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Save creates or updates a locale
func (r *GormLocaleRepository) Save(ctx context.Context, locale *geo.Locale) error {
	return r.db.WithContext(ctx).Save(locale).Error
}

// Delete deletes a locale
func (r *GormLocaleRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&geo.Locale{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormLocaleRepository implements LocaleRepository
var _ geo.LocaleRepository = (*GormLocaleRepository)(nil)
