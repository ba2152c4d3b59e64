package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdm/backend/internal/domain/geo"
	"github.com/mdm/backend/internal/domain/shared"
)

// GormCountryRepository implements CountryRepository using GORM
type GormCountryRepository struct {
	db *gorm.DB
}

// NewGormCountryRepository creates a new GormCountryRepository
func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

// FindByID finds a country by its ID
func (r *GormCountryRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*geo.Country, error) {
	var country geo.Country
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &country, nil
}

// FindByCode finds a country by code within a tenant
func (r *GormCountryRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*geo.Country, error) {
	var country geo.Country
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code)).
		First(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &country, nil
}

// FindByRegion finds all countries under a region
func (r *GormCountryRepository) FindByRegion(ctx context.Context, tenantID, regionID uuid.UUID) ([]geo.Country, error) {
	var countries []geo.Country
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND region_id = ?", tenantID, regionID).
		Order("code ASC").
		Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// FindAllForTenant finds all countries for a tenant
func (r *GormCountryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]geo.Country, error) {
	var countries []geo.Country
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("code ASC").
		Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// Save creates or updates a country
func (r *GormCountryRepository) Save(ctx context.Context, country *geo.Country) error {
	return r.db.WithContext(ctx).Save(country).Error
}

// Delete deletes a country
func (r *GormCountryRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&geo.Country{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountLocales counts the locales under a country
func (r *GormCountryRepository) CountLocales(ctx context.Context, tenantID, countryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&geo.Locale{}).
		Where("tenant_id = ? AND country_id = ?", tenantID, countryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCountryRepository implements CountryRepository
var _ geo.CountryRepository = (*GormCountryRepository)(nil)
