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

// GormRegionRepository implements RegionRepository using GORM
type GormRegionRepository struct {
	db *gorm.DB
}

// NewGormRegionRepository creates a new GormRegionRepository
func NewGormRegionRepository(db *gorm.DB) *GormRegionRepository {
	return &GormRegionRepository{db: db}
}

// FindByID finds a region by its ID
func (r *GormRegionRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*geo.Region, error) {
	var region geo.Region
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&region).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &region, nil
}

// FindByCode finds a region by code within a tenant
func (r *GormRegionRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*geo.Region, error) {
	var region geo.Region
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code)).
		First(&region).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &region, nil
}

// FindAllForTenant finds all regions for a tenant
func (r *GormRegionRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]geo.Region, error) {
	var regions []geo.Region
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("code ASC").
		Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

// Save creates or updates a region
func (r *GormRegionRepository) Save(ctx context.Context, region *geo.Region) error {
	return r.db.WithContext(ctx).Save(region).Error
}

// Delete deletes a region
func (r *GormRegionRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&geo.Region{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountCountries counts the countries under a region
func (r *GormRegionRepository) CountCountries(ctx context.Context, tenantID, regionID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&geo.Country{}).
		Where("tenant_id = ? AND region_id = ?", tenantID, regionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormRegionRepository implements RegionRepository
var _ geo.RegionRepository = (*GormRegionRepository)(nil)
