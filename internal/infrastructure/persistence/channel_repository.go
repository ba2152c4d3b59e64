package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
)

// GormChannelRepository implements ChannelRepository using GORM
type GormChannelRepository struct {
	db *gorm.DB
}

// NewGormChannelRepository creates a new GormChannelRepository
func NewGormChannelRepository(db *gorm.DB) *GormChannelRepository {
	return &GormChannelRepository{db: db}
}

// FindByID finds a channel by its ID
func (r *GormChannelRepository) FindByID(ctx context.Context, id uuid.UUID) (*mdm.Channel, error) {
	var channel mdm.Channel
	if err := r.db.WithContext(ctx).First(&channel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &channel, nil
}

// FindByCode finds a channel by code within a tenant
func (r *GormChannelRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*mdm.Channel, error) {
	var channel mdm.Channel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code)).
		First(&channel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &channel, nil
}

// FindAllForTenant finds all channels for a tenant
func (r *GormChannelRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]mdm.Channel, error) {
	var channels []mdm.Channel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("code ASC").
		Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

// Save creates or updates a channel
func (r *GormChannelRepository) Save(ctx context.Context, channel *mdm.Channel) error {
	return r.db.WithContext(ctx).Save(channel).Error
}

// Ensure GormChannelRepository implements ChannelRepository
var _ mdm.ChannelRepository = (*GormChannelRepository)(nil)
