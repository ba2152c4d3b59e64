package mdm

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// Channel is a sales channel catalogs are published to (web, partner, direct)
type Channel struct {
	shared.TenantAggregateRoot
	Code        string `gorm:"type:varchar(32);not null;uniqueIndex:idx_channel_tenant_code,priority:2"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Channel) TableName() string {
	return "channels"
}

// NewChannel creates a new sales channel
func NewChannel(tenantID uuid.UUID, code, name, description string) (*Channel, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Channel code cannot be empty")
	}
	if len(code) > 32 {
		return nil, shared.NewDomainError("INVALID_CODE", "Channel code cannot exceed 32 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Channel name cannot be empty")
	}

	return &Channel{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		Description:         description,
		Active:              true,
	}, nil
}

// Deactivate marks the channel as inactive
func (c *Channel) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
