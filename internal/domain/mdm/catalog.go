package mdm

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// CatalogStatus represents the lifecycle status of a catalog
type CatalogStatus string

const (
	CatalogStatusDraft    CatalogStatus = "draft"
	CatalogStatusActive   CatalogStatus = "active"
	CatalogStatusArchived CatalogStatus = "archived"
)

// DefaultCatalogCurrency is used when no currency is supplied
const DefaultCatalogCurrency = "USD"

// Catalog groups products for a region and sales channel.
// At most one catalog per region+channel pair may be the default.
type Catalog struct {
	shared.TenantAggregateRoot
	RegionID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_catalog_scope,priority:2"`
	ChannelID     uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_catalog_scope,priority:3"`
	Code          string        `gorm:"type:varchar(64);not null;uniqueIndex:idx_catalog_scope,priority:4"`
	Name          string        `gorm:"type:varchar(200);not null"`
	Description   string        `gorm:"type:text"`
	Currency      string        `gorm:"type:varchar(3);not null;default:'USD'"`
	Priority      int           `gorm:"not null;default:0"`
	EffectiveFrom *time.Time    `gorm:""`
	EffectiveTo   *time.Time    `gorm:""`
	IsDefault     bool          `gorm:"not null;default:false"`
	Status        CatalogStatus `gorm:"type:varchar(20);not null;default:'draft'"`
}

// TableName returns the table name for GORM
func (Catalog) TableName() string {
	return "catalogs"
}

// NewCatalog creates a new catalog in draft status
func NewCatalog(tenantID, regionID, channelID uuid.UUID, code, name, currency string) (*Catalog, error) {
	if err := validateCatalogCode(code); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Catalog name cannot be empty")
	}
	if regionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Catalog region is required")
	}
	if channelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Catalog channel is required")
	}
	if currency == "" {
		currency = DefaultCatalogCurrency
	}

	catalog := &Catalog{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		RegionID:            regionID,
		ChannelID:           channelID,
		Code:                strings.ToUpper(code),
		Name:                name,
		Currency:            strings.ToUpper(currency),
		Status:              CatalogStatusDraft,
	}

	catalog.AddDomainEvent(NewCatalogCreatedEvent(catalog))

	return catalog, nil
}

// Update updates the catalog's descriptive fields
func (c *Catalog) Update(name, description string, priority int) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Catalog name cannot be empty")
	}

	c.Name = name
	c.Description = description
	c.Priority = priority
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCatalogUpdatedEvent(c))

	return nil
}

// SetEffectiveWindow sets the validity window of the catalog
func (c *Catalog) SetEffectiveWindow(from, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return shared.NewDomainError("INVALID_INPUT", "Effective end cannot precede effective start")
	}
	c.EffectiveFrom = from
	c.EffectiveTo = to
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// MarkDefault marks this catalog as the default for its region+channel.
// The previous default must be cleared in the same transaction.
func (c *Catalog) MarkDefault() {
	if c.IsDefault {
		return
	}
	c.IsDefault = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// ClearDefault clears the default flag
func (c *Catalog) ClearDefault() {
	if !c.IsDefault {
		return
	}
	c.IsDefault = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// ChangeStatus transitions the catalog to a new lifecycle status
func (c *Catalog) ChangeStatus(status CatalogStatus) error {
	switch status {
	case CatalogStatusDraft, CatalogStatusActive, CatalogStatusArchived:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown catalog status: "+string(status))
	}
	if c.Status == status {
		return nil
	}
	if c.Status == CatalogStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Cannot change status of an archived catalog")
	}

	c.Status = status
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsActive returns true if the catalog is active
func (c *Catalog) IsActive() bool {
	return c.Status == CatalogStatusActive
}

// validateCatalogCode validates the catalog code
func validateCatalogCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Catalog code cannot be empty")
	}
	if len(code) > 64 {
		return shared.NewDomainError("INVALID_CODE", "Catalog code cannot exceed 64 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Catalog code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
