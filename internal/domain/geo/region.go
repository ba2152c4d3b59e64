package geo

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// NodeType identifies a level of the geographic hierarchy
type NodeType string

const (
	NodeTypeRegion  NodeType = "region"
	NodeTypeCountry NodeType = "country"
	NodeTypeLocale  NodeType = "locale"
)

// Region is the top level of the geographic hierarchy (EMEA, APAC, NA)
type Region struct {
	shared.TenantAggregateRoot
	Code        string `gorm:"type:varchar(16);not null;uniqueIndex:idx_region_tenant_code,priority:2"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Region) TableName() string {
	return "regions"
}

// NewRegion creates a new region
func NewRegion(tenantID uuid.UUID, code, name string) (*Region, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Region code cannot be empty")
	}
	if len(code) > 16 {
		return nil, shared.NewDomainError("INVALID_CODE", "Region code cannot exceed 16 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Region name cannot be empty")
	}

	return &Region{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
	}, nil
}

// Update updates the region's descriptive fields
func (r *Region) Update(name, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Region name cannot be empty")
	}
	r.Name = name
	r.Description = description
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}
