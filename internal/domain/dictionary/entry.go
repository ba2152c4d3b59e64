package dictionary

import (
	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// Schema labels derived from the presence flags
const (
	SchemaProduct = "product"
	SchemaCatalog = "catalog"
	SchemaPricing = "pricing"
)

// Entry describes one column of the managed data model: where it lives,
// who maintains it, and how values are validated. Entries are reference
// data loaded by migrations and read by the API.
type Entry struct {
	shared.BaseEntity
	TenantID          uuid.UUID `gorm:"type:uuid;not null;index"`
	EntityName        string    `gorm:"type:varchar(100);not null"`
	ColumnName        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_dictionary_tenant_column,priority:2"`
	DisplayName       string    `gorm:"type:varchar(200);not null"`
	Description       *string   `gorm:"type:text"`
	Category          string    `gorm:"type:varchar(100);index"`
	MaintenanceRole   string    `gorm:"type:varchar(100);index"`
	DataType          string    `gorm:"type:varchar(50);not null"`
	ValidationPattern string    `gorm:"type:text"`
	MinLength         *int      `gorm:""`
	MaxLength         *int      `gorm:""`
	AllowedValues     []byte    `gorm:"type:jsonb"`
	RequiredForActive bool      `gorm:"not null;default:false"`
	InProductSchema   bool      `gorm:"not null;default:false"`
	InCatalogSchema   bool      `gorm:"not null;default:false"`
	InPricingSchema   bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "data_dictionary"
}

// Schemas returns the list of schema labels this column appears in
func (e *Entry) Schemas() []string {
	schemas := make([]string, 0, 3)
	if e.InProductSchema {
		schemas = append(schemas, SchemaProduct)
	}
	if e.InCatalogSchema {
		schemas = append(schemas, SchemaCatalog)
	}
	if e.InPricingSchema {
		schemas = append(schemas, SchemaPricing)
	}
	return schemas
}

// InSchema reports whether the column appears in the named schema
func (e *Entry) InSchema(schema string) bool {
	switch schema {
	case SchemaProduct:
		return e.InProductSchema
	case SchemaCatalog:
		return e.InCatalogSchema
	case SchemaPricing:
		return e.InPricingSchema
	default:
		return false
	}
}

// HasValidationRule reports whether the entry carries any validation constraint
func (e *Entry) HasValidationRule() bool {
	return e.RequiredForActive ||
		e.ValidationPattern != "" ||
		e.MinLength != nil ||
		e.MaxLength != nil ||
		len(e.AllowedValues) > 0
}
