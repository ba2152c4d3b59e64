package dictionary

import (
	"context"

	"github.com/google/uuid"
)

// Query narrows a dictionary listing. All criteria are optional and
// combine with AND. Search matches column name, display name, and
// description case-insensitively; entries with a null description still
// match on the other two fields.
type Query struct {
	Category        string
	MaintenanceRole string
	Schema          string
	RequiredOnly    bool
	Search          string
}

// Repository defines the interface for dictionary persistence
type Repository interface {
	// FindAll finds entries matching the query for a tenant
	FindAll(ctx context.Context, tenantID uuid.UUID, query Query) ([]Entry, error)

	// FindByColumn finds an entry by column name within a tenant
	FindByColumn(ctx context.Context, tenantID uuid.UUID, columnName string) (*Entry, error)

	// DistinctCategories returns the distinct categories in use
	DistinctCategories(ctx context.Context, tenantID uuid.UUID) ([]string, error)

	// FindWithValidationRules finds entries that carry validation constraints
	FindWithValidationRules(ctx context.Context, tenantID uuid.UUID) ([]Entry, error)

	// Save creates or updates an entry
	Save(ctx context.Context, entry *Entry) error
}
