package dictionary

import (
	"context"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/dictionary"
)

// Service serves the data-dictionary metadata screens
type Service struct {
	repo dictionary.Repository
}

// NewService creates a new dictionary Service
func NewService(repo dictionary.Repository) *Service {
	return &Service{repo: repo}
}

// List returns dictionary entries matching the filter
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]EntryResponse, error) {
	entries, err := s.repo.FindAll(ctx, tenantID, dictionary.Query{
		Category:        filter.Category,
		MaintenanceRole: filter.MaintenanceRole,
		Schema:          filter.Schema,
		RequiredOnly:    filter.RequiredOnly,
		Search:          filter.Search,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses, nil
}

// Categories returns the distinct categories in use
func (s *Service) Categories(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	return s.repo.DistinctCategories(ctx, tenantID)
}

// ValidationRules returns the column name to rule map for client-side
// form validation.
func (s *Service) ValidationRules(ctx context.Context, tenantID uuid.UUID) (map[string]ValidationRule, error) {
	entries, err := s.repo.FindWithValidationRules(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	rules := make(map[string]ValidationRule, len(entries))
	for i := range entries {
		entry := &entries[i]
		rules[entry.ColumnName] = ValidationRule{
			Required:      entry.RequiredForActive,
			MinLength:     entry.MinLength,
			MaxLength:     entry.MaxLength,
			Pattern:       entry.ValidationPattern,
			AllowedValues: decodeAllowedValues(entry.AllowedValues),
			DataType:      entry.DataType,
		}
	}
	return rules, nil
}
