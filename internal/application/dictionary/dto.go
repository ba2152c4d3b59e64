package dictionary

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/dictionary"
)

// ListFilter represents filter options for the dictionary listing
type ListFilter struct {
	Category        string `form:"category"`
	MaintenanceRole string `form:"maintenance_role"`
	Schema          string `form:"schema" binding:"omitempty,oneof=product catalog pricing"`
	RequiredOnly    bool   `form:"required_only"`
	Search          string `form:"search"`
}

// EntryResponse represents a dictionary entry in API responses
type EntryResponse struct {
	ID                uuid.UUID `json:"id"`
	EntityName        string    `json:"entity_name"`
	ColumnName        string    `json:"column_name"`
	DisplayName       string    `json:"display_name"`
	Description       *string   `json:"description"`
	Category          string    `json:"category"`
	MaintenanceRole   string    `json:"maintenance_role"`
	DataType          string    `json:"data_type"`
	ValidationPattern string    `json:"validation_pattern,omitempty"`
	MinLength         *int      `json:"min_length,omitempty"`
	MaxLength         *int      `json:"max_length,omitempty"`
	AllowedValues     []string  `json:"allowed_values,omitempty"`
	RequiredForActive bool      `json:"required_for_active"`
	Schemas           []string  `json:"schemas"`
}

// ValidationRule is the per-column rule map served to editors
type ValidationRule struct {
	Required      bool     `json:"required"`
	MinLength     *int     `json:"min_length,omitempty"`
	MaxLength     *int     `json:"max_length,omitempty"`
	Pattern       string   `json:"pattern,omitempty"`
	AllowedValues []string `json:"allowed_values,omitempty"`
	DataType      string   `json:"data_type"`
}

// ToEntryResponse converts a domain Entry to EntryResponse
func ToEntryResponse(e *dictionary.Entry) EntryResponse {
	return EntryResponse{
		ID:                e.ID,
		EntityName:        e.EntityName,
		ColumnName:        e.ColumnName,
		DisplayName:       e.DisplayName,
		Description:       e.Description,
		Category:          e.Category,
		MaintenanceRole:   e.MaintenanceRole,
		DataType:          e.DataType,
		ValidationPattern: e.ValidationPattern,
		MinLength:         e.MinLength,
		MaxLength:         e.MaxLength,
		AllowedValues:     decodeAllowedValues(e.AllowedValues),
		RequiredForActive: e.RequiredForActive,
		Schemas:           e.Schemas(),
	}
}

func decodeAllowedValues(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}
