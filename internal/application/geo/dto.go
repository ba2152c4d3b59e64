package geo

import (
	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/geo"
)

// TreeNode is one node of the nested geographic tree
type TreeNode struct {
	ID         uuid.UUID         `json:"id"`
	Type       string            `json:"type"`
	Code       string            `json:"code"`
	Name       string            `json:"name"`
	Properties *LocaleProperties `json:"properties,omitempty"`
	Compliance *CountryScreening `json:"compliance,omitempty"`
	Children   []TreeNode        `json:"children,omitempty"`
}

// LocaleProperties carries the locale-level settings on leaf nodes
type LocaleProperties struct {
	LanguageCode string `json:"language_code"`
	Currency     string `json:"currency"`
	RTL          bool   `json:"rtl"`
	DateFormat   string `json:"date_format,omitempty"`
	NumberFormat string `json:"number_format,omitempty"`
	Priority     int    `json:"priority"`
	IsPrimary    bool   `json:"is_primary"`
}

// CreateNodeRequest creates a node at any level of the hierarchy
type CreateNodeRequest struct {
	NodeType   string             `json:"node_type" binding:"required,oneof=region country locale"`
	Name       string             `json:"name" binding:"required,max=100"`
	Code       string             `json:"code" binding:"required,max=16"`
	ParentID   *uuid.UUID         `json:"parent_id"`
	Properties *NodePropertiesDTO `json:"properties"`
}

// NodePropertiesDTO are the optional locale settings on create. Omitted
// fields fall back to the parent country's defaults.
type NodePropertiesDTO struct {
	LanguageCode string `json:"language_code"`
	Currency     string `json:"currency"`
	RTL          *bool  `json:"rtl"`
	DateFormat   string `json:"date_format"`
	NumberFormat string `json:"number_format"`
	Priority     int    `json:"priority"`
}

func localeProperties(l *geo.Locale) *LocaleProperties {
	return &LocaleProperties{
		LanguageCode: l.LanguageCode,
		Currency:     l.Currency,
		RTL:          l.RTL,
		DateFormat:   l.DateFormat,
		NumberFormat: l.NumberFormat,
		Priority:     l.Priority,
		IsPrimary:    l.IsPrimary,
	}
}
