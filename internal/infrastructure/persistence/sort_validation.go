package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort direction to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(sortDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(sortDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is empty or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"sku":          true,
	"name":         true,
	"product_type": true,
	"status":       true,
	"base_price":   true,
	"cost_price":   true,
}

// CatalogSortFields contains allowed sort fields for catalogs
var CatalogSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"code":           true,
	"name":           true,
	"currency":       true,
	"priority":       true,
	"status":         true,
	"is_default":     true,
	"effective_from": true,
	"effective_to":   true,
}

// CatalogEntrySortFields contains allowed sort fields for catalog entry listings.
// Product columns come from the join against the products table.
var CatalogEntrySortFields = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"pricing_mode": true,
	"is_active":    true,
	"is_featured":  true,
	"product_sku":  true,
	"product_name": true,
	"base_price":   true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"email":         true,
	"name":          true,
	"role":          true,
	"active":        true,
	"last_login_at": true,
}

// DictionarySortFields contains allowed sort fields for dictionary entries
var DictionarySortFields = map[string]bool{
	"entity_name":      true,
	"column_name":      true,
	"display_name":     true,
	"category":         true,
	"maintenance_role": true,
	"data_type":        true,
}
