package geo

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// Country is the middle level of the geographic hierarchy
type Country struct {
	shared.TenantAggregateRoot
	RegionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code     string    `gorm:"type:varchar(2);not null;uniqueIndex:idx_country_tenant_code,priority:2"`
	Name     string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Country) TableName() string {
	return "countries"
}

// NewCountry creates a new country under a region
func NewCountry(tenantID, regionID uuid.UUID, code, name string) (*Country, error) {
	if regionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Country requires a parent region")
	}
	if len(code) != 2 {
		return nil, shared.NewDomainError("INVALID_CODE", "Country code must be a 2-letter ISO code")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Country name cannot be empty")
	}

	return &Country{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		RegionID:            regionID,
		Code:                strings.ToUpper(code),
		Name:                name,
	}, nil
}

// Update updates the country name
func (c *Country) Update(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Country name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// CountryDefaults are the locale defaults derived from a country code
type CountryDefaults struct {
	LanguageCode string
	Currency     string
	DateFormat   string
	NumberFormat string
	RTL          bool
}

// countryDefaults maps ISO country codes to their conventional locale
// settings. Used when a locale is created without explicit properties.
var countryDefaults = map[string]CountryDefaults{
	"US": {LanguageCode: "en-US", Currency: "USD", DateFormat: "MM/DD/YYYY", NumberFormat: "1,234.56"},
	"GB": {LanguageCode: "en-GB", Currency: "GBP", DateFormat: "DD/MM/YYYY", NumberFormat: "1,234.56"},
	"DE": {LanguageCode: "de-DE", Currency: "EUR", DateFormat: "DD.MM.YYYY", NumberFormat: "1.234,56"},
	"FR": {LanguageCode: "fr-FR", Currency: "EUR", DateFormat: "DD/MM/YYYY", NumberFormat: "1 234,56"},
	"ES": {LanguageCode: "es-ES", Currency: "EUR", DateFormat: "DD/MM/YYYY", NumberFormat: "1.234,56"},
	"IT": {LanguageCode: "it-IT", Currency: "EUR", DateFormat: "DD/MM/YYYY", NumberFormat: "1.234,56"},
	"NL": {LanguageCode: "nl-NL", Currency: "EUR", DateFormat: "DD-MM-YYYY", NumberFormat: "1.234,56"},
	"JP": {LanguageCode: "ja-JP", Currency: "JPY", DateFormat: "YYYY/MM/DD", NumberFormat: "1,234"},
	"CN": {LanguageCode: "zh-CN", Currency: "CNY", DateFormat: "YYYY-MM-DD", NumberFormat: "1,234.56"},
	"KR": {LanguageCode: "ko-KR", Currency: "KRW", DateFormat: "YYYY.MM.DD", NumberFormat: "1,234"},
	"IN": {LanguageCode: "hi-IN", Currency: "INR", DateFormat: "DD-MM-YYYY", NumberFormat: "1,23,456.78"},
	"BR": {LanguageCode: "pt-BR", Currency: "BRL", DateFormat: "DD/MM/YYYY", NumberFormat: "1.234,56"},
	"MX": {LanguageCode: "es-MX", Currency: "MXN", DateFormat: "DD/MM/YYYY", NumberFormat: "1,234.56"},
	"CA": {LanguageCode: "en-CA", Currency: "CAD", DateFormat: "YYYY-MM-DD", NumberFormat: "1,234.56"},
	"AU": {LanguageCode: "en-AU", Currency: "AUD", DateFormat: "DD/MM/YYYY", NumberFormat: "1,234.56"},
	"SA": {LanguageCode: "ar-SA", Currency: "SAR", DateFormat: "DD/MM/YYYY", NumberFormat: "1,234.56", RTL: true},
	"AE": {LanguageCode: "ar-AE", Currency: "AED", DateFormat: "DD/MM/YYYY", NumberFormat: "1,234.56", RTL: true},
	"IL": {LanguageCode: "he-IL", Currency: "ILS", DateFormat: "DD/MM/YYYY", NumberFormat: "1,234.56", RTL: true},
}

// fallbackDefaults apply when a country has no entry in the lookup table
var fallbackDefaults = CountryDefaults{
	LanguageCode: "en-US",
	Currency:     "USD",
	DateFormat:   "YYYY-MM-DD",
	NumberFormat: "1,234.56",
}

// DefaultsForCountry returns the conventional locale settings for a
// country code, falling back to neutral defaults for unknown countries.
func DefaultsForCountry(code string) CountryDefaults {
	if d, ok := countryDefaults[strings.ToUpper(code)]; ok {
		return d
	}
	return fallbackDefaults
}
