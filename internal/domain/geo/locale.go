package geo

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/mdm/backend/internal/domain/shared"
)

// Locale is the leaf of the geographic hierarchy: a language+country
// combination with its formatting conventions. The locale with priority 1
// is the primary locale of its country and cannot be deleted.
type Locale struct {
	shared.TenantAggregateRoot
	CountryID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_locale_country_code,priority:1"`
	Code         string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_locale_country_code,priority:2"`
	Name         string    `gorm:"type:varchar(100);not null"`
	LanguageCode string    `gorm:"type:varchar(16);not null"`
	Currency     string    `gorm:"type:varchar(3);not null"`
	RTL          bool      `gorm:"not null;default:false"`
	DateFormat   string    `gorm:"type:varchar(20)"`
	NumberFormat string    `gorm:"type:varchar(20)"`
	Priority     int       `gorm:"not null;default:0"`
	IsPrimary    bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Locale) TableName() string {
	return "locales"
}

// NewLocale creates a new locale under a country
func NewLocale(tenantID, countryID uuid.UUID, code, name, languageCode, currencyCode string) (*Locale, error) {
	if countryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Locale requires a parent country")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Locale code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Locale name cannot be empty")
	}
	if err := ValidateLanguageCode(languageCode); err != nil {
		return nil, err
	}
	if err := ValidateCurrencyCode(currencyCode); err != nil {
		return nil, err
	}

	return &Locale{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CountryID:           countryID,
		Code:                code,
		Name:                name,
		LanguageCode:        languageCode,
		Currency:            strings.ToUpper(currencyCode),
	}, nil
}

// SetFormatting sets the display conventions
func (l *Locale) SetFormatting(dateFormat, numberFormat string, rtl bool) {
	l.DateFormat = dateFormat
	l.NumberFormat = numberFormat
	l.RTL = rtl
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// SetPriority sets the ordering priority. Priority 1 marks the primary
// locale of the country.
func (l *Locale) SetPriority(priority int) {
	l.Priority = priority
	l.IsPrimary = priority == 1
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// ValidateLanguageCode checks that the code parses as a BCP-47 tag
func ValidateLanguageCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_LANGUAGE", "Language code cannot be empty")
	}
	if _, err := language.Parse(strings.ReplaceAll(code, "_", "-")); err != nil {
		return shared.NewDomainError("INVALID_LANGUAGE", "Not a valid language tag: "+code)
	}
	return nil
}

// ValidateCurrencyCode checks that the code is a known ISO-4217 currency
func ValidateCurrencyCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency code cannot be empty")
	}
	if _, err := currency.ParseISO(code); err != nil {
		return shared.NewDomainError("INVALID_CURRENCY", "Not a valid ISO-4217 currency: "+code)
	}
	return nil
}

// UniqueLocaleCode returns a locale code that does not collide with any
// of the existing codes, appending _1, _2, ... until it is unique.
func UniqueLocaleCode(base string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, code := range existing {
		taken[strings.ToLower(code)] = struct{}{}
	}

	if _, ok := taken[strings.ToLower(base)]; !ok {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if _, ok := taken[strings.ToLower(candidate)]; !ok {
			return candidate
		}
	}
}
