package geo

import (
	"context"

	"github.com/google/uuid"
)

// RegionRepository defines the interface for region persistence
type RegionRepository interface {
	// FindByID finds a region by its ID
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Region, error)

	// FindByCode finds a region by code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Region, error)

	// FindAllForTenant finds all regions for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Region, error)

	// Save creates or updates a region
	Save(ctx context.Context, region *Region) error

	// Delete deletes a region
	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	// CountCountries counts the countries under a region
	CountCountries(ctx context.Context, tenantID, regionID uuid.UUID) (int64, error)
}

// CountryRepository defines the interface for country persistence
type CountryRepository interface {
	// FindByID finds a country by its ID
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Country, error)

	// FindByCode finds a country by code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Country, error)

	// FindByRegion finds all countries under a region
	FindByRegion(ctx context.Context, tenantID, regionID uuid.UUID) ([]Country, error)

	// FindAllForTenant finds all countries for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Country, error)

	// Save creates or updates a country
	Save(ctx context.Context, country *Country) error

	// Delete deletes a country
	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	// CountLocales counts the locales under a country
	CountLocales(ctx context.Context, tenantID, countryID uuid.UUID) (int64, error)
}

// LocaleRepository defines the interface for locale persistence
type LocaleRepository interface {
	// FindByID finds a locale by its ID
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Locale, error)

	// FindByCountry finds all locales under a country ordered by priority
	FindByCountry(ctx context.Context, tenantID, countryID uuid.UUID) ([]Locale, error)

	// FindAllForTenant finds all locales for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]Locale, error)

	// CodesByCountry returns the locale codes in use under a country
	CodesByCountry(ctx context.Context, tenantID, countryID uuid.UUID) ([]string, error)

	// Save creates or updates a locale
	Save(ctx context.Context, locale *Locale) error

	// Delete deletes a locale
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
