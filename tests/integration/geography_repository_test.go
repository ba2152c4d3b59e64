package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdm/backend/internal/domain/geo"
	"github.com/mdm/backend/internal/domain/shared"
	"github.com/mdm/backend/internal/infrastructure/persistence"
)

// TestGeographyRepositories_Integration tests the region/country/locale
// hierarchy against a real PostgreSQL database
func TestGeographyRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()
	tenantID := uuid.New()

	regionRepo := persistence.NewGormRegionRepository(testDB.DB)
	countryRepo := persistence.NewGormCountryRepository(testDB.DB)
	localeRepo := persistence.NewGormLocaleRepository(testDB.DB)

	region, err := geo.NewRegion(tenantID, "EMEA", "Europe, Middle East and Africa")
	require.NoError(t, err)
	require.NoError(t, regionRepo.Save(ctx, region))

	t.Run("Region FindByCode and FindAllForTenant", func(t *testing.T) {
		found, err := regionRepo.FindByCode(ctx, tenantID, "EMEA")
		require.NoError(t, err)
		assert.Equal(t, region.ID, found.ID)

		regions, err := regionRepo.FindAllForTenant(ctx, tenantID)
		require.NoError(t, err)
		assert.Len(t, regions, 1)

		_, err = regionRepo.FindByCode(ctx, uuid.New(), "EMEA")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("Country under region", func(t *testing.T) {
		country, err := geo.NewCountry(tenantID, region.ID, "DE", "Germany")
		require.NoError(t, err)
		require.NoError(t, countryRepo.Save(ctx, country))

		found, err := countryRepo.FindByCode(ctx, tenantID, "DE")
		require.NoError(t, err)
		assert.Equal(t, region.ID, found.RegionID)

		inRegion, err := countryRepo.FindByRegion(ctx, tenantID, region.ID)
		require.NoError(t, err)
		assert.Len(t, inRegion, 1)

		count, err := regionRepo.CountCountries(ctx, tenantID, region.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Locale under country", func(t *testing.T) {
		country, err := countryRepo.FindByCode(ctx, tenantID, "DE")
		require.NoError(t, err)

		locale, err := geo.NewLocale(tenantID, country.ID, "de-DE", "German (Germany)", "de", "EUR")
		require.NoError(t, err)
		require.NoError(t, localeRepo.Save(ctx, locale))

		locales, err := localeRepo.FindByCountry(ctx, tenantID, country.ID)
		require.NoError(t, err)
		require.Len(t, locales, 1)
		assert.Equal(t, "de-DE", locales[0].Code)

		codes, err := localeRepo.CodesByCountry(ctx, tenantID, country.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"de-DE"}, codes)

		count, err := countryRepo.CountLocales(ctx, tenantID, country.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Country delete cascades to locales", func(t *testing.T) {
		country, err := countryRepo.FindByCode(ctx, tenantID, "DE")
		require.NoError(t, err)

		require.NoError(t, countryRepo.Delete(ctx, tenantID, country.ID))

		locales, err := localeRepo.FindByCountry(ctx, tenantID, country.ID)
		require.NoError(t, err)
		assert.Empty(t, locales)
	})

	t.Run("Region delete", func(t *testing.T) {
		doomed, err := geo.NewRegion(tenantID, "APAC", "Asia Pacific")
		require.NoError(t, err)
		require.NoError(t, regionRepo.Save(ctx, doomed))

		require.NoError(t, regionRepo.Delete(ctx, tenantID, doomed.ID))

		_, err = regionRepo.FindByID(ctx, tenantID, doomed.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("Duplicate region code rejected", func(t *testing.T) {
		dup, err := geo.NewRegion(tenantID, "EMEA", "Duplicate")
		require.NoError(t, err)
		assert.Error(t, regionRepo.Save(ctx, dup))
	})
}
