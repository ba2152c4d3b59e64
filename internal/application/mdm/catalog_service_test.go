package mdm

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mdm/backend/internal/domain/geo"
	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
)

type catalogFixture struct {
	catalogRepo *MockCatalogRepository
	channelRepo *MockChannelRepository
	regionRepo  *MockRegionRepository
	svc         *CatalogService
	tenantID    uuid.UUID
	region      *geo.Region
	channel     *mdm.Channel
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	tenantID := uuid.New()

	region, err := geo.NewRegion(tenantID, "EMEA", "Europe, Middle East, Africa")
	require.NoError(t, err)

	channel, err := mdm.NewChannel(tenantID, "WEB", "Web Store", "")
	require.NoError(t, err)

	f := &catalogFixture{
		catalogRepo: new(MockCatalogRepository),
		channelRepo: new(MockChannelRepository),
		regionRepo:  new(MockRegionRepository),
		tenantID:    tenantID,
		region:      region,
		channel:     channel,
	}
	f.svc = NewCatalogService(f.catalogRepo, f.channelRepo, f.regionRepo)
	return f
}

func TestCatalogServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates catalog with region ID", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.regionRepo.On("FindByID", ctx, f.tenantID, f.region.ID).Return(f.region, nil)
		f.channelRepo.On("FindByID", ctx, f.channel.ID).Return(f.channel, nil)
		f.catalogRepo.On("ExistsByCode", ctx, f.tenantID, f.region.ID, f.channel.ID, "EMEA-WEB").Return(false, nil)
		f.catalogRepo.On("Save", ctx, mock.AnythingOfType("*mdm.Catalog")).Return(nil)

		resp, err := f.svc.Create(ctx, f.tenantID, CreateCatalogRequest{
			Code:      "EMEA-WEB",
			Name:      "EMEA Web",
			RegionID:  &f.region.ID,
			ChannelID: f.channel.ID,
			Currency:  "EUR",
		})
		require.NoError(t, err)
		assert.Equal(t, "EMEA-WEB", resp.Code)
		assert.Equal(t, "EUR", resp.Currency)
	})

	t.Run("resolves region code to ID", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.regionRepo.On("FindByCode", ctx, f.tenantID, "EMEA").Return(f.region, nil)
		f.channelRepo.On("FindByID", ctx, f.channel.ID).Return(f.channel, nil)
		f.catalogRepo.On("ExistsByCode", ctx, f.tenantID, f.region.ID, f.channel.ID, "EMEA-WEB").Return(false, nil)
		f.catalogRepo.On("Save", ctx, mock.AnythingOfType("*mdm.Catalog")).Return(nil)

		resp, err := f.svc.Create(ctx, f.tenantID, CreateCatalogRequest{
			Code:       "EMEA-WEB",
			Name:       "EMEA Web",
			RegionCode: "EMEA",
			ChannelID:  f.channel.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, f.region.ID, resp.RegionID)
	})

	t.Run("unknown region code is rejected", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.regionRepo.On("FindByCode", ctx, f.tenantID, "LATAM").Return(nil, shared.ErrNotFound)

		_, err := f.svc.Create(ctx, f.tenantID, CreateCatalogRequest{
			Code:       "LATAM-WEB",
			Name:       "LATAM Web",
			RegionCode: "LATAM",
			ChannelID:  f.channel.ID,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REGION", domainErr.Code)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.regionRepo.On("FindByID", ctx, f.tenantID, f.region.ID).Return(f.region, nil)
		f.channelRepo.On("FindByID", ctx, f.channel.ID).Return(f.channel, nil)
		f.catalogRepo.On("ExistsByCode", ctx, f.tenantID, f.region.ID, f.channel.ID, "EMEA-WEB").Return(true, nil)

		_, err := f.svc.Create(ctx, f.tenantID, CreateCatalogRequest{
			Code:      "EMEA-WEB",
			Name:      "EMEA Web",
			RegionID:  &f.region.ID,
			ChannelID: f.channel.ID,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("default flag clears previous default first", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.regionRepo.On("FindByID", ctx, f.tenantID, f.region.ID).Return(f.region, nil)
		f.channelRepo.On("FindByID", ctx, f.channel.ID).Return(f.channel, nil)
		f.catalogRepo.On("ExistsByCode", ctx, f.tenantID, f.region.ID, f.channel.ID, "EMEA-WEB").Return(false, nil)
		f.catalogRepo.On("ClearDefault", ctx, f.tenantID, f.region.ID, f.channel.ID).Return(nil).Once()
		f.catalogRepo.On("Save", ctx, mock.AnythingOfType("*mdm.Catalog")).Return(nil)

		resp, err := f.svc.Create(ctx, f.tenantID, CreateCatalogRequest{
			Code:      "EMEA-WEB",
			Name:      "EMEA Web",
			RegionID:  &f.region.ID,
			ChannelID: f.channel.ID,
			IsDefault: true,
		})
		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		f.catalogRepo.AssertExpectations(t)
	})
}

func TestCatalogServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("promoting to default clears previous default", func(t *testing.T) {
		f := newCatalogFixture(t)

		catalog, err := mdm.NewCatalog(f.tenantID, f.region.ID, f.channel.ID, "EMEA-WEB", "EMEA Web", "EUR")
		require.NoError(t, err)
		catalog.ClearDomainEvents()

		f.catalogRepo.On("FindByIDForTenant", ctx, f.tenantID, catalog.ID).Return(catalog, nil)
		f.catalogRepo.On("ClearDefault", ctx, f.tenantID, f.region.ID, f.channel.ID).Return(nil).Once()
		f.catalogRepo.On("Save", ctx, catalog).Return(nil)

		isDefault := true
		resp, err := f.svc.Update(ctx, f.tenantID, catalog.ID, UpdateCatalogRequest{IsDefault: &isDefault})
		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		f.catalogRepo.AssertExpectations(t)
	})

	t.Run("already default skips the clearing pass", func(t *testing.T) {
		f := newCatalogFixture(t)

		catalog, err := mdm.NewCatalog(f.tenantID, f.region.ID, f.channel.ID, "EMEA-WEB", "EMEA Web", "EUR")
		require.NoError(t, err)
		catalog.MarkDefault()
		catalog.ClearDomainEvents()

		f.catalogRepo.On("FindByIDForTenant", ctx, f.tenantID, catalog.ID).Return(catalog, nil)
		f.catalogRepo.On("Save", ctx, catalog).Return(nil)

		isDefault := true
		_, err = f.svc.Update(ctx, f.tenantID, catalog.ID, UpdateCatalogRequest{IsDefault: &isDefault})
		require.NoError(t, err)
		f.catalogRepo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCatalogServiceChannels(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(t)

	f.channelRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]mdm.Channel{*f.channel}, nil)

	channels, err := f.svc.Channels(ctx, f.tenantID)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "WEB", channels[0].Code)
}

func TestCatalogServiceRegions(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(t)

	f.regionRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Region{*f.region}, nil)

	regions, err := f.svc.Regions(ctx, f.tenantID)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "EMEA", regions[0].Code)
}
