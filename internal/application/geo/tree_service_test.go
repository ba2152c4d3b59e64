package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdm/backend/internal/domain/geo"
	"github.com/mdm/backend/internal/domain/shared"
)

type treeFixture struct {
	regionRepo  *MockRegionRepository
	countryRepo *MockCountryRepository
	localeRepo  *MockLocaleRepository
	compliance  *MockComplianceClient
	svc         *TreeService
	tenantID    uuid.UUID
}

func newTreeFixture() *treeFixture {
	f := &treeFixture{
		regionRepo:  new(MockRegionRepository),
		countryRepo: new(MockCountryRepository),
		localeRepo:  new(MockLocaleRepository),
		compliance:  new(MockComplianceClient),
		tenantID:    uuid.New(),
	}
	f.svc = NewTreeService(f.regionRepo, f.countryRepo, f.localeRepo, f.compliance, zap.NewNop())
	return f
}

func (f *treeFixture) seedHierarchy(t *testing.T) (*geo.Region, *geo.Country, *geo.Locale) {
	t.Helper()

	region, err := geo.NewRegion(f.tenantID, "NA", "North America")
	require.NoError(t, err)

	country, err := geo.NewCountry(f.tenantID, region.ID, "US", "United States")
	require.NoError(t, err)

	locale, err := geo.NewLocale(f.tenantID, country.ID, "en_US", "English (US)", "en-US", "USD")
	require.NoError(t, err)
	locale.SetPriority(1)

	return region, country, locale
}

func TestTreeServiceTree(t *testing.T) {
	ctx := context.Background()

	t.Run("builds nested hierarchy", func(t *testing.T) {
		f := newTreeFixture()
		region, country, locale := f.seedHierarchy(t)

		f.regionRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Region{*region}, nil)
		f.countryRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Country{*country}, nil)
		f.localeRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Locale{*locale}, nil)

		tree, err := f.svc.Tree(ctx, f.tenantID, false)
		require.NoError(t, err)

		require.Len(t, tree, 1)
		assert.Equal(t, "region", tree[0].Type)
		assert.Equal(t, "NA", tree[0].Code)

		require.Len(t, tree[0].Children, 1)
		countryNode := tree[0].Children[0]
		assert.Equal(t, "country", countryNode.Type)
		assert.Nil(t, countryNode.Compliance)

		require.Len(t, countryNode.Children, 1)
		localeNode := countryNode.Children[0]
		assert.Equal(t, "locale", localeNode.Type)
		require.NotNil(t, localeNode.Properties)
		assert.Equal(t, "en-US", localeNode.Properties.LanguageCode)
		assert.True(t, localeNode.Properties.IsPrimary)
		f.compliance.AssertNotCalled(t, "ScreenCountry", mock.Anything, mock.Anything)
	})

	t.Run("annotates countries when compliance is requested", func(t *testing.T) {
		f := newTreeFixture()
		region, country, locale := f.seedHierarchy(t)

		f.regionRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Region{*region}, nil)
		f.countryRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Country{*country}, nil)
		f.localeRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Locale{*locale}, nil)
		f.compliance.On("ScreenCountry", mock.Anything, "US").
			Return(&CountryScreening{CountryCode: "US", Status: "clear", RiskLevel: "low"}, nil)

		tree, err := f.svc.Tree(ctx, f.tenantID, true)
		require.NoError(t, err)

		countryNode := tree[0].Children[0]
		require.NotNil(t, countryNode.Compliance)
		assert.Equal(t, "clear", countryNode.Compliance.Status)
	})

	t.Run("compliance failure leaves the node bare", func(t *testing.T) {
		f := newTreeFixture()
		region, country, locale := f.seedHierarchy(t)

		f.regionRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Region{*region}, nil)
		f.countryRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Country{*country}, nil)
		f.localeRepo.On("FindAllForTenant", ctx, f.tenantID).Return([]geo.Locale{*locale}, nil)
		f.compliance.On("ScreenCountry", mock.Anything, "US").
			Return(nil, errors.New("connection refused"))

		tree, err := f.svc.Tree(ctx, f.tenantID, true)
		require.NoError(t, err)
		assert.Nil(t, tree[0].Children[0].Compliance)
	})
}

func TestTreeServiceCreateNode(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a region", func(t *testing.T) {
		f := newTreeFixture()

		f.regionRepo.On("Save", ctx, mock.AnythingOfType("*geo.Region")).Return(nil)

		node, err := f.svc.CreateNode(ctx, f.tenantID, CreateNodeRequest{
			NodeType: "region",
			Name:     "Asia Pacific",
			Code:     "apac",
		})
		require.NoError(t, err)
		assert.Equal(t, "region", node.Type)
		assert.Equal(t, "APAC", node.Code)
	})

	t.Run("country requires an existing parent region", func(t *testing.T) {
		f := newTreeFixture()
		parentID := uuid.New()

		f.regionRepo.On("FindByID", ctx, f.tenantID, parentID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.CreateNode(ctx, f.tenantID, CreateNodeRequest{
			NodeType: "country",
			Name:     "Germany",
			Code:     "DE",
			ParentID: &parentID,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("locale gets suffixed code on collision", func(t *testing.T) {
		f := newTreeFixture()
		region, country, _ := f.seedHierarchy(t)
		_ = region

		f.countryRepo.On("FindByID", ctx, f.tenantID, country.ID).Return(country, nil)
		f.localeRepo.On("CodesByCountry", ctx, f.tenantID, country.ID).Return([]string{"EN_US", "en_US_1"}, nil)
		f.localeRepo.On("Save", ctx, mock.AnythingOfType("*geo.Locale")).Return(nil)

		node, err := f.svc.CreateNode(ctx, f.tenantID, CreateNodeRequest{
			NodeType: "locale",
			Name:     "English (US) Alt",
			Code:     "en_US",
			ParentID: &country.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "en_US_2", node.Code)
	})

	t.Run("locale inherits country defaults", func(t *testing.T) {
		f := newTreeFixture()

		region, err := geo.NewRegion(f.tenantID, "EMEA", "Europe")
		require.NoError(t, err)
		country, err := geo.NewCountry(f.tenantID, region.ID, "SA", "Saudi Arabia")
		require.NoError(t, err)

		f.countryRepo.On("FindByID", ctx, f.tenantID, country.ID).Return(country, nil)
		f.localeRepo.On("CodesByCountry", ctx, f.tenantID, country.ID).Return([]string{}, nil)

		var saved *geo.Locale
		f.localeRepo.On("Save", ctx, mock.AnythingOfType("*geo.Locale")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*geo.Locale) }).
			Return(nil)

		node, err := f.svc.CreateNode(ctx, f.tenantID, CreateNodeRequest{
			NodeType: "locale",
			Name:     "Arabic (Saudi Arabia)",
			Code:     "ar_SA",
			ParentID: &country.ID,
		})
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.Equal(t, "ar-SA", saved.LanguageCode)
		assert.Equal(t, "SAR", saved.Currency)
		assert.True(t, saved.RTL)
		assert.True(t, node.Properties.RTL)
	})

	t.Run("explicit properties beat defaults", func(t *testing.T) {
		f := newTreeFixture()
		_, country, _ := f.seedHierarchy(t)

		f.countryRepo.On("FindByID", ctx, f.tenantID, country.ID).Return(country, nil)
		f.localeRepo.On("CodesByCountry", ctx, f.tenantID, country.ID).Return([]string{}, nil)
		f.localeRepo.On("Save", ctx, mock.AnythingOfType("*geo.Locale")).Return(nil)

		node, err := f.svc.CreateNode(ctx, f.tenantID, CreateNodeRequest{
			NodeType: "locale",
			Name:     "Spanish (US)",
			Code:     "es_US",
			ParentID: &country.ID,
			Properties: &NodePropertiesDTO{
				LanguageCode: "es-US",
				Priority:     2,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "es-US", node.Properties.LanguageCode)
		assert.Equal(t, "USD", node.Properties.Currency)
		assert.Equal(t, 2, node.Properties.Priority)
		assert.False(t, node.Properties.IsPrimary)
	})
}

func TestTreeServiceDeleteNode(t *testing.T) {
	ctx := context.Background()

	t.Run("primary locale is protected", func(t *testing.T) {
		f := newTreeFixture()
		_, _, locale := f.seedHierarchy(t)

		f.localeRepo.On("FindByID", ctx, f.tenantID, locale.ID).Return(locale, nil)

		err := f.svc.DeleteNode(ctx, f.tenantID, locale.ID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		f.localeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("secondary locale is deleted", func(t *testing.T) {
		f := newTreeFixture()
		_, country, _ := f.seedHierarchy(t)

		secondary, err := geo.NewLocale(f.tenantID, country.ID, "es_US", "Spanish (US)", "es-US", "USD")
		require.NoError(t, err)
		secondary.SetPriority(2)

		f.localeRepo.On("FindByID", ctx, f.tenantID, secondary.ID).Return(secondary, nil)
		f.localeRepo.On("Delete", ctx, f.tenantID, secondary.ID).Return(nil)

		require.NoError(t, f.svc.DeleteNode(ctx, f.tenantID, secondary.ID))
		f.localeRepo.AssertExpectations(t)
	})

	t.Run("country with locales is protected", func(t *testing.T) {
		f := newTreeFixture()
		_, country, _ := f.seedHierarchy(t)

		f.localeRepo.On("FindByID", ctx, f.tenantID, country.ID).Return(nil, shared.ErrNotFound)
		f.countryRepo.On("FindByID", ctx, f.tenantID, country.ID).Return(country, nil)
		f.countryRepo.On("CountLocales", ctx, f.tenantID, country.ID).Return(int64(2), nil)

		err := f.svc.DeleteNode(ctx, f.tenantID, country.ID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("empty region is deleted", func(t *testing.T) {
		f := newTreeFixture()
		region, _, _ := f.seedHierarchy(t)

		f.localeRepo.On("FindByID", ctx, f.tenantID, region.ID).Return(nil, shared.ErrNotFound)
		f.countryRepo.On("FindByID", ctx, f.tenantID, region.ID).Return(nil, shared.ErrNotFound)
		f.regionRepo.On("FindByID", ctx, f.tenantID, region.ID).Return(region, nil)
		f.regionRepo.On("CountCountries", ctx, f.tenantID, region.ID).Return(int64(0), nil)
		f.regionRepo.On("Delete", ctx, f.tenantID, region.ID).Return(nil)

		require.NoError(t, f.svc.DeleteNode(ctx, f.tenantID, region.ID))
		f.regionRepo.AssertExpectations(t)
	})

	t.Run("unknown node returns not found", func(t *testing.T) {
		f := newTreeFixture()
		id := uuid.New()

		f.localeRepo.On("FindByID", ctx, f.tenantID, id).Return(nil, shared.ErrNotFound)
		f.countryRepo.On("FindByID", ctx, f.tenantID, id).Return(nil, shared.ErrNotFound)
		f.regionRepo.On("FindByID", ctx, f.tenantID, id).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, f.svc.DeleteNode(ctx, f.tenantID, id), shared.ErrNotFound)
	})
}
