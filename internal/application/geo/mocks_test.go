package geo

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mdm/backend/internal/domain/geo"
)

// MockRegionRepository is a mock implementation of geo.RegionRepository
type MockRegionRepository struct {
	mock.Mock
}

func (m *MockRegionRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*geo.Region, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Region), args.Error(1)
}

func (m *MockRegionRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*geo.Region, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Region), args.Error(1)
}

func (m *MockRegionRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]geo.Region, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]geo.Region), args.Error(1)
}

func (m *MockRegionRepository) Save(ctx context.Context, region *geo.Region) error {
	args := m.Called(ctx, region)
	return args.Error(0)
}

func (m *MockRegionRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockRegionRepository) CountCountries(ctx context.Context, tenantID, regionID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, regionID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCountryRepository is a mock implementation of geo.CountryRepository
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*geo.Country, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Country), args.Error(1)
}

func (m *MockCountryRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*geo.Country, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Country), args.Error(1)
}

func (m *MockCountryRepository) FindByRegion(ctx context.Context, tenantID, regionID uuid.UUID) ([]geo.Country, error) {
	args := m.Called(ctx, tenantID, regionID)
	return args.Get(0).([]geo.Country), args.Error(1)
}

func (m *MockCountryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]geo.Country, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]geo.Country), args.Error(1)
}

func (m *MockCountryRepository) Save(ctx context.Context, country *geo.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCountryRepository) CountLocales(ctx context.Context, tenantID, countryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, countryID)
	return args.Get(0).(int64), args.Error(1)
}

// MockLocaleRepository is a mock implementation of geo.LocaleRepository
type MockLocaleRepository struct {
	mock.Mock
}

func (m *MockLocaleRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*geo.Locale, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Locale), args.Error(1)
}

func (m *MockLocaleRepository) FindByCountry(ctx context.Context, tenantID, countryID uuid.UUID) ([]geo.Locale, error) {
	args := m.Called(ctx, tenantID, countryID)
	return args.Get(0).([]geo.Locale), args.Error(1)
}

func (m *MockLocaleRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]geo.Locale, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]geo.Locale), args.Error(1)
}

func (m *MockLocaleRepository) CodesByCountry(ctx context.Context, tenantID, countryID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, tenantID, countryID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLocaleRepository) Save(ctx context.Context, locale *geo.Locale) error {
	args := m.Called(ctx, locale)
	return args.Error(0)
}

func (m *MockLocaleRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockComplianceClient is a mock implementation of ComplianceClient
type MockComplianceClient struct {
	mock.Mock
}

func (m *MockComplianceClient) ScreenCountry(ctx context.Context, code string) (*CountryScreening, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CountryScreening), args.Error(1)
}

func (m *MockComplianceClient) AssessRegion(ctx context.Context, code string) (*RegionAssessment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RegionAssessment), args.Error(1)
}
