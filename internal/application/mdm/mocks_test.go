package mdm

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mdm/backend/internal/domain/geo"
	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*mdm.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*mdm.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*mdm.Product, error) {
	args := m.Called(ctx, tenantID, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]mdm.Product, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]mdm.Product), args.Error(1)
}

func (m *MockProductRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status mdm.ProductStatus, filter shared.Filter) ([]mdm.Product, error) {
	args := m.Called(ctx, tenantID, status, filter)
	return args.Get(0).([]mdm.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]mdm.Product, error) {
	args := m.Called(ctx, tenantID, ids)
	return args.Get(0).([]mdm.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *mdm.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, product *mdm.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID) (map[mdm.ProductStatus]int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(map[mdm.ProductStatus]int64), args.Error(1)
}

func (m *MockProductRepository) CountByType(ctx context.Context, tenantID uuid.UUID) (map[string]int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockProductRepository) DistinctTypes(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error) {
	args := m.Called(ctx, tenantID, sku)
	return args.Bool(0), args.Error(1)
}

// MockProductCache is a mock implementation of ProductCache
type MockProductCache struct {
	mock.Mock
}

func (m *MockProductCache) Sync(ctx context.Context, product *mdm.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductCache) Remove(ctx context.Context, tenantID, productID uuid.UUID) error {
	args := m.Called(ctx, tenantID, productID)
	return args.Error(0)
}

// MockCatalogRepository is a mock implementation of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*mdm.Catalog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*mdm.Catalog, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) FindByCode(ctx context.Context, tenantID, regionID, channelID uuid.UUID, code string) (*mdm.Catalog, error) {
	args := m.Called(ctx, tenantID, regionID, channelID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]mdm.Catalog, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]mdm.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) FindDefault(ctx context.Context, tenantID, regionID, channelID uuid.UUID) (*mdm.Catalog, error) {
	args := m.Called(ctx, tenantID, regionID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) ClearDefault(ctx context.Context, tenantID, regionID, channelID uuid.UUID) error {
	args := m.Called(ctx, tenantID, regionID, channelID)
	return args.Error(0)
}

func (m *MockCatalogRepository) Save(ctx context.Context, catalog *mdm.Catalog) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, catalog *mdm.Catalog) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}

func (m *MockCatalogRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ExistsByCode(ctx context.Context, tenantID, regionID, channelID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, regionID, channelID, code)
	return args.Bool(0), args.Error(1)
}

// MockChannelRepository is a mock implementation of ChannelRepository
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) FindByID(ctx context.Context, id uuid.UUID) (*mdm.Channel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.Channel), args.Error(1)
}

func (m *MockChannelRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*mdm.Channel, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.Channel), args.Error(1)
}

func (m *MockChannelRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]mdm.Channel, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]mdm.Channel), args.Error(1)
}

func (m *MockChannelRepository) Save(ctx context.Context, channel *mdm.Channel) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

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

// MockCatalogProductRepository is a mock implementation of CatalogProductRepository
type MockCatalogProductRepository struct {
	mock.Mock
}

func (m *MockCatalogProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*mdm.CatalogProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.CatalogProduct), args.Error(1)
}

func (m *MockCatalogProductRepository) FindByPair(ctx context.Context, tenantID, catalogID, productID uuid.UUID) (*mdm.CatalogProduct, error) {
	args := m.Called(ctx, tenantID, catalogID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mdm.CatalogProduct), args.Error(1)
}

func (m *MockCatalogProductRepository) FindByCatalog(ctx context.Context, tenantID, catalogID uuid.UUID, filter shared.Filter) ([]mdm.CatalogProductListing, error) {
	args := m.Called(ctx, tenantID, catalogID, filter)
	return args.Get(0).([]mdm.CatalogProductListing), args.Error(1)
}

func (m *MockCatalogProductRepository) CountByCatalog(ctx context.Context, tenantID, catalogID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, catalogID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogProductRepository) CountByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogProductRepository) Save(ctx context.Context, entry *mdm.CatalogProduct) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCatalogProductRepository) Delete(ctx context.Context, entry *mdm.CatalogProduct) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCatalogProductRepository) ExistsByPair(ctx context.Context, tenantID, catalogID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, catalogID, productID)
	return args.Bool(0), args.Error(1)
}
