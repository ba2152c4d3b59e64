package mdm

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mdm/backend/internal/domain/mdm"
	"github.com/mdm/backend/internal/domain/shared"
)

type catalogProductFixture struct {
	entryRepo   *MockCatalogProductRepository
	catalogRepo *MockCatalogRepository
	productRepo *MockProductRepository
	svc         *CatalogProductService
	tenantID    uuid.UUID
	catalog     *mdm.Catalog
	product     *mdm.Product
}

func newCatalogProductFixture(t *testing.T) *catalogProductFixture {
	t.Helper()
	tenantID := uuid.New()

	catalog, err := mdm.NewCatalog(tenantID, uuid.New(), uuid.New(), "NA-WEB", "NA Web", "USD")
	require.NoError(t, err)
	catalog.ClearDomainEvents()

	product, err := mdm.NewProduct(tenantID, "SKU-001", "Widget Pro")
	require.NoError(t, err)
	product.ClearDomainEvents()

	f := &catalogProductFixture{
		entryRepo:   new(MockCatalogProductRepository),
		catalogRepo: new(MockCatalogRepository),
		productRepo: new(MockProductRepository),
		tenantID:    tenantID,
		catalog:     catalog,
		product:     product,
	}
	f.svc = NewCatalogProductService(f.entryRepo, f.catalogRepo, f.productRepo)
	return f
}

func TestCatalogProductServiceAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("adds product to catalog", func(t *testing.T) {
		f := newCatalogProductFixture(t)

		f.catalogRepo.On("FindByIDForTenant", ctx, f.tenantID, f.catalog.ID).Return(f.catalog, nil)
		f.productRepo.On("FindByIDForTenant", ctx, f.tenantID, f.product.ID).Return(f.product, nil)
		f.entryRepo.On("ExistsByPair", ctx, f.tenantID, f.catalog.ID, f.product.ID).Return(false, nil)
		f.entryRepo.On("Save", ctx, mock.AnythingOfType("*mdm.CatalogProduct")).Return(nil)

		resp, err := f.svc.Add(ctx, f.tenantID, AddCatalogProductRequest{
			CatalogID: f.catalog.ID,
			ProductID: f.product.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "none", resp.PricingMode)
		assert.True(t, resp.IsActive)
	})

	t.Run("duplicate pair is rejected", func(t *testing.T) {
		f := newCatalogProductFixture(t)

		f.catalogRepo.On("FindByIDForTenant", ctx, f.tenantID, f.catalog.ID).Return(f.catalog, nil)
		f.productRepo.On("FindByIDForTenant", ctx, f.tenantID, f.product.ID).Return(f.product, nil)
		f.entryRepo.On("ExistsByPair", ctx, f.tenantID, f.catalog.ID, f.product.ID).Return(true, nil)

		_, err := f.svc.Add(ctx, f.tenantID, AddCatalogProductRequest{
			CatalogID: f.catalog.ID,
			ProductID: f.product.ID,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("missing catalog is rejected", func(t *testing.T) {
		f := newCatalogProductFixture(t)

		f.catalogRepo.On("FindByIDForTenant", ctx, f.tenantID, f.catalog.ID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.Add(ctx, f.tenantID, AddCatalogProductRequest{
			CatalogID: f.catalog.ID,
			ProductID: f.product.ID,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("supplying both pricing fields is rejected", func(t *testing.T) {
		f := newCatalogProductFixture(t)

		f.catalogRepo.On("FindByIDForTenant", ctx, f.tenantID, f.catalog.ID).Return(f.catalog, nil)
		f.productRepo.On("FindByIDForTenant", ctx, f.tenantID, f.product.ID).Return(f.product, nil)
		f.entryRepo.On("ExistsByPair", ctx, f.tenantID, f.catalog.ID, f.product.ID).Return(false, nil)

		override := decimal.NewFromInt(75)
		discount := decimal.NewFromInt(20)
		_, err := f.svc.Add(ctx, f.tenantID, AddCatalogProductRequest{
			CatalogID:          f.catalog.ID,
			ProductID:          f.product.ID,
			OverridePrice:      &override,
			DiscountPercentage: &discount,
		})
		require.Error(t, err)
		f.entryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("override price sets override mode", func(t *testing.T) {
		f := newCatalogProductFixture(t)

		f.catalogRepo.On("FindByIDForTenant", ctx, f.tenantID, f.catalog.ID).Return(f.catalog, nil)
		f.productRepo.On("FindByIDForTenant", ctx, f.tenantID, f.product.ID).Return(f.product, nil)
		f.entryRepo.On("ExistsByPair", ctx, f.tenantID, f.catalog.ID, f.product.ID).Return(false, nil)
		f.entryRepo.On("Save", ctx, mock.AnythingOfType("*mdm.CatalogProduct")).Return(nil)

		override := decimal.NewFromInt(75)
		resp, err := f.svc.Add(ctx, f.tenantID, AddCatalogProductRequest{
			CatalogID:     f.catalog.ID,
			ProductID:     f.product.ID,
			OverridePrice: &override,
		})
		require.NoError(t, err)
		assert.Equal(t, "override", resp.PricingMode)
		assert.True(t, resp.DiscountPercentage.IsZero())
	})
}

func TestCatalogProductServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("switching to discount clears override", func(t *testing.T) {
		f := newCatalogProductFixture(t)

		entry, err := mdm.NewCatalogProduct(f.tenantID, f.catalog.ID, f.product.ID)
		require.NoError(t, err)
		require.NoError(t, entry.SetOverridePrice(decimal.NewFromInt(75)))
		entry.ClearDomainEvents()

		f.entryRepo.On("FindByPair", ctx, f.tenantID, f.catalog.ID, f.product.ID).Return(entry, nil)
		f.entryRepo.On("Save", ctx, entry).Return(nil)

		discount := decimal.NewFromInt(20)
		resp, err := f.svc.Update(ctx, f.tenantID, f.catalog.ID, f.product.ID, UpdateCatalogProductRequest{
			DiscountPercentage: &discount,
		})
		require.NoError(t, err)
		assert.Equal(t, "discount", resp.PricingMode)
		assert.Nil(t, resp.OverridePrice)
	})

	t.Run("clear pricing resets to none", func(t *testing.T) {
		f := newCatalogProductFixture(t)

		entry, err := mdm.NewCatalogProduct(f.tenantID, f.catalog.ID, f.product.ID)
		require.NoError(t, err)
		require.NoError(t, entry.SetDiscountPercentage(decimal.NewFromInt(20)))
		entry.ClearDomainEvents()

		f.entryRepo.On("FindByPair", ctx, f.tenantID, f.catalog.ID, f.product.ID).Return(entry, nil)
		f.entryRepo.On("Save", ctx, entry).Return(nil)

		resp, err := f.svc.Update(ctx, f.tenantID, f.catalog.ID, f.product.ID, UpdateCatalogProductRequest{
			ClearPricing: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "none", resp.PricingMode)
	})

	t.Run("missing pair returns not found", func(t *testing.T) {
		f := newCatalogProductFixture(t)

		f.entryRepo.On("FindByPair", ctx, f.tenantID, f.catalog.ID, f.product.ID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.Update(ctx, f.tenantID, f.catalog.ID, f.product.ID, UpdateCatalogProductRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCatalogProductServiceRemove(t *testing.T) {
	ctx := context.Background()

	f := newCatalogProductFixture(t)

	entry, err := mdm.NewCatalogProduct(f.tenantID, f.catalog.ID, f.product.ID)
	require.NoError(t, err)
	entry.ClearDomainEvents()

	f.entryRepo.On("FindByPair", ctx, f.tenantID, f.catalog.ID, f.product.ID).Return(entry, nil)
	f.entryRepo.On("Delete", ctx, entry).Return(nil)

	require.NoError(t, f.svc.Remove(ctx, f.tenantID, f.catalog.ID, f.product.ID))

	events := entry.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, mdm.EventTypeCatalogProductRemoved, events[0].EventType())
}

func TestCatalogProductServiceListByCatalog(t *testing.T) {
	ctx := context.Background()

	f := newCatalogProductFixture(t)

	entry, err := mdm.NewCatalogProduct(f.tenantID, f.catalog.ID, f.product.ID)
	require.NoError(t, err)
	require.NoError(t, entry.SetDiscountPercentage(decimal.NewFromInt(20)))
	entry.ClearDomainEvents()

	rows := []mdm.CatalogProductListing{{
		CatalogProduct: *entry,
		ProductSKU:     "SKU-001",
		ProductName:    "Widget Pro",
		BasePrice:      decimal.NewFromInt(100),
	}}

	f.catalogRepo.On("FindByIDForTenant", ctx, f.tenantID, f.catalog.ID).Return(f.catalog, nil)
	f.entryRepo.On("FindByCatalog", ctx, f.tenantID, f.catalog.ID, mock.AnythingOfType("shared.Filter")).Return(rows, nil)
	f.entryRepo.On("CountByCatalog", ctx, f.tenantID, f.catalog.ID, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	page, err := f.svc.ListByCatalog(ctx, f.tenantID, f.catalog.ID, CatalogProductListFilter{})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	item := page.Items[0]
	assert.Equal(t, "SKU-001", item.ProductSKU)
	assert.True(t, item.FinalPrice.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, int64(1), page.Total)
}
