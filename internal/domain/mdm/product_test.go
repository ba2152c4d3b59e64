package mdm

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct(tenantID, "SKU-001", "Widget Pro")
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, tenantID, product.TenantID)
		assert.Equal(t, "SKU-001", product.SKU)
		assert.Equal(t, "Widget Pro", product.Name)
		assert.True(t, product.BasePrice.IsZero())
		assert.True(t, product.CostPrice.IsZero())
		assert.Equal(t, ProductStatusDraft, product.Status)
		assert.False(t, product.Available)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("converts SKU to uppercase", func(t *testing.T) {
		product, err := NewProduct(tenantID, "sku-001", "Widget Pro")
		require.NoError(t, err)
		assert.Equal(t, "SKU-001", product.SKU)
	})

	t.Run("publishes ProductCreated event", func(t *testing.T) {
		product, err := NewProduct(tenantID, "SKU-002", "Widget Pro")
		require.NoError(t, err)

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())

		event, ok := events[0].(*ProductCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, product.ID, event.ProductID)
		assert.Equal(t, product.SKU, event.SKU)
		assert.Equal(t, product.Name, event.Name)
	})

	t.Run("fails with empty SKU", func(t *testing.T) {
		_, err := NewProduct(tenantID, "", "Widget Pro")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKU cannot be empty")
	})

	t.Run("fails with SKU too long", func(t *testing.T) {
		longSKU := make([]byte, 65)
		for i := range longSKU {
			longSKU[i] = 'A'
		}
		_, err := NewProduct(tenantID, string(longSKU), "Widget Pro")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 64 characters")
	})

	t.Run("fails with invalid SKU characters", func(t *testing.T) {
		_, err := NewProduct(tenantID, "SKU 001", "Widget Pro")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can only contain letters")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct(tenantID, "SKU-001", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("accepts SKU with underscore, hyphen, and dot", func(t *testing.T) {
		product, err := NewProduct(tenantID, "SKU_A-1.2", "Widget Pro")
		require.NoError(t, err)
		assert.Equal(t, "SKU_A-1.2", product.SKU)
	})
}

func TestProductUpdate(t *testing.T) {
	tenantID := uuid.New()

	t.Run("updates name and description", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")
		product.ClearDomainEvents()

		err := product.Update("Widget Pro Max", "Bigger widget")
		require.NoError(t, err)

		assert.Equal(t, "Widget Pro Max", product.Name)
		assert.Equal(t, "Bigger widget", product.Description)
		assert.Equal(t, 2, product.GetVersion())

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductUpdated, events[0].EventType())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")

		err := product.Update("", "desc")
		require.Error(t, err)
		assert.Equal(t, "Widget Pro", product.Name)
	})
}

func TestProductSetPrices(t *testing.T) {
	tenantID := uuid.New()

	t.Run("sets valid prices", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")

		err := product.SetPrices(decimal.NewFromInt(100), decimal.NewFromInt(40))
		require.NoError(t, err)
		assert.True(t, product.BasePrice.Equal(decimal.NewFromInt(100)))
		assert.True(t, product.CostPrice.Equal(decimal.NewFromInt(40)))
	})

	t.Run("rejects negative base price", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")

		err := product.SetPrices(decimal.NewFromInt(-1), decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("rejects negative cost price", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")

		err := product.SetPrices(decimal.Zero, decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestProductChangeStatus(t *testing.T) {
	tenantID := uuid.New()

	t.Run("activates a draft product", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")
		product.ClearDomainEvents()

		err := product.ChangeStatus(ProductStatusActive)
		require.NoError(t, err)
		assert.True(t, product.IsActive())

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		event, ok := events[0].(*ProductStatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, ProductStatusDraft, event.OldStatus)
		assert.Equal(t, ProductStatusActive, event.NewStatus)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")
		product.ClearDomainEvents()

		err := product.ChangeStatus(ProductStatusDraft)
		require.NoError(t, err)
		assert.Empty(t, product.GetDomainEvents())
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")

		err := product.ChangeStatus(ProductStatus("retired"))
		require.Error(t, err)
	})

	t.Run("rejects transitions out of archived", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")
		require.NoError(t, product.ChangeStatus(ProductStatusArchived))

		err := product.ChangeStatus(ProductStatusActive)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "archived")
	})
}

func TestProductSnapshot(t *testing.T) {
	tenantID := uuid.New()

	t.Run("detects a name change", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")
		before := product.Snapshot()

		require.NoError(t, product.Update("Widget Pro Max", ""))

		assert.True(t, before.HasSignificantChange(product.Snapshot()))
	})

	t.Run("detects a price change", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")
		before := product.Snapshot()

		require.NoError(t, product.SetPrices(decimal.NewFromInt(10), decimal.Zero))

		assert.True(t, before.HasSignificantChange(product.Snapshot()))
	})

	t.Run("detects a flag change", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")
		before := product.Snapshot()

		product.SetFlags(true, false, false, false, false)

		assert.True(t, before.HasSignificantChange(product.Snapshot()))
	})

	t.Run("ignores classification-only changes to class and subtype", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")
		before := product.Snapshot()

		product.SetClassification("", "enterprise", "addon")

		assert.False(t, before.HasSignificantChange(product.Snapshot()))
	})

	t.Run("no change means no significant change", func(t *testing.T) {
		product, _ := NewProduct(tenantID, "SKU-001", "Widget Pro")
		before := product.Snapshot()

		assert.False(t, before.HasSignificantChange(product.Snapshot()))
	})
}
