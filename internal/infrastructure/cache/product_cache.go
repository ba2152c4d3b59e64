package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/mdm/backend/internal/domain/mdm"
	appmdm "github.com/mdm/backend/internal/application/mdm"
)

const productKeyPrefix = "mdm:product:"

// cachedProduct is the JSON document stored per product. It carries the
// fields downstream read services consume, not the full aggregate.
type cachedProduct struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	LongDescription string          `json:"long_description,omitempty"`
	ProductType     string          `json:"product_type,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	TaxCode         string          `json:"tax_code,omitempty"`
	Slug            string          `json:"slug,omitempty"`
	Available       bool            `json:"available"`
	WebDisplay      bool            `json:"web_display"`
	Status          string          `json:"status"`
	SyncedAt        time.Time       `json:"synced_at"`
}

// RedisProductCache projects active products into Redis for read services
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProductCache creates a product cache on an existing Redis client.
// A zero ttl stores entries without expiration.
func NewRedisProductCache(client *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl}
}

// Sync writes the product's current state to the cache
func (c *RedisProductCache) Sync(ctx context.Context, product *mdm.Product) error {
	doc := cachedProduct{
		ID:              product.ID,
		TenantID:        product.TenantID,
		SKU:             product.SKU,
		Name:            product.Name,
		Description:     product.Description,
		LongDescription: product.LongDescription,
		ProductType:     product.ProductType,
		BasePrice:       product.BasePrice,
		TaxCode:         product.TaxCode,
		Slug:            product.Slug,
		Available:       product.Available,
		WebDisplay:      product.WebDisplay,
		Status:          string(product.Status),
		SyncedAt:        time.Now().UTC(),
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal product for cache: %w", err)
	}

	key := productKey(product.TenantID, product.ID)
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write product to cache: %w", err)
	}
	return nil
}

// Remove deletes the product from the cache
func (c *RedisProductCache) Remove(ctx context.Context, tenantID, productID uuid.UUID) error {
	if err := c.client.Del(ctx, productKey(tenantID, productID)).Err(); err != nil {
		return fmt.Errorf("failed to remove product from cache: %w", err)
	}
	return nil
}

func productKey(tenantID, productID uuid.UUID) string {
	return productKeyPrefix + tenantID.String() + ":" + productID.String()
}

// Ensure RedisProductCache implements ProductCache
var _ appmdm.ProductCache = (*RedisProductCache)(nil)
