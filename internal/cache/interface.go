package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	ProductKeyPrefix = "product"
	CartKeyPrefix    = "cart"
	OrderKeyPrefix   = "order"

	// List keys for the storefront landing page.
	ActiveBannersKey      = "banners:active"
	ActiveFlashBannersKey = "flash_banners:active"
)
