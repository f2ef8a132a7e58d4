package menu

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const menuListKey = "menu:all"

// Cache is the subset of *redis.Client used by CachedRepo.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedRepo keeps the full menu list in Redis (cache-aside). Single-item
// reads go straight to the store so stock checks never see a stale value.
// Cache failures are logged and fall through to the store.
type CachedRepo struct {
	Repository
	cache Cache
	ttl   time.Duration
	log   zerolog.Logger
}

func NewCachedRepo(store Repository, cache Cache, ttl time.Duration, log zerolog.Logger) *CachedRepo {
	return &CachedRepo{Repository: store, cache: cache, ttl: ttl, log: log}
}

func (c *CachedRepo) List(ctx context.Context) ([]MenuItem, error) {
	raw, err := c.cache.Get(ctx, menuListKey).Bytes()
	switch {
	case err == nil:
		var items []MenuItem
		if jerr := json.Unmarshal(raw, &items); jerr == nil {
			return items, nil
		}
		c.log.Warn().Str("key", menuListKey).Msg("discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Msg("menu cache read failed")
	}

	items, err := c.Repository.List(ctx)
	if err != nil {
		return nil, err
	}
	if b, jerr := json.Marshal(items); jerr == nil {
		if serr := c.cache.Set(ctx, menuListKey, b, c.ttl).Err(); serr != nil {
			c.log.Warn().Err(serr).Msg("menu cache write failed")
		}
	}
	return items, nil
}

func (c *CachedRepo) Create(ctx context.Context, m *MenuItem) error {
	if err := c.Repository.Create(ctx, m); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRepo) Update(ctx context.Context, id string, in UpdateItemRequest) error {
	if err := c.Repository.Update(ctx, id, in); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRepo) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := c.Repository.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		c.invalidate(ctx)
	}
	return ok, nil
}

func (c *CachedRepo) invalidate(ctx context.Context) {
	if err := c.cache.Del(ctx, menuListKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}
