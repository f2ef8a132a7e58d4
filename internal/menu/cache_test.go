package menu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	data    map[string]string
	getErr  error
	deletes int
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]string{}} }

func (f *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.deletes++
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestCachedRepo_ListHitsStoreOnce(t *testing.T) {
	store := newStubRepo()
	_ = store.Create(context.Background(), &MenuItem{ID: "1", Name: "Dal", Price: "$8"})
	cache := newFakeCache()
	repo := NewCachedRepo(store, cache, time.Minute, zerolog.Nop())
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, store.listCalls)
	assert.Equal(t, first[0].Name, second[0].Name)
}

func TestCachedRepo_WritesInvalidate(t *testing.T) {
	store := newStubRepo()
	cache := newFakeCache()
	repo := NewCachedRepo(store, cache, time.Minute, zerolog.Nop())
	ctx := context.Background()

	_, err := repo.List(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &MenuItem{ID: "2", Name: "Naan", Price: "$2"}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, store.listCalls)

	ok, err := repo.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, cache.deletes)
}

func TestCachedRepo_CacheDownFallsThrough(t *testing.T) {
	store := newStubRepo()
	_ = store.Create(context.Background(), &MenuItem{ID: "1", Name: "Dal"})
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	repo := NewCachedRepo(store, cache, time.Minute, zerolog.Nop())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCachedRepo_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	store := newStubRepo()
	ctx := context.Background()
	_ = store.Create(ctx, &MenuItem{ID: "1", Name: "Dal", Price: "$8"})
	repo := NewCachedRepo(store, rdb, time.Minute, zerolog.Nop())

	_, err := repo.List(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(menuListKey))
	assert.Equal(t, time.Minute, mr.TTL(menuListKey))

	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)

	stock := 3
	require.NoError(t, repo.Update(ctx, "1", UpdateItemRequest{Stock: &stock}))
	assert.False(t, mr.Exists(menuListKey))

	mr.FastForward(2 * time.Minute)
	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, store.listCalls)
}

func TestCachedRepo_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	store := newStubRepo()
	_ = store.Create(context.Background(), &MenuItem{ID: "1", Name: "Dal"})
	repo := NewCachedRepo(store, rdb, time.Minute, zerolog.Nop())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
