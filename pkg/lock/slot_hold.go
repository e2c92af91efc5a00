// Package lock provides expiring holds that reserve a resource across
// processes while a checkout is in flight.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

var ErrHeld = errors.New("resource is already held")

// Holder reserves keys for a limited time. Owner identifies the holder so
// a release by a stale owner cannot drop someone else's hold.
type Holder interface {
	Acquire(ctx context.Context, key, owner string, ttl time.Duration) error
	Release(ctx context.Context, key, owner string) error
	// ForceRelease drops the hold regardless of owner.
	ForceRelease(ctx context.Context, key string) error
	IsHeld(ctx context.Context, key string) (bool, error)
}

const keyPrefix = "slot-hold:"

type RedisHolder struct {
	rdb *redis.Client
}

func NewRedisHolder(rdb *redis.Client) *RedisHolder {
	return &RedisHolder{rdb: rdb}
}

func (h *RedisHolder) Acquire(ctx context.Context, key, owner string, ttl time.Duration) error {
	ok, err := h.rdb.SetNX(ctx, keyPrefix+key, owner, ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire hold %s: %w", key, err)
	}
	if !ok {
		return ErrHeld
	}
	return nil
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (h *RedisHolder) Release(ctx context.Context, key, owner string) error {
	if err := releaseScript.Run(ctx, h.rdb, []string{keyPrefix + key}, owner).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release hold %s: %w", key, err)
	}
	return nil
}

func (h *RedisHolder) ForceRelease(ctx context.Context, key string) error {
	return h.rdb.Del(ctx, keyPrefix+key).Err()
}

func (h *RedisHolder) IsHeld(ctx context.Context, key string) (bool, error) {
	n, err := h.rdb.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("check hold %s: %w", key, err)
	}
	return n > 0, nil
}

// MemoryHolder keeps holds in process. It is used when Redis is unreachable
// and in tests; holds are not shared between instances.
type MemoryHolder struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewMemoryHolder() *MemoryHolder {
	return &MemoryHolder{cache: cache.New(30*time.Minute, 5*time.Minute)}
}

func (h *MemoryHolder) Acquire(_ context.Context, key, owner string, ttl time.Duration) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.cache.Add(keyPrefix+key, owner, ttl); err != nil {
		return ErrHeld
	}
	return nil
}

func (h *MemoryHolder) Release(_ context.Context, key, owner string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.cache.Get(keyPrefix + key); ok && current.(string) == owner {
		h.cache.Delete(keyPrefix + key)
	}
	return nil
}

func (h *MemoryHolder) ForceRelease(_ context.Context, key string) error {
	h.cache.Delete(keyPrefix + key)
	return nil
}

func (h *MemoryHolder) IsHeld(_ context.Context, key string) (bool, error) {
	_, ok := h.cache.Get(keyPrefix + key)
	return ok, nil
}

// NewHolder prefers Redis and falls back to memory when ping fails.
func NewHolder(ctx context.Context, rdb *redis.Client) (Holder, error) {
	if rdb == nil {
		return NewMemoryHolder(), errors.New("no redis client")
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		return NewMemoryHolder(), err
	}
	return NewRedisHolder(rdb), nil
}
