package memory

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// GuardRepository is the in-memory fallback for one-time milestone keys.
// Used in tests and when no Redis is configured; guarantees hold only
// within a single process lifetime.
type GuardRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewGuardRepository(ttl time.Duration) *GuardRepository {
	return &GuardRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *GuardRepository) MarkOnce(_ context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, found := r.cache.Get(key); found {
		return false, nil
	}
	r.cache.Set(key, struct{}{}, cache.DefaultExpiration)
	return true, nil
}

func (r *GuardRepository) Seen(_ context.Context, key string) (bool, error) {
	_, found := r.cache.Get(key)
	return found, nil
}
