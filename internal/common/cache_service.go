package common

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type cacheEntry struct {
	payload  []byte
	storedAt time.Time
	ttl      time.Duration
}

// CacheService is the in-process cache implementation. Freshness is decided
// by a monotonic age check; go-cache's expiry only reclaims memory.
type CacheService struct {
	cache *cache.Cache
	now   func() time.Time

	// mu orders conditional sets against Clear
	mu    sync.Mutex
	epoch uint64
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	return &CacheService{
		cache: cache.New(defaultExpiration, cleanUpInterval),
		now:   time.Now,
	}
}

func (cs *CacheService) Epoch(context.Context) (uint64, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.epoch, nil
}

func (cs *CacheService) Set(_ context.Context, key string, value []byte, ttl time.Duration, epoch uint64) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if epoch != cs.epoch {
		return false, nil
	}

	entry := cacheEntry{
		payload:  append([]byte(nil), value...),
		storedAt: cs.now(),
		ttl:      ttl,
	}
	// keep the janitor from dropping an entry before its monotonic deadline
	cs.cache.Set(key, entry, ttl+time.Second)
	return true, nil
}

func (cs *CacheService) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, found := cs.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	entry, ok := val.(cacheEntry)
	if !ok {
		cs.cache.Delete(key)
		return nil, false, nil
	}
	if cs.now().Sub(entry.storedAt) > entry.ttl {
		cs.cache.Delete(key)
		return nil, false, nil
	}
	return append([]byte(nil), entry.payload...), true, nil
}

func (cs *CacheService) Clear(_ context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.epoch++
	cs.cache.Flush()
	return nil
}

// ItemCount reports the entries held, expired ones included until reclaimed
func (cs *CacheService) ItemCount() int {
	return cs.cache.ItemCount()
}

func (cs *CacheService) Ping(context.Context) error {
	return nil
}

// Close closes the cache (no-op for in-memory cache)
func (cs *CacheService) Close() error {
	return nil
}
