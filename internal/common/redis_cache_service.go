package common

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const clearScanBatch = 500

// setIfEpoch stores ARGV[2] under KEYS[2] only while KEYS[1] still holds
// epoch ARGV[1]. A missing epoch key reads as 0.
var setIfEpoch = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// RedisCacheService implements CacheInterface using Redis. Every key is
// namespaced under prefix so Clear never touches foreign keys. The epoch
// counter lives at "<prefix>_epoch", outside the scanned pattern, so Clear
// does not reset it.
type RedisCacheService struct {
	client redis.UniversalClient
	prefix string
}

// Ensure RedisCacheService implements CacheInterface
var _ CacheInterface = (*RedisCacheService)(nil)

// NewRedisCacheService creates a new Redis-based cache service
func NewRedisCacheService(client redis.UniversalClient, prefix string) *RedisCacheService {
	if prefix == "" {
		prefix = "admin_cache"
	}
	return &RedisCacheService{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisCacheService) Epoch(ctx context.Context) (uint64, error) {
	epoch, err := r.client.Get(ctx, r.epochKey()).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis cache: failed to read epoch: %w", err)
	}
	return epoch, nil
}

func (r *RedisCacheService) Set(ctx context.Context, key string, value []byte, ttl time.Duration, epoch uint64) (bool, error) {
	ttlMillis := ttl.Milliseconds()
	if ttlMillis <= 0 {
		return false, nil
	}

	stored, err := setIfEpoch.Run(ctx, r.client,
		[]string{r.epochKey(), r.key(key)},
		strconv.FormatUint(epoch, 10), value, ttlMillis,
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis cache: failed to set key %s: %w", key, err)
	}
	return stored == 1, nil
}

func (r *RedisCacheService) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis cache: failed to get key %s: %w", key, err)
	}
	return data, true, nil
}

// Clear advances the epoch, then removes every key under the prefix. SCAN
// keeps Redis responsive where KEYS would block.
func (r *RedisCacheService) Clear(ctx context.Context) error {
	if err := r.client.Incr(ctx, r.epochKey()).Err(); err != nil {
		return fmt.Errorf("redis cache: failed to advance epoch: %w", err)
	}

	var cursor uint64
	pattern := r.prefix + ":*"

	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, clearScanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis cache: failed to scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis cache: failed to delete %d keys: %w", len(keys), err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *RedisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisCacheService) Close() error {
	return r.client.Close()
}

func (r *RedisCacheService) key(k string) string {
	return r.prefix + ":" + k
}

func (r *RedisCacheService) epochKey() string {
	return r.prefix + "_epoch"
}
