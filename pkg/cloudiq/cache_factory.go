package cloudiq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fivetwenty-io/cloudiq/internal/constants"
)

// CacheType selects the response cache backend.
type CacheType string

const (
	// CacheTypeMemory keeps responses in a bounded in-process cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS keeps responses in a NATS JetStream KV bucket, shared
	// across processes.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeNone disables response caching.
	CacheTypeNone CacheType = "none"
)

// Static errors for err113 compliance.
var (
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
	ErrCacheDisabled        = errors.New("cache disabled")
)

// CacheConfig configures the response cache backend on Config.Cache.
type CacheConfig struct {
	// Type is the cache backend type.
	Type CacheType

	// Memory configures the in-process backend. Nil uses the defaults.
	Memory *MemoryCacheConfig

	// NATS configures the JetStream KV backend. Required for
	// CacheTypeNATS; the bucket name defaults to "cloudiq-responses".
	NATS *NATSKVConfig

	// Options applies to any backend. Nil uses DefaultCacheOptions().
	Options *CacheOptions
}

// MemoryCacheConfig configures the in-process cache backend.
type MemoryCacheConfig struct {
	// MaxSize bounds the number of cached responses.
	MaxSize int

	// CleanupInterval is how often expired entries are swept. Zero or
	// negative disables the sweeper.
	CleanupInterval time.Duration
}

// DefaultCacheConfig returns the in-process backend with the default
// bounds.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type: CacheTypeMemory,
		Memory: &MemoryCacheConfig{
			MaxSize:         constants.DefaultCacheSize,
			CleanupInterval: constants.DefaultCacheCleanupInterval,
		},
		Options: DefaultCacheOptions(),
	}
}

// DictionaryCachingPolicy caches only the GET dictionary endpoints, which
// change rarely. Everything else, including identity, token, and file
// downloads, passes through uncached.
func DictionaryCachingPolicy() *CachingPolicy {
	return &CachingPolicy{
		CacheGET: true,
		IncludePaths: []string{
			"/BillingCycles",
			"/Regions",
			"/Programs",
			"/publishers",
		},
	}
}

// NewCacheFromConfig creates a cache backend from configuration.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case CacheTypeMemory:
		return NewMemoryCacheFromConfig(config.Memory)

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		natsConfig := *config.NATS
		if natsConfig.Bucket == "" {
			natsConfig.Bucket = constants.DefaultCacheBucket
		}

		return NewNATSKVCache(&natsConfig)

	case CacheTypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
	}
}

// NewMemoryCacheFromConfig creates the in-process backend and starts its
// sweeper when a cleanup interval is configured.
func NewMemoryCacheFromConfig(config *MemoryCacheConfig) (Cache, error) {
	if config == nil {
		config = &MemoryCacheConfig{
			MaxSize:         constants.DefaultCacheSize,
			CleanupInterval: constants.DefaultCacheCleanupInterval,
		}
	}

	cache := NewMemoryCache(config.MaxSize)

	if config.CleanupInterval > 0 {
		cache.StartCleanup(context.Background(), config.CleanupInterval)
	}

	return cache, nil
}

// NoOpCache is a cache that stores nothing.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always returns false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}
