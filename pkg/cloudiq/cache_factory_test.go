package cloudiq_test

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheFactory_MemoryCache(t *testing.T) {
	config := &cloudiq.CacheConfig{
		Type: cloudiq.CacheTypeMemory,
		Memory: &cloudiq.MemoryCacheConfig{
			MaxSize:         100,
			CleanupInterval: time.Minute,
		},
	}

	cache, err := cloudiq.NewCacheFromConfig(config)
	require.NoError(t, err)
	require.NotNil(t, cache)

	ctx := context.Background()
	entry := &cloudiq.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		ETag:      "test-etag",
	}

	err = cache.Set(ctx, "test-key", entry)
	assert.NoError(t, err)

	retrieved, err := cache.Get(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.Equal(t, entry.ETag, retrieved.ETag)

	assert.True(t, cache.Has(ctx, "test-key"))

	err = cache.Delete(ctx, "test-key")
	assert.NoError(t, err)
	assert.False(t, cache.Has(ctx, "test-key"))
}

func TestCacheFactory_NoOpCache(t *testing.T) {
	config := &cloudiq.CacheConfig{
		Type: cloudiq.CacheTypeNone,
	}

	cache, err := cloudiq.NewCacheFromConfig(config)
	require.NoError(t, err)
	require.NotNil(t, cache)

	ctx := context.Background()
	entry := &cloudiq.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	// Set should succeed but do nothing
	err = cache.Set(ctx, "test-key", entry)
	assert.NoError(t, err)

	// Get should always fail
	_, err = cache.Get(ctx, "test-key")
	assert.Error(t, err)

	// Has should always return false
	assert.False(t, cache.Has(ctx, "test-key"))

	// Delete should succeed but do nothing
	err = cache.Delete(ctx, "test-key")
	assert.NoError(t, err)

	// Clear should succeed but do nothing
	err = cache.Clear(ctx)
	assert.NoError(t, err)
}

func TestDictionaryCachingPolicy(t *testing.T) {
	policy := cloudiq.DictionaryCachingPolicy()

	// Only the dictionary endpoints cache.
	assert.True(t, policy.ShouldCache("GET", "/BillingCycles", 200))
	assert.True(t, policy.ShouldCache("GET", "/Regions", 200))
	assert.True(t, policy.ShouldCache("GET", "/Programs", 200))
	assert.True(t, policy.ShouldCache("GET", "/publishers", 200))

	// Everything else passes through.
	assert.False(t, policy.ShouldCache("GET", "/Organizations", 200))
	assert.False(t, policy.ShouldCache("GET", "/Me", 200))
	assert.False(t, policy.ShouldCache("GET", "/connect/token", 200))
	assert.False(t, policy.ShouldCache("GET", "/BillingStatements/42/reconciliationfile", 200))
	assert.False(t, policy.ShouldCache("POST", "/BillingCycles", 200))
}

func TestDefaultCacheConfig(t *testing.T) {
	config := cloudiq.DefaultCacheConfig()
	assert.Equal(t, cloudiq.CacheTypeMemory, config.Type)
	assert.NotNil(t, config.Memory)
	assert.Equal(t, 1000, config.Memory.MaxSize)
	assert.Equal(t, time.Minute, config.Memory.CleanupInterval)
	assert.NotNil(t, config.Options)
}

func TestCacheFactory_InvalidType(t *testing.T) {
	config := &cloudiq.CacheConfig{
		Type: cloudiq.CacheType("invalid"),
	}

	cache, err := cloudiq.NewCacheFromConfig(config)
	assert.Error(t, err)
	assert.Nil(t, cache)
	assert.Contains(t, err.Error(), "unsupported cache type")
}

func TestCacheFactory_NilConfig(t *testing.T) {
	cache, err := cloudiq.NewCacheFromConfig(nil)
	require.NoError(t, err)
	require.NotNil(t, cache)

	// Should use default config (memory cache)
	ctx := context.Background()
	entry := &cloudiq.CacheEntry{
		Data:      []byte("default test"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	err = cache.Set(ctx, "default-key", entry)
	assert.NoError(t, err)

	retrieved, err := cache.Get(ctx, "default-key")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
}

func TestCacheFactory_NATSRequiresConfig(t *testing.T) {
	config := &cloudiq.CacheConfig{
		Type: cloudiq.CacheTypeNATS,
	}

	cache, err := cloudiq.NewCacheFromConfig(config)
	require.ErrorIs(t, err, cloudiq.ErrNATSConfigRequired)
	assert.Nil(t, cache)
}
