package cloudiq

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fivetwenty-io/cloudiq/internal/constants"
)

// Metadata keys the HTTP layer reads after request interceptors run.
const (
	// MetadataCacheKey carries the cache key computed for the request.
	MetadataCacheKey = "cache_key"

	// MetadataCachedResponse carries a cached body that satisfies the
	// request without going to the network.
	MetadataCachedResponse = "cached_response"
)

// CacheInterceptor returns the request and response interceptors that serve
// and populate the cache for requests the policy allows.
func CacheInterceptor(manager *CacheManager, policy *CachingPolicy) (RequestInterceptor, ResponseInterceptor) {
	return cacheInterceptors(manager, policy, nil)
}

func cacheInterceptors(manager *CacheManager, policy *CachingPolicy, resourceTTLs map[string]time.Duration) (RequestInterceptor, ResponseInterceptor) {
	requestInterceptor := func(ctx context.Context, req *Request) error {
		if req.Method != http.MethodGet {
			return nil
		}

		key := manager.GetCacheKey(req.Method, req.Path, nil)

		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[MetadataCacheKey] = key

		data, err := manager.Get(ctx, key)
		if err != nil {
			return nil
		}

		req.Metadata[MetadataCachedResponse] = data

		return nil
	}

	cacheKeyFor := func(req *Request) string {
		if req.Metadata != nil {
			if stored, ok := req.Metadata[MetadataCacheKey].(string); ok {
				return stored
			}
		}

		return manager.GetCacheKey(req.Method, req.Path, nil)
	}

	responseInterceptor := func(ctx context.Context, req *Request, resp *Response) error {
		if resp.Error != nil {
			return nil
		}

		// A 304 revalidates the cached body instead of replacing it.
		if req.Method == http.MethodGet && resp.StatusCode == http.StatusNotModified {
			data, err := manager.Get(ctx, cacheKeyFor(req))
			if err == nil {
				resp.StatusCode = http.StatusOK
				resp.Body = data
			}

			return nil
		}

		if !policy.ShouldCache(req.Method, req.Path, resp.StatusCode) {
			return nil
		}

		etag := ""
		if resp.Headers != nil {
			etag = resp.Headers.Get("ETag")
		}

		return manager.SetWithETag(ctx, cacheKeyFor(req), resp.Body, etag, ttlForPath(resourceTTLs, req.Path))
	}

	return requestInterceptor, responseInterceptor
}

func ttlForPath(resourceTTLs map[string]time.Duration, path string) time.Duration {
	for prefix, ttl := range resourceTTLs {
		if strings.HasPrefix(path, prefix) {
			return ttl
		}
	}

	return 0
}

// ConditionalRequestInterceptor adds If-None-Match headers from cached ETags
// so the server can answer with 304 Not Modified.
func ConditionalRequestInterceptor(manager *CacheManager) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Method != http.MethodGet {
			return nil
		}

		key := manager.GetCacheKey(req.Method, req.Path, nil)

		_, etag, err := manager.GetWithETag(ctx, key)
		if err != nil || etag == "" {
			return nil
		}

		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		req.Headers.Set("If-None-Match", etag)

		return nil
	}
}

// CacheInvalidationInterceptor drops cached reads for a resource after a
// successful mutation of it.
func CacheInvalidationInterceptor(manager *CacheManager) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		switch req.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			return nil
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil
		}

		_ = manager.Delete(ctx, manager.GetCacheKey(http.MethodGet, req.Path, nil))

		// Invalidate the parent collection as well.
		if idx := strings.LastIndex(req.Path, "/"); idx > 0 {
			parent := req.Path[:idx]
			_ = manager.Delete(ctx, manager.GetCacheKey(http.MethodGet, parent, nil))
		}

		return nil
	}
}

// SmartCacheConfig bundles the cache interceptors into one configuration.
type SmartCacheConfig struct {
	// EnableSmartInvalidation invalidates cached reads after mutations.
	EnableSmartInvalidation bool

	// EnableConditionalRequests sends If-None-Match from cached ETags.
	EnableConditionalRequests bool

	// EnableMetrics adds the metrics interceptors to the chain.
	EnableMetrics bool

	// Policy decides which responses are cacheable. Nil uses
	// DefaultCachingPolicy; DictionaryCachingPolicy restricts caching to
	// the dictionary endpoints.
	Policy *CachingPolicy

	// ResourceTTLs overrides the cache TTL per path prefix.
	ResourceTTLs map[string]time.Duration
}

// DefaultSmartCacheConfig returns the default smart cache configuration.
// Dictionary endpoints change rarely and are cached for an hour.
func DefaultSmartCacheConfig() *SmartCacheConfig {
	return &SmartCacheConfig{
		EnableSmartInvalidation:   true,
		EnableConditionalRequests: true,
		EnableMetrics:             true,
		ResourceTTLs: map[string]time.Duration{
			"/BillingCycles":   constants.DictionaryCacheTTL,
			"/Regions":         constants.DictionaryCacheTTL,
			"/Programs":        constants.DictionaryCacheTTL,
			"/publishers":      constants.DictionaryCacheTTL,
			"/managementlinks": constants.DictionaryCacheTTL,
			"/Organizations":   constants.DefaultCacheSetTTL,
		},
	}
}

// ConfigureSmartCache wires the cache, conditional request, invalidation,
// and metrics interceptors into the chain.
func ConfigureSmartCache(chain *InterceptorChain, manager *CacheManager, config *SmartCacheConfig) {
	if config == nil {
		config = DefaultSmartCacheConfig()
	}

	policy := config.Policy
	if policy == nil {
		policy = DefaultCachingPolicy()
	}

	requestInterceptor, responseInterceptor := cacheInterceptors(manager, policy, config.ResourceTTLs)

	if config.EnableConditionalRequests {
		chain.AddRequestInterceptor(ConditionalRequestInterceptor(manager))
	}

	chain.AddRequestInterceptor(requestInterceptor)
	chain.AddResponseInterceptor(responseInterceptor)

	if config.EnableSmartInvalidation {
		chain.AddResponseInterceptor(CacheInvalidationInterceptor(manager))
	}

	if config.EnableMetrics {
		collector := NewMetricsCollector()
		chain.AddRequestInterceptor(MetricsRequestInterceptor(collector))
		chain.AddResponseInterceptor(MetricsResponseInterceptor(collector))
	}
}

// CacheWarmer primes the cache with the dictionary endpoints.
type CacheWarmer struct {
	client  Client
	manager *CacheManager
}

// NewCacheWarmer creates a cache warmer.
func NewCacheWarmer(client Client, manager *CacheManager) *CacheWarmer {
	return &CacheWarmer{
		client:  client,
		manager: manager,
	}
}

// Warm fetches the dictionary endpoints once so subsequent reads hit the
// cache. Errors stop the warmup and are returned.
func (w *CacheWarmer) Warm(ctx context.Context) error {
	if w.client == nil {
		return nil
	}

	warmups := []func(context.Context) error{
		func(ctx context.Context) error {
			_, err := w.client.BillingCycles().List(ctx, false)

			return err
		},
		func(ctx context.Context) error {
			_, err := w.client.Regions().List(ctx, nil)

			return err
		},
		func(ctx context.Context) error {
			_, err := w.client.Programs().List(ctx, nil)

			return err
		},
		func(ctx context.Context) error {
			_, err := w.client.Publishers().List(ctx, nil)

			return err
		},
	}

	for _, warm := range warmups {
		if err := warm(ctx); err != nil {
			return err
		}
	}

	return nil
}
