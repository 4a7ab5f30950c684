package cloudiq_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTokenUnavailable = errors.New("token unavailable")

// testLogger records log calls for assertions.
type testLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *testLogger) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
}

func (l *testLogger) Debug(msg string, fields map[string]interface{}) { l.log(msg) }
func (l *testLogger) Info(msg string, fields map[string]interface{})  { l.log(msg) }
func (l *testLogger) Warn(msg string, fields map[string]interface{})  { l.log(msg) }
func (l *testLogger) Error(msg string, fields map[string]interface{}) { l.log(msg) }

func (l *testLogger) logged(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range l.messages {
		if m == msg {
			return true
		}
	}

	return false
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	chain := cloudiq.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *cloudiq.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *cloudiq.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	req := &cloudiq.Request{
		Method: "GET",
		Path:   "/test",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := cloudiq.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *cloudiq.Request, resp *cloudiq.Response) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *cloudiq.Request, resp *cloudiq.Response) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	req := &cloudiq.Request{
		Method: "GET",
		Path:   "/test",
	}
	resp := &cloudiq.Response{
		StatusCode: 200,
	}

	err := chain.ExecuteResponseInterceptors(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_RequestErrorStopsChain(t *testing.T) {
	chain := cloudiq.NewInterceptorChain()
	ctx := context.Background()

	var secondRan bool

	chain.AddRequestInterceptor(func(ctx context.Context, req *cloudiq.Request) error {
		return errTokenUnavailable
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *cloudiq.Request) error {
		secondRan = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &cloudiq.Request{Method: "GET", Path: "/test"})
	require.ErrorIs(t, err, errTokenUnavailable)
	assert.False(t, secondRan)
}

func TestHeaderInterceptor(t *testing.T) {
	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Request-ID":    "123456",
	}

	interceptor := cloudiq.HeaderInterceptor(headers)
	ctx := context.Background()
	req := &cloudiq.Request{
		Method: "GET",
		Path:   "/test",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestAuthenticationInterceptor(t *testing.T) {
	tokenProvider := func(ctx context.Context) (string, error) {
		return "test-token", nil
	}

	interceptor := cloudiq.AuthenticationInterceptor(tokenProvider)
	ctx := context.Background()
	req := &cloudiq.Request{
		Method: "GET",
		Path:   "/test",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", req.Headers.Get("Authorization"))
}

func TestAuthenticationInterceptor_ProviderError(t *testing.T) {
	tokenProvider := func(ctx context.Context) (string, error) {
		return "", errTokenUnavailable
	}

	interceptor := cloudiq.AuthenticationInterceptor(tokenProvider)
	ctx := context.Background()

	err := interceptor(ctx, &cloudiq.Request{Method: "GET", Path: "/test"})
	require.ErrorIs(t, err, errTokenUnavailable)
}

func TestRateLimitInterceptor(t *testing.T) {
	// A generous rate never blocks.
	interceptor := cloudiq.RateLimitInterceptor(1000)
	ctx := context.Background()

	start := time.Now()

	for range 5 {
		err := interceptor(ctx, &cloudiq.Request{Method: "GET", Path: "/test"})
		require.NoError(t, err)
	}

	assert.Less(t, time.Since(start), time.Second)
}

func TestRateLimitInterceptor_CanceledContext(t *testing.T) {
	// A rate this low cannot admit a second request, so a canceled
	// context must surface as an error instead of blocking.
	interceptor := cloudiq.RateLimitInterceptor(0.001)

	ctx, cancel := context.WithCancel(context.Background())

	err := interceptor(ctx, &cloudiq.Request{Method: "GET", Path: "/test"})
	require.NoError(t, err)

	cancel()

	err = interceptor(ctx, &cloudiq.Request{Method: "GET", Path: "/test"})
	require.Error(t, err)
}

func TestLoggingInterceptors(t *testing.T) {
	logger := &testLogger{}

	requestInterceptor := cloudiq.LoggingInterceptor(logger)
	responseInterceptor := cloudiq.LoggingResponseInterceptor(logger)

	ctx := context.Background()
	req := &cloudiq.Request{Method: "GET", Path: "/Organizations"}

	require.NoError(t, requestInterceptor(ctx, req))
	assert.True(t, logger.logged("API Request"))

	resp := &cloudiq.Response{StatusCode: 200}
	require.NoError(t, responseInterceptor(ctx, req, resp))
	assert.True(t, logger.logged("API Response"))

	failed := &cloudiq.Response{StatusCode: 500, Error: errTokenUnavailable}
	require.NoError(t, responseInterceptor(ctx, req, failed))
	assert.True(t, logger.logged("API Response Error"))
}

func TestMetricsCollector(t *testing.T) {
	collector := cloudiq.NewMetricsCollector()

	var (
		notifiedEndpoint string
		notifiedMetrics  *cloudiq.Metrics
	)

	collector.SetOnChange(func(endpoint string, metrics *cloudiq.Metrics) {
		notifiedEndpoint = endpoint
		notifiedMetrics = metrics
	})

	requestInterceptor := cloudiq.MetricsRequestInterceptor(collector)
	responseInterceptor := cloudiq.MetricsResponseInterceptor(collector)

	ctx := context.Background()
	req := &cloudiq.Request{
		Method: "GET",
		Path:   "/Organizations",
	}

	err := requestInterceptor(ctx, req)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	resp := &cloudiq.Response{
		StatusCode: 200,
	}
	err = responseInterceptor(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, "GET /Organizations", notifiedEndpoint)
	require.NotNil(t, notifiedMetrics)
	assert.Equal(t, int64(1), notifiedMetrics.TotalRequests)
	assert.Equal(t, int64(0), notifiedMetrics.TotalErrors)
	assert.Positive(t, notifiedMetrics.AverageLatency)

	// A failed request without a recorded start time still counts.
	req2 := &cloudiq.Request{
		Method: "GET",
		Path:   "/Organizations",
	}
	resp2 := &cloudiq.Response{
		StatusCode: 500,
	}
	err = responseInterceptor(ctx, req2, resp2)
	require.NoError(t, err)

	metrics := collector.GetMetrics("GET /Organizations")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)

	assert.Nil(t, collector.GetMetrics("GET /nowhere"))
}
