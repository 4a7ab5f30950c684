// Package http implements the HTTP transport for the CloudIQ API with
// authentication, retries, and interceptor support.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/cloudiq/internal/constants"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// TokenManager supplies bearer tokens for outgoing requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// Request describes an API request. Body is marshaled to JSON unless it is
// already a []byte.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw result of an API request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is an HTTP client for the CloudIQ API.
type Client struct {
	baseURL      string
	tokenManager TokenManager
	retryClient  *retryablehttp.Client
	logger       cloudiq.Logger
	debug        bool
	userAgent    string
	interceptors *cloudiq.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger cloudiq.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig overrides the retry limits.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors attaches an interceptor chain. Request interceptors run
// before the request goes out and may satisfy it from cache; response
// interceptors run before errors are mapped.
func WithInterceptors(chain *cloudiq.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new CloudIQ HTTP client. Retries follow the
// retryablehttp default policy, which covers 429 and 5xx responses as well
// as connection failures.
func NewClient(baseURL string, tokenManager TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		retryClient:  retryClient,
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// leveledLogger adapts a cloudiq.Logger to retryablehttp.LeveledLogger so
// retry attempts show up in the client's structured log output.
type leveledLogger struct {
	logger cloudiq.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, logFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, logFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, logFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, logFields(keysAndValues))
}

func logFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}

// Do executes a request against the API. For error status codes the parsed
// *cloudiq.ResponseError is returned alongside the response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, err := marshalBody(req.Body)
	if err != nil {
		return nil, err
	}

	ireq := interceptRequest(req, body)

	if c.interceptors != nil {
		if err := c.interceptors.ExecuteRequestInterceptors(ctx, ireq); err != nil {
			return nil, err
		}

		if data, ok := ireq.Metadata[cloudiq.MetadataCachedResponse].([]byte); ok {
			return &Response{StatusCode: http.StatusOK, Body: data}, nil
		}
	}

	resp, err := c.execute(ctx, ireq, body)
	if err != nil {
		return nil, err
	}

	// An expired token comes back as 401; refresh once and replay.
	if resp.StatusCode == http.StatusUnauthorized && c.tokenManager != nil {
		if refreshErr := c.tokenManager.RefreshToken(ctx); refreshErr == nil {
			resp, err = c.execute(ctx, ireq, body)
			if err != nil {
				return nil, err
			}
		}
	}

	if c.interceptors != nil {
		iresp := &cloudiq.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}

		if err := c.interceptors.ExecuteResponseInterceptors(ctx, ireq, iresp); err != nil {
			return nil, err
		}

		resp.StatusCode = iresp.StatusCode
		resp.Body = iresp.Body
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, cloudiq.ParseResponseError(resp.StatusCode, resp.Body)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) execute(ctx context.Context, ireq *cloudiq.Request, body []byte) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, ireq, body)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": ireq.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status_code": httpResp.StatusCode,
			"bytes":       len(respBody),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, ireq *cloudiq.Request, body []byte) (*retryablehttp.Request, error) {
	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, ireq.Method, c.baseURL+ireq.Path, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	// Caller and interceptor headers override the defaults.
	for key, values := range ireq.Headers {
		httpReq.Header[http.CanonicalHeaderKey(key)] = values
	}

	return httpReq, nil
}

// interceptRequest builds the interceptor view of a request. The query
// string is folded into the path so cache keys distinguish query variants.
func interceptRequest(req *Request, body []byte) *cloudiq.Request {
	path := req.Path
	if len(req.Query) > 0 {
		path += "?" + req.Query.Encode()
	}

	headers := make(http.Header)
	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return &cloudiq.Request{
		Method:   req.Method,
		Path:     path,
		Headers:  headers,
		Body:     body,
		Metadata: make(map[string]interface{}),
	}
}

func marshalBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	if raw, ok := body.([]byte); ok {
		return raw, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}
