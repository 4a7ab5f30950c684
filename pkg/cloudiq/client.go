package cloudiq

import (
	"context"
	"errors"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/fivetwenty-io/cloudiq/pkg/ciqclient.New to create a client")
)

// CoreResourceClients provides access to the core provisioning resources.
type CoreResourceClients interface {
	Organizations() OrganizationsClient
	CustomerTenants() CustomerTenantsClient
	Subscriptions() SubscriptionsClient
	AzurePlans() AzurePlansClient
	Users() UsersClient
}

// BillingClients provides access to billing and invoicing resources.
type BillingClients interface {
	AgreementProducts() AgreementProductsClient
	Agreements() AgreementsClient
	AgreementReports() AgreementReportsClient
	BillingCycles() BillingCyclesClient
	BillingStatements() BillingStatementsClient
	InvoiceProfiles() InvoiceProfilesClient
	UsageCost() UsageCostClient
	ResellerSalesPrices() ResellerSalesPricesClient
}

// AccountClients provides access to account structure resources.
type AccountClients interface {
	Addresses() AddressesClient
	Consumers() ConsumersClient
	CrayonAccounts() CrayonAccountsClient
	Groupings() GroupingsClient
	OrganizationAccess() OrganizationAccessClient
	Clients() ClientsClient
	Secrets() SecretsClient
}

// CommerceClients provides access to purchasing resources.
type CommerceClients interface {
	ProductContainers() ProductContainersClient
	Assets() AssetsClient
}

// DirectoryClients provides access to the read-mostly directory resources.
type DirectoryClients interface {
	Programs() ProgramsClient
	Publishers() PublishersClient
	Regions() RegionsClient
	BlogItems() BlogItemsClient
	ManagementLinks() ManagementLinksClient
	ActivityLogs() ActivityLogsClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	// Composite interfaces for resource groups
	CoreResourceClients
	BillingClients
	AccountClients
	CommerceClients
	DirectoryClients
}

// InfoClient provides access to API information endpoints.
type InfoClient interface {
	// Ping checks connectivity without authentication.
	Ping(ctx context.Context) (*PingResponse, error)
	// Me returns the authenticated user's identity and claims.
	Me(ctx context.Context) (*Me, error)
}

type Client interface {
	// Composite interfaces for related resource groups
	ResourceClients
	InfoClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cloudiq.Client.
//
// The value is read only after construction: the client never mutates it,
// and the only mutable state it derives (the cached bearer token) lives in
// the token manager's own store.
//
// # Authentication precedence
//
// The following precedence is applied by the concrete client implementation
// (see pkg/ciqclient and internal/client):
//  1. AccessToken: if set, it is used directly as a static Bearer token.
//  2. ClientID/ClientSecret + Username/Password: the OAuth2 resource owner
//     password grant against "<endpoint>/connect/token", the only grant
//     CloudIQ supports. Tokens are fetched lazily, cached, and refreshed
//     once their expiry enters TokenRefreshWindow.
//  3. No credentials: only the unauthenticated Ping endpoint works.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. Transient failures (connection errors, 429, 5xx) are
// retried with backoff, tunable via RetryMax/RetryWaitMin/RetryWaitMax; 4xx
// responses are returned immediately as *ResponseError.
type Config struct {
	// APIEndpoint: base URL for the CloudIQ API. Defaults to the production
	// endpoint "https://api.crayon.com/api/v1". ciqclient.New normalizes the
	// value by trimming a trailing slash and adding "https://" if no scheme
	// is present.
	APIEndpoint string

	// Authentication
	// ClientID: API client ID, sent as the HTTP Basic username on the grant.
	ClientID string
	// ClientSecret: API client secret, sent as the HTTP Basic password.
	ClientSecret string
	// Username: CloudIQ account username for the password grant.
	Username string
	// Password: CloudIQ account password for the password grant.
	Password string
	// AccessToken: if set, used directly as a Bearer token and never
	// refreshed. Useful for short scripts holding a token from elsewhere.
	AccessToken string
	// TokenURL: full OAuth2 token endpoint. If empty it is derived from
	// APIEndpoint as "<endpoint>/connect/token".
	TokenURL string
	// Scope requested with the password grant. Defaults to "CustomerApi".
	Scope string
	// TokenRefreshWindow: how far before expiry a cached token is refreshed
	// rather than reused. Zero means the 10 minute default.
	TokenRefreshWindow time.Duration

	// Optional configurations
	// HTTPTimeout: optional default HTTP timeout where supported. Most client
	// calls should rely on context timeouts; this may be used by helpers.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. If 0, a
	// sensible default is used by the client.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and helpers.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Cache: optional response cache configuration for dictionary endpoints.
	// Nil disables caching.
	Cache *CacheConfig
	// RateLimit: optional client-side requests-per-second ceiling applied
	// before each call. Zero disables client-side limiting.
	RateLimit float64
}

// NewClient creates a new CloudIQ API client
// Deprecated: Use github.com/fivetwenty-io/cloudiq/pkg/ciqclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}

// PingResponse represents the unauthenticated /ping response.
type PingResponse struct {
	Version     string `json:"Version"     yaml:"version"`
	Environment string `json:"Environment" yaml:"environment"`
}

// Me represents the /Me response for the authenticated user.
type Me struct {
	User   User     `json:"User"             yaml:"user"`
	Token  string   `json:"Token,omitempty"  yaml:"token,omitempty"`
	Claims []string `json:"Claims,omitempty" yaml:"claims,omitempty"`
}
