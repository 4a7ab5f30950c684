// Package client implements the cloudiq.Client interface against the
// CloudIQ REST API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fivetwenty-io/cloudiq/internal/auth"
	"github.com/fivetwenty-io/cloudiq/internal/constants"
	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// Client implements the cloudiq.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       cloudiq.Logger

	// Resource clients
	organizations       cloudiq.OrganizationsClient
	customerTenants     cloudiq.CustomerTenantsClient
	subscriptions       cloudiq.SubscriptionsClient
	azurePlans          cloudiq.AzurePlansClient
	users               cloudiq.UsersClient
	agreementProducts   cloudiq.AgreementProductsClient
	agreements          cloudiq.AgreementsClient
	agreementReports    cloudiq.AgreementReportsClient
	billingCycles       cloudiq.BillingCyclesClient
	billingStatements   cloudiq.BillingStatementsClient
	invoiceProfiles     cloudiq.InvoiceProfilesClient
	usageCost           cloudiq.UsageCostClient
	resellerSalesPrices cloudiq.ResellerSalesPricesClient
	addresses           cloudiq.AddressesClient
	consumers           cloudiq.ConsumersClient
	crayonAccounts      cloudiq.CrayonAccountsClient
	groupings           cloudiq.GroupingsClient
	organizationAccess  cloudiq.OrganizationAccessClient
	apiClients          cloudiq.ClientsClient
	secrets             cloudiq.SecretsClient
	productContainers   cloudiq.ProductContainersClient
	assets              cloudiq.AssetsClient
	programs            cloudiq.ProgramsClient
	publishers          cloudiq.PublishersClient
	regions             cloudiq.RegionsClient
	blogItems           cloudiq.BlogItemsClient
	managementLinks     cloudiq.ManagementLinksClient
	activityLogs        cloudiq.ActivityLogsClient
}

// createTokenManager creates the appropriate token manager for the
// configured credentials.
func createTokenManager(config *cloudiq.Config) auth.TokenManager {
	hasPasswordGrant := config.ClientID != "" && config.ClientSecret != "" &&
		config.Username != "" && config.Password != ""

	if config.AccessToken != "" && hasPasswordGrant {
		return &fallbackTokenManager{
			staticToken:  config.AccessToken,
			oauthManager: createPasswordTokenManager(config),
		}
	}

	if config.AccessToken != "" {
		return &staticTokenManager{token: config.AccessToken}
	}

	if hasPasswordGrant {
		return createPasswordTokenManager(config)
	}

	return nil // Unauthenticated; only ping will work
}

// createPasswordTokenManager creates a password grant token manager.
func createPasswordTokenManager(config *cloudiq.Config) auth.TokenManager {
	return auth.NewPasswordTokenManager(&auth.Config{
		TokenURL:      getTokenURL(config),
		ClientID:      config.ClientID,
		ClientSecret:  config.ClientSecret,
		Username:      config.Username,
		Password:      config.Password,
		Scope:         config.Scope,
		RefreshWindow: config.TokenRefreshWindow,
	})
}

// getTokenURL returns the token URL from config or derives it from the API
// endpoint.
func getTokenURL(config *cloudiq.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return config.APIEndpoint + constants.TokenPath
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *cloudiq.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	chain, err := createInterceptorChain(config)
	if err != nil {
		return nil, err
	}

	if chain != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	return httpOpts, nil
}

// createInterceptorChain wires the rate limiter and response cache when the
// config asks for them.
func createInterceptorChain(config *cloudiq.Config) (*cloudiq.InterceptorChain, error) {
	if config.RateLimit <= 0 && config.Cache == nil {
		return nil, nil
	}

	chain := cloudiq.NewInterceptorChain()

	if config.RateLimit > 0 {
		chain.AddRequestInterceptor(cloudiq.RateLimitInterceptor(config.RateLimit))
	}

	if config.Cache != nil {
		cache, err := cloudiq.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		manager := cloudiq.NewCacheManager(cache, config.Cache.Options)
		cloudiq.ConfigureSmartCache(chain, manager, nil)
	}

	return chain, nil
}

// New creates a new CloudIQ API client.
func New(ctx context.Context, config *cloudiq.Config) (*Client, error) {
	if config == nil {
		return nil, cloudiq.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, cloudiq.ErrAPIEndpointRequired
	}

	return NewWithTokenManager(config, createTokenManager(config))
}

// NewWithTokenManager creates a new CloudIQ API client with a custom token
// manager, for callers that own token persistence themselves.
func NewWithTokenManager(config *cloudiq.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, cloudiq.ErrAPIEndpointRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", auth.ErrNoCredentials
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// Ping implements cloudiq.InfoClient.Ping.
func (c *Client) Ping(ctx context.Context) (*cloudiq.PingResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/ping", nil)
	if err != nil {
		return nil, fmt.Errorf("pinging API: %w", err)
	}

	var ping cloudiq.PingResponse

	err = json.Unmarshal(resp.Body, &ping)
	if err != nil {
		return nil, fmt.Errorf("parsing ping response: %w", err)
	}

	return &ping, nil
}

// Me implements cloudiq.InfoClient.Me.
func (c *Client) Me(ctx context.Context) (*cloudiq.Me, error) {
	resp, err := c.httpClient.Get(ctx, "/Me", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var me cloudiq.Me

	err = json.Unmarshal(resp.Body, &me)
	if err != nil {
		return nil, fmt.Errorf("parsing me response: %w", err)
	}

	return &me, nil
}

// Resource client accessors

// Organizations implements cloudiq.Client.Organizations.
func (c *Client) Organizations() cloudiq.OrganizationsClient {
	return c.organizations
}

// CustomerTenants implements cloudiq.Client.CustomerTenants.
func (c *Client) CustomerTenants() cloudiq.CustomerTenantsClient {
	return c.customerTenants
}

// Subscriptions implements cloudiq.Client.Subscriptions.
func (c *Client) Subscriptions() cloudiq.SubscriptionsClient {
	return c.subscriptions
}

// AzurePlans implements cloudiq.Client.AzurePlans.
func (c *Client) AzurePlans() cloudiq.AzurePlansClient {
	return c.azurePlans
}

// Users implements cloudiq.Client.Users.
func (c *Client) Users() cloudiq.UsersClient {
	return c.users
}

// AgreementProducts implements cloudiq.Client.AgreementProducts.
func (c *Client) AgreementProducts() cloudiq.AgreementProductsClient {
	return c.agreementProducts
}

// Agreements implements cloudiq.Client.Agreements.
func (c *Client) Agreements() cloudiq.AgreementsClient {
	return c.agreements
}

// AgreementReports implements cloudiq.Client.AgreementReports.
func (c *Client) AgreementReports() cloudiq.AgreementReportsClient {
	return c.agreementReports
}

// BillingCycles implements cloudiq.Client.BillingCycles.
func (c *Client) BillingCycles() cloudiq.BillingCyclesClient {
	return c.billingCycles
}

// BillingStatements implements cloudiq.Client.BillingStatements.
func (c *Client) BillingStatements() cloudiq.BillingStatementsClient {
	return c.billingStatements
}

// InvoiceProfiles implements cloudiq.Client.InvoiceProfiles.
func (c *Client) InvoiceProfiles() cloudiq.InvoiceProfilesClient {
	return c.invoiceProfiles
}

// UsageCost implements cloudiq.Client.UsageCost.
func (c *Client) UsageCost() cloudiq.UsageCostClient {
	return c.usageCost
}

// ResellerSalesPrices implements cloudiq.Client.ResellerSalesPrices.
func (c *Client) ResellerSalesPrices() cloudiq.ResellerSalesPricesClient {
	return c.resellerSalesPrices
}

// Addresses implements cloudiq.Client.Addresses.
func (c *Client) Addresses() cloudiq.AddressesClient {
	return c.addresses
}

// Consumers implements cloudiq.Client.Consumers.
func (c *Client) Consumers() cloudiq.ConsumersClient {
	return c.consumers
}

// CrayonAccounts implements cloudiq.Client.CrayonAccounts.
func (c *Client) CrayonAccounts() cloudiq.CrayonAccountsClient {
	return c.crayonAccounts
}

// Groupings implements cloudiq.Client.Groupings.
func (c *Client) Groupings() cloudiq.GroupingsClient {
	return c.groupings
}

// OrganizationAccess implements cloudiq.Client.OrganizationAccess.
func (c *Client) OrganizationAccess() cloudiq.OrganizationAccessClient {
	return c.organizationAccess
}

// Clients implements cloudiq.Client.Clients.
func (c *Client) Clients() cloudiq.ClientsClient {
	return c.apiClients
}

// Secrets implements cloudiq.Client.Secrets.
func (c *Client) Secrets() cloudiq.SecretsClient {
	return c.secrets
}

// ProductContainers implements cloudiq.Client.ProductContainers.
func (c *Client) ProductContainers() cloudiq.ProductContainersClient {
	return c.productContainers
}

// Assets implements cloudiq.Client.Assets.
func (c *Client) Assets() cloudiq.AssetsClient {
	return c.assets
}

// Programs implements cloudiq.Client.Programs.
func (c *Client) Programs() cloudiq.ProgramsClient {
	return c.programs
}

// Publishers implements cloudiq.Client.Publishers.
func (c *Client) Publishers() cloudiq.PublishersClient {
	return c.publishers
}

// Regions implements cloudiq.Client.Regions.
func (c *Client) Regions() cloudiq.RegionsClient {
	return c.regions
}

// BlogItems implements cloudiq.Client.BlogItems.
func (c *Client) BlogItems() cloudiq.BlogItemsClient {
	return c.blogItems
}

// ManagementLinks implements cloudiq.Client.ManagementLinks.
func (c *Client) ManagementLinks() cloudiq.ManagementLinksClient {
	return c.managementLinks
}

// ActivityLogs implements cloudiq.Client.ActivityLogs.
func (c *Client) ActivityLogs() cloudiq.ActivityLogsClient {
	return c.activityLogs
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.organizations = NewOrganizationsClient(c.httpClient)
	c.customerTenants = NewCustomerTenantsClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.azurePlans = NewAzurePlansClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.agreementProducts = NewAgreementProductsClient(c.httpClient)
	c.agreements = NewAgreementsClient(c.httpClient)
	c.agreementReports = NewAgreementReportsClient(c.httpClient)
	c.billingCycles = NewBillingCyclesClient(c.httpClient)
	c.billingStatements = NewBillingStatementsClient(c.httpClient)
	c.invoiceProfiles = NewInvoiceProfilesClient(c.httpClient)
	c.usageCost = NewUsageCostClient(c.httpClient)
	c.resellerSalesPrices = NewResellerSalesPricesClient(c.httpClient)
	c.addresses = NewAddressesClient(c.httpClient)
	c.consumers = NewConsumersClient(c.httpClient)
	c.crayonAccounts = NewCrayonAccountsClient(c.httpClient)
	c.groupings = NewGroupingsClient(c.httpClient)
	c.organizationAccess = NewOrganizationAccessClient(c.httpClient)
	c.apiClients = NewAPIClientsClient(c.httpClient)
	c.secrets = NewSecretsClient(c.httpClient)
	c.productContainers = NewProductContainersClient(c.httpClient)
	c.assets = NewAssetsClient(c.httpClient)
	c.programs = NewProgramsClient(c.httpClient)
	c.publishers = NewPublishersClient(c.httpClient)
	c.regions = NewRegionsClient(c.httpClient)
	c.blogItems = NewBlogItemsClient(c.httpClient)
	c.managementLinks = NewManagementLinksClient(c.httpClient)
	c.activityLogs = NewActivityLogsClient(c.httpClient)
}

// staticTokenManager provides a static token.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(ctx context.Context) error {
	return cloudiq.ErrStaticTokenCannotRefresh
}

func (m *staticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// fallbackTokenManager uses a pre-supplied token until it stops working,
// then switches to the password grant.
type fallbackTokenManager struct {
	staticToken  string
	oauthManager auth.TokenManager
	usingOAuth   bool
}

func (m *fallbackTokenManager) GetToken(ctx context.Context) (string, error) {
	if !m.usingOAuth {
		return m.staticToken, nil
	}

	token, err := m.oauthManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get OAuth token: %w", err)
	}

	return token, nil
}

func (m *fallbackTokenManager) RefreshToken(ctx context.Context) error {
	if !m.usingOAuth {
		// The static token was rejected. Switch to the grant for good.
		m.usingOAuth = true

		_, err := m.oauthManager.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to get OAuth token during refresh: %w", err)
		}

		return nil
	}

	err := m.oauthManager.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh OAuth token: %w", err)
	}

	return nil
}

func (m *fallbackTokenManager) SetToken(token string, expiresAt time.Time) {
	if m.usingOAuth {
		m.oauthManager.SetToken(token, expiresAt)
	} else {
		m.staticToken = token
	}
}
