package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// CredentialFilePerm is the permission for files holding generated credentials.
	CredentialFilePerm = 0600
)

// API endpoint defaults.
const (
	// DefaultAPIEndpoint is the production CloudIQ API base URL.
	DefaultAPIEndpoint = "https://api.crayon.com/api/v1"

	// TokenPath is the OAuth token endpoint, relative to the API base URL.
	TokenPath = "/connect/token"

	// TokenScope is the scope requested with the password grant.
	TokenScope = "CustomerApi"
)

// HTTP and network timeouts.
const (
	// DefaultUserAgent identifies this client in request headers.
	DefaultUserAgent = "cloudiq-go/1.0"

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for longer operations such as statement downloads.
	ExtendedHTTPTimeout = 120 * time.Second

	// ShortHTTPTimeout is used for quick operations such as ping.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 5

	// LowRetryMax is used for operations that should retry fewer times.
	LowRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Token lifecycle.
const (
	// DefaultTokenRefreshWindow is how far before expiry a cached token is
	// refreshed rather than reused.
	DefaultTokenRefreshWindow = 10 * time.Minute

	// AgreementDateLayout is the layout used when stamping agreement dates.
	AgreementDateLayout = "2006-01-02T15:04:05"
)

// Provisioning defaults.
const (
	// DefaultProvisionInterval spaces successive provisioning calls to stay
	// under the API rate limit.
	DefaultProvisionInterval = 1 * time.Second

	// AzureP2PartNumber is the part number for an Azure plan subscription.
	AzureP2PartNumber = "CFQ7TTC0LFK5:0001"

	// ExchangeOnlinePartNumber is the part number for an Exchange Online
	// subscription.
	ExchangeOnlinePartNumber = "CFQ7TTC0LH16:0001"

	// MicrosoftPublisherID is the publisher id CloudIQ assigns to Microsoft.
	MicrosoftPublisherID = 2

	// MicrosoftPublisherName is the publisher name CloudIQ assigns to Microsoft.
	MicrosoftPublisherName = "Microsoft"

	// CustomerTenantTypeT1 marks a tier 1 tenant.
	CustomerTenantTypeT1 = 1

	// DefaultInvoiceProfileName is the invoice profile name used when none is given.
	DefaultInvoiceProfileName = "Default"

	// MicrosoftCustomerAgreementType identifies the Microsoft Customer Agreement.
	MicrosoftCustomerAgreementType = 1
)

// Billing cycles as CloudIQ enumerates them.
const (
	// BillingCycleMonthly bills every month.
	BillingCycleMonthly = 1

	// BillingCycleAnnual bills every year.
	BillingCycleAnnual = 2
)

// Term durations in ISO 8601 form.
const (
	// TermMonthly is a one month term.
	TermMonthly = "P1M"

	// TermAnnual is a one year term.
	TermAnnual = "P1Y"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 50

	// SmallPageSize is used for demonstrations or small lists.
	SmallPageSize = 5

	// LargePageSize is used for efficient bulk operations.
	LargePageSize = 100

	// MaxPages is used to prevent infinite loops in pagination.
	MaxPages = 50
)

// Cache sizes and lifetimes.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// CacheMinTTL is the minimum cache time-to-live.
	CacheMinTTL = 30 * time.Second

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024

	// DictionaryCacheTTL is the TTL for dictionary endpoints such as billing
	// cycles and regions, which change rarely.
	DictionaryCacheTTL = 1 * time.Hour

	// DefaultCacheSetTTL is the default TTL when setting cache values.
	DefaultCacheSetTTL = 10 * time.Minute

	// DefaultCacheCleanupInterval is how often the memory cache sweeps
	// expired entries.
	DefaultCacheCleanupInterval = 1 * time.Minute
)

// DefaultCacheBucket is the NATS KV bucket the response cache binds to.
const DefaultCacheBucket = "cloudiq-responses"

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// NameDisplayLength is the default length for displaying names.
	NameDisplayLength = 40

	// DescriptionDisplayLength is the default length for displaying descriptions.
	DescriptionDisplayLength = 60
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// CSV layout for the provisioning pipeline.
const (
	// TenantCSVFieldCount is the number of columns a tenants.csv row carries.
	TenantCSVFieldCount = 3

	// CredentialCSVFieldCount is the number of columns an admin credentials
	// row carries.
	CredentialCSVFieldCount = 4
)

// Validation and limits.
const (
	// KeyValueSplitParts is the number of parts when splitting key=value strings.
	KeyValueSplitParts = 2

	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2
)
