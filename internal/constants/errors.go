package constants

import "errors"

// API and configuration errors.
var (
	ErrNoAPIEndpoint       = errors.New("no API endpoint configured")
	ErrNoCredentials       = errors.New("no credentials configured, run 'cloudiq login' or set CLOUDIQ_CLIENT_ID, CLOUDIQ_CLIENT_SECRET, CLOUDIQ_USERNAME and CLOUDIQ_PASSWORD")
	ErrNoStoredToken       = errors.New("no stored token for this API, run 'cloudiq login' again")
	ErrTokenExpired        = errors.New("stored token has expired and no credentials are available to refresh it")
	ErrFailedRetrieveToken = errors.New("failed to retrieve token")
)

// Credential validation errors.
var (
	ErrClientIDRequired     = errors.New("client id is required")
	ErrClientSecretRequired = errors.New("client secret is required")
	ErrUsernameRequired     = errors.New("username is required")
	ErrPasswordRequired     = errors.New("password is required")
)

// Resource argument errors.
var (
	ErrOrganizationRequired   = errors.New("organization id is required, pass --org or set a default with 'cloudiq config set organization'")
	ErrTenantIDRequired       = errors.New("tenant id is required")
	ErrSubscriptionIDRequired = errors.New("subscription id is required")
	ErrInvalidIDArgument      = errors.New("argument must be a numeric id")
)

// Provisioning errors.
var (
	ErrMissingCSVHeader    = errors.New("input CSV is missing its header row")
	ErrMissingCSVColumn    = errors.New("input CSV is missing a required column")
	ErrInvalidQuantity     = errors.New("license quantity must be a positive integer")
	ErrNoTenantRows        = errors.New("input CSV contains no tenant rows")
	ErrTenantResponseShape = errors.New("tenant creation response is missing generated admin credentials")
)

// Output errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// File system errors.
var (
	ErrNotRegularFile             = errors.New("path is not a regular file")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
)
