package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/cloudiq/internal/constants"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// Static errors for err113 compliance.
var (
	ErrMissingTenantsClient       = errors.New("customer tenants client is required")
	ErrMissingSubscriptionsClient = errors.New("subscriptions client is required")
	ErrMissingOrganization        = errors.New("organization id is required")
	ErrRowFailed                  = errors.New("provisioning row failed")
)

// Step identifies how far a provisioning row got before finishing or
// failing.
type Step string

// Provisioning steps in execution order.
const (
	StepCreateTenant         Step = "create-tenant"
	StepWriteCredentials     Step = "write-credentials"
	StepSignAgreement        Step = "sign-agreement"
	StepAzureSubscription    Step = "azure-subscription"
	StepExchangeSubscription Step = "exchange-subscription"
	StepDone                 Step = "done"
)

// Subscription names as they appear in the CloudIQ portal.
const (
	azureSubscriptionName    = "Azure P2 Subscription"
	exchangeSubscriptionName = "Exchange Online Subscription"
)

// Config holds everything a provisioning run needs. The same contact,
// address, and organization apply to every row; the per-tenant values come
// from the CSV.
type Config struct {
	// Tenants and Subscriptions are the resource clients the run calls.
	Tenants       cloudiq.CustomerTenantsClient
	Subscriptions cloudiq.SubscriptionsClient

	// OrganizationID is the reseller organization the tenants are created
	// under. OrganizationName is optional display metadata.
	OrganizationID   int
	OrganizationName string

	// InvoiceProfileID selects the invoice profile for every tenant.
	// InvoiceProfileName defaults to "Default".
	InvoiceProfileID   int
	InvoiceProfileName string

	// Contact and Address fill the tenant profile and the agreement
	// signature for every row.
	Contact cloudiq.Contact
	Address cloudiq.Address

	// RegistrationNumber is the optional company registration number.
	RegistrationNumber *string

	// Interval spaces successive rows to stay under the API rate limit.
	// Zero means the 1 second default.
	Interval time.Duration

	// ContinueOnError records a row's failure and moves on instead of
	// aborting the whole run.
	ContinueOnError bool

	// Logger is optional; nil disables progress logging.
	Logger cloudiq.Logger
}

// RowResult reports the outcome of one input row. Step is the furthest step
// reached; Err is non-nil when that step failed. Credentials is set as soon
// as the tenant exists, even when a later step fails.
type RowResult struct {
	Row         TenantRow
	TenantID    int
	Credentials *Credentials
	Step        Step
	Err         error
}

// Failed reports whether the row stopped before completing every step.
func (r RowResult) Failed() bool {
	return r.Err != nil
}

// Runner provisions tenants row by row. Rows are processed strictly in
// input order; the credentials file order matches the input order.
type Runner struct {
	config  *Config
	limiter *rate.Limiter
	now     func() time.Time
}

// NewRunner validates the config and creates a runner.
func NewRunner(config *Config) (*Runner, error) {
	if config.Tenants == nil {
		return nil, ErrMissingTenantsClient
	}

	if config.Subscriptions == nil {
		return nil, ErrMissingSubscriptionsClient
	}

	if config.OrganizationID == 0 {
		return nil, ErrMissingOrganization
	}

	interval := config.Interval
	if interval <= 0 {
		interval = constants.DefaultProvisionInterval
	}

	return &Runner{
		config:  config,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		now:     time.Now,
	}, nil
}

// Run provisions every row in order, appending each tenant's generated
// admin credentials to creds. It returns one result per processed row.
//
// Without ContinueOnError the first failing row aborts the run and the
// returned error wraps the row's error; rows after it are not touched. With
// ContinueOnError every row is attempted and the error reports how many
// failed.
func (r *Runner) Run(ctx context.Context, rows []TenantRow, creds CredentialSink) ([]RowResult, error) {
	if creds == nil {
		return nil, ErrNoCredentialsSink
	}

	results := make([]RowResult, 0, len(rows))
	failed := 0

	for _, row := range rows {
		if err := r.limiter.Wait(ctx); err != nil {
			return results, fmt.Errorf("waiting for rate limit: %w", err)
		}

		result := r.provisionRow(ctx, row, creds)
		results = append(results, result)

		if result.Failed() {
			failed++

			r.logError("tenant provisioning failed", row, result)

			if !r.config.ContinueOnError {
				return results, fmt.Errorf("row %d (%s) at step %s: %w",
					row.Line, row.TenantName, result.Step, result.Err)
			}

			continue
		}

		r.logInfo("tenant provisioned", row, result)
	}

	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d rows", ErrRowFailed, failed, len(rows))
	}

	return results, nil
}

// provisionRow runs the full pipeline for one tenant: create, record
// credentials, sign the Microsoft Customer Agreement, purchase the Azure
// plan and Exchange Online subscriptions.
func (r *Runner) provisionRow(ctx context.Context, row TenantRow, creds CredentialSink) RowResult {
	result := RowResult{Row: row, Step: StepCreateTenant}

	envelope := cloudiq.NewCustomerTenantDetailed(cloudiq.TenantSpec{
		Name:               row.TenantName,
		DomainPrefix:       row.DomainPrefix,
		OrganizationID:     r.config.OrganizationID,
		OrganizationName:   r.config.OrganizationName,
		InvoiceProfileID:   r.config.InvoiceProfileID,
		InvoiceProfileName: r.config.InvoiceProfileName,
		Contact:            r.config.Contact,
		Address:            r.config.Address,
		RegistrationNumber: r.config.RegistrationNumber,
	})

	created, err := r.config.Tenants.Create(ctx, envelope)
	if err != nil {
		result.Err = err

		return result
	}

	result.TenantID = created.Tenant.ID
	result.Credentials = &Credentials{
		TenantName:   row.TenantName,
		DomainPrefix: row.DomainPrefix,
		Username:     created.User.UserName,
		Password:     created.User.Password,
	}

	result.Step = StepWriteCredentials
	if err := creds.Append(*result.Credentials); err != nil {
		result.Err = err

		return result
	}

	result.Step = StepSignAgreement

	agreement := cloudiq.NewMicrosoftCustomerAgreement(r.config.Contact, r.now())
	if _, err := r.config.Tenants.CreateAgreement(ctx, result.TenantID, agreement); err != nil {
		result.Err = err

		return result
	}

	result.Step = StepAzureSubscription

	azure := cloudiq.NewSubscriptionDetailed(azureSubscriptionName, result.TenantID,
		constants.AzureP2PartNumber, 1, constants.BillingCycleMonthly, constants.TermMonthly)
	if _, err := r.config.Subscriptions.Create(ctx, azure); err != nil {
		result.Err = err

		return result
	}

	result.Step = StepExchangeSubscription

	exchange := cloudiq.NewSubscriptionDetailed(exchangeSubscriptionName, result.TenantID,
		constants.ExchangeOnlinePartNumber, row.ExchangeQuantity, constants.BillingCycleAnnual, constants.TermAnnual)
	if _, err := r.config.Subscriptions.Create(ctx, exchange); err != nil {
		result.Err = err

		return result
	}

	result.Step = StepDone

	return result
}

func (r *Runner) logInfo(msg string, row TenantRow, result RowResult) {
	if r.config.Logger == nil {
		return
	}

	r.config.Logger.Info(msg, map[string]interface{}{
		"tenant_name": row.TenantName,
		"tenant_id":   result.TenantID,
		"line":        row.Line,
	})
}

func (r *Runner) logError(msg string, row TenantRow, result RowResult) {
	if r.config.Logger == nil {
		return
	}

	r.config.Logger.Error(msg, map[string]interface{}{
		"tenant_name": row.TenantName,
		"line":        row.Line,
		"step":        string(result.Step),
		"error":       result.Err.Error(),
	})
}
