package cloudiq

import (
	"context"
)

// OrganizationsClient provides access to organization resources.
type OrganizationsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Organization], error)
	Get(ctx context.Context, orgID int) (*Organization, error)
	GetSalesContact(ctx context.Context, orgID int) (*SalesContact, error)
	HasAccess(ctx context.Context, orgID int) (bool, error)
}

// CustomerTenantsClient provides access to customer tenant resources.
type CustomerTenantsClient interface {
	List(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[CustomerTenant], error)
	Get(ctx context.Context, tenantID int) (*CustomerTenant, error)
	GetDetailed(ctx context.Context, tenantID int) (*CustomerTenantDetailed, error)
	GetAzurePlan(ctx context.Context, tenantID int) (*AzurePlan, error)
	Create(ctx context.Context, tenant *CustomerTenantDetailed) (*CustomerTenantDetailed, error)
	Delete(ctx context.Context, tenantID int) error
	GetAgreements(ctx context.Context, tenantID int, agreementTypeConsent int) ([]ServiceAccountAgreement, error)
	CreateAgreement(ctx context.Context, tenantID int, agreement *CustomerTenantAgreement) (*CustomerTenantAgreement, error)
}

// SubscriptionsClient provides access to subscription resources.
type SubscriptionsClient interface {
	Create(ctx context.Context, subscription *SubscriptionDetailed) (*SubscriptionDetailed, error)
	DeleteTags(ctx context.Context, subscriptionID int) error
}

// AzurePlansClient provides access to Azure plan resources.
type AzurePlansClient interface {
	Get(ctx context.Context, planID int) (*AzurePlan, error)
	ListSubscriptions(ctx context.Context, planID int, params *QueryParams) (*ListResponse[AzureSubscription], error)
	RenameSubscription(ctx context.Context, planID int, subscriptionID string, rename *AzureSubscriptionRename) (*AzureSubscription, error)
}

// UsersClient provides access to user resources.
type UsersClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[User], error)
	Get(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Delete(ctx context.Context, userID string) error
}

// AgreementProductsClient provides access to the product catalog available
// to an organization.
type AgreementProductsClient interface {
	List(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[AgreementProduct], error)
	GetSupportedBillingCycles(ctx context.Context, partNumber string, params *QueryParams) ([]BillingCycle, error)
}

// AgreementsClient provides access to agreement resources.
type AgreementsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Agreement], error)
}

// AgreementReportsClient provides access to agreement reports.
type AgreementReportsClient interface {
	Get(ctx context.Context, productContainerID int) (*AgreementReport, error)
}

// BillingCyclesClient provides access to billing cycle dictionaries.
type BillingCyclesClient interface {
	List(ctx context.Context, includeUnknown bool) ([]BillingCycle, error)
	ListForProductVariant(ctx context.Context, productVariantID int) ([]BillingCycle, error)
	GetCSPNameDictionary(ctx context.Context) (map[string]string, error)
}

// BillingStatementsClient provides access to billing statements and their
// downloadable files.
type BillingStatementsClient interface {
	List(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[BillingStatement], error)
	ListGrouped(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[GroupedBillingStatement], error)
	GetExcelFile(ctx context.Context, statementID int) ([]byte, error)
	GetReconciliationFile(ctx context.Context, statementID int) ([]byte, error)
	GetRecordsFile(ctx context.Context, statementID int) ([]byte, error)
}

// InvoiceProfilesClient provides access to invoice profile resources.
type InvoiceProfilesClient interface {
	List(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[InvoiceProfile], error)
	Get(ctx context.Context, profileID int) (*InvoiceProfile, error)
	Delete(ctx context.Context, profileID int) error
}

// UsageCostClient provides access to usage cost summaries.
type UsageCostClient interface {
	GetForOrganization(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[UsageCost], error)
}

// ResellerSalesPricesClient provides access to reseller sales prices.
type ResellerSalesPricesClient interface {
	Delete(ctx context.Context, objectID int, params *QueryParams) error
}

// AddressesClient provides access to organization addresses.
type AddressesClient interface {
	List(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[Address], error)
	Get(ctx context.Context, orgID, addressID int) (*Address, error)
}

// ConsumersClient provides access to consumer resources.
type ConsumersClient interface {
	List(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[Consumer], error)
	Get(ctx context.Context, consumerID int) (*Consumer, error)
	Delete(ctx context.Context, consumerID int) error
}

// CrayonAccountsClient provides access to Crayon account resources.
type CrayonAccountsClient interface {
	List(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[CrayonAccount], error)
	Get(ctx context.Context, accountID int) (*CrayonAccount, error)
}

// GroupingsClient provides access to grouping resources.
type GroupingsClient interface {
	List(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[Grouping], error)
	Get(ctx context.Context, groupingID int) (*Grouping, error)
	Delete(ctx context.Context, groupingID int) error
}

// OrganizationAccessClient provides access to organization access records.
type OrganizationAccessClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[OrganizationAccess], error)
	ListGrants(ctx context.Context, params *QueryParams) (*ListResponse[OrganizationAccess], error)
}

// ClientsClient provides access to API client registrations.
type ClientsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[APIClient], error)
	Get(ctx context.Context, clientID string) (*APIClient, error)
	Create(ctx context.Context, request *APIClientCreateRequest) (*APIClient, error)
	Update(ctx context.Context, clientID string, request *APIClientCreateRequest) (*APIClient, error)
	Delete(ctx context.Context, clientID string) error
}

// SecretsClient provides access to API client secrets.
type SecretsClient interface {
	Create(ctx context.Context, request *SecretCreateRequest) (*Secret, error)
	Delete(ctx context.Context, clientID, secretID string) error
}

// ProductContainersClient provides access to product containers (carts and
// orders in flight).
type ProductContainersClient interface {
	List(ctx context.Context, orgID int, params *QueryParams) (*ListResponse[ProductContainer], error)
	Get(ctx context.Context, containerID int) (*ProductContainer, error)
	GetRowIssues(ctx context.Context, containerID int) (*ProductContainer, error)
	GetOrCreateShoppingCart(ctx context.Context, orgID int) (*ProductContainer, error)
	PatchRow(ctx context.Context, containerID, rowID int, row *ProductRow) (*ProductContainer, error)
	Delete(ctx context.Context, containerID int) error
}

// AssetsClient provides access to asset resources.
type AssetsClient interface {
	DeleteTags(ctx context.Context, assetID int) error
}

// ProgramsClient provides access to program resources.
type ProgramsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Program], error)
	Get(ctx context.Context, programID int) (*Program, error)
}

// PublishersClient provides access to publisher resources.
type PublishersClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Publisher], error)
	Get(ctx context.Context, publisherID int) (*Publisher, error)
}

// RegionsClient provides access to region dictionaries.
type RegionsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Region], error)
	GetByCode(ctx context.Context, regionCode string) (*Region, error)
}

// BlogItemsClient provides access to blog items.
type BlogItemsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[BlogItem], error)
}

// ManagementLinksClient provides access to management links.
type ManagementLinksClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[ManagementLink], error)
	ListGrouped(ctx context.Context, params *QueryParams) (*ListResponse[GroupedManagementLink], error)
}

// ActivityLogsClient provides access to the activity log.
type ActivityLogsClient interface {
	List(ctx context.Context, entityID int, params *QueryParams) (*ListResponse[ActivityLogItem], error)
}
