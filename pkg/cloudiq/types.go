package cloudiq

// CloudIQ responses use PascalCase JSON for most resources; the subscription
// and tenant agreement payloads use camelCase. The tags below follow the wire
// exactly rather than normalizing.

// ObjectRef points at another resource by id and display name, the embedded
// shape CloudIQ uses throughout.
type ObjectRef struct {
	ID   int    `json:"Id"             yaml:"id"`
	Name string `json:"Name,omitempty" yaml:"name,omitempty"`
}

// ListResponse represents a CloudIQ collection envelope.
type ListResponse[T any] struct {
	Items     []T `json:"Items"     yaml:"items"`
	TotalHits int `json:"TotalHits" yaml:"total_hits"`
}

// Organization represents an organization, both as a top-level resource and
// as the reference embedded in tenants.
type Organization struct {
	ID       int    `json:"Id"             yaml:"id"`
	Name     string `json:"Name,omitempty" yaml:"name,omitempty"`
	ParentID int    `json:"ParentId"       yaml:"parent_id"`
}

// SalesContact represents an organization's sales contact.
type SalesContact struct {
	Name        string `json:"Name"                  yaml:"name"`
	Email       string `json:"Email,omitempty"       yaml:"email,omitempty"`
	PhoneNumber string `json:"PhoneNumber,omitempty" yaml:"phone_number,omitempty"`
}

// CustomerTenant represents the tenant envelope's inner Tenant block and the
// brief tenant resource list endpoints return.
type CustomerTenant struct {
	ID                 int          `json:"Id,omitempty"                 yaml:"id,omitempty"`
	Name               string       `json:"Name"                         yaml:"name"`
	Publisher          ObjectRef    `json:"Publisher"                    yaml:"publisher"`
	DomainPrefix       string       `json:"DomainPrefix"                 yaml:"domain_prefix"`
	Organization       Organization `json:"Organization"                 yaml:"organization"`
	InvoiceProfile     ObjectRef    `json:"InvoiceProfile"               yaml:"invoice_profile"`
	CustomerTenantType int          `json:"CustomerTenantType,omitempty" yaml:"customer_tenant_type,omitempty"`
}

// CustomerTenantDetailed is the full tenant envelope used when creating a
// tenant and returned by the detailed endpoint. On creation the response
// carries the generated admin credentials in User.
type CustomerTenantDetailed struct {
	Tenant  CustomerTenant `json:"Tenant"  yaml:"tenant"`
	Profile TenantProfile  `json:"Profile" yaml:"profile"`
	Company TenantCompany  `json:"Company" yaml:"company"`
	User    TenantUser     `json:"User"    yaml:"user"`
}

// TenantProfile holds the tenant's contact and address blocks.
type TenantProfile struct {
	Contact Contact `json:"Contact" yaml:"contact"`
	Address Address `json:"Address" yaml:"address"`
}

// Contact represents a person attached to a tenant profile.
type Contact struct {
	FirstName   string `json:"FirstName"   yaml:"first_name"`
	LastName    string `json:"LastName"    yaml:"last_name"`
	Email       string `json:"Email"       yaml:"email"`
	PhoneNumber string `json:"PhoneNumber" yaml:"phone_number"`
}

// Address represents a postal address, both inside tenant profiles and as
// the organization address resource.
type Address struct {
	ID           int     `json:"Id,omitempty"   yaml:"id,omitempty"`
	FirstName    string  `json:"FirstName"      yaml:"first_name"`
	LastName     string  `json:"LastName"       yaml:"last_name"`
	AddressLine1 string  `json:"AddressLine1"   yaml:"address_line1"`
	City         string  `json:"City"           yaml:"city"`
	CountryCode  string  `json:"CountryCode"    yaml:"country_code"`
	CountryName  *string `json:"CountryName"    yaml:"country_name"`
	Region       string  `json:"Region"         yaml:"region"`
	PostalCode   string  `json:"PostalCode"     yaml:"postal_code"`
	Type         string  `json:"Type,omitempty" yaml:"type,omitempty"`
}

// TenantCompany carries company registration details. The registration
// number is nullable on the wire.
type TenantCompany struct {
	OrganizationRegistrationNumber *string `json:"OrganizationRegistrationNumber" yaml:"organization_registration_number"`
}

// TenantUser is the admin account block of the tenant envelope. Password is
// only ever populated in creation responses.
type TenantUser struct {
	UserName string `json:"UserName"           yaml:"user_name"`
	Password string `json:"Password,omitempty" yaml:"password,omitempty"`
}

// CustomerTenantAgreement is the signature payload for a tenant-level
// agreement such as the Microsoft Customer Agreement. This endpoint speaks
// camelCase.
type CustomerTenantAgreement struct {
	FirstName     string `json:"firstName"     yaml:"first_name"`
	LastName      string `json:"lastName"      yaml:"last_name"`
	PhoneNumber   string `json:"phoneNumber"   yaml:"phone_number"`
	Email         string `json:"email"         yaml:"email"`
	DateAgreed    string `json:"dateAgreed"    yaml:"date_agreed"`
	AgreementType int    `json:"agreementType" yaml:"agreement_type"`
}

// ServiceAccountAgreement records an agreement already signed for a tenant.
type ServiceAccountAgreement struct {
	AgreementType int    `json:"AgreementType"           yaml:"agreement_type"`
	DateAgreed    string `json:"DateAgreed"              yaml:"date_agreed"`
	FirstName     string `json:"FirstName,omitempty"     yaml:"first_name,omitempty"`
	LastName      string `json:"LastName,omitempty"      yaml:"last_name,omitempty"`
	Email         string `json:"Email,omitempty"         yaml:"email,omitempty"`
	AgreementLink string `json:"AgreementLink,omitempty" yaml:"agreement_link,omitempty"`
}

// SubscriptionDetailed is the subscription purchase payload and response.
// This endpoint speaks camelCase.
type SubscriptionDetailed struct {
	ID             int               `json:"id,omitempty"     yaml:"id,omitempty"`
	Name           string            `json:"name"             yaml:"name"`
	CustomerTenant CustomerTenantRef `json:"customerTenant"   yaml:"customer_tenant"`
	Product        ProductRef        `json:"product"          yaml:"product"`
	Quantity       int               `json:"quantity"         yaml:"quantity"`
	BillingCycle   int               `json:"billingCycle"     yaml:"billing_cycle"`
	TermDuration   string            `json:"termDuration"     yaml:"term_duration"`
	Status         int               `json:"status,omitempty" yaml:"status,omitempty"`
}

// CustomerTenantRef points at a tenant from a subscription payload.
type CustomerTenantRef struct {
	ID int `json:"id" yaml:"id"`
}

// ProductRef points at a product by part number.
type ProductRef struct {
	PartNumber string `json:"partNumber" yaml:"part_number"`
}

// AzurePlan represents an Azure plan attached to a tenant.
type AzurePlan struct {
	ID     int    `json:"Id"               yaml:"id"`
	Name   string `json:"Name,omitempty"   yaml:"name,omitempty"`
	Status string `json:"Status,omitempty" yaml:"status,omitempty"`
}

// AzureSubscription represents a subscription inside an Azure plan. The id
// is the Azure subscription GUID.
type AzureSubscription struct {
	ID     string `json:"Id"               yaml:"id"`
	Name   string `json:"Name"             yaml:"name"`
	Status string `json:"Status,omitempty" yaml:"status,omitempty"`
}

// AzureSubscriptionRename is the payload for renaming an Azure subscription.
type AzureSubscriptionRename struct {
	Name string `json:"Name" yaml:"name"`
}

// AgreementProduct represents a product available to an organization.
type AgreementProduct struct {
	PartNumber string    `json:"PartNumber"          yaml:"part_number"`
	Name       string    `json:"Name"                yaml:"name"`
	Publisher  ObjectRef `json:"Publisher,omitempty" yaml:"publisher,omitempty"`
	Program    ObjectRef `json:"Program,omitempty"   yaml:"program,omitempty"`
}

// Agreement represents a partner agreement.
type Agreement struct {
	ID        int    `json:"Id"                  yaml:"id"`
	Name      string `json:"Name"                yaml:"name"`
	StartDate string `json:"StartDate,omitempty" yaml:"start_date,omitempty"`
	EndDate   string `json:"EndDate,omitempty"   yaml:"end_date,omitempty"`
}

// AgreementReport represents the agreement report for a product container.
type AgreementReport struct {
	ID          int    `json:"Id"                    yaml:"id"`
	Name        string `json:"Name,omitempty"        yaml:"name,omitempty"`
	CreatedDate string `json:"CreatedDate,omitempty" yaml:"created_date,omitempty"`
}

// BillingCycle represents a billing cycle dictionary entry.
type BillingCycle struct {
	ID   int    `json:"Id"   yaml:"id"`
	Name string `json:"Name" yaml:"name"`
}

// BillingStatement represents one billing statement.
type BillingStatement struct {
	ID              int     `json:"Id"                        yaml:"id"`
	OrganizationID  int     `json:"OrganizationId,omitempty"  yaml:"organization_id,omitempty"`
	InvoiceProfile  string  `json:"InvoiceProfile,omitempty"  yaml:"invoice_profile,omitempty"`
	StartDate       string  `json:"StartDate,omitempty"       yaml:"start_date,omitempty"`
	EndDate         string  `json:"EndDate,omitempty"         yaml:"end_date,omitempty"`
	TotalSalesPrice float64 `json:"TotalSalesPrice,omitempty" yaml:"total_sales_price,omitempty"`
	Currency        string  `json:"Currency,omitempty"        yaml:"currency,omitempty"`
}

// GroupedBillingStatement represents billing statements rolled up by invoice
// profile.
type GroupedBillingStatement struct {
	InvoiceProfileID   int     `json:"InvoiceProfileId"          yaml:"invoice_profile_id"`
	InvoiceProfileName string  `json:"InvoiceProfileName"        yaml:"invoice_profile_name"`
	StatementCount     int     `json:"StatementCount,omitempty"  yaml:"statement_count,omitempty"`
	TotalSalesPrice    float64 `json:"TotalSalesPrice,omitempty" yaml:"total_sales_price,omitempty"`
	Currency           string  `json:"Currency,omitempty"        yaml:"currency,omitempty"`
}

// InvoiceProfile represents an invoice profile.
type InvoiceProfile struct {
	ID           int          `json:"Id"                     yaml:"id"`
	Name         string       `json:"Name"                   yaml:"name"`
	Organization Organization `json:"Organization,omitempty" yaml:"organization,omitempty"`
}

// UsageCost represents one month of usage cost for an organization.
type UsageCost struct {
	Month    string  `json:"Month"              yaml:"month"`
	Cost     float64 `json:"Cost"               yaml:"cost"`
	Currency string  `json:"Currency,omitempty" yaml:"currency,omitempty"`
}

// Consumer represents a consumer attached to an organization.
type Consumer struct {
	ID           int          `json:"Id"                     yaml:"id"`
	Name         string       `json:"Name"                   yaml:"name"`
	Organization Organization `json:"Organization,omitempty" yaml:"organization,omitempty"`
}

// CrayonAccount represents a Crayon account.
type CrayonAccount struct {
	ID   int    `json:"Id"   yaml:"id"`
	Name string `json:"Name" yaml:"name"`
}

// Grouping represents a grouping within an organization.
type Grouping struct {
	ID           int          `json:"Id"                     yaml:"id"`
	Name         string       `json:"Name"                   yaml:"name"`
	Organization Organization `json:"Organization,omitempty" yaml:"organization,omitempty"`
}

// OrganizationAccess records the caller's access to an organization.
type OrganizationAccess struct {
	Organization Organization `json:"Organization" yaml:"organization"`
	HasAccess    bool         `json:"HasAccess"    yaml:"has_access"`
}

// APIClient represents an API client registration. The id is a GUID.
type APIClient struct {
	ID   string `json:"Id"             yaml:"id"`
	Name string `json:"Name"           yaml:"name"`
	Type string `json:"Type,omitempty" yaml:"type,omitempty"`
}

// APIClientCreateRequest is the payload for creating or updating an API
// client registration.
type APIClientCreateRequest struct {
	Name string `json:"Name"           yaml:"name"`
	Type string `json:"Type,omitempty" yaml:"type,omitempty"`
}

// Secret represents an API client secret. The secret value is only returned
// on creation.
type Secret struct {
	ID          string `json:"Id,omitempty"          yaml:"id,omitempty"`
	ClientID    string `json:"ClientId"              yaml:"client_id"`
	Secret      string `json:"Secret,omitempty"      yaml:"secret,omitempty"`
	Description string `json:"Description,omitempty" yaml:"description,omitempty"`
}

// SecretCreateRequest is the payload for creating an API client secret.
type SecretCreateRequest struct {
	ClientID    string `json:"ClientId"              yaml:"client_id"`
	Description string `json:"Description,omitempty" yaml:"description,omitempty"`
}

// ProductContainer represents a shopping cart or order in flight.
type ProductContainer struct {
	ID           int          `json:"Id"                     yaml:"id"`
	Name         string       `json:"Name,omitempty"         yaml:"name,omitempty"`
	Organization Organization `json:"Organization,omitempty" yaml:"organization,omitempty"`
	Rows         []ProductRow `json:"Rows,omitempty"         yaml:"rows,omitempty"`
}

// ProductRow represents one row of a product container.
type ProductRow struct {
	ID           int    `json:"Id,omitempty"           yaml:"id,omitempty"`
	PartNumber   string `json:"PartNumber,omitempty"   yaml:"part_number,omitempty"`
	Name         string `json:"Name,omitempty"         yaml:"name,omitempty"`
	Quantity     int    `json:"Quantity"               yaml:"quantity"`
	BillingCycle int    `json:"BillingCycle,omitempty" yaml:"billing_cycle,omitempty"`
}

// Program represents a licensing program.
type Program struct {
	ID   int    `json:"Id"   yaml:"id"`
	Name string `json:"Name" yaml:"name"`
}

// Publisher represents a software publisher.
type Publisher struct {
	ID   int    `json:"Id"   yaml:"id"`
	Name string `json:"Name" yaml:"name"`
}

// Region represents a region dictionary entry.
type Region struct {
	ID   int    `json:"Id"   yaml:"id"`
	Name string `json:"Name" yaml:"name"`
	Code string `json:"Code" yaml:"code"`
}

// BlogItem represents a CloudIQ blog entry.
type BlogItem struct {
	ID            int    `json:"Id"                      yaml:"id"`
	Title         string `json:"Title"                   yaml:"title"`
	PublishedDate string `json:"PublishedDate,omitempty" yaml:"published_date,omitempty"`
	URL           string `json:"Url,omitempty"           yaml:"url,omitempty"`
}

// ManagementLink represents a management portal link.
type ManagementLink struct {
	Name string `json:"Name"           yaml:"name"`
	URL  string `json:"Url"            yaml:"url"`
	Type string `json:"Type,omitempty" yaml:"type,omitempty"`
}

// GroupedManagementLink represents management links rolled up by group.
type GroupedManagementLink struct {
	Group string           `json:"Group" yaml:"group"`
	Links []ManagementLink `json:"Links" yaml:"links"`
}

// ActivityLogItem represents one activity log entry.
type ActivityLogItem struct {
	ID          int    `json:"Id"                    yaml:"id"`
	LogDate     string `json:"LogDate,omitempty"     yaml:"log_date,omitempty"`
	UserName    string `json:"UserName,omitempty"    yaml:"user_name,omitempty"`
	Description string `json:"Description,omitempty" yaml:"description,omitempty"`
}

// User represents a CloudIQ user. The id is a GUID.
type User struct {
	ID        string `json:"Id"                  yaml:"id"`
	UserName  string `json:"UserName"            yaml:"user_name"`
	FirstName string `json:"FirstName,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"LastName,omitempty"  yaml:"last_name,omitempty"`
	Email     string `json:"Email,omitempty"     yaml:"email,omitempty"`
}
