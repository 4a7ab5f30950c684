package cloudiq

import (
	"time"

	"github.com/fivetwenty-io/cloudiq/internal/constants"
)

// TenantSpec collects the caller-supplied fields for a new customer tenant.
// Zero values fall back to the usual CSP defaults: a tier 1 Microsoft tenant
// on the "Default" invoice profile.
type TenantSpec struct {
	Name               string
	DomainPrefix       string
	OrganizationID     int
	OrganizationName   string
	InvoiceProfileID   int
	InvoiceProfileName string
	TenantType         int
	Contact            Contact
	Address            Address
	UserName           string
	RegistrationNumber *string
}

// NewCustomerTenantDetailed builds the creation envelope for a Microsoft CSP
// tenant. The returned value is ready to pass to CustomerTenantsClient.Create.
func NewCustomerTenantDetailed(spec TenantSpec) *CustomerTenantDetailed {
	invoiceProfileName := spec.InvoiceProfileName
	if invoiceProfileName == "" {
		invoiceProfileName = constants.DefaultInvoiceProfileName
	}

	tenantType := spec.TenantType
	if tenantType == 0 {
		tenantType = constants.CustomerTenantTypeT1
	}

	return &CustomerTenantDetailed{
		Tenant: CustomerTenant{
			Name: spec.Name,
			Publisher: ObjectRef{
				ID:   constants.MicrosoftPublisherID,
				Name: constants.MicrosoftPublisherName,
			},
			DomainPrefix: spec.DomainPrefix,
			Organization: Organization{
				ID:   spec.OrganizationID,
				Name: spec.OrganizationName,
			},
			InvoiceProfile: ObjectRef{
				ID:   spec.InvoiceProfileID,
				Name: invoiceProfileName,
			},
			CustomerTenantType: tenantType,
		},
		Profile: TenantProfile{
			Contact: spec.Contact,
			Address: spec.Address,
		},
		Company: TenantCompany{
			OrganizationRegistrationNumber: spec.RegistrationNumber,
		},
		User: TenantUser{
			UserName: spec.UserName,
		},
	}
}

// NewMicrosoftCustomerAgreement builds the signature payload for the
// Microsoft Customer Agreement, stamped with signedAt. Pass it to
// CustomerTenantsClient.CreateAgreement after the tenant exists.
func NewMicrosoftCustomerAgreement(contact Contact, signedAt time.Time) *CustomerTenantAgreement {
	return &CustomerTenantAgreement{
		FirstName:     contact.FirstName,
		LastName:      contact.LastName,
		PhoneNumber:   contact.PhoneNumber,
		Email:         contact.Email,
		DateAgreed:    signedAt.Format(constants.AgreementDateLayout),
		AgreementType: constants.MicrosoftCustomerAgreementType,
	}
}

// NewSubscriptionDetailed builds a subscription purchase payload for a
// tenant. billingCycle and termDuration follow the product's supported
// billing cycles, for example 1 with "P1M" or 2 with "P1Y".
func NewSubscriptionDetailed(name string, tenantID int, partNumber string, quantity, billingCycle int, termDuration string) *SubscriptionDetailed {
	return &SubscriptionDetailed{
		Name:           name,
		CustomerTenant: CustomerTenantRef{ID: tenantID},
		Product:        ProductRef{PartNumber: partNumber},
		Quantity:       quantity,
		BillingCycle:   billingCycle,
		TermDuration:   termDuration,
	}
}
