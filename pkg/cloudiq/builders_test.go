package cloudiq_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerTenantDetailed(t *testing.T) {
	envelope := cloudiq.NewCustomerTenantDetailed(cloudiq.TenantSpec{
		Name:             "Contoso",
		DomainPrefix:     "contoso",
		OrganizationID:   111111,
		OrganizationName: "Reseller AS",
		InvoiceProfileID: 80408,
		Contact: cloudiq.Contact{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@contoso.example",
			PhoneNumber: "+4712345678",
		},
		Address: cloudiq.Address{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			AddressLine1: "Main Street 1",
			City:         "Oslo",
			CountryCode:  "NO",
			Region:       "Oslo",
			PostalCode:   "0150",
		},
		UserName: "admin@contoso.onmicrosoft.com",
	})

	data, err := json.Marshal(envelope)
	require.NoError(t, err)

	// The creation endpoint expects PascalCase with explicit nulls for the
	// country name and registration number, and ParentId present even when
	// zero.
	assert.JSONEq(t, `{
		"Tenant": {
			"Name": "Contoso",
			"Publisher": {"Id": 2, "Name": "Microsoft"},
			"DomainPrefix": "contoso",
			"Organization": {"Id": 111111, "Name": "Reseller AS", "ParentId": 0},
			"InvoiceProfile": {"Id": 80408, "Name": "Default"},
			"CustomerTenantType": 1
		},
		"Profile": {
			"Contact": {
				"FirstName": "Ada",
				"LastName": "Lovelace",
				"Email": "ada@contoso.example",
				"PhoneNumber": "+4712345678"
			},
			"Address": {
				"FirstName": "Ada",
				"LastName": "Lovelace",
				"AddressLine1": "Main Street 1",
				"City": "Oslo",
				"CountryCode": "NO",
				"CountryName": null,
				"Region": "Oslo",
				"PostalCode": "0150"
			}
		},
		"Company": {"OrganizationRegistrationNumber": null},
		"User": {"UserName": "admin@contoso.onmicrosoft.com"}
	}`, string(data))
}

func TestNewCustomerTenantDetailed_Overrides(t *testing.T) {
	registration := "987654321"

	envelope := cloudiq.NewCustomerTenantDetailed(cloudiq.TenantSpec{
		Name:               "Fabrikam",
		DomainPrefix:       "fabrikam",
		OrganizationID:     222222,
		InvoiceProfileID:   90001,
		InvoiceProfileName: "Fabrikam Billing",
		TenantType:         2,
		RegistrationNumber: &registration,
	})

	assert.Equal(t, "Fabrikam Billing", envelope.Tenant.InvoiceProfile.Name)
	assert.Equal(t, 2, envelope.Tenant.CustomerTenantType)
	require.NotNil(t, envelope.Company.OrganizationRegistrationNumber)
	assert.Equal(t, "987654321", *envelope.Company.OrganizationRegistrationNumber)
}

func TestNewMicrosoftCustomerAgreement(t *testing.T) {
	contact := cloudiq.Contact{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@contoso.example",
		PhoneNumber: "+4712345678",
	}
	signedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	agreement := cloudiq.NewMicrosoftCustomerAgreement(contact, signedAt)

	data, err := json.Marshal(agreement)
	require.NoError(t, err)

	// The agreement endpoint speaks camelCase and takes the signature time
	// without a zone suffix.
	assert.JSONEq(t, `{
		"firstName": "Ada",
		"lastName": "Lovelace",
		"phoneNumber": "+4712345678",
		"email": "ada@contoso.example",
		"dateAgreed": "2024-03-15T10:30:00",
		"agreementType": 1
	}`, string(data))
}

func TestNewSubscriptionDetailed(t *testing.T) {
	subscription := cloudiq.NewSubscriptionDetailed("Azure P2", 123, "CFQ7TTC0LFK5:0001", 1, 1, "P1M")

	data, err := json.Marshal(subscription)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "Azure P2",
		"customerTenant": {"id": 123},
		"product": {"partNumber": "CFQ7TTC0LFK5:0001"},
		"quantity": 1,
		"billingCycle": 1,
		"termDuration": "P1M"
	}`, string(data))
}

func TestCustomerTenantDetailed_CreationResponse(t *testing.T) {
	// Creation responses carry the generated admin credentials.
	body := `{
		"Tenant": {
			"Id": 456789,
			"Name": "Contoso",
			"Publisher": {"Id": 2, "Name": "Microsoft"},
			"DomainPrefix": "contoso",
			"Organization": {"Id": 111111, "Name": "Reseller AS", "ParentId": 0},
			"InvoiceProfile": {"Id": 80408, "Name": "Default"},
			"CustomerTenantType": 1
		},
		"Profile": {
			"Contact": {"FirstName": "Ada", "LastName": "Lovelace", "Email": "ada@contoso.example", "PhoneNumber": "+4712345678"},
			"Address": {"FirstName": "Ada", "LastName": "Lovelace", "AddressLine1": "Main Street 1", "City": "Oslo", "CountryCode": "NO", "CountryName": "Norway", "Region": "Oslo", "PostalCode": "0150"}
		},
		"Company": {"OrganizationRegistrationNumber": null},
		"User": {"UserName": "admin@contoso.onmicrosoft.com", "Password": "generated-secret"}
	}`

	var envelope cloudiq.CustomerTenantDetailed
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))

	assert.Equal(t, 456789, envelope.Tenant.ID)
	assert.Equal(t, "admin@contoso.onmicrosoft.com", envelope.User.UserName)
	assert.Equal(t, "generated-secret", envelope.User.Password)
	require.NotNil(t, envelope.Profile.Address.CountryName)
	assert.Equal(t, "Norway", *envelope.Profile.Address.CountryName)
	assert.Nil(t, envelope.Company.OrganizationRegistrationNumber)
}

func TestListResponse_Decode(t *testing.T) {
	body := `{
		"Items": [
			{"Id": 1, "Name": "Org One", "ParentId": 0},
			{"Id": 2, "Name": "Org Two", "ParentId": 1}
		],
		"TotalHits": 17
	}`

	var list cloudiq.ListResponse[cloudiq.Organization]
	require.NoError(t, json.Unmarshal([]byte(body), &list))

	require.Len(t, list.Items, 2)
	assert.Equal(t, 17, list.TotalHits)
	assert.Equal(t, "Org Two", list.Items[1].Name)
	assert.Equal(t, 1, list.Items[1].ParentID)
}
