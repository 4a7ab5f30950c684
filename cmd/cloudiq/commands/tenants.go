package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/cloudiq/internal/constants"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// NewTenantsCommand creates the customer tenants command group.
func NewTenantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenants",
		Aliases: []string{"tenant", "customer-tenants"},
		Short:   "Manage customer tenants",
		Long:    "List, inspect, create, and delete CloudIQ customer tenants",
	}

	cmd.AddCommand(newTenantsListCommand())
	cmd.AddCommand(newTenantsGetCommand())
	cmd.AddCommand(newTenantsCreateCommand())
	cmd.AddCommand(newTenantsDeleteCommand())
	cmd.AddCommand(newTenantsAgreementsCommand())
	cmd.AddCommand(newTenantsAzurePlanCommand())

	return cmd
}

func newTenantsListCommand() *cobra.Command {
	var (
		orgID    int
		pageSize int
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customer tenants",
		Long:  "List the customer tenants of an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedOrg, err := resolveOrganizationID(orgID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := cloudiq.NewQueryParams()
			if pageSize > 0 {
				params.WithPageSize(pageSize)
			}

			if search != "" {
				params.WithSearch(search)
			}

			tenants, err := client.CustomerTenants().List(cmdContext(), resolvedOrg, params)
			if err != nil {
				return fmt.Errorf("failed to list customer tenants: %w", err)
			}

			return renderOutput(tenants.Items, func() error {
				return renderTenantTable(tenants.Items)
			})
		},
	}

	cmd.Flags().IntVarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search term")

	return cmd
}

func renderTenantTable(tenants []cloudiq.CustomerTenant) error {
	if len(tenants) == 0 {
		_, _ = os.Stdout.WriteString("No customer tenants found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Domain Prefix", "Publisher", "Invoice Profile")

	for _, tenant := range tenants {
		_ = table.Append(strconv.Itoa(tenant.ID), tenant.Name, tenant.DomainPrefix,
			tenant.Publisher.Name, tenant.InvoiceProfile.Name)
	}

	_ = table.Render()

	return nil
}

func newTenantsGetCommand() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "get TENANT_ID",
		Short: "Get customer tenant details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("tenant id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := cmdContext()

			if detailed {
				tenant, err := client.CustomerTenants().GetDetailed(ctx, tenantID)
				if err != nil {
					return fmt.Errorf("failed to get detailed tenant: %w", err)
				}

				return renderOutput(tenant, func() error {
					return renderDetailedTenant(tenant)
				})
			}

			tenant, err := client.CustomerTenants().Get(ctx, tenantID)
			if err != nil {
				return fmt.Errorf("failed to get tenant: %w", err)
			}

			return renderOutput(tenant, func() error {
				return renderTenantTable([]cloudiq.CustomerTenant{*tenant})
			})
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "fetch the full tenant envelope")

	return cmd
}

func renderDetailedTenant(tenant *cloudiq.CustomerTenantDetailed) error {
	return renderKeyValueTable("Property", "Value", [][]string{
		{"ID", strconv.Itoa(tenant.Tenant.ID)},
		{"Name", stringOrNA(tenant.Tenant.Name)},
		{"Domain Prefix", stringOrNA(tenant.Tenant.DomainPrefix)},
		{"Organization", fmt.Sprintf("%s (%d)", tenant.Tenant.Organization.Name, tenant.Tenant.Organization.ID)},
		{"Invoice Profile", stringOrNA(tenant.Tenant.InvoiceProfile.Name)},
		{"Contact", stringOrNA(tenant.Profile.Contact.Email)},
		{"Admin User", stringOrNA(tenant.User.UserName)},
	})
}

func newTenantsCreateCommand() *cobra.Command {
	var (
		orgID          int
		orgName        string
		invoiceProfile int
		name           string
		domainPrefix   string
		firstName      string
		lastName       string
		email          string
		phone          string
		addressLine    string
		city           string
		countryCode    string
		region         string
		postalCode     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer tenant",
		Long:  "Create a Microsoft CSP customer tenant and print the generated admin credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedOrg, err := resolveOrganizationID(orgID)
			if err != nil {
				return err
			}

			if invoiceProfile == 0 {
				invoiceProfile = loadConfig().InvoiceProfile
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			envelope := cloudiq.NewCustomerTenantDetailed(cloudiq.TenantSpec{
				Name:             name,
				DomainPrefix:     domainPrefix,
				OrganizationID:   resolvedOrg,
				OrganizationName: orgName,
				InvoiceProfileID: invoiceProfile,
				Contact: cloudiq.Contact{
					FirstName:   firstName,
					LastName:    lastName,
					Email:       email,
					PhoneNumber: phone,
				},
				Address: cloudiq.Address{
					FirstName:    firstName,
					LastName:     lastName,
					AddressLine1: addressLine,
					City:         city,
					CountryCode:  countryCode,
					Region:       region,
					PostalCode:   postalCode,
				},
			})

			created, err := client.CustomerTenants().Create(cmdContext(), envelope)
			if err != nil {
				return fmt.Errorf("failed to create tenant: %w", err)
			}

			fmt.Printf("Created tenant %s (%d)\n", created.Tenant.Name, created.Tenant.ID)

			if created.User.UserName != "" {
				fmt.Printf("Admin username: %s\n", created.User.UserName)
				fmt.Printf("Admin password: %s\n", created.User.Password)
				fmt.Println("Store these credentials now; the password is not retrievable later.")
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().StringVar(&orgName, "org-name", "", "organization display name")
	cmd.Flags().IntVar(&invoiceProfile, "invoice-profile", 0, "invoice profile id")
	cmd.Flags().StringVar(&name, "name", "", "tenant name")
	cmd.Flags().StringVar(&domainPrefix, "domain-prefix", "", "onmicrosoft.com domain prefix")
	cmd.Flags().StringVar(&firstName, "first-name", "", "contact first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "contact last name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")
	cmd.Flags().StringVar(&addressLine, "address", "", "street address")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&countryCode, "country", "", "ISO country code")
	cmd.Flags().StringVar(&region, "region", "", "state or region")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "postal code")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("domain-prefix")

	return cmd
}

func newTenantsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TENANT_ID",
		Short: "Delete a customer tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("tenant id must be numeric: %w", err)
			}

			if !force {
				fmt.Printf("Really delete tenant %d? Re-run with --force to confirm.\n", tenantID)

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.CustomerTenants().Delete(cmdContext(), tenantID); err != nil {
				return fmt.Errorf("failed to delete tenant: %w", err)
			}

			fmt.Printf("Deleted tenant %d\n", tenantID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}

func newTenantsAgreementsCommand() *cobra.Command {
	agreementType := constants.MicrosoftCustomerAgreementType

	cmd := &cobra.Command{
		Use:   "agreements TENANT_ID",
		Short: "List a tenant's signed agreements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("tenant id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			agreements, err := client.CustomerTenants().GetAgreements(cmdContext(), tenantID, agreementType)
			if err != nil {
				return fmt.Errorf("failed to list tenant agreements: %w", err)
			}

			return renderOutput(agreements, func() error {
				if len(agreements) == 0 {
					_, _ = os.Stdout.WriteString("No agreements found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Type", "Date Agreed", "Signed By", "Email")

				for _, agreement := range agreements {
					signedBy := agreement.FirstName + " " + agreement.LastName
					_ = table.Append(strconv.Itoa(agreement.AgreementType), agreement.DateAgreed, signedBy, agreement.Email)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVar(&agreementType, "type", constants.MicrosoftCustomerAgreementType, "agreement type consent filter")

	return cmd
}

func newTenantsAzurePlanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "azure-plan TENANT_ID",
		Short: "Get a tenant's Azure plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("tenant id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			plan, err := client.CustomerTenants().GetAzurePlan(cmdContext(), tenantID)
			if err != nil {
				return fmt.Errorf("failed to get Azure plan: %w", err)
			}

			return renderOutput(plan, func() error {
				return renderKeyValueTable("Property", "Value", [][]string{
					{"ID", strconv.Itoa(plan.ID)},
					{"Name", stringOrNA(plan.Name)},
					{"Status", stringOrNA(plan.Status)},
				})
			})
		},
	}
}
