package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/cloudiq/internal/provision"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// NewProvisionCommand creates the CSV-driven tenant provisioning command.
func NewProvisionCommand() *cobra.Command {
	var (
		inputPath  string
		outputPath string

		orgID          int
		orgName        string
		invoiceProfile int

		firstName string
		lastName  string
		email     string
		phone     string

		addressLine string
		city        string
		countryCode string
		region      string
		postalCode  string

		registrationNumber string

		interval        time.Duration
		continueOnError bool
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision tenants from a CSV file",
		Long: "Read tenant definitions from a CSV file and for each row create the " +
			"customer tenant, sign the Microsoft Customer Agreement, and order the " +
			"Azure and Exchange Online subscriptions. The generated admin " +
			"credentials are appended to the output CSV as each tenant is created.",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedOrg, err := resolveOrganizationID(orgID)
			if err != nil {
				return err
			}

			if invoiceProfile == 0 {
				invoiceProfile = loadConfig().InvoiceProfile
			}

			rows, err := provision.ReadTenantsFile(inputPath)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", inputPath, err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			config := &provision.Config{
				Tenants:          client.CustomerTenants(),
				Subscriptions:    client.Subscriptions(),
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
				Interval:        interval,
				ContinueOnError: continueOnError,
			}

			if registrationNumber != "" {
				config.RegistrationNumber = &registrationNumber
			}

			if viper.GetBool("verbose") {
				config.Logger = newStderrLogger()
			}

			runner, err := provision.NewRunner(config)
			if err != nil {
				return err
			}

			creds, err := provision.OpenCredentialFile(outputPath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", outputPath, err)
			}
			defer func() { _ = creds.Close() }()

			results, runErr := runner.Run(cmdContext(), rows, creds)

			renderProvisionResults(results, outputPath)

			if runErr != nil {
				return fmt.Errorf("provisioning run failed: %w", runErr)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "tenants.csv", "input CSV with tenant_name, domain_prefix, exo_quantity columns")
	cmd.Flags().StringVar(&outputPath, "output", "admin_creds.csv", "output CSV the generated admin credentials are appended to")

	cmd.Flags().IntVarP(&orgID, "org", "o", 0, "organization id the tenants are created under")
	cmd.Flags().StringVar(&orgName, "org-name", "", "organization display name")
	cmd.Flags().IntVar(&invoiceProfile, "invoice-profile", 0, "invoice profile id")

	cmd.Flags().StringVar(&firstName, "first-name", "", "contact first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "contact last name")
	cmd.Flags().StringVar(&email, "email", "", "contact email address")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")

	cmd.Flags().StringVar(&addressLine, "address", "", "street address")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&countryCode, "country", "", "two-letter country code")
	cmd.Flags().StringVar(&region, "region", "", "state or region")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "postal code")

	cmd.Flags().StringVar(&registrationNumber, "registration-number", "", "company registration number")

	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between rows (default 1s)")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "keep going when a row fails")

	return cmd
}

// renderProvisionResults prints a per-row summary after the run. Partial
// results are worth showing even when the run aborted early.
func renderProvisionResults(results []provision.RowResult, outputPath string) {
	if len(results) == 0 {
		_, _ = os.Stdout.WriteString("No rows processed\n")

		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Line", "Tenant", "Tenant ID", "Status", "Error")

	failed := 0

	for _, result := range results {
		status := "OK"
		errText := ""

		if result.Failed() {
			failed++
			status = "FAILED at " + string(result.Step)
			errText = result.Err.Error()
		}

		tenantID := ""
		if result.TenantID != 0 {
			tenantID = strconv.Itoa(result.TenantID)
		}

		_ = table.Append(strconv.Itoa(result.Row.Line), result.Row.TenantName,
			tenantID, status, errText)
	}

	_ = table.Render()

	fmt.Printf("\n%d of %d rows provisioned, credentials appended to %s\n",
		len(results)-failed, len(results), outputPath)
}
