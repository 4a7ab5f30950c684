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

// NewBillingCommand creates the billing command group.
func NewBillingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Billing statements, cycles, invoice profiles, and usage",
	}

	cmd.AddCommand(newBillingStatementsCommand())
	cmd.AddCommand(newBillingDownloadCommand())
	cmd.AddCommand(newBillingCyclesCommand())
	cmd.AddCommand(newInvoiceProfilesCommand())
	cmd.AddCommand(newUsageCostCommand())

	return cmd
}

func newBillingStatementsCommand() *cobra.Command {
	var (
		orgID   int
		grouped bool
	)

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "List billing statements",
		Long:  "List an organization's billing statements, optionally grouped by invoice profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedOrg, err := resolveOrganizationID(orgID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := cmdContext()

			if grouped {
				statements, err := client.BillingStatements().ListGrouped(ctx, resolvedOrg, nil)
				if err != nil {
					return fmt.Errorf("failed to list grouped billing statements: %w", err)
				}

				return renderOutput(statements.Items, func() error {
					return renderGroupedStatementTable(statements.Items)
				})
			}

			statements, err := client.BillingStatements().List(ctx, resolvedOrg, nil)
			if err != nil {
				return fmt.Errorf("failed to list billing statements: %w", err)
			}

			return renderOutput(statements.Items, func() error {
				return renderStatementTable(statements.Items)
			})
		},
	}

	cmd.Flags().IntVarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "group statements by invoice profile")

	return cmd
}

func renderStatementTable(statements []cloudiq.BillingStatement) error {
	if len(statements) == 0 {
		_, _ = os.Stdout.WriteString("No billing statements found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Invoice Profile", "Start", "End", "Total", "Currency")

	for _, statement := range statements {
		_ = table.Append(strconv.Itoa(statement.ID), statement.InvoiceProfile,
			statement.StartDate, statement.EndDate,
			strconv.FormatFloat(statement.TotalSalesPrice, 'f', statementAmountPrecision, 64),
			statement.Currency)
	}

	return table.Render()
}

func renderGroupedStatementTable(statements []cloudiq.GroupedBillingStatement) error {
	if len(statements) == 0 {
		_, _ = os.Stdout.WriteString("No billing statements found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Invoice Profile", "Statements", "Total", "Currency")

	for _, statement := range statements {
		_ = table.Append(statement.InvoiceProfileName,
			strconv.Itoa(statement.StatementCount),
			strconv.FormatFloat(statement.TotalSalesPrice, 'f', statementAmountPrecision, 64),
			statement.Currency)
	}

	return table.Render()
}

// Billing statement download formats.
const (
	statementFormatExcel          = "xlsx"
	statementFormatReconciliation = "csv"
	statementFormatRecords        = "json"
)

// statementAmountPrecision is the number of decimals shown for money values.
const statementAmountPrecision = 2

func newBillingDownloadCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "download STATEMENT_ID",
		Short: "Download a billing statement file",
		Long: `Download a billing statement file.

Formats: xlsx (statement workbook), csv (reconciliation file), json
(billing records).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statementID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("statement id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := cmdContext()

			var data []byte

			switch format {
			case statementFormatExcel:
				data, err = client.BillingStatements().GetExcelFile(ctx, statementID)
			case statementFormatReconciliation:
				data, err = client.BillingStatements().GetReconciliationFile(ctx, statementID)
			case statementFormatRecords:
				data, err = client.BillingStatements().GetRecordsFile(ctx, statementID)
			default:
				return fmt.Errorf("%w: %s", ErrUnknownStatementFormat, format)
			}

			if err != nil {
				return fmt.Errorf("failed to download statement file: %w", err)
			}

			if output == "" {
				output = fmt.Sprintf("statement-%d.%s", statementID, format)
			}

			if err := os.WriteFile(output, data, constants.ConfigFilePerm); err != nil {
				return fmt.Errorf("failed to write statement file: %w", err)
			}

			fmt.Printf("Wrote %d bytes to %s\n", len(data), output)

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", statementFormatExcel, "file format (xlsx, csv, json)")
	cmd.Flags().StringVarP(&output, "output-file", "O", "", "output file path")

	return cmd
}

func newBillingCyclesCommand() *cobra.Command {
	var includeUnknown bool

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "List billing cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			cycles, err := client.BillingCycles().List(cmdContext(), includeUnknown)
			if err != nil {
				return fmt.Errorf("failed to list billing cycles: %w", err)
			}

			return renderOutput(cycles, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name")

				for _, cycle := range cycles {
					_ = table.Append(strconv.Itoa(cycle.ID), cycle.Name)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().BoolVar(&includeUnknown, "include-unknown", false, "include the unknown cycle")

	return cmd
}

func newInvoiceProfilesCommand() *cobra.Command {
	var orgID int

	cmd := &cobra.Command{
		Use:   "invoice-profiles",
		Short: "List invoice profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedOrg, err := resolveOrganizationID(orgID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			profiles, err := client.InvoiceProfiles().List(cmdContext(), resolvedOrg, nil)
			if err != nil {
				return fmt.Errorf("failed to list invoice profiles: %w", err)
			}

			return renderOutput(profiles.Items, func() error {
				if len(profiles.Items) == 0 {
					_, _ = os.Stdout.WriteString("No invoice profiles found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name")

				for _, profile := range profiles.Items {
					_ = table.Append(strconv.Itoa(profile.ID), profile.Name)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVarP(&orgID, "org", "o", 0, "organization id")

	return cmd
}

func newUsageCostCommand() *cobra.Command {
	var orgID int

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show usage cost",
		Long:  "Show an organization's monthly usage cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedOrg, err := resolveOrganizationID(orgID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			usage, err := client.UsageCost().GetForOrganization(cmdContext(), resolvedOrg, nil)
			if err != nil {
				return fmt.Errorf("failed to get usage cost: %w", err)
			}

			return renderOutput(usage.Items, func() error {
				if len(usage.Items) == 0 {
					_, _ = os.Stdout.WriteString("No usage cost found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Month", "Cost", "Currency")

				for _, month := range usage.Items {
					_ = table.Append(month.Month,
						strconv.FormatFloat(month.Cost, 'f', statementAmountPrecision, 64),
						month.Currency)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVarP(&orgID, "org", "o", 0, "organization id")

	return cmd
}
