package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Browse the product catalog",
		Long:    "List the agreement products available to an organization",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsBillingCyclesCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var (
		orgID    int
		allPages bool
		pageSize int
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agreement products",
		Long:  "List the products an organization can purchase",
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

			params := cloudiq.NewQueryParams()
			if pageSize > 0 {
				params.WithPageSize(pageSize)
			}

			if search != "" {
				params.WithSearch(search)
			}

			var products []cloudiq.AgreementProduct

			if allPages {
				products, err = cloudiq.FetchAllPages(ctx, func(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.AgreementProduct], error) {
					return client.AgreementProducts().List(ctx, resolvedOrg, params)
				}, params, nil)
				if err != nil {
					return fmt.Errorf("failed to list products: %w", err)
				}
			} else {
				result, err := client.AgreementProducts().List(ctx, resolvedOrg, params)
				if err != nil {
					return fmt.Errorf("failed to list products: %w", err)
				}

				products = result.Items
			}

			return renderOutput(products, func() error {
				return renderProductTable(products)
			})
		},
	}

	cmd.Flags().IntVarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search term")

	return cmd
}

func renderProductTable(products []cloudiq.AgreementProduct) error {
	if len(products) == 0 {
		_, _ = os.Stdout.WriteString("No products found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Part Number", "Name", "Publisher", "Program")

	for _, product := range products {
		_ = table.Append(product.PartNumber, product.Name, product.Publisher.Name, product.Program.Name)
	}

	return table.Render()
}

func newProductsBillingCyclesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "billing-cycles PART_NUMBER",
		Short: "List a product's supported billing cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			cycles, err := client.AgreementProducts().GetSupportedBillingCycles(cmdContext(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list supported billing cycles: %w", err)
			}

			return renderOutput(cycles, func() error {
				if len(cycles) == 0 {
					_, _ = os.Stdout.WriteString("No billing cycles found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name")

				for _, cycle := range cycles {
					_ = table.Append(strconv.Itoa(cycle.ID), cycle.Name)
				}

				return table.Render()
			})
		},
	}
}
