package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations", "org"},
		Short:   "Manage organizations",
		Long:    "List and inspect the CloudIQ organizations the user has access to",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsGetCommand())
	cmd.AddCommand(newOrgsSalesContactCommand())
	cmd.AddCommand(newOrgsCheckAccessCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var (
		allPages bool
		pageSize int
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List all organizations the user has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgsListCommand(allPages, pageSize, search)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search term")

	return cmd
}

func runOrgsListCommand(allPages bool, pageSize int, search string) error {
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

	var (
		orgs      []cloudiq.Organization
		totalHits int
	)

	if allPages {
		orgs, err = cloudiq.FetchAllPages(ctx, client.Organizations().List, params, nil)
		if err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}

		totalHits = len(orgs)
	} else {
		result, err := client.Organizations().List(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}

		orgs = result.Items
		totalHits = result.TotalHits
	}

	return renderOutput(orgs, func() error {
		return renderOrganizationTable(orgs, totalHits, allPages)
	})
}

func renderOrganizationTable(orgs []cloudiq.Organization, totalHits int, allPages bool) error {
	if len(orgs) == 0 {
		_, _ = os.Stdout.WriteString("No organizations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Parent ID")

	for _, org := range orgs {
		_ = table.Append(strconv.Itoa(org.ID), org.Name, strconv.Itoa(org.ParentID))
	}

	_ = table.Render()

	if !allPages && totalHits > len(orgs) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d. Use --all to fetch all pages.\n", len(orgs), totalHits)
	}

	return nil
}

func newOrgsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORG_ID",
		Short: "Get organization details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("organization id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			org, err := client.Organizations().Get(cmdContext(), orgID)
			if err != nil {
				return fmt.Errorf("failed to get organization: %w", err)
			}

			return renderOutput(org, func() error {
				return renderKeyValueTable("Property", "Value", [][]string{
					{"ID", strconv.Itoa(org.ID)},
					{"Name", stringOrNA(org.Name)},
					{"Parent ID", strconv.Itoa(org.ParentID)},
				})
			})
		},
	}
}

func newOrgsSalesContactCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sales-contact ORG_ID",
		Short: "Get an organization's sales contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("organization id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			contact, err := client.Organizations().GetSalesContact(cmdContext(), orgID)
			if err != nil {
				return fmt.Errorf("failed to get sales contact: %w", err)
			}

			return renderOutput(contact, func() error {
				return renderKeyValueTable("Property", "Value", [][]string{
					{"Name", stringOrNA(contact.Name)},
					{"Email", stringOrNA(contact.Email)},
					{"Phone", stringOrNA(contact.PhoneNumber)},
				})
			})
		},
	}
}

func newOrgsCheckAccessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-access ORG_ID",
		Short: "Check access to an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("organization id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			hasAccess, err := client.Organizations().HasAccess(cmdContext(), orgID)
			if err != nil {
				return fmt.Errorf("failed to check access: %w", err)
			}

			if hasAccess {
				fmt.Printf("Access to organization %d: granted\n", orgID)
			} else {
				fmt.Printf("Access to organization %d: denied\n", orgID)
			}

			return nil
		},
	}
}
