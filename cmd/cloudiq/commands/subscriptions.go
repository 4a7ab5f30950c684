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

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage subscriptions",
		Long:    "Purchase subscriptions and manage their tags",
	}

	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsRemoveTagsCommand())

	return cmd
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		name         string
		tenantID     int
		partNumber   string
		quantity     int
		billingCycle int
		termDuration string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Purchase a subscription",
		Long: `Purchase a subscription for a customer tenant.

The billing cycle and term duration must be supported by the product; list
them with 'cloudiq products billing-cycles PART_NUMBER'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription := cloudiq.NewSubscriptionDetailed(name, tenantID, partNumber,
				quantity, billingCycle, termDuration)

			created, err := client.Subscriptions().Create(cmdContext(), subscription)
			if err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}

			fmt.Printf("Created subscription %s (%d) for tenant %d\n", created.Name, created.ID, tenantID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "subscription display name")
	cmd.Flags().IntVar(&tenantID, "tenant", 0, "customer tenant id")
	cmd.Flags().StringVar(&partNumber, "part-number", "", "product part number")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "license quantity")
	cmd.Flags().IntVar(&billingCycle, "billing-cycle", constants.BillingCycleMonthly, "billing cycle id")
	cmd.Flags().StringVar(&termDuration, "term", constants.TermMonthly, "ISO 8601 term duration (e.g. P1M, P1Y)")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("part-number")

	return cmd
}

func newSubscriptionsRemoveTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-tags SUBSCRIPTION_ID",
		Short: "Remove all tags from a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("subscription id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Subscriptions().DeleteTags(cmdContext(), subscriptionID); err != nil {
				return fmt.Errorf("failed to remove subscription tags: %w", err)
			}

			fmt.Printf("Removed tags from subscription %d\n", subscriptionID)

			return nil
		},
	}
}

// NewAzureCommand creates the Azure plan command group.
func NewAzureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "azure",
		Short: "Manage Azure plans",
		Long:  "Inspect Azure plans and their subscriptions",
	}

	cmd.AddCommand(newAzurePlanGetCommand())
	cmd.AddCommand(newAzureSubscriptionsListCommand())
	cmd.AddCommand(newAzureSubscriptionRenameCommand())

	return cmd
}

func newAzurePlanGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan PLAN_ID",
		Short: "Get an Azure plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("plan id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			plan, err := client.AzurePlans().Get(cmdContext(), planID)
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

func newAzureSubscriptionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subscriptions PLAN_ID",
		Short: "List an Azure plan's subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("plan id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscriptions, err := client.AzurePlans().ListSubscriptions(cmdContext(), planID, nil)
			if err != nil {
				return fmt.Errorf("failed to list Azure subscriptions: %w", err)
			}

			return renderOutput(subscriptions.Items, func() error {
				if len(subscriptions.Items) == 0 {
					_, _ = os.Stdout.WriteString("No Azure subscriptions found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Status")

				for _, sub := range subscriptions.Items {
					_ = table.Append(sub.ID, sub.Name, sub.Status)
				}

				return table.Render()
			})
		},
	}
}

func newAzureSubscriptionRenameCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename PLAN_ID SUBSCRIPTION_ID",
		Short: "Rename an Azure subscription",
		Args:  cobra.ExactArgs(constants.KeyValueSplitParts),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("plan id must be numeric: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			renamed, err := client.AzurePlans().RenameSubscription(cmdContext(), planID, args[1],
				&cloudiq.AzureSubscriptionRename{Name: name})
			if err != nil {
				return fmt.Errorf("failed to rename Azure subscription: %w", err)
			}

			fmt.Printf("Renamed Azure subscription %s to %s\n", renamed.ID, renamed.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new subscription name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
