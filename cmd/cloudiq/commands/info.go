package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/cloudiq/pkg/ciqclient"
)

// NewPingCommand creates the ping command. Ping needs no credentials, so it
// builds a bare client even when nobody is logged in.
func NewPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check API connectivity",
		Long:  "Call the unauthenticated ping endpoint and report the API version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext()

			endpoint := firstNonEmpty(viper.GetString("api"), loadConfig().Endpoint)

			client, err := ciqclient.NewWithEndpoint(ctx, endpoint)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			ping, err := client.Ping(ctx)
			if err != nil {
				return fmt.Errorf("failed to ping API: %w", err)
			}

			return renderOutput(ping, func() error {
				return renderKeyValueTable("Property", "Value", [][]string{
					{"Version", stringOrNA(ping.Version)},
					{"Environment", stringOrNA(ping.Environment)},
				})
			})
		},
	}
}

// NewMeCommand creates the me command.
func NewMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user",
		Long:  "Display the identity and claims of the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := cmdContext()

			me, err := client.Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to get current user: %w", err)
			}

			return renderOutput(me, func() error {
				return renderKeyValueTable("Property", "Value", [][]string{
					{"ID", stringOrNA(me.User.ID)},
					{"Username", stringOrNA(me.User.UserName)},
					{"Name", stringOrNA(strings.TrimSpace(me.User.FirstName + " " + me.User.LastName))},
					{"Email", stringOrNA(me.User.Email)},
					{"Claims", stringOrNA(strings.Join(me.Claims, ", "))},
				})
			})
		},
	}
}
