package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/cloudiq/internal/auth"
	internalclient "github.com/fivetwenty-io/cloudiq/internal/client"
	"github.com/fivetwenty-io/cloudiq/pkg/ciqclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint  string
		clientID     string
		clientSecret string
		username     string
		password     string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to CloudIQ",
		Long: `Authenticate against the CloudIQ API with the OAuth2 password grant.

Client credentials and username are stored in the config file together with
the fetched token; the password is never stored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stored := loadConfig()

			// Flags win, then environment, then the config file.
			if apiEndpoint == "" {
				apiEndpoint = firstNonEmpty(viper.GetString("api"), stored.Endpoint)
			}

			if clientID == "" {
				clientID = firstNonEmpty(viper.GetString("client_id"), stored.ClientID)
			}

			if clientSecret == "" {
				clientSecret = firstNonEmpty(viper.GetString("client_secret"), stored.ClientSecret)
			}

			if username == "" {
				username = firstNonEmpty(viper.GetString("username"), stored.Username)
			}

			if password == "" {
				password = viper.GetString("password")
			}

			reader := bufio.NewReader(os.Stdin)

			if clientID == "" {
				fmt.Print("Client ID: ")
				clientID, _ = reader.ReadString('\n')
				clientID = strings.TrimSpace(clientID)
			}

			if clientSecret == "" {
				fmt.Print("Client secret: ")

				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read client secret: %w", err)
				}

				clientSecret = string(byteSecret)

				fmt.Println()
			}

			if username == "" {
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			ctx := cmdContext()

			client, err := ciqclient.NewWithPassword(ctx, apiEndpoint, clientID, clientSecret, username, password)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials by fetching the current user.
			me, err := client.Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			// Persist everything but the password.
			config := loadConfig()
			config.ClientID = clientID
			config.ClientSecret = clientSecret
			config.Username = username

			if apiEndpoint != "" {
				config.Endpoint = apiEndpoint
			}

			if concrete, ok := client.(*internalclient.Client); ok {
				if token, err := concrete.GetToken(ctx); err == nil && token != "" {
					config.Token = token

					if manager, ok := concrete.GetTokenManager().(*auth.PasswordTokenManager); ok {
						if cached := manager.Store().Get(); cached != nil && !cached.ExpiresAt.IsZero() {
							expiry := cached.ExpiresAt
							config.TokenExpiresAt = &expiry
						}
					}
				}
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in as %s\n", me.User.UserName)

			// List the caller's organizations as a starting point.
			orgs, err := client.Organizations().List(ctx, nil)
			if err == nil && len(orgs.Items) > 0 {
				fmt.Println("\nAvailable organizations:")

				for _, org := range orgs.Items {
					fmt.Printf("  - %s (%d)\n", org.Name, org.ID)
				}

				fmt.Println("\nUse 'cloudiq config set organization <id>' to set a default organization")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVar(&clientID, "client-id", "", "API client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "API client secret")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username for authentication")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for authentication")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from CloudIQ",
		Long:  "Clear the stored token and credentials from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.ClientSecret = ""
			config.Token = ""
			config.TokenExpiresAt = nil

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
