package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/cloudiq/internal/constants"
)

// Config is the CLI configuration persisted in ~/.cloudiq/config.yml. The
// password is never stored; it comes from the CLOUDIQ_PASSWORD environment
// variable or the login prompt.
type Config struct {
	Endpoint       string     `yaml:"endpoint,omitempty"`
	ClientID       string     `yaml:"client_id,omitempty"`
	ClientSecret   string     `yaml:"client_secret,omitempty"`
	Username       string     `yaml:"username,omitempty"`
	Token          string     `yaml:"token,omitempty"`
	TokenExpiresAt *time.Time `yaml:"token_expires_at,omitempty"`
	Organization   int        `yaml:"organization,omitempty"`
	InvoiceProfile int        `yaml:"invoice_profile,omitempty"`
	Output         string     `yaml:"output,omitempty"`
}

// configFilePath returns the config file location: the --config flag when
// given, otherwise ~/.cloudiq/config.yml.
func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".cloudiq", "config.yml"), nil
}

// loadConfig reads the config file, returning an empty config when the file
// does not exist yet.
func loadConfig() *Config {
	config := &Config{}

	path, err := configFilePath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path) // #nosec G304 -- the CLI's own config file
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

// saveConfig writes the config file with owner-only permissions.
func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and modify the CloudIQ CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never print stored secrets.
			display := *config
			if display.ClientSecret != "" {
				display.ClientSecret = constants.MaskedSecret
			}

			if display.Token != "" {
				display.Token = constants.MaskedSecret
			}

			return renderOutput(display, func() error {
				rows := [][]string{
					{"endpoint", stringOrNA(display.Endpoint)},
					{"client_id", stringOrNA(display.ClientID)},
					{"client_secret", stringOrNA(display.ClientSecret)},
					{"username", stringOrNA(display.Username)},
					{"token", stringOrNA(display.Token)},
					{"token_expires_at", timeOrNA(display.TokenExpiresAt)},
					{"organization", intOrNA(display.Organization)},
					{"invoice_profile", intOrNA(display.InvoiceProfile)},
					{"output", stringOrNA(display.Output)},
				}

				return renderKeyValueTable("Key", "Value", rows)
			})
		},
	}
}

// Settable configuration keys.
const (
	keyEndpoint       = "endpoint"
	keyClientID       = "client_id"
	keyClientSecret   = "client_secret"
	keyUsername       = "username"
	keyOrganization   = "organization"
	keyInvoiceProfile = "invoice_profile"
	keyOutput         = "output"
)

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

Settable keys: endpoint, client_id, client_secret, username, organization,
invoice_profile, output.`,
		Args: cobra.ExactArgs(constants.KeyValueSplitParts),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigValue(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigValue(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

// applyConfigValue sets one config field by key name. An empty value clears
// the field.
func applyConfigValue(config *Config, key, value string) error {
	switch key {
	case keyEndpoint:
		config.Endpoint = value
	case keyClientID:
		config.ClientID = value
	case keyClientSecret:
		config.ClientSecret = value
	case keyUsername:
		config.Username = value
	case keyOutput:
		config.Output = value
	case keyOrganization, keyInvoiceProfile:
		id := 0

		if value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("value for %s must be a numeric id: %w", key, err)
			}

			id = parsed
		}

		if key == keyOrganization {
			config.Organization = id
		} else {
			config.InvoiceProfile = id
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	return nil
}
