package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/cloudiq/internal/auth"
	"github.com/fivetwenty-io/cloudiq/internal/client"
	"github.com/fivetwenty-io/cloudiq/internal/constants"
	"github.com/fivetwenty-io/cloudiq/pkg/ciqclient"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// Static errors for err113 compliance.
var (
	ErrNotLoggedIn            = errors.New("not logged in: run 'cloudiq login' or set CLOUDIQ_CLIENT_ID, CLOUDIQ_CLIENT_SECRET, CLOUDIQ_USERNAME, and CLOUDIQ_PASSWORD")
	ErrUnknownConfigKey       = errors.New("unknown configuration key")
	ErrOrganizationNeeded     = errors.New("organization id required: pass --org or run 'cloudiq config set organization <id>'")
	ErrUnknownStatementFormat = errors.New("unknown statement format")
)

// Output format constants.
const (
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML
	OutputFormatTable = constants.FormatTable
)

// clientCredentials is the effective credential set after merging flags,
// environment, and the config file.
type clientCredentials struct {
	endpoint     string
	clientID     string
	clientSecret string
	username     string
	password     string
	token        string
	tokenExpiry  time.Time
}

// resolveCredentials merges credential sources. Flags and environment (via
// viper) win over the config file; the password is never read from the file.
func resolveCredentials(config *Config) clientCredentials {
	creds := clientCredentials{
		endpoint:     firstNonEmpty(viper.GetString("api"), config.Endpoint),
		clientID:     firstNonEmpty(viper.GetString("client_id"), config.ClientID),
		clientSecret: firstNonEmpty(viper.GetString("client_secret"), config.ClientSecret),
		username:     firstNonEmpty(viper.GetString("username"), config.Username),
		password:     viper.GetString("password"),
		token:        firstNonEmpty(viper.GetString("token"), config.Token),
	}

	if config.TokenExpiresAt != nil {
		creds.tokenExpiry = *config.TokenExpiresAt
	}

	return creds
}

func (c clientCredentials) hasPasswordGrant() bool {
	return c.clientID != "" && c.clientSecret != "" && c.username != "" && c.password != ""
}

// CreateClient builds a CloudIQ client from the merged configuration. With a
// complete password grant the client refreshes tokens itself and persists
// them back to the config file; otherwise a stored token is used as-is.
func CreateClient() (cloudiq.Client, error) {
	config := loadConfig()
	creds := resolveCredentials(config)

	clientConfig := &cloudiq.Config{
		APIEndpoint: creds.endpoint,
	}

	if viper.GetBool("verbose") {
		clientConfig.Debug = true
		clientConfig.Logger = newStderrLogger()
	}

	if creds.hasPasswordGrant() {
		return createPasswordGrantClient(clientConfig, creds)
	}

	if creds.token != "" {
		clientConfig.AccessToken = creds.token

		return ciqclient.New(cmdContext(), clientConfig)
	}

	return nil, ErrNotLoggedIn
}

// createPasswordGrantClient wires a token manager that seeds from the stored
// token and persists refreshed tokens through the config file.
func createPasswordGrantClient(clientConfig *cloudiq.Config, creds clientCredentials) (cloudiq.Client, error) {
	endpoint := creds.endpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	clientConfig.APIEndpoint = endpoint

	tokenManager := auth.NewConfigTokenManager(&auth.Config{
		TokenURL:     endpoint + constants.TokenPath,
		ClientID:     creds.clientID,
		ClientSecret: creds.clientSecret,
		Username:     creds.username,
		Password:     creds.password,
	}, NewConfigPersister(), endpoint, creds.token, creds.tokenExpiry)

	cloudiqClient, err := client.NewWithTokenManager(clientConfig, tokenManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return cloudiqClient, nil
}

// cmdContext returns the context commands run under.
func cmdContext() context.Context {
	return context.Background()
}

// renderOutput dispatches on the --output format: JSON and YAML render data
// directly, anything else calls the table renderer.
func renderOutput(data interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(data)
	default:
		return renderTable()
	}
}

// StandardJSONRenderer writes data as indented JSON to stdout.
func StandardJSONRenderer(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML to stdout.
func StandardYAMLRenderer(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return encoder.Close()
}

// renderKeyValueTable renders two-column rows with the given headers.
func renderKeyValueTable(keyHeader, valueHeader string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(keyHeader, valueHeader)

	for _, row := range rows {
		_ = table.Append(row[0], row[1])
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// resolveOrganizationID returns the --org flag value when set, falling back
// to the configured default organization.
func resolveOrganizationID(flagValue int) (int, error) {
	if flagValue > 0 {
		return flagValue, nil
	}

	if org := loadConfig().Organization; org > 0 {
		return org, nil
	}

	return 0, ErrOrganizationNeeded
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func stringOrNA(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}

func intOrNA(v int) string {
	if v == 0 {
		return constants.NotAvailable
	}

	return strconv.Itoa(v)
}

func timeOrNA(t *time.Time) string {
	if t == nil || t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(time.RFC3339)
}

// stderrLogger adapts verbose mode to the cloudiq.Logger interface.
type stderrLogger struct{}

func newStderrLogger() cloudiq.Logger {
	return stderrLogger{}
}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) { logLine("DEBUG", msg, fields) }
func (stderrLogger) Info(msg string, fields map[string]interface{})  { logLine("INFO", msg, fields) }
func (stderrLogger) Warn(msg string, fields map[string]interface{})  { logLine("WARN", msg, fields) }
func (stderrLogger) Error(msg string, fields map[string]interface{}) { logLine("ERROR", msg, fields) }

func logLine(level, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		fmt.Fprintf(os.Stderr, "%s %s\n", level, msg)

		return
	}

	fmt.Fprintf(os.Stderr, "%s %s %v\n", level, msg, fields)
}
