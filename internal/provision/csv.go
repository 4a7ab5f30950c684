// Package provision runs the CSV-driven tenant provisioning pipeline:
// create a Microsoft CSP tenant, record the generated admin credentials,
// sign the customer agreement, and purchase the initial subscriptions, one
// input row at a time.
package provision

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/cloudiq/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrMissingHeader     = errors.New("tenants CSV is missing a header row")
	ErrMissingColumn     = errors.New("tenants CSV is missing a required column")
	ErrEmptyField        = errors.New("tenants CSV row has an empty required field")
	ErrInvalidQuantity   = errors.New("tenants CSV row has an invalid license quantity")
	ErrNoCredentialsSink = errors.New("credential sink is required")
)

// Required tenants.csv columns, matched by header name so column order does
// not matter.
const (
	ColumnTenantName   = "tenant_name"
	ColumnDomainPrefix = "domain_prefix"
	ColumnExoQuantity  = "exo_quantity"
)

// TenantRow is one input row of tenants.csv.
type TenantRow struct {
	// Line is the 1-based line number in the input file, for error messages.
	Line int

	TenantName   string
	DomainPrefix string

	// ExchangeQuantity is the Exchange Online license count for the tenant.
	ExchangeQuantity int
}

// ReadTenants parses tenant rows from r. The first record must be a header
// naming at least tenant_name, domain_prefix, and exo_quantity; extra
// columns are ignored.
func ReadTenants(r io.Reader) ([]TenantRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}

	if err != nil {
		return nil, fmt.Errorf("reading tenants CSV header: %w", err)
	}

	columns, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []TenantRow

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading tenants CSV line %d: %w", line, err)
		}

		row, err := parseRow(record, columns, line)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// ReadTenantsFile parses tenant rows from the file at path.
func ReadTenantsFile(path string) ([]TenantRow, error) {
	file, err := os.Open(path) // #nosec G304 -- path is caller-supplied by design
	if err != nil {
		return nil, fmt.Errorf("opening tenants CSV: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	return ReadTenants(file)
}

// headerIndex maps the required column names to their positions.
func headerIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{ColumnTenantName, ColumnDomainPrefix, ColumnExoQuantity} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	return columns, nil
}

func parseRow(record []string, columns map[string]int, line int) (TenantRow, error) {
	row := TenantRow{Line: line}

	row.TenantName = fieldAt(record, columns[ColumnTenantName])
	row.DomainPrefix = fieldAt(record, columns[ColumnDomainPrefix])

	if row.TenantName == "" || row.DomainPrefix == "" {
		return TenantRow{}, fmt.Errorf("line %d: %w", line, ErrEmptyField)
	}

	quantityField := fieldAt(record, columns[ColumnExoQuantity])

	quantity, err := strconv.Atoi(quantityField)
	if err != nil || quantity <= 0 {
		return TenantRow{}, fmt.Errorf("line %d: %w: %q", line, ErrInvalidQuantity, quantityField)
	}

	row.ExchangeQuantity = quantity

	return row, nil
}

func fieldAt(record []string, index int) string {
	if index >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[index])
}

// Credentials is one output row of admin_creds.csv: the generated admin
// account for a freshly created tenant.
type Credentials struct {
	TenantName   string
	DomainPrefix string
	Username     string
	Password     string
}

// CredentialSink receives the admin credentials of each provisioned tenant
// as soon as the tenant exists, so a later failure in the same row cannot
// lose them.
type CredentialSink interface {
	Append(creds Credentials) error
}

// CredentialWriter appends credential rows to a CSV stream. It implements
// CredentialSink.
type CredentialWriter struct {
	writer *csv.Writer
}

// NewCredentialWriter creates a credential writer over w.
func NewCredentialWriter(w io.Writer) *CredentialWriter {
	return &CredentialWriter{writer: csv.NewWriter(w)}
}

// Append writes one credential row and flushes it to the underlying writer.
func (w *CredentialWriter) Append(creds Credentials) error {
	err := w.writer.Write([]string{creds.TenantName, creds.DomainPrefix, creds.Username, creds.Password})
	if err != nil {
		return fmt.Errorf("writing credential row: %w", err)
	}

	w.writer.Flush()

	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("flushing credential row: %w", err)
	}

	return nil
}

// CredentialFile is a CredentialWriter backed by an append-mode file.
type CredentialFile struct {
	*CredentialWriter

	file *os.File
}

// OpenCredentialFile opens (or creates) the credentials file at path in
// append mode, so re-running the pipeline extends the file rather than
// truncating earlier runs. The file is created owner read/write only.
func OpenCredentialFile(path string) (*CredentialFile, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.CredentialFilePerm) // #nosec G304 -- path is caller-supplied by design
	if err != nil {
		return nil, fmt.Errorf("opening credentials CSV: %w", err)
	}

	return &CredentialFile{
		CredentialWriter: NewCredentialWriter(file),
		file:             file,
	}, nil
}

// Close closes the underlying file.
func (f *CredentialFile) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("closing credentials CSV: %w", err)
	}

	return nil
}
