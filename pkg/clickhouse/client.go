package clickhouse

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clickops/clickops/pkg/consts"
	"github.com/pkg/errors"
)

type (
	// Doer is the HTTP request primitive the client submits statements
	// through. *http.Client satisfies it; tests substitute their own.
	Doer interface {
		Do(*http.Request) (*http.Response, error)
	}

	// Options configures a Client. The zero value is usable: defaults
	// target a local ClickHouse HTTP interface with the default user.
	Options struct {
		// Host is the ClickHouse server host (default 127.0.0.1)
		Host string

		// Port is the HTTP interface port (default 8123)
		Port int

		// Username and Password are sent as URL query parameters, the way
		// the HTTP interface expects them. Credentials are only attached
		// when both are set.
		Username string
		Password string

		// Database is the database qualified into rendered DDL statements
		// (default "default")
		Database string

		// Format is the response format requested from the server
		// (default FormatJSON)
		Format Format

		// Timeout is the per-query fallback used when the caller's context
		// carries no deadline (default 2s)
		Timeout time.Duration

		// Logger receives debug/warn/error output (default slog.Default())
		Logger *slog.Logger

		// HTTPClient overrides the HTTP primitive used for submission
		// (default a plain *http.Client)
		HTTPClient Doer
	}

	// Client talks to a ClickHouse server over its HTTP query interface.
	// Statements are POSTed as plain text to the root endpoint with
	// credentials as query parameters.
	//
	// Every call is synchronous, blocking, and independent; the client
	// holds no mutable state and never retries. Callers running concurrent
	// migrations against the same table must serialize externally - there
	// is no compare-and-swap between fetching a schema and applying a
	// migration.
	Client struct {
		host     string
		port     int
		username string
		password string
		database string
		format   Format
		timeout  time.Duration
		log      *slog.Logger
		http     Doer
	}

	// Format is a ClickHouse response format requested via the FORMAT
	// clause. Only formats the decoder understands are accepted.
	Format string
)

const (
	// FormatJSON requests structured responses with a "data" row array.
	FormatJSON Format = "JSON"

	// FormatTabSeparated requests plain tabular text responses.
	FormatTabSeparated Format = "TabSeparated"
)

const (
	// QueryMaxSize is the maximum statement length accepted for
	// submission. Longer statements fail fast without any network I/O.
	QueryMaxSize = 16 * 1024

	// MaxRecords caps row-producing system table queries.
	MaxRecords = 10240
)

// NewClient creates a ClickHouse HTTP client from the given options,
// applying defaults for anything unset.
//
// Example:
//
//	client, err := clickhouse.NewClient(clickhouse.Options{
//	    Host:     "ch.example.com",
//	    Username: "default",
//	    Password: "secret",
//	    Database: "analytics",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tables, err := client.ShowTables(ctx)
func NewClient(opts Options) (*Client, error) {
	if opts.Host == "" {
		opts.Host = consts.DefaultHost
	}
	if opts.Port == 0 {
		opts.Port = consts.DefaultPort
	}
	if opts.Username == "" {
		opts.Username = consts.DefaultUsername
	}
	if opts.Database == "" {
		opts.Database = consts.DefaultDatabase
	}
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	if opts.Timeout <= 0 {
		opts.Timeout = consts.DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}

	switch opts.Format {
	case FormatJSON, FormatTabSeparated:
	default:
		return nil, errors.Errorf("unsupported response format: %s", opts.Format)
	}

	return &Client{
		host:     opts.Host,
		port:     opts.Port,
		username: opts.Username,
		password: opts.Password,
		database: opts.Database,
		format:   opts.Format,
		timeout:  opts.Timeout,
		log:      opts.Logger,
		http:     opts.HTTPClient,
	}, nil
}

// Database returns the database name statements are qualified with.
func (c *Client) Database() string {
	return c.database
}

// Execute submits a single plain-text statement to the server and returns
// its outcome.
//
// The statement is rejected with ErrQueryTooLarge before any I/O when it
// exceeds QueryMaxSize. When allowExecute is false the statement is only
// logged - no network call happens - and the returned outcome reports
// Skipped. Non-2xx responses are warn-logged and returned as data in the
// outcome, never as an error; callers must inspect the status explicitly.
// Transport failures (including context timeouts) are returned as errors.
func (c *Client) Execute(ctx context.Context, stmt string, allowExecute bool) (*QueryOutcome, error) {
	if len(stmt) > QueryMaxSize {
		return nil, errors.Wrapf(ErrQueryTooLarge, "max length is %d, got %d", QueryMaxSize, len(stmt))
	}

	c.log.Debug("composed statement", "curl", c.curlLine(stmt))

	if !allowExecute {
		return &QueryOutcome{}, nil
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.composeURL(), strings.NewReader(stmt))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit statement")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	outcome := &QueryOutcome{
		StatusCode: resp.StatusCode,
		Body:       body,
		Executed:   true,
	}

	if !outcome.Success() {
		c.log.Warn("statement returned non-success status",
			"status", outcome.StatusCode,
			"statement", stmt,
			"body", string(body),
		)
	}

	return outcome, nil
}

// Query submits a statement with the configured FORMAT clause appended and
// decodes the response.
//
// For FormatJSON the outcome's Rows holds the decoded "data" rows; a
// malformed structured body is the only condition that returns an error
// alongside the outcome. For FormatTabSeparated the raw body is left in
// Outcome.Body untouched. Non-success outcomes carry no rows, which lets
// read-only listings degrade to empty results.
func (c *Client) Query(ctx context.Context, stmt string, allowExecute bool) (*QueryOutcome, error) {
	stmt = strings.TrimSpace(stmt + " FORMAT " + string(c.format))

	outcome, err := c.Execute(ctx, stmt, allowExecute)
	if err != nil || !outcome.Executed || !outcome.Success() {
		return outcome, err
	}

	if c.format == FormatJSON {
		rows, err := decodeRows(stmt, outcome.Body)
		if err != nil {
			c.log.Error("failed to decode response", "error", err, "statement", stmt)
			return outcome, err
		}
		outcome.Rows = rows
	}

	return outcome, nil
}

// composeURL builds the root endpoint URL, attaching credentials as query
// parameters only when both username and password are set.
func (c *Client) composeURL() string {
	endpoint := fmt.Sprintf("http://%s:%d/", c.host, c.port)
	if c.username != "" && c.password != "" {
		params := url.Values{}
		params.Set("user", c.username)
		params.Set("password", c.password)
		endpoint += "?" + params.Encode()
	}
	return endpoint
}

// curlLine renders the request as a curl invocation for debug logging.
// The password is masked.
func (c *Client) curlLine(stmt string) string {
	endpoint := fmt.Sprintf("http://%s:%d/", c.host, c.port)
	if c.username != "" && c.password != "" {
		endpoint += "?user=" + url.QueryEscape(c.username) + "&password=****"
	}
	return fmt.Sprintf("curl '%s' -d '%s'", endpoint, stmt)
}
