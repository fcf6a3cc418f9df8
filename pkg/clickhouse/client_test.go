package clickhouse_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	. "github.com/clickops/clickops/pkg/clickhouse"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// testServer captures every statement POSTed to it and replies with the
// configured status and body.
type testServer struct {
	*httptest.Server

	status     int
	body       string
	statements []string
	requests   []*url.URL
}

func newTestServer(t *testing.T, status int, body string) *testServer {
	t.Helper()

	ts := &testServer{status: status, body: body}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stmt, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		ts.statements = append(ts.statements, string(stmt))
		ts.requests = append(ts.requests, r.URL)

		w.WriteHeader(ts.status)
		_, _ = w.Write([]byte(ts.body))
	}))
	t.Cleanup(ts.Close)

	return ts
}

func (ts *testServer) client(t *testing.T, opts Options) *Client {
	t.Helper()

	u, err := url.Parse(ts.URL)
	require.NoError(t, err)

	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	opts.Host = host
	opts.Port = port
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := NewClient(opts)
	require.NoError(t, err)

	return client
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Options{})
	require.NoError(t, err)
	require.Equal(t, "default", client.Database())
}

func TestNewClient_UnsupportedFormat(t *testing.T) {
	_, err := NewClient(Options{Format: Format("CSV")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported response format")
}

func TestExecute_SizeLimit(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, "")
	client := ts.client(t, Options{})

	// One byte over the cap fails fast with no network I/O.
	over := strings.Repeat("a", QueryMaxSize+1)
	_, err := client.Execute(context.Background(), over, true)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrQueryTooLarge))
	require.Empty(t, ts.statements)

	// Exactly at the cap reaches the transport.
	atCap := strings.Repeat("a", QueryMaxSize)
	outcome, err := client.Execute(context.Background(), atCap, true)
	require.NoError(t, err)
	require.True(t, outcome.Success())
	require.Len(t, ts.statements, 1)
	require.Equal(t, atCap, ts.statements[0])
}

func TestExecute_AllowExecuteGate(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, "")
	client := ts.client(t, Options{})

	outcome, err := client.Execute(context.Background(), "DROP TABLE `t`", false)
	require.NoError(t, err)
	require.True(t, outcome.Skipped())
	require.False(t, outcome.Success())
	require.Empty(t, ts.statements, "gated statement must not reach the transport")
}

func TestExecute_NonSuccessStatusIsData(t *testing.T) {
	ts := newTestServer(t, http.StatusInternalServerError, "Code: 60. DB::Exception: Table does not exist")
	client := ts.client(t, Options{})

	outcome, err := client.Execute(context.Background(), "SELECT 1", true)
	require.NoError(t, err, "non-2xx must be reported as data, not as an error")
	require.True(t, outcome.Executed)
	require.False(t, outcome.Success())
	require.Equal(t, http.StatusInternalServerError, outcome.StatusCode)
	require.Contains(t, string(outcome.Body), "DB::Exception")
}

func TestExecute_TransportFailure(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, "")
	client := ts.client(t, Options{})
	ts.Close()

	_, err := client.Execute(context.Background(), "SELECT 1", true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to submit statement")
}

func TestExecute_CredentialsAsQueryParams(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, "")
	client := ts.client(t, Options{Username: "reader", Password: "secret"})

	_, err := client.Execute(context.Background(), "SELECT 1", true)
	require.NoError(t, err)

	require.Len(t, ts.requests, 1)
	params := ts.requests[0].Query()
	require.Equal(t, "reader", params.Get("user"))
	require.Equal(t, "secret", params.Get("password"))
}

func TestExecute_NoCredentialsWithoutPassword(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, "")
	client := ts.client(t, Options{Username: "reader"})

	_, err := client.Execute(context.Background(), "SELECT 1", true)
	require.NoError(t, err)

	require.Len(t, ts.requests, 1)
	require.Empty(t, ts.requests[0].RawQuery)
}

func TestQuery_AppendsFormatClause(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"data":[{"n":"1"}]}`)
	client := ts.client(t, Options{})

	outcome, err := client.Query(context.Background(), "SELECT 1 AS n", true)
	require.NoError(t, err)
	require.Len(t, ts.statements, 1)
	require.Equal(t, "SELECT 1 AS n FORMAT JSON", ts.statements[0])
	require.Equal(t, []Row{{"n": "1"}}, outcome.Rows)
}

func TestQuery_NonSuccessDegradesToNoRows(t *testing.T) {
	ts := newTestServer(t, http.StatusBadRequest, "Code: 62. DB::Exception: Syntax error")
	client := ts.client(t, Options{})

	outcome, err := client.Query(context.Background(), "SELEC 1", true)
	require.NoError(t, err)
	require.False(t, outcome.Success())
	require.Nil(t, outcome.Rows)
}

func TestQuery_TabSeparatedPreservesRawBody(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, "events\nusers\n")
	client := ts.client(t, Options{Format: FormatTabSeparated})

	outcome, err := client.Query(context.Background(), "SHOW TABLES", true)
	require.NoError(t, err)
	require.Equal(t, "SHOW TABLES FORMAT TabSeparated", ts.statements[0])
	require.Nil(t, outcome.Rows)
	require.Equal(t, "events\nusers\n", string(outcome.Body))
}

func TestQuery_SkippedExecutionDecodesNothing(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, "ignored")
	client := ts.client(t, Options{})

	outcome, err := client.Query(context.Background(), "ALTER TABLE `t` DROP COLUMN `a`", false)
	require.NoError(t, err)
	require.True(t, outcome.Skipped())
	require.Nil(t, outcome.Rows)
	require.Empty(t, ts.statements)
}
