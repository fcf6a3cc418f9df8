package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/clickops/clickops/pkg/clickhouse"
	. "github.com/clickops/clickops/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	doc := `
connection:
  host: ch.example.com
  port: 8124
  username: ops
  password: secret
  database: analytics
  format: TabSeparated
  timeout: 5.5
  cluster: east
reserved:
  - sign
  - version
`

	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, "ch.example.com", cfg.Connection.Host)
	require.Equal(t, 8124, cfg.Connection.Port)
	require.Equal(t, "ops", cfg.Connection.Username)
	require.Equal(t, "secret", cfg.Connection.Password)
	require.Equal(t, "analytics", cfg.Connection.Database)
	require.Equal(t, "TabSeparated", cfg.Connection.Format)
	require.InDelta(t, 5.5, cfg.Connection.Timeout, 0.001)
	require.Equal(t, "east", cfg.Connection.Cluster)
	require.Equal(t, []string{"sign", "version"}, cfg.Reserved)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("connection: {}\n"))
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Connection.Host)
	require.Equal(t, 8123, cfg.Connection.Port)
	require.Equal(t, "default", cfg.Connection.Username)
	require.Equal(t, "default", cfg.Connection.Database)
	require.Equal(t, "JSON", cfg.Connection.Format)
	require.InDelta(t, 2.0, cfg.Connection.Timeout, 0.001)
	require.Empty(t, cfg.Connection.Cluster)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("connection: [not a mapping"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open file")
}

func TestClientOptions(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
connection:
  host: ch.example.com
  timeout: 3
`))
	require.NoError(t, err)

	opts := cfg.ClientOptions()
	require.Equal(t, "ch.example.com", opts.Host)
	require.Equal(t, 8123, opts.Port)
	require.Equal(t, clickhouse.FormatJSON, opts.Format)
	require.Equal(t, 3*time.Second, opts.Timeout)
}
