package config

import (
	"io"
	"os"
	"time"

	"github.com/clickops/clickops/pkg/clickhouse"
	"github.com/clickops/clickops/pkg/consts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Connection holds the ClickHouse HTTP interface connection settings.
	// All fields are optional; defaults target a local server with the
	// default user.
	Connection struct {
		// Host of the ClickHouse server
		Host string `yaml:"host,omitempty"`

		// Port of the HTTP interface
		Port int `yaml:"port,omitempty"`

		// Username and Password sent as URL query parameters
		Username string `yaml:"username,omitempty"`
		Password string `yaml:"password,omitempty"`

		// Database that DDL statements are qualified with
		Database string `yaml:"database,omitempty"`

		// Format of server responses: JSON or TabSeparated
		Format string `yaml:"format,omitempty"`

		// Timeout per query, in seconds
		Timeout float64 `yaml:"timeout,omitempty"`

		// Cluster is the default cluster name for ON CLUSTER statements;
		// commands may override it per invocation
		Cluster string `yaml:"cluster,omitempty"`
	}

	// Config represents the project configuration for ClickHouse schema
	// operations.
	Config struct {
		// Connection contains ClickHouse connection settings
		Connection Connection `yaml:"connection"`

		// Reserved lists column names that must never be dropped by a
		// generated migration
		Reserved []string `yaml:"reserved,omitempty"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Connection
// defaults are applied for anything unset.
//
// Example:
//
//	yamlData := `
//	connection:
//	  host: ch.example.com
//	  database: analytics
//	reserved:
//	  - sign
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//	    panic(err)
//	}
//
//	fmt.Printf("Database: %s\n", cfg.Connection.Database)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Connection.Host == "" {
		cfg.Connection.Host = consts.DefaultHost
	}
	if cfg.Connection.Port == 0 {
		cfg.Connection.Port = consts.DefaultPort
	}
	if cfg.Connection.Username == "" {
		cfg.Connection.Username = consts.DefaultUsername
	}
	if cfg.Connection.Database == "" {
		cfg.Connection.Database = consts.DefaultDatabase
	}
	if cfg.Connection.Format == "" {
		cfg.Connection.Format = string(clickhouse.FormatJSON)
	}
	if cfg.Connection.Timeout <= 0 {
		cfg.Connection.Timeout = consts.DefaultTimeout.Seconds()
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file
// path. This is a convenience function that opens the file and calls
// LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// ClientOptions converts the connection settings into clickhouse client
// options.
func (c *Config) ClientOptions() clickhouse.Options {
	return clickhouse.Options{
		Host:     c.Connection.Host,
		Port:     c.Connection.Port,
		Username: c.Connection.Username,
		Password: c.Connection.Password,
		Database: c.Connection.Database,
		Format:   clickhouse.Format(c.Connection.Format),
		Timeout:  time.Duration(c.Connection.Timeout * float64(time.Second)),
	}
}
