package consts

import (
	"os"
	"time"
)

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the default name of the project configuration file
	ConfigFile = "clickops.yaml"

	// DefaultHost is the ClickHouse host used when none is configured
	DefaultHost = "127.0.0.1"

	// DefaultPort is the ClickHouse HTTP interface port
	DefaultPort = 8123

	// DefaultUsername is the ClickHouse user used when none is configured
	DefaultUsername = "default"

	// DefaultDatabase is the database used when none is configured
	DefaultDatabase = "default"

	// DefaultTimeout is the per-query timeout used when none is configured
	DefaultTimeout = 2 * time.Second
)
