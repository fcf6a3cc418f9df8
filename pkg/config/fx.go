package config

import (
	"os"

	"github.com/clickops/clickops/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Function attempts to load the configuration from clickops.yaml if it
	// exists. Returns nil if the file doesn't exist, allowing commands
	// that don't require config (like init, help, version) to function
	// properly.
	func() (*Config, error) {
		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(consts.ConfigFile)
	},
))
