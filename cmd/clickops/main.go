package main

import (
	"context"
	"os"

	"github.com/clickops/clickops/pkg/cmd"
	"github.com/clickops/clickops/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			func() context.Context { return context.Background() },
			func() []string { return os.Args },
		),
		fx.Supply(&cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		config.Module,
		cmd.Module,
	).Run()
}
