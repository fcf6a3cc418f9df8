package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clickops/clickops/pkg/consts"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const configTemplate = `# clickops project configuration
connection:
  host: 127.0.0.1
  port: 8123
  username: default
  # password: ""
  database: default
  format: JSON
  timeout: 2
  # cluster: my_cluster

# Columns never dropped by generated migrations
reserved: []
`

const schemaTemplate = `# Desired column set for one table. Column order is preserved.
columns:
  - name: id
    type: UInt64
  - name: payload
    type: String
  - name: created_at
    type: DateTime
`

// initCmd creates the init command, scaffolding a new clickops project in
// the current directory: a starter clickops.yaml and a schemas/ directory
// with an example desired column set.
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter clickops.yaml and schemas directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := os.Stat(consts.ConfigFile); err == nil {
				return errors.Errorf("%s already exists", consts.ConfigFile)
			}

			if err := os.WriteFile(consts.ConfigFile, []byte(configTemplate), consts.ModeFile); err != nil {
				return errors.Wrapf(err, "failed to write %s", consts.ConfigFile)
			}

			if err := os.MkdirAll("schemas", consts.ModeDir); err != nil {
				return errors.Wrap(err, "failed to create schemas directory")
			}

			example := filepath.Join("schemas", "example.yaml")
			if _, err := os.Stat(example); os.IsNotExist(err) {
				if err := os.WriteFile(example, []byte(schemaTemplate), consts.ModeFile); err != nil {
					return errors.Wrapf(err, "failed to write %s", example)
				}
			}

			fmt.Fprintf(cmd.Writer, "Initialized clickops project: %s, schemas/example.yaml\n", consts.ConfigFile)
			return nil
		},
	}
}
