// Package cmd implements the clickops command-line interface.
//
// Commands are urfave/cli v3 commands provided into an fx group and
// assembled by Run. Read-only commands (tables, describe, exists,
// partitions list, clusters) execute immediately; mutating commands
// (apply, partitions drop) render their statements as a dry run unless
// --execute is passed.
package cmd
