package clickhouse

import (
	"context"

	"github.com/clickops/clickops/pkg/schema"
	"github.com/clickops/clickops/pkg/utils"
)

// AlterOptions controls how a mutating DDL statement is rendered and
// whether it is actually submitted.
type AlterOptions struct {
	// Cluster, when set, renders the statement in its cluster-qualified
	// form (ON CLUSTER <cluster>) so the change propagates to every node.
	// When empty the qualifier is omitted entirely.
	Cluster string

	// AllowExecute gates submission. When false the statement is rendered
	// and logged but never sent, and the returned outcome reports Skipped.
	// There is deliberately no instance-level default: every mutating call
	// site states its intent explicitly.
	AllowExecute bool
}

// AlterTable renders the given change operations into a single combined
// ALTER TABLE statement against the configured database and submits it
// under the allow-execute gate.
//
// Multiple changes become multiple clauses of one statement, joined with
// ", " - never multiple statements - so a failure applies or fails
// atomically at the statement level. No transactional guarantee exists
// across separate AlterTable invocations, and nothing is retried.
//
// An empty change list is a no-op: no statement is rendered or submitted
// and a skipped outcome is returned.
//
// Example:
//
//	changes := schema.Diff(current, desired, nil)
//	outcome, err := client.AlterTable(ctx, "events", changes, clickhouse.AlterOptions{
//	    Cluster:      "production",
//	    AllowExecute: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !outcome.Success() {
//	    log.Fatalf("alter failed: %d %s", outcome.StatusCode, outcome.Body)
//	}
func (c *Client) AlterTable(ctx context.Context, table string, changes []schema.ChangeOp, opts AlterOptions) (*QueryOutcome, error) {
	if len(changes) == 0 {
		return &QueryOutcome{}, nil
	}

	clauses := make([]string, 0, len(changes))
	for _, change := range changes {
		clauses = append(clauses, change.Clause())
	}

	stmt := utils.NewSQLBuilder().
		Alter("TABLE").
		QualifiedName(c.database, table).
		OnCluster(opts.Cluster).
		ClauseList(clauses...).
		String()

	return c.Query(ctx, stmt, opts.AllowExecute)
}
