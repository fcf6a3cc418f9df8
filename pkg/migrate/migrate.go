package migrate

import (
	"context"
	"log/slog"
	"time"

	"github.com/clickops/clickops/pkg/clickhouse"
	"github.com/clickops/clickops/pkg/compare"
	"github.com/clickops/clickops/pkg/schema"
	"github.com/pkg/errors"
)

type (
	// Client is the subset of ClickHouse operations the migrator needs.
	Client interface {
		ExistTable(ctx context.Context, name string) (bool, error)
		DescTable(ctx context.Context, name string) (schema.ColumnSet, error)
		AlterTable(ctx context.Context, table string, changes []schema.ChangeOp, opts clickhouse.AlterOptions) (*clickhouse.QueryOutcome, error)
	}

	// Migrator drives the inspect -> diff -> alter cycle for one table at
	// a time: fetch the observed schema, compute the change plan against a
	// desired schema, and apply the plan as a single combined ALTER TABLE.
	//
	// Each cycle is independent and unprotected: there is no
	// compare-and-swap between Plan and Apply, so two concurrent cycles
	// against the same table can produce lost or duplicate changes.
	// Callers needing that guarantee must serialize externally.
	Migrator struct {
		ch  Client
		log *slog.Logger
	}

	// Config contains configuration options for creating a new Migrator.
	Config struct {
		// Client for schema inspection and DDL submission
		Client Client

		// Logger for progress output (default slog.Default())
		Logger *slog.Logger
	}

	// Result captures the outcome of applying one change plan.
	Result struct {
		// Table the plan was applied to
		Table string

		// Status is the overall outcome of the application
		Status Status

		// Changes is the plan that was applied (or would have been)
		Changes []schema.ChangeOp

		// Outcome is the transport-level result; nil when the plan was
		// empty or submission failed before reaching the transport
		Outcome *clickhouse.QueryOutcome

		// Error holds the transport failure when Status is StatusFailed
		// for a reason other than a non-success response
		Error error

		// Duration is how long the application took
		Duration time.Duration
	}

	// Status represents the outcome of applying a change plan.
	Status string
)

const (
	// StatusApplied indicates the statement was submitted and accepted
	StatusApplied Status = "applied"

	// StatusSkipped indicates execution was gated off; the statement was
	// rendered and logged only
	StatusSkipped Status = "skipped"

	// StatusNoop indicates the plan was empty and nothing was rendered
	StatusNoop Status = "noop"

	// StatusFailed indicates submission failed or the server rejected the
	// statement
	StatusFailed Status = "failed"
)

// New creates a migrator with the provided configuration.
//
// Example:
//
//	m := migrate.New(migrate.Config{Client: client})
//
//	plan, err := m.Plan(ctx, "events", desired, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := m.Apply(ctx, "events", plan, clickhouse.AlterOptions{AllowExecute: true})
//	if result.Status == migrate.StatusFailed {
//	    log.Fatal(result.Error)
//	}
func New(cfg Config) *Migrator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Migrator{
		ch:  cfg.Client,
		log: cfg.Logger,
	}
}

// Plan fetches the table's observed schema and diffs it against the
// desired one, returning the ordered change operations. It errors when the
// table does not exist - adding tables is out of scope for a column-level
// migration.
//
// The schema snapshot is fetched fresh on every call; the returned plan is
// only as current as the moment it was computed.
func (m *Migrator) Plan(ctx context.Context, table string, desired schema.ColumnSet, reserved schema.ReservedSet) ([]schema.ChangeOp, error) {
	exists, err := m.ch.ExistTable(ctx, table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check table %q", table)
	}
	if !exists {
		return nil, errors.Errorf("table %q does not exist", table)
	}

	current, err := m.ch.DescTable(ctx, table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to describe table %q", table)
	}

	if compare.Maps(current.Types(), desired.Types()) {
		m.log.Debug("schemas already consistent", "table", table)
		return nil, nil
	}

	return schema.Diff(current, desired, reserved), nil
}

// Apply submits the change plan as one combined ALTER TABLE statement and
// reports the outcome. Failures are recorded in the result, never
// retried; an empty plan is a noop and touches nothing.
func (m *Migrator) Apply(ctx context.Context, table string, changes []schema.ChangeOp, opts clickhouse.AlterOptions) *Result {
	start := time.Now()

	result := &Result{
		Table:   table,
		Changes: changes,
	}

	if len(changes) == 0 {
		result.Status = StatusNoop
		result.Duration = time.Since(start)
		return result
	}

	m.log.Info("applying schema changes",
		"table", table,
		"changes", len(changes),
		"cluster", opts.Cluster,
		"execute", opts.AllowExecute,
	)

	outcome, err := m.ch.AlterTable(ctx, table, changes, opts)
	result.Outcome = outcome
	result.Duration = time.Since(start)

	switch {
	case err != nil:
		result.Status = StatusFailed
		result.Error = errors.Wrapf(err, "failed to alter table %q", table)
	case outcome.Skipped():
		result.Status = StatusSkipped
	case !outcome.Success():
		result.Status = StatusFailed
	default:
		result.Status = StatusApplied
	}

	return result
}
