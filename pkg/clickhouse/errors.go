package clickhouse

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrQueryTooLarge is returned when a statement exceeds QueryMaxSize.
// Oversize statements are rejected before any network I/O.
var ErrQueryTooLarge = errors.New("statement exceeds maximum query size")

// DecodeError indicates a structured response body could not be parsed.
// This is the only failure mode that aborts a call rather than degrading
// to an empty result, because no row sequence can be synthesized from a
// malformed body.
type DecodeError struct {
	// Body is the unparseable response body, preserved for diagnosis.
	Body []byte

	// Err is the underlying parse error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("expected response in JSON, got -%s-: %v", e.Body, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
