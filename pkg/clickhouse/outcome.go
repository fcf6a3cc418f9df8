package clickhouse

import "fmt"

type (
	// Row is one decoded result row from a structured (JSON) response.
	// Values retain the types encoding/json assigns: string, float64,
	// bool, nil, nested maps and slices.
	Row map[string]any

	// QueryOutcome is the result of one submitted statement.
	//
	// Outcomes are data, not errors: a non-2xx status is carried in
	// StatusCode with the raw body preserved for inspection, and callers
	// decide how to react. Executed distinguishes real submissions from
	// statements that were gated off by the allow-execute flag.
	QueryOutcome struct {
		// StatusCode is the HTTP status returned by the server. Zero when
		// the statement was never submitted.
		StatusCode int

		// Body is the raw response body.
		Body []byte

		// Rows holds decoded rows for structured responses. Nil for
		// tabular responses, skipped executions, and non-success outcomes.
		Rows []Row

		// Executed reports whether the statement actually reached the
		// server. False is the skipped-execution sentinel.
		Executed bool
	}
)

// Success reports whether the statement was submitted and the server
// answered with a 2xx status.
func (o *QueryOutcome) Success() bool {
	return o.Executed && o.StatusCode >= 200 && o.StatusCode < 300
}

// Skipped reports whether submission was gated off by the allow-execute
// flag, i.e. the statement was rendered and logged but never sent.
func (o *QueryOutcome) Skipped() bool {
	return !o.Executed
}

// String returns the row's value for key rendered as a string. Missing
// keys and nil values render as "".
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool interprets the row's value for key as a boolean-ish result field,
// the way EXISTS-style queries report: JSON numbers are true when
// non-zero, strings when non-empty and not "0". Missing keys are false.
func (r Row) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != "" && v != "0"
	default:
		return false
	}
}
