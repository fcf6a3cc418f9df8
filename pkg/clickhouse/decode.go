package clickhouse

import (
	"encoding/json"
	"strings"
)

// decodeRows converts a structured (JSON) response body into rows.
//
// Two server quirks are preserved here:
//
//   - CREATE TABLE on a single node returns an empty body even though the
//     statement succeeded, so an empty body decodes to no rows.
//   - CREATE TABLE ... ON CLUSTER does not honor the FORMAT JSON clause on
//     the HTTP interface; whatever comes back is not usable as structured
//     data, so those statements decode to no rows instead of an error.
//
// A body with no "data" key decodes to no rows as well - the lenient
// behavior callers rely on to treat "no data" and "empty data" alike.
// Anything else that fails to parse is a *DecodeError.
func decodeRows(stmt string, body []byte) ([]Row, error) {
	if len(body) == 0 {
		return nil, nil
	}

	lower := strings.ToLower(stmt)
	if strings.Contains(lower, "create table") && strings.Contains(lower, "on cluster") {
		return nil, nil
	}

	var resp struct {
		Data []Row `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}

	return resp.Data, nil
}
