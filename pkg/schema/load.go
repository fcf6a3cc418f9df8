package schema

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadColumnSet parses a desired column set from YAML. The expected shape
// is a document with a top-level "columns" list of name/type pairs:
//
//	columns:
//	  - name: id
//	    type: UInt64
//	  - name: payload
//	    type: String
//
// Column order in the file is preserved in the returned set.
func LoadColumnSet(r io.Reader) (ColumnSet, error) {
	var doc struct {
		Columns ColumnSet `yaml:"columns"`
	}

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal column set")
	}

	for _, col := range doc.Columns {
		if col.Name == "" {
			return nil, errors.New("column set contains a column with no name")
		}
		if col.Type == "" {
			return nil, errors.Errorf("column %q has no type", col.Name)
		}
	}

	return doc.Columns, nil
}

// LoadColumnSetFile loads a desired column set from the YAML file at path.
// This is a convenience wrapper around LoadColumnSet.
func LoadColumnSetFile(path string) (ColumnSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadColumnSet(f)
}
