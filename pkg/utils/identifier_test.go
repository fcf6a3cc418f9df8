package utils_test

import (
	"testing"

	. "github.com/clickops/clickops/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestBacktickIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple identifier",
			input:    "events",
			expected: "`events`",
		},
		{
			name:     "qualified identifier",
			input:    "analytics.events",
			expected: "`analytics`.`events`",
		},
		{
			name:     "already backticked",
			input:    "`events`",
			expected: "`events`",
		},
		{
			name:     "backticked identifier containing dots",
			input:    "`weird.name`",
			expected: "`weird.name`",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "partially backticked qualified name",
			input:    "`analytics`.events",
			expected: "`analytics`.`events`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, BacktickIdentifier(tt.input))
		})
	}
}

func TestBacktickQualifiedName(t *testing.T) {
	require.Equal(t, "`analytics`.`events`", BacktickQualifiedName("analytics", "events"))
	require.Equal(t, "`events`", BacktickQualifiedName("", "events"))
}

func TestStripBackticks(t *testing.T) {
	require.Equal(t, "table", StripBackticks("`table`"))
	require.Equal(t, "db.table", StripBackticks("`db`.`table`"))
	require.Equal(t, "plain", StripBackticks("plain"))
}
