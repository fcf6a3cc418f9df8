package compare_test

import (
	"testing"

	. "github.com/clickops/clickops/pkg/compare"
	"github.com/stretchr/testify/require"
)

func intEqual(a, b int) bool { return a == b }

func TestSlices(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []int
		expected bool
	}{
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "equal elements in order",
			a:        []int{1, 2, 3},
			b:        []int{1, 2, 3},
			expected: true,
		},
		{
			name:     "same elements different order",
			a:        []int{1, 2, 3},
			b:        []int{3, 2, 1},
			expected: false,
		},
		{
			name:     "different lengths",
			a:        []int{1, 2},
			b:        []int{1, 2, 3},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Slices(tt.a, tt.b, intEqual))
		})
	}
}

func TestSlicesUnordered(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []int
		expected bool
	}{
		{
			name:     "same elements different order",
			a:        []int{1, 2, 3},
			b:        []int{3, 1, 2},
			expected: true,
		},
		{
			name:     "duplicates must match one-to-one",
			a:        []int{1, 1, 2},
			b:        []int{1, 2, 2},
			expected: false,
		},
		{
			name:     "different lengths",
			a:        []int{1},
			b:        []int{1, 1},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SlicesUnordered(tt.a, tt.b, intEqual))
		})
	}
}

func TestMaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     map[string]string
		expected bool
	}{
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "equal maps",
			a:        map[string]string{"a": "UInt8", "b": "String"},
			b:        map[string]string{"b": "String", "a": "UInt8"},
			expected: true,
		},
		{
			name:     "different values",
			a:        map[string]string{"a": "UInt8"},
			b:        map[string]string{"a": "UInt16"},
			expected: false,
		},
		{
			name:     "different keys",
			a:        map[string]string{"a": "UInt8"},
			b:        map[string]string{"b": "UInt8"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Maps(tt.a, tt.b))
		})
	}
}
