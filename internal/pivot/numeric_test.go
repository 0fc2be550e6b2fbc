package pivot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"32", 32, true},
		{"32 m²", 32, true},
		{"13.59 m³", 13.59, true},
		{"16000", 16000, true},
		{"-32.5", -32.5, true},
		{"1,234.56", 1234.56, true},   // comma thousands, dot decimal
		{"1 234,56 m²", 1234.56, true}, // space thousands, comma decimal
		{"32,5", 32.5, true},          // single comma, <=2 digits: decimal
		{"4,0 m", 4, true},
		{"1,234", 1234, true},         // single comma, 3 digits: thousands
		{"1,234,567", 1234567, true},  // multiple commas: thousands
		{"1 234 567", 1234567, true},  // space thousands only
		{"Area: 12.5 m²", 12.5, true}, // number not at string start
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"m²", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractNumeric(tt.in)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, "value for %q", tt.in)
		}
	}
}

func TestExtractNumeric_NeverZeroForUnparseable(t *testing.T) {
	// Unparseable values must be reported as absent, not coerced to 0.
	_, ok := ExtractNumeric("bad")
	assert.False(t, ok)
	n, ok := ExtractNumeric("0")
	assert.True(t, ok)
	assert.Equal(t, 0.0, n)
}
