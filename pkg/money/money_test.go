package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected int64
	}{
		{
			name:     "cents kept",
			amount:   "19.99",
			expected: 1999,
		},
		{
			name:     "whole amount",
			amount:   "10",
			expected: 1000,
		},
		{
			name:     "zero",
			amount:   "0",
			expected: 0,
		},
		{
			name:     "half rounds away from zero",
			amount:   "0.125",
			expected: 13,
		},
		{
			name:     "sub-cent rounds down",
			amount:   "4.504",
			expected: 450,
		},
		{
			name:     "sub-cent rounds up",
			amount:   "4.506",
			expected: 451,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(test.amount)
			require.NoError(t, err)
			res, err := ToMinorUnits(amount)
			require.NoError(t, err)
			assert.Equal(t, test.expected, res)
		})
	}
}

func TestToMinorUnitsNegative(t *testing.T) {
	res, err := ToMinorUnits(decimal.NewFromFloat(-0.01))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Zero(t, res)
}
