package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{100, 10000},
		{20, 2000},
		{0, 0},
		{19.99, 1999},
		{0.1 + 0.2, 30},
		{1.005, 100},
		{89.5, 8950},
	}
	for _, tc := range cases {
		got, err := ToMinorUnits(tc.in)
		require.NoError(t, err, "amount %v", tc.in)
		assert.Equal(t, tc.want, got, "amount %v", tc.in)
	}
}

func TestToMinorUnits_OutOfRange(t *testing.T) {
	for _, amount := range []float64{-0.01, 1000000, 1e17, 1e300, math.Inf(1), math.NaN()} {
		got, err := ToMinorUnits(amount)
		assert.ErrorIs(t, err, ErrAmountOutOfRange, "amount %v", amount)
		assert.Zero(t, got, "amount %v", amount)
	}
}

func TestToMinorUnits_UpperBound(t *testing.T) {
	got, err := ToMinorUnits(999999.99)
	require.NoError(t, err)
	assert.Equal(t, MaxMinorAmount, got)
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 1, 12.34, 150, 99.99, 1234.5} {
		minor, err := ToMinorUnits(amount)
		require.NoError(t, err)
		back := FromMinorUnits(minor)
		assert.InDelta(t, amount, back, 0.005)

		again, err := ToMinorUnits(back)
		require.NoError(t, err)
		assert.Equal(t, minor, again)
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, 150.0, FromMinorUnits(15000))
	assert.Equal(t, 0.5, FromMinorUnits(50))
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "eur", NormalizeCurrency("", "EUR"))
	assert.Equal(t, "gbp", NormalizeCurrency(" GBP ", "eur"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100", FormatAmount(100))
	assert.Equal(t, "89.5", FormatAmount(89.5))
}
