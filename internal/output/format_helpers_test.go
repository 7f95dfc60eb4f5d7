package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{2600, "$2,600.00"},
		{1234567.891, "$1,234,567.89"},
		{-157588.54, "-$157,588.54"},
		{999.999, "$1,000.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(decimal.NewFromFloat(tc.in)))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "6.8%", FormatPercentage(decimal.NewFromFloat(0.068)))
	assert.Equal(t, "0.0%", FormatPercentage(decimal.Zero))
	assert.Equal(t, "-2.0%", FormatPercentage(decimal.NewFromFloat(-0.02)))
}
