package menu

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"$10.00", "10"},
		{"10.50", "10.5"},
		{" ₹ 249", "249"},
		{"", "0"},
		{"$", "0"},
		{"abc", "0"},
		{"$1.2.3", "0"},
		{"Rs.10", "10"},
		{"Rs. 10", "10"},
		{"Rs.10.50", "10.5"},
		{"$.50", "0.5"},
		{"-3", "-3"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(c.want).Equal(ParsePrice(c.in)), "got %s", ParsePrice(c.in))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$20.00", FormatPrice(decimal.NewFromInt(20)))
	assert.Equal(t, "$0.50", FormatPrice(decimal.RequireFromString("0.5")))
}
