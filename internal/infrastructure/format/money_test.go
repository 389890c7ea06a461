package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"45.5", "45.50"},
		{"1234567.891", "1,234,567.89"},
		{"1000000", "1,000,000.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Money(decimal.RequireFromString(c.in)), "in=%s", c.in)
	}
}

func TestUSD(t *testing.T) {
	assert.Equal(t, "$345.50", USD(decimal.RequireFromString("345.5")))
}
