package brl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {

	cases := []struct {
		amount float64
		want   string
	}{
		{10000, "R$ 10.000,00"},
		{450000000, "R$ 450.000.000,00"},
		{1234.56, "R$ 1.234,56"},
		{0.1, "R$ 0,10"},
		{0, "R$ 0,00"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Format(c.amount))
	}
}
