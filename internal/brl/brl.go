// Package brl formats monetary amounts the way the product displays them,
// e.g. "R$ 10.000,00".
package brl

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var formatter = money.NewFormatter(2, ",", ".", "R$", "$ 1")

// Format renders a major-unit amount in Brazilian real. The decimal shift
// keeps float inputs exact at the cent.
func Format(amount float64) string {
	cents := decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
	return formatter.Format(cents)
}
