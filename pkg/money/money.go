package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol prefixes every rendered amount.
const Symbol = "Rp"

var printer = message.NewPrinter(language.Indonesian)

// Group renders an integer amount with Indonesian thousands grouping (150000 -> "150.000").
func Group(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// Format renders an amount as a display label, e.g. "Rp 150.000".
func Format(amount int64) string {
	return Symbol + " " + Group(amount)
}

// Add sums two non-negative amounts, capping at math.MaxInt64.
func Add(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// Mul multiplies a non-negative unit amount by a quantity, capping at math.MaxInt64.
func Mul(unit int64, qty int) int64 {
	if unit == 0 || qty <= 0 {
		return 0
	}
	if unit > math.MaxInt64/int64(qty) {
		return math.MaxInt64
	}
	return unit * int64(qty)
}
