// Package money provides Colombian peso amounts and formatting.
// All storefront prices are whole pesos; division rounds half up.
package money

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Format renders an amount the way the storefront displays it:
// dollar sign, dot as thousands separator ("$40.000").
func Format(amount int64) string {
	return "$" + group(amount)
}

// group inserts dot separators into the decimal representation
func group(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	// Build from the left, placing a dot before each remaining group of 3
	var out []byte
	first := n % 3
	if first == 0 {
		first = 3
	}
	out = append(out, s[:first]...)
	for i := first; i < n; i += 3 {
		out = append(out, '.')
		out = append(out, s[i:i+3]...)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// DivRound divides an amount by a count, rounding half up.
func DivRound(amount int64, divisor int64) int64 {
	if divisor == 0 {
		return 0
	}
	return decimal.NewFromInt(amount).
		Div(decimal.NewFromInt(divisor)).
		Round(0).
		IntPart()
}

// Clamp floors an amount at zero. Discounts never produce negative totals.
func Clamp(amount int64) int64 {
	if amount < 0 {
		return 0
	}
	return amount
}
