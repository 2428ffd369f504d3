// Package money formats rupiah amounts for display and parses what a cashier
// types into a numeric field. Rupiah have no fractional unit, so amounts are
// whole numbers unless a caller asks for decimals explicitly (printers).
package money

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyPrefix is prepended to every formatted amount
const CurrencyPrefix = "Rp "

// MaxAmount is the largest amount handled. It is exact in a float64 and far
// below the int64 range, so rounding can never overflow.
const MaxAmount = 1_000_000_000_000_000

const (
	groupSeparator   = "."
	decimalSeparator = ","
)

var printer = message.NewPrinter(language.Indonesian)

// Sanitize maps negative and non-finite amounts to 0 and caps the rest at
// MaxAmount.
func Sanitize(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	if amount > MaxAmount {
		return MaxAmount
	}
	return amount
}

// Round sanitizes and rounds to the nearest whole unit.
func Round(amount float64) int64 {
	return int64(math.Round(Sanitize(amount)))
}

// FormatNumber renders a whole amount with Indonesian digit grouping, e.g. "12.345".
func FormatNumber(amount float64) string {
	return printer.Sprintf("%d", Round(amount))
}

// FormatCurrency renders an amount as "Rp 12.345". Negative input renders as "Rp 0".
func FormatCurrency(amount float64) string {
	return CurrencyPrefix + FormatNumber(amount)
}

// FormatAmount is FormatCurrency for integer amounts.
func FormatAmount(amount int64) string {
	return FormatCurrency(float64(amount))
}

// FormatCurrencyWithDecimals renders a fixed number of decimal places, e.g.
// "Rp 12.345,50". Used where a printer layout expects decimals.
func FormatCurrencyWithDecimals(amount float64, places int) string {
	if places < 0 {
		places = 0
	}
	fixed := decimal.NewFromFloat(Sanitize(amount)).StringFixed(int32(places))

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	out := CurrencyPrefix + groupDigits(intPart)
	if places > 0 {
		out += decimalSeparator + fracPart
	}
	return out
}

// Digits strips everything that is not an ASCII digit. The result is the
// authoritative value of a typed amount field.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseDigitsToAmount re-renders typed input for display: "12345abc" -> "12.345".
// Empty input stays empty so the field can be visually blank.
func ParseDigitsToAmount(raw string) string {
	digits := Digits(raw)
	if digits == "" {
		return ""
	}
	return groupDigits(digits)
}

// AmountFromDigits converts a stripped digit string into an amount. Empty
// input is 0.
func AmountFromDigits(digits string) (int64, error) {
	digits = Digits(digits)
	if digits == "" {
		return 0, nil
	}
	return strconv.ParseInt(digits, 10, 64)
}

// groupDigits inserts thousands separators into an unsigned digit string of
// any length. Values that fit int64 go through the locale printer.
func groupDigits(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
