// Package money converts between rupees and paise.
//
// Paise are the only unit of account inside the backend. Floating point and
// decimal strings appear only at the boundary, where an amount typed by a user
// is converted exactly once into an integer number of paise.
package money

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Paise is an integer count of the minor unit of the Indian Rupee.
type Paise = int64

// Symbol is prefixed to every formatted amount.
const Symbol = "₹"

var (
	ErrInvalidAmount  = errors.New("invalid amount format")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

var (
	hundred  = decimal.NewFromInt(100)
	maxPaise = decimal.NewFromInt(math.MaxInt64)
	minPaise = decimal.NewFromInt(math.MinInt64)
)

// maxAmountLen bounds the cleaned input; no in-range amount needs more.
const maxAmountLen = 32

// plainAmount matches digits with an optional fraction. Exponents and signs
// are not accepted from users.
var plainAmount = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)$`)

// RupeesToPaise converts a rupee amount to paise, rounding half away from zero.
//
// The float is read through its shortest decimal representation, so values
// such as 1.005 round to 101 instead of falling to 100 through binary error.
// Non-finite inputs convert to 0 and results beyond the int64 range saturate.
func RupeesToPaise(rupees float64) Paise {
	if math.IsNaN(rupees) || math.IsInf(rupees, 0) {
		return 0
	}
	scaled := decimal.NewFromFloat(rupees).Mul(hundred).Round(0)
	switch {
	case scaled.GreaterThan(maxPaise):
		return math.MaxInt64
	case scaled.LessThan(minPaise):
		return math.MinInt64
	}
	return scaled.IntPart()
}

// ParseRupees parses a user-typed rupee amount such as "123.45", "₹ 1,200" or
// "0.5" into paise. Digits beyond the second decimal are rounded half up.
func ParseRupees(s string) (Paise, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, Symbol)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if strings.HasPrefix(cleaned, "-") && plainAmount.MatchString(cleaned[1:]) {
		return 0, ErrNegativeAmount
	}
	if len(cleaned) > maxAmountLen || !plainAmount.MatchString(cleaned) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	scaled := d.Mul(hundred).Round(0)
	if scaled.GreaterThan(maxPaise) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	return scaled.IntPart(), nil
}

// PaiseToRupees returns the exact rupee value of an amount in paise.
func PaiseToRupees(paise Paise) decimal.Decimal {
	return decimal.New(paise, -2)
}

// FormatPaise renders paise as rupees with exactly two decimals, e.g. "₹123.45".
func FormatPaise(paise Paise) string {
	return Symbol + PaiseToRupees(paise).StringFixed(2)
}
