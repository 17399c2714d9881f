// Package currencyutils converts amounts written with a "." thousands separator and a ","
// decimal separator (e.g. "1.234,56") to exact decimal values and back.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StandardizeBRL rewrites "1.234,56" as "1234.56": every "." is dropped and the
// decimal "," becomes ".".
func StandardizeBRL(amountStr string) string {
	s := strings.TrimSpace(amountStr)
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", ".")
}

// ParseBRL parses a locale-formatted amount. Empty input is zero; anything that does
// not standardize to a plain decimal is an error.
func ParseBRL(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeBRL(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatBRL formats amount with two decimals, "." thousands grouping and a "," decimal
// separator, the inverse of ParseBRL.
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
