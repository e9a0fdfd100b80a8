package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatWon renders an amount rounded to whole won with thousands separators
func FormatWon(amount decimal.Decimal) string {
	digits := amount.Round(0).Abs().StringFixed(0)

	var b strings.Builder
	if amount.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("₩")

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// ProgressBar draws a bar of width cells filled to pct percent
func ProgressBar(pct int64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct) * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
