package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NairaSign prefixes every rendered amount.
const NairaSign = "₦"

// FormatNaira renders an amount with English digit grouping. Whole amounts
// carry no fraction digits, others are shown to the kobo. Digits come from
// the decimal itself, so totals of any size render exactly.
func FormatNaira(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	if amount.IsInteger() {
		return sign + NairaSign + groupThousands(amount.String())
	}
	whole, kobo, _ := strings.Cut(amount.StringFixed(2), ".")
	return sign + NairaSign + groupThousands(whole) + "." + kobo
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
