// Package format renders amounts and dates the way the estimate documents show
// them (India locale).
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

// FormatCurrency renders an INR amount with Indian digit grouping and two
// decimals, e.g. 123456.789 -> "₹1,23,456.79" and -90 -> "-₹90.00".
func FormatCurrency(amount float64) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		fixed = fixed[1:]
		if strings.Trim(fixed, "0.") != "" {
			sign = "-"
		}
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + rupee + groupIndian(intPart) + "." + frac
}

// groupIndian puts a comma before the last three digits and then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// FormatDate renders the short en-IN date, e.g. "5 Mar 2024".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 Jan 2006")
}

// FormatISODate parses an RFC 3339 timestamp and formats it with FormatDate.
// Unparseable input is returned unchanged.
func FormatISODate(iso string) string {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(iso))
	if err != nil {
		return iso
	}
	return FormatDate(t)
}
