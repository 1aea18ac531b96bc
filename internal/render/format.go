package render

import (
	"fmt"
	"strconv"
)

// Comma formats an integer with thousands separators.
func Comma(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// Money renders a SAR or USD amount, collapsing millions for readability.
func Money(currency string, n int64) string {
	if n >= 1_000_000 {
		return fmt.Sprintf("%s %.1fM", currency, float64(n)/1_000_000)
	}
	return fmt.Sprintf("%s %s", currency, Comma(n))
}
