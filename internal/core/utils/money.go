package utils

import (
	"strings"

	"github.com/govalues/decimal"
)

// FormatRupiah renders an amount the way the storefront shows prices,
// e.g. 1000000 -> "Rp1.000.000".
func FormatRupiah(amount decimal.Decimal) string {
	s := amount.String()

	var frac string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, frac = s[:i], s[i+1:]
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "Rp" + b.String()
	if neg {
		out = "-" + out
	}
	if frac != "" {
		out += "," + frac
	}
	return out
}
