package menu

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ParsePrice strips any currency prefix from s and parses the remainder.
// Empty or malformed prices are zero.
//
// The prefix runs up to the first digit. A '.' or '-' right before that digit
// is kept as part of the number unless it closes a word, as in "Rs.10".
func ParsePrice(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsDigit)
	if i < 0 {
		return decimal.Zero
	}
	start := i
	if i > 0 && (s[i-1] == '.' || s[i-1] == '-') {
		start = i - 1
		if r, _ := utf8.DecodeLastRuneInString(s[:i-1]); start > 0 && (unicode.IsLetter(r) || r == '.') {
			start = i
		}
	}
	d, err := decimal.NewFromString(s[start:])
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatPrice renders d with two decimals and a dollar prefix.
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
