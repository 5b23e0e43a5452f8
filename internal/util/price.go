package util

import (
	"regexp"
	"strconv"
	"strings"
)

// Group separator and currency suffix used by the fr-MA rendering the
// export format is pinned to. Exported workbooks must stay
// byte-identical across builds, so the separator is a constant here
// rather than a CLDR lookup.
const (
	groupSep       = " "
	currencySuffix = " MAD"
)

var rePriceJunk = regexp.MustCompile(`[^0-9,]`)

// ParsePrice extracts a numeric price from a locale-decorated string
// such as "1 234,50 MAD". Everything but digits and the decimal comma
// is discarded, the comma becomes a decimal point. Returns nil when no
// valid number remains.
func ParsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	cleaned := rePriceJunk.ReplaceAllString(raw, "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// FormatPrice renders a price with two decimals, fr-MA thousands
// grouping and the currency suffix: 1234.5 -> "1 234,50 MAD".
// Nil renders as the empty string.
func FormatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	s := strconv.FormatFloat(*v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteString(groupSep)
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(',')
	b.WriteString(frac)
	b.WriteString(currencySuffix)
	return b.String()
}
