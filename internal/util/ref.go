package util

import (
	"strings"

	"pricecomp/internal"
)

// NormalizeReference canonicalizes a product identifier: surrounding
// whitespace is trimmed, then a trailing ".0" left behind by numeric
// references parsed as floats upstream is stripped. Blank input maps
// to the internal.NoReference sentinel. Idempotent.
func NormalizeReference(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return internal.NoReference
	}
	return strings.TrimSuffix(s, ".0")
}

func FloatPtr(v float64) *float64 { return &v }
