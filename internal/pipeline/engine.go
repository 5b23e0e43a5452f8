package pipeline

import (
	"errors"

	"pricecomp/internal"
)

// ErrMissingInput rejects a run before any file is opened when one or
// both catalog paths are absent.
var ErrMissingInput = errors.New("two catalog files are required")

// Compare reconciles two catalogs and returns every mismatching
// product grouped by category. Categories are visited in discovery
// order (catalog A first, then categories only catalog B has); a
// category appears in the result only if it produced entries. An
// empty result set means the catalogs agree everywhere they overlap.
func Compare(a, b internal.Catalog) internal.ResultSet {
	pa := Partition(a.Rows)
	pb := Partition(b.Rows)

	out := internal.ResultSet{Entries: map[string][]internal.ComparisonEntry{}}
	for _, category := range categoryUnion(pa, pb) {
		pairs := MatchBuckets(pa.Bucket(category), pb.Bucket(category))
		entries := make([]internal.ComparisonEntry, 0, len(pairs))
		for _, pair := range pairs {
			if entry, ok := Classify(pair.A, pair.B, a.Name, b.Name); ok {
				entries = append(entries, entry)
			}
		}
		if len(entries) > 0 {
			out.Categories = append(out.Categories, category)
			out.Entries[category] = entries
		}
	}
	return out
}

func categoryUnion(a, b *Partitioned) []string {
	seen := map[string]struct{}{}
	union := make([]string, 0, len(a.Categories())+len(b.Categories()))
	for _, cats := range [][]string{a.Categories(), b.Categories()} {
		for _, c := range cats {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			union = append(union, c)
		}
	}
	return union
}
