package pipeline

import "pricecomp/internal"

// FilterEntries narrows a category's entries to one difference kind.
// "all" and any unrecognized kind return the list unchanged.
func FilterEntries(entries []internal.ComparisonEntry, kind string) []internal.ComparisonEntry {
	switch k := internal.DifferenceKind(kind); k {
	case internal.KindPrice, internal.KindStock, internal.KindBoth:
		out := make([]internal.ComparisonEntry, 0, len(entries))
		for _, e := range entries {
			if e.Kind == k {
				out = append(out, e)
			}
		}
		return out
	default:
		return entries
	}
}
