package pipeline

import "pricecomp/internal"

type MatchedPair struct {
	A internal.Record
	B internal.Record
}

// MatchBuckets joins two same-category buckets by normalized
// reference. Inner join: references present in only one catalog are
// dropped. Pair order follows catalog A's insertion order.
func MatchBuckets(a, b *Bucket) []MatchedPair {
	pairs := make([]MatchedPair, 0, a.Len())
	for _, ref := range a.refs {
		recB, ok := b.byRef[ref]
		if !ok {
			continue
		}
		pairs = append(pairs, MatchedPair{A: a.byRef[ref], B: recB})
	}
	return pairs
}
