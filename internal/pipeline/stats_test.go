package pipeline

import (
	"testing"

	"pricecomp/internal"
)

func entryWith(kind internal.DifferenceKind, stockA, stockB string) internal.ComparisonEntry {
	return internal.ComparisonEntry{Kind: kind, StockA: stockA, StockB: stockB}
}

func TestCategoryStatsPartitionsEntries(t *testing.T) {
	entries := []internal.ComparisonEntry{
		entryWith(internal.KindPrice, internal.InStock, internal.InStock),
		entryWith(internal.KindPrice, internal.InStock, internal.InStock),
		entryWith(internal.KindStock, internal.InStock, internal.OutOfStock),
		entryWith(internal.KindStock, internal.OutOfStock, internal.InStock),
		entryWith(internal.KindBoth, internal.OutOfStock, internal.InStock),
		entryWith(internal.KindPrice, internal.OutOfStock, internal.OutOfStock),
	}

	stats := CategoryStats(entries)
	if stats.BothInStock != 2 || stats.AInBOut != 1 || stats.AOutBIn != 2 || stats.BothOut != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	total := stats.BothInStock + stats.AInBOut + stats.AOutBIn + stats.BothOut
	if total != len(entries) {
		t.Fatalf("counts sum to %d, want %d", total, len(entries))
	}
}

func TestGlobalStats(t *testing.T) {
	rs := internal.ResultSet{
		Categories: []string{"CPU", "GPU"},
		Entries: map[string][]internal.ComparisonEntry{
			"CPU": {
				entryWith(internal.KindPrice, internal.InStock, internal.InStock),
				entryWith(internal.KindBoth, internal.InStock, internal.OutOfStock),
			},
			"GPU": {
				entryWith(internal.KindStock, internal.OutOfStock, internal.InStock),
			},
		},
	}

	stats := GlobalStats(rs)
	if stats.TotalCategories != 2 {
		t.Fatalf("categories = %d", stats.TotalCategories)
	}
	if stats.TotalProducts != 3 {
		t.Fatalf("products = %d", stats.TotalProducts)
	}
	if stats.TotalPriceOnly != 1 || stats.TotalStockOnly != 1 || stats.TotalBoth != 1 {
		t.Fatalf("unexpected kind counts: %+v", stats)
	}
}

func TestGlobalStatsEmpty(t *testing.T) {
	stats := GlobalStats(internal.ResultSet{Entries: map[string][]internal.ComparisonEntry{}})
	if stats.TotalCategories != 0 || stats.TotalProducts != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
