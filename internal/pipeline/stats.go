package pipeline

import "pricecomp/internal"

// CategoryStats cross-tabulates a category's entries by the two
// availability values. The four counts partition the list whenever
// both sides are restricted to instock/outofstock.
func CategoryStats(entries []internal.ComparisonEntry) internal.SummaryStats {
	count := func(stockA, stockB string) int {
		n := 0
		for _, e := range entries {
			if e.StockA == stockA && e.StockB == stockB {
				n++
			}
		}
		return n
	}
	return internal.SummaryStats{
		BothInStock: count(internal.InStock, internal.InStock),
		AInBOut:     count(internal.InStock, internal.OutOfStock),
		AOutBIn:     count(internal.OutOfStock, internal.InStock),
		BothOut:     count(internal.OutOfStock, internal.OutOfStock),
	}
}

// GlobalStats sums entry and per-kind counts across the whole result.
func GlobalStats(rs internal.ResultSet) internal.GlobalStats {
	stats := internal.GlobalStats{TotalCategories: len(rs.Categories)}
	for _, category := range rs.Categories {
		for _, e := range rs.Entries[category] {
			stats.TotalProducts++
			switch e.Kind {
			case internal.KindBoth:
				stats.TotalBoth++
			case internal.KindPrice:
				stats.TotalPriceOnly++
			case internal.KindStock:
				stats.TotalStockOnly++
			}
		}
	}
	return stats
}
