package pipeline

import (
	"fmt"

	"pricecomp/internal"
)

const priceOnlyCase = "Différence de prix uniquement"

// Classify compares one matched pair and reports whether it belongs in
// the result. Identical pairs return ok=false. nameA/nameB are the
// catalog display names used in the case narrative.
func Classify(a, b internal.Record, nameA, nameB string) (internal.ComparisonEntry, bool) {
	stockMismatch := a.Availability != b.Availability
	priceMismatch := !pricesEqual(a.PriceNum, b.PriceNum)
	if !stockMismatch && !priceMismatch {
		return internal.ComparisonEntry{}, false
	}

	var kind internal.DifferenceKind
	var narrative string
	switch {
	case stockMismatch && priceMismatch:
		kind = internal.KindBoth
		narrative = stockCase(a, b, nameA, nameB)
	case priceMismatch:
		kind = internal.KindPrice
		narrative = priceOnlyCase
	default:
		kind = internal.KindStock
		narrative = stockCase(a, b, nameA, nameB)
	}

	var diff *float64
	diffPercent := 0.0
	if a.PriceNum != nil && b.PriceNum != nil {
		d := *a.PriceNum - *b.PriceNum
		diff = &d
		if *b.PriceNum != 0 {
			diffPercent = d / *b.PriceNum * 100
		}
	}

	return internal.ComparisonEntry{
		ProductName: a.DisplayName,
		Reference:   a.Reference,
		PriceA:      a.PriceNum,
		PriceB:      b.PriceNum,
		Difference:  diff,
		DiffPercent: diffPercent,
		StockA:      a.Availability,
		StockB:      b.Availability,
		Case:        narrative,
		Kind:        kind,
		URLA:        a.URL,
		URLB:        b.URL,
		CatalogA:    nameA,
		CatalogB:    nameB,
	}, true
}

func pricesEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func stockCase(a, b internal.Record, nameA, nameB string) string {
	if a.Availability == internal.OutOfStock && b.Availability == internal.InStock {
		return fmt.Sprintf("Out of stock at %s / In stock at %s", nameA, nameB)
	}
	return fmt.Sprintf("In stock at %s / Out of stock at %s", nameA, nameB)
}
