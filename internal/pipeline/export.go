package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"pricecomp/internal"
	"pricecomp/internal/util"
)

// ExportResultSet writes one sheet per category, columns laid out for
// the downstream consumers of the comparison workbook.
func ExportResultSet(rs internal.ResultSet, nameA, nameB, outputPath string) error {
	if rs.Empty() {
		return errors.New("nothing to export: result set is empty")
	}

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	headers := []string{
		"Product Name", "Reference",
		fmt.Sprintf("%s Price", nameA), fmt.Sprintf("%s Price", nameB),
		"Difference", "Diff %",
		fmt.Sprintf("%s Stock", nameA), fmt.Sprintf("%s Stock", nameB),
		"Case", "Type",
		fmt.Sprintf("%s URL", nameA), fmt.Sprintf("%s URL", nameB),
	}

	for i, category := range rs.Categories {
		sheet := sheetName(category)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			_ = f.SetCellValue(sheet, cell, h)
		}

		for j, entry := range rs.Entries[category] {
			r := j + 2
			set := func(col int, value any) {
				cell, _ := excelize.CoordinatesToCellName(col, r)
				_ = f.SetCellValue(sheet, cell, value)
			}

			set(1, entry.ProductName)
			set(2, entry.Reference)
			set(3, util.FormatPrice(entry.PriceA))
			set(4, util.FormatPrice(entry.PriceB))
			set(5, util.FormatPrice(entry.Difference))
			set(6, formatPercent(entry.DiffPercent))
			set(7, stockLabel(entry.StockA))
			set(8, stockLabel(entry.StockB))
			set(9, entry.Case)
			set(10, typeLabel(entry.Kind))
			set(11, entry.URLA)
			set(12, entry.URLB)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

// DefaultExportName embeds both catalog display names and a UTC
// timestamp: COMPARAISON_ZoneTech_vs_UltraPC_2025-01-02T15-04-05.xlsx.
func DefaultExportName(nameA, nameB string, now time.Time) string {
	timestamp := now.UTC().Format("2006-01-02T15-04-05")
	return fmt.Sprintf("COMPARAISON_%s_vs_%s_%s.xlsx", nameA, nameB, timestamp)
}

// Sheet names are capped at 31 characters, a workbook format limit.
func sheetName(category string) string {
	runes := []rune(category)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

func stockLabel(availability string) string {
	if availability == internal.InStock {
		return "In Stock"
	}
	return "Out of Stock"
}

func typeLabel(kind internal.DifferenceKind) string {
	switch kind {
	case internal.KindBoth:
		return "Prix + Stock"
	case internal.KindPrice:
		return "Prix seulement"
	default:
		return "Stock seulement"
	}
}
