package pipeline

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"pricecomp/internal"
	"pricecomp/internal/util"
)

func testResultSet() internal.ResultSet {
	diff := 100.0
	return internal.ResultSet{
		Categories: []string{"CPU", "Cartes graphiques haut de gamme série 40"},
		Entries: map[string][]internal.ComparisonEntry{
			"CPU": {
				{
					ProductName: "Ryzen 5",
					Reference:   "100",
					PriceA:      util.FloatPtr(1000),
					PriceB:      util.FloatPtr(900),
					Difference:  &diff,
					DiffPercent: 100.0 / 9.0,
					StockA:      internal.InStock,
					StockB:      internal.InStock,
					Case:        "Différence de prix uniquement",
					Kind:        internal.KindPrice,
					URLA:        "https://a.example/p/100",
					URLB:        "https://b.example/p/100",
					CatalogA:    "ZoneTech",
					CatalogB:    "UltraPC",
				},
			},
			"Cartes graphiques haut de gamme série 40": {
				{
					ProductName: "RTX 4070",
					Reference:   "200",
					PriceB:      util.FloatPtr(6999),
					StockA:      internal.OutOfStock,
					StockB:      internal.InStock,
					Case:        "Out of stock at ZoneTech / In stock at UltraPC",
					Kind:        internal.KindBoth,
					CatalogA:    "ZoneTech",
					CatalogB:    "UltraPC",
				},
			},
		},
	}
}

func TestExportResultSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := ExportResultSet(testResultSet(), "ZoneTech", "UltraPC", path); err != nil {
		t.Fatalf("ExportResultSet: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("got %d sheets, want 2: %v", len(sheets), sheets)
	}
	if sheets[0] != "CPU" {
		t.Fatalf("first sheet = %q", sheets[0])
	}
	if len([]rune(sheets[1])) != 31 {
		t.Fatalf("long category not truncated to 31 chars: %q", sheets[1])
	}

	cell := func(ref string) string {
		v, err := f.GetCellValue("CPU", ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return v
	}

	if cell("A1") != "Product Name" || cell("C1") != "ZoneTech Price" || cell("D1") != "UltraPC Price" {
		t.Fatalf("unexpected headers: %q %q %q", cell("A1"), cell("C1"), cell("D1"))
	}
	if cell("J1") != "Type" || cell("K1") != "ZoneTech URL" {
		t.Fatalf("unexpected headers: %q %q", cell("J1"), cell("K1"))
	}

	if cell("C2") != "1 000,00 MAD" || cell("D2") != "900,00 MAD" {
		t.Fatalf("price cells = %q / %q", cell("C2"), cell("D2"))
	}
	if cell("E2") != "100,00 MAD" {
		t.Fatalf("difference cell = %q", cell("E2"))
	}
	if cell("F2") != "11.11%" {
		t.Fatalf("percent cell = %q", cell("F2"))
	}
	if cell("G2") != "In Stock" || cell("J2") != "Prix seulement" {
		t.Fatalf("stock/type cells = %q / %q", cell("G2"), cell("J2"))
	}

	longSheet := sheets[1]
	v, _ := f.GetCellValue(longSheet, "C2")
	if v != "" {
		t.Fatalf("missing price should render empty, got %q", v)
	}
	v, _ = f.GetCellValue(longSheet, "E2")
	if v != "" {
		t.Fatalf("difference without both prices should be empty, got %q", v)
	}
	v, _ = f.GetCellValue(longSheet, "G2")
	if v != "Out of Stock" {
		t.Fatalf("stock cell = %q", v)
	}
	v, _ = f.GetCellValue(longSheet, "J2")
	if v != "Prix + Stock" {
		t.Fatalf("type cell = %q", v)
	}
}

func TestExportResultSetEmpty(t *testing.T) {
	err := ExportResultSet(internal.ResultSet{}, "A", "B", filepath.Join(t.TempDir(), "out.xlsx"))
	if err == nil {
		t.Fatalf("expected an error for an empty result set")
	}
}

func TestDefaultExportName(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 535000000, time.UTC)
	got := DefaultExportName("ZoneTech", "NextLevelPC", now)
	want := "COMPARAISON_ZoneTech_vs_NextLevelPC_2025-03-14T15-09-26.xlsx"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
