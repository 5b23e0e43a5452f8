package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pricecomp/internal"
	"pricecomp/internal/config"
	"pricecomp/internal/pipeline"
	"pricecomp/internal/storage"
	"pricecomp/internal/util"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "compare":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		pathA := fs.String("a", "", "catalog A file (xlsx or html)")
		pathB := fs.String("b", "", "catalog B file (xlsx or html)")
		nameA := fs.String("name-a", cfg.CatalogAName, "catalog A display name")
		nameB := fs.String("name-b", cfg.CatalogBName, "catalog B display name")
		out := fs.String("out", "", "output xlsx path")
		category := fs.String("category", "", "print entries for this category")
		filterKind := fs.String("filter", "all", "all|price|stock|both")
		noExport := fs.Bool("no-export", false, "skip workbook export")
		_ = fs.Parse(os.Args[2:])

		if strings.TrimSpace(*pathA) == "" || strings.TrimSpace(*pathB) == "" {
			must(fmt.Errorf("--a and --b: %w", pipeline.ErrMissingInput))
		}

		rowsA, err := pipeline.ReadCatalogFile(*pathA)
		must(err)
		rowsB, err := pipeline.ReadCatalogFile(*pathB)
		must(err)

		result := pipeline.Compare(
			internal.Catalog{Name: *nameA, Rows: rowsA},
			internal.Catalog{Name: *nameB, Rows: rowsB},
		)
		stats := pipeline.GlobalStats(result)

		exportPath := ""
		if result.Empty() {
			fmt.Println("Aucune différence trouvée entre les deux catalogues")
		} else {
			fmt.Printf("compared %s vs %s: categories=%d products=%d both=%d price=%d stock=%d\n",
				*nameA, *nameB, stats.TotalCategories, stats.TotalProducts,
				stats.TotalBoth, stats.TotalPriceOnly, stats.TotalStockOnly)
			for _, cat := range result.Categories {
				cs := pipeline.CategoryStats(result.Entries[cat])
				fmt.Printf("  %s: entries=%d in/in=%d in/out=%d out/in=%d out/out=%d\n",
					cat, len(result.Entries[cat]), cs.BothInStock, cs.AInBOut, cs.AOutBIn, cs.BothOut)
			}

			if strings.TrimSpace(*category) != "" {
				printEntries(result, *category, *filterKind)
			}

			if !*noExport {
				exportPath = *out
				if exportPath == "" {
					exportPath = filepath.Join(cfg.OutputDir, pipeline.DefaultExportName(*nameA, *nameB, time.Now()))
				}
				must(pipeline.ExportResultSet(result, *nameA, *nameB, exportPath))
				fmt.Printf("exported %d entries to %s\n", stats.TotalProducts, exportPath)
			}
		}

		_, err = db.InsertRun(internal.RunRow{
			TraceID:    traceID(),
			CatalogA:   *nameA,
			CatalogB:   *nameB,
			Categories: stats.TotalCategories,
			Products:   stats.TotalProducts,
			BothCount:  stats.TotalBoth,
			PriceCount: stats.TotalPriceOnly,
			StockCount: stats.TotalStockOnly,
			ExportPath: exportPath,
		})
		must(err)
	case "history":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max runs to list")
		_ = fs.Parse(os.Args[2:])
		runs, err := db.ListRuns(*limit)
		must(err)
		if len(runs) == 0 {
			fmt.Println("no runs recorded")
			return
		}
		for _, run := range runs {
			export := run.ExportPath
			if export == "" {
				export = "-"
			}
			fmt.Printf("#%d %s %s vs %s categories=%d products=%d both=%d price=%d stock=%d export=%s\n",
				run.ID, run.CreatedAt, run.CatalogA, run.CatalogB,
				run.Categories, run.Products, run.BothCount, run.PriceCount, run.StockCount, export)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func printEntries(result internal.ResultSet, category, filterKind string) {
	entries, ok := result.Entries[category]
	if !ok {
		fmt.Printf("no entries for category %q\n", category)
		return
	}
	filtered := pipeline.FilterEntries(entries, filterKind)
	fmt.Printf("%s (%d of %d shown, filter=%s)\n", category, len(filtered), len(entries), filterKind)
	for _, e := range filtered {
		fmt.Printf("  %s [%s] %s=%s %s=%s diff=%s (%.2f%%) %s\n",
			e.ProductName, e.Reference,
			e.CatalogA, util.FormatPrice(e.PriceA),
			e.CatalogB, util.FormatPrice(e.PriceB),
			util.FormatPrice(e.Difference), e.DiffPercent, e.Case)
	}
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

func usage() {
	fmt.Println(`usage: pricecomp <command> [flags]

commands:
  compare --a <file> --b <file> [--name-a S] [--name-b S] [--out path]
          [--category C] [--filter all|price|stock|both] [--no-export]
  history [--limit N]`)
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
