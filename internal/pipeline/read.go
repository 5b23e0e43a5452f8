package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"pricecomp/internal"
)

// FileFormatError aborts a run before the pipeline starts: the file
// could not be read as a catalog at all.
type FileFormatError struct {
	Path string
	Err  error
}

func (e *FileFormatError) Error() string {
	return fmt.Sprintf("unreadable catalog file %s: %v", e.Path, e.Err)
}

func (e *FileFormatError) Unwrap() error { return e.Err }

// ReadCatalogFile parses one catalog export into ordered rows.
// Spreadsheets (.xlsx/.xlsm) read the first sheet with the first row
// as column headers; HTML exports read the first table with a
// recognized header row.
func ReadCatalogFile(path string) ([]internal.CatalogRow, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return readXLSXCatalog(path)
	case ".html", ".htm":
		return readHTMLCatalog(path)
	default:
		return nil, &FileFormatError{Path: path, Err: fmt.Errorf("unsupported extension %q", ext)}
	}
}

func readXLSXCatalog(path string) ([]internal.CatalogRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FileFormatError{Path: path, Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &FileFormatError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &FileFormatError{Path: path, Err: fmt.Errorf("sheet %q has no header row", sheet)}
	}

	header := headerRoles(rows[0])
	if !header.recognizes("reference") {
		return nil, &FileFormatError{Path: path, Err: fmt.Errorf("sheet %q has no reference column", sheet)}
	}

	out := make([]internal.CatalogRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if row, ok := cellsToRow(header, cells); ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func readHTMLCatalog(path string) ([]internal.CatalogRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileFormatError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, &FileFormatError{Path: path, Err: err}
	}

	var out []internal.CatalogRow
	found := false
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return true
		}
		headerCells := []string{}
		rows.First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			headerCells = append(headerCells, cell.Text())
		})
		header := headerRoles(headerCells)
		if !header.recognizes("reference") {
			return true
		}
		rows.Slice(1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
			cells := []string{}
			tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, cell.Text())
			})
			if row, ok := cellsToRow(header, cells); ok {
				out = append(out, row)
			}
		})
		found = true
		return false
	})
	if !found {
		return nil, &FileFormatError{Path: path, Err: errors.New("no catalog table found")}
	}
	return out, nil
}

type headerMap map[int]string

func headerRoles(cells []string) headerMap {
	m := headerMap{}
	for i, c := range cells {
		key := strings.ToLower(strings.TrimSpace(c))
		if key != "" {
			m[i] = key
		}
	}
	return m
}

func (h headerMap) recognizes(name string) bool {
	for _, v := range h {
		if v == name {
			return true
		}
	}
	return false
}

func cellsToRow(header headerMap, cells []string) (internal.CatalogRow, bool) {
	row := internal.CatalogRow{}
	empty := true
	for i, cell := range cells {
		key, ok := header[i]
		if !ok {
			continue
		}
		value := strings.TrimSpace(cell)
		if value == "" {
			continue
		}
		empty = false
		switch key {
		case "categorie":
			row.Category = value
		case "reference":
			row.Reference = value
		case "price":
			row.Price = value
		case "availability":
			row.Availability = value
		case "product_name":
			row.ProductName = value
		case "nom_produit":
			row.NomProduit = value
		case "url_produit":
			row.URLProduit = value
		case "url":
			row.URL = value
		default:
			if row.Extra == nil {
				row.Extra = map[string]string{}
			}
			row.Extra[key] = value
		}
	}
	return row, !empty
}
