package internal

type DifferenceKind string

const (
	KindPrice DifferenceKind = "price"
	KindStock DifferenceKind = "stock"
	KindBoth  DifferenceKind = "both"
)

const (
	InStock    = "instock"
	OutOfStock = "outofstock"
)

// NoReference is the sentinel a blank or absent reference normalizes
// to; records carrying it never participate in matching.
const NoReference = "nan"

type CatalogRow struct {
	Category     string
	Reference    string
	Price        string
	Availability string
	ProductName  string
	NomProduit   string
	URLProduit   string
	URL          string
	Extra        map[string]string
}

type Catalog struct {
	Name string
	Rows []CatalogRow
}

// Record is a CatalogRow after normalization: canonical reference,
// parsed price, name and URL fallbacks already resolved.
type Record struct {
	Category     string
	Reference    string
	PriceNum     *float64
	Availability string
	DisplayName  string
	URL          string
}

type ComparisonEntry struct {
	ProductName string
	Reference   string
	PriceA      *float64
	PriceB      *float64
	Difference  *float64
	DiffPercent float64
	StockA      string
	StockB      string
	Case        string
	Kind        DifferenceKind
	URLA        string
	URLB        string
	CatalogA    string
	CatalogB    string
}

// ResultSet groups entries by category; Categories preserves discovery
// order. A category is present only if it produced entries.
type ResultSet struct {
	Categories []string
	Entries    map[string][]ComparisonEntry
}

func (r ResultSet) Empty() bool {
	return len(r.Categories) == 0
}

type SummaryStats struct {
	BothInStock int
	AInBOut     int
	AOutBIn     int
	BothOut     int
}

type GlobalStats struct {
	TotalProducts   int
	TotalCategories int
	TotalBoth       int
	TotalPriceOnly  int
	TotalStockOnly  int
}

type RunRow struct {
	ID         int
	TraceID    string
	CatalogA   string
	CatalogB   string
	Categories int
	Products   int
	BothCount  int
	PriceCount int
	StockCount int
	ExportPath string
	CreatedAt  string
}
