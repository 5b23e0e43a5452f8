package pipeline

import (
	"pricecomp/internal"
	"pricecomp/internal/util"
)

// Bucket holds one catalog's normalized records for one category,
// indexed by reference. Duplicate references keep their first slot in
// iteration order while the last-seen record wins.
type Bucket struct {
	refs  []string
	byRef map[string]internal.Record
}

func newBucket() *Bucket {
	return &Bucket{byRef: map[string]internal.Record{}}
}

func (b *Bucket) add(rec internal.Record) {
	if _, exists := b.byRef[rec.Reference]; !exists {
		b.refs = append(b.refs, rec.Reference)
	}
	b.byRef[rec.Reference] = rec
}

func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.refs)
}

// Partitioned is one catalog split into per-category buckets, category
// order preserved from the source rows.
type Partitioned struct {
	categories []string
	buckets    map[string]*Bucket
}

// Partition normalizes a catalog's rows and groups them by category.
// Rows with a blank category or no usable reference are dropped.
func Partition(rows []internal.CatalogRow) *Partitioned {
	p := &Partitioned{buckets: map[string]*Bucket{}}
	for _, row := range rows {
		if row.Category == "" {
			continue
		}
		rec := normalizeRow(row)
		if rec.Reference == internal.NoReference {
			continue
		}
		bucket, ok := p.buckets[row.Category]
		if !ok {
			bucket = newBucket()
			p.buckets[row.Category] = bucket
			p.categories = append(p.categories, row.Category)
		}
		bucket.add(rec)
	}
	return p
}

func (p *Partitioned) Categories() []string {
	return p.categories
}

// Bucket returns the category's bucket, or an empty one when the
// category never appeared in this catalog.
func (p *Partitioned) Bucket(category string) *Bucket {
	if b, ok := p.buckets[category]; ok {
		return b
	}
	return newBucket()
}

func normalizeRow(row internal.CatalogRow) internal.Record {
	name := row.ProductName
	if name == "" {
		name = row.NomProduit
	}
	if name == "" {
		name = "N/A"
	}
	url := row.URLProduit
	if url == "" {
		url = row.URL
	}
	return internal.Record{
		Category:     row.Category,
		Reference:    util.NormalizeReference(row.Reference),
		PriceNum:     util.ParsePrice(row.Price),
		Availability: row.Availability,
		DisplayName:  name,
		URL:          url,
	}
}
