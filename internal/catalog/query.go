package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultPageSize matches the storefront grid.
const DefaultPageSize = 8

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortNewest    SortKey = "newest"
)

// SortKeys lists every recognised sort key.
var SortKeys = []SortKey{SortFeatured, SortNewest, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc}

// ParseSortKey falls back to SortFeatured for unknown input.
func ParseSortKey(s string) SortKey {
	k := SortKey(s)
	if slices.Contains(SortKeys, k) {
		return k
	}
	return SortFeatured
}

// PriceRange bounds are inclusive; nil means unbounded on that side.
type PriceRange struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// Filters with an empty set accept every value of that facet.
type Filters struct {
	Categories []Category `json:"categories"`
	Patterns   []Pattern  `json:"patterns"`
	PriceRange PriceRange `json:"price_range"`
}

type QueryParams struct {
	Search   string
	Filters  Filters
	Sort     SortKey
	Page     int
	PageSize int
}

type Page struct {
	Items      []Product `json:"items"`
	TotalCount int       `json:"total_count"`
	TotalPages int       `json:"total_pages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

// Query filters, sorts and paginates the catalog. It has no side effects.
// A page past the last one yields no items; callers clamp if they need to.
func Query(c *Catalog, q QueryParams) Page {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	matched := Filter(c.products, q.Search, q.Filters)
	Sort(matched, q.Sort)

	total := len(matched)
	pages := total / q.PageSize
	if total%q.PageSize != 0 {
		pages++
	}

	// compare pages before multiplying so huge page numbers cannot overflow
	items := []Product{}
	if q.Page <= pages {
		start := (q.Page - 1) * q.PageSize
		items = matched[start : start+min(q.PageSize, total-start)]
	}
	if pages < 1 {
		pages = 1
	}

	return Page{Items: items, TotalCount: total, TotalPages: pages, Page: q.Page, PageSize: q.PageSize}
}

// Filter returns a new slice with the products passing search and filters,
// in input order.
func Filter(in []Product, search string, f Filters) []Product {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]Product, 0, len(in))
	for _, p := range in {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}
		if len(f.Patterns) > 0 && !slices.Contains(f.Patterns, p.Pattern) {
			continue
		}
		if f.PriceRange.Min != nil && p.Price < *f.PriceRange.Min {
			continue
		}
		if f.PriceRange.Max != nil && p.Price > *f.PriceRange.Max {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders products in place. The sort is stable so equal keys keep their
// incoming order.
func Sort(ps []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(ps, func(a, b Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(ps, func(a, b Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortNameAsc:
		slices.SortStableFunc(ps, func(a, b Product) int { return strings.Compare(a.Name, b.Name) })
	case SortNameDesc:
		slices.SortStableFunc(ps, func(a, b Product) int { return strings.Compare(b.Name, a.Name) })
	case SortNewest:
		slices.SortStableFunc(ps, func(a, b Product) int { return cmp.Compare(b.ID, a.ID) })
	default:
		slices.SortStableFunc(ps, func(a, b Product) int {
			if c := rank(a.Featured) - rank(b.Featured); c != 0 {
				return c
			}
			return rank(a.Bestseller) - rank(b.Bestseller)
		})
	}
}

func rank(flag bool) int {
	if flag {
		return 0
	}
	return 1
}

func matchesSearch(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(string(p.Category)), needle) ||
		strings.Contains(strings.ToLower(string(p.Pattern)), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}
