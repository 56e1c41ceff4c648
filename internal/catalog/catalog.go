package catalog

import (
	"errors"
	"slices"
	"strconv"
)

var ErrNotFound = errors.New("product not found")

// DefaultRelatedLimit is how many related products Related returns when limit <= 0.
const DefaultRelatedLimit = 4

// Catalog is a read-only product list. Order is the display order used as the
// tie-breaker by every sort.
type Catalog struct {
	products []Product
	byID     map[int]int
	bySlug   map[string]int
}

// New copies products into a Catalog.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for i, p := range products {
		p.Images = slices.Clone(p.Images)
		p.Sizes = slices.Clone(p.Sizes)
		p.Colors = slices.Clone(p.Colors)
		c.products[i] = p
		c.byID[p.ID] = i
		if p.Slug != "" {
			c.bySlug[p.Slug] = i
		}
	}
	return c
}

var defaultCatalog = New(products)

// Default returns the built-in batik catalog.
func Default() *Catalog { return defaultCatalog }

func (c *Catalog) Len() int { return len(c.products) }

// All returns the products in catalog order. The slice is a copy; the
// products' inner slices are shared and must be treated as read-only.
func (c *Catalog) All() []Product { return slices.Clone(c.products) }

func (c *Catalog) ByID(id int) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return c.products[i], nil
}

func (c *Catalog) BySlug(slug string) (Product, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Product{}, ErrNotFound
	}
	return c.products[i], nil
}

// Lookup resolves a numeric id or a slug.
func (c *Catalog) Lookup(ref string) (Product, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		return c.ByID(id)
	}
	return c.BySlug(ref)
}

func (c *Catalog) ByCategory(category Category) []Product {
	return c.filter(func(p Product) bool { return p.Category == category })
}

func (c *Catalog) Featured() []Product {
	return c.filter(func(p Product) bool { return p.Featured })
}

func (c *Catalog) Bestsellers() []Product {
	return c.filter(func(p Product) bool { return p.Bestseller })
}

// Related returns up to limit products sharing the pattern or the category of
// the given product, excluding the product itself.
func (c *Catalog) Related(id, limit int) []Product {
	p, err := c.ByID(id)
	if err != nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	out := make([]Product, 0, limit)
	for _, q := range c.products {
		if len(out) == limit {
			break
		}
		if q.ID != id && (q.Pattern == p.Pattern || q.Category == p.Category) {
			out = append(out, q)
		}
	}
	return out
}

// Categories lists the distinct categories in first-seen order.
func (c *Catalog) Categories() []Category {
	var out []Category
	for _, p := range c.products {
		if !slices.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	return out
}

// Patterns lists the distinct patterns in first-seen order.
func (c *Catalog) Patterns() []Pattern {
	var out []Pattern
	for _, p := range c.products {
		if !slices.Contains(out, p.Pattern) {
			out = append(out, p.Pattern)
		}
	}
	return out
}

func (c *Catalog) filter(keep func(Product) bool) []Product {
	out := make([]Product, 0)
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
