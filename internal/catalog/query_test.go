package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func intp(v int) *int { return &v }

func TestQuery_TulisFilterAndPriceDesc(t *testing.T) {
	c := Default()
	require.Equal(t, 14, c.Len())

	page := Query(c, QueryParams{
		Filters:  Filters{Categories: []Category{CategoryTulis}},
		Sort:     SortPriceDesc,
		PageSize: 8,
	})
	assert.Equal(t, 4, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []int{3, 1, 2, 4}, ids(page.Items))
	assert.Equal(t, []int{1950000, 1850000, 1650000, 1550000},
		[]int{page.Items[0].Price, page.Items[1].Price, page.Items[2].Price, page.Items[3].Price})
}

func TestQuery_FeaturedOrder(t *testing.T) {
	page := Query(Default(), QueryParams{Sort: SortFeatured, PageSize: 20})
	assert.Equal(t, []int{1, 14, 3, 7, 11, 2, 5, 8, 9, 12, 4, 6, 10, 13}, ids(page.Items))
}

func TestQuery_FeaturedSortIsStable(t *testing.T) {
	// Within a tier the incoming order must survive, whatever it was.
	in := Default().All()
	Sort(in, SortNewest)
	Sort(in, SortFeatured)
	assert.Equal(t, []int{14, 1, 11, 7, 3, 12, 9, 8, 5, 2, 13, 10, 6, 4}, ids(in))
}

func TestQuery_OtherSorts(t *testing.T) {
	c := Default()
	tulis := Filters{Categories: []Category{CategoryTulis}}

	assert.Equal(t, []int{2, 3, 1, 4}, ids(Query(c, QueryParams{Filters: tulis, Sort: SortNameAsc}).Items))
	assert.Equal(t, []int{4, 1, 3, 2}, ids(Query(c, QueryParams{Filters: tulis, Sort: SortNameDesc}).Items))
	assert.Equal(t, []int{4, 2, 1, 3}, ids(Query(c, QueryParams{Filters: tulis, Sort: SortPriceAsc}).Items))
	assert.Equal(t, []int{14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		ids(Query(c, QueryParams{Sort: SortNewest, PageSize: 14}).Items))
}

func TestQuery_Search(t *testing.T) {
	c := Default()
	page := Query(c, QueryParams{Search: "  KAWUNG ", Sort: SortPriceDesc})
	assert.ElementsMatch(t, []int{2, 6, 10}, ids(page.Items))

	page = Query(c, QueryParams{Search: "cirebon"})
	assert.Equal(t, []int{3}, ids(page.Items))

	page = Query(c, QueryParams{Search: "   ", PageSize: 20})
	assert.Equal(t, 14, page.TotalCount, "blank search does not filter")
}

func TestQuery_FacetsAndPrice(t *testing.T) {
	c := Default()

	page := Query(c, QueryParams{
		Filters: Filters{
			Categories: []Category{CategoryCap},
			Patterns:   []Pattern{PatternKawung},
		},
	})
	assert.Equal(t, []int{6}, ids(page.Items))

	page = Query(c, QueryParams{
		Filters: Filters{PriceRange: PriceRange{Min: intp(500000), Max: intp(900000)}},
		Sort:    SortNewest,
	})
	assert.Equal(t, []int{14, 11, 6, 5}, ids(page.Items))

	page = Query(c, QueryParams{
		Filters: Filters{PriceRange: PriceRange{Min: intp(1950000)}},
	})
	assert.Equal(t, []int{3}, ids(page.Items), "bounds are inclusive")

	page = Query(c, QueryParams{
		Filters: Filters{PriceRange: PriceRange{Max: intp(425000)}},
	})
	assert.Equal(t, []int{10}, ids(page.Items))
}

func TestQuery_Pagination(t *testing.T) {
	c := Default()

	p1 := Query(c, QueryParams{Sort: SortNewest, Page: 1, PageSize: 8})
	p2 := Query(c, QueryParams{Sort: SortNewest, Page: 2, PageSize: 8})
	p3 := Query(c, QueryParams{Sort: SortNewest, Page: 3, PageSize: 8})

	assert.Equal(t, 14, p1.TotalCount)
	assert.Equal(t, 2, p1.TotalPages)
	assert.Len(t, p1.Items, 8)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, ids(p2.Items))
	assert.Empty(t, p3.Items, "out of range pages are not clamped")
	assert.NotNil(t, p3.Items)
	assert.Equal(t, 2, p3.TotalPages)

	none := Query(c, QueryParams{Search: "no-such-motif"})
	assert.Equal(t, 0, none.TotalCount)
	assert.Equal(t, 1, none.TotalPages)

	def := Query(c, QueryParams{Page: 0, PageSize: 0})
	assert.Equal(t, 1, def.Page)
	assert.Equal(t, DefaultPageSize, def.PageSize)
	assert.Len(t, def.Items, DefaultPageSize)
}

func TestQuery_HugePageNumbers(t *testing.T) {
	c := Default()

	cases := []struct {
		name     string
		page     int
		pageSize int
		pages    int
	}{
		{"page overflows offset", 1<<61 + 2, 4, 4},
		{"max page", math.MaxInt, 8, 2},
		{"max page size", 1, math.MaxInt, 1},
		{"both max", math.MaxInt, math.MaxInt, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var res Page
			require.NotPanics(t, func() {
				res = Query(c, QueryParams{Page: tc.page, PageSize: tc.pageSize})
			})
			assert.Equal(t, 14, res.TotalCount)
			assert.Equal(t, tc.pages, res.TotalPages)
			if tc.page > 1 {
				assert.Empty(t, res.Items)
				assert.NotNil(t, res.Items)
			} else {
				assert.Len(t, res.Items, 14)
			}
		})
	}
}

func TestQuery_IsPure(t *testing.T) {
	c := Default()
	before := ids(c.All())
	params := QueryParams{
		Search:   "batik",
		Filters:  Filters{Patterns: []Pattern{PatternParang, PatternKawung}},
		Sort:     SortPriceAsc,
		Page:     1,
		PageSize: 4,
	}

	a := Query(c, params)
	b := Query(c, params)
	assert.Equal(t, a, b)
	assert.Equal(t, before, ids(c.All()), "catalog order untouched")
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceDesc, ParseSortKey("price-desc"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("cheapest"))
}
