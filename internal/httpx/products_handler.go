package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/ariefcatur/janoer-storefront/internal/catalog"
	"github.com/ariefcatur/janoer-storefront/internal/checkout"
	"github.com/ariefcatur/janoer-storefront/internal/metrics"
	"github.com/ariefcatur/janoer-storefront/internal/storefront"
	"github.com/go-chi/chi/v5"
)

// StatusEvents is satisfied by *orders.Emitter.
type StatusEvents interface {
	OrderStatusChanged(ctx context.Context, sessionID string, o storefront.Order, from storefront.OrderStatus) error
}

type StoreHandler struct {
	Catalog  *catalog.Catalog
	Sessions *Sessions
	Checkout *checkout.Service
	Events   StatusEvents
	Metrics  *metrics.Metrics
	PageSize int
}

func (h *StoreHandler) Register(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{ref}/related", h.relatedProducts)

	r.Group(func(r chi.Router) {
		r.Use(h.Sessions.Middleware)

		r.Get("/products/{ref}", h.getProduct)

		r.Get("/cart", h.getCart)
		r.Post("/cart/items", h.addCartItem)
		r.Patch("/cart/items/{lineID}", h.updateCartItem)
		r.Delete("/cart/items/{lineID}", h.removeCartItem)
		r.Delete("/cart", h.clearCart)

		r.Get("/wishlist", h.getWishlist)
		r.Put("/wishlist/{productID}", h.addWishlist)
		r.Delete("/wishlist/{productID}", h.removeWishlist)
		r.Post("/wishlist/{productID}/toggle", h.toggleWishlist)
		r.Delete("/wishlist", h.clearWishlist)

		r.Post("/checkout", h.checkout)
		r.Get("/orders", h.listOrders)
		r.Get("/orders/{id}", h.getOrder)
		r.Patch("/orders/{id}/status", h.updateOrderStatus)

		r.Get("/recently-viewed", h.getRecentlyViewed)
		r.Delete("/recently-viewed", h.clearRecentlyViewed)

		r.Get("/language", h.getLanguage)
		r.Put("/language", h.setLanguage)
		r.Post("/language/toggle", h.toggleLanguage)
	})
}

func (h *StoreHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Query(h.Catalog, q))
}

func (h *StoreHandler) parseQuery(r *http.Request) (catalog.QueryParams, error) {
	v := r.URL.Query()
	q := catalog.QueryParams{
		Search: v.Get("q"),
		Sort:   catalog.ParseSortKey(v.Get("sort")),
	}
	for _, c := range multi(v["category"]) {
		q.Filters.Categories = append(q.Filters.Categories, catalog.Category(c))
	}
	for _, p := range multi(v["pattern"]) {
		q.Filters.Patterns = append(q.Filters.Patterns, catalog.Pattern(p))
	}

	var err error
	if q.Filters.PriceRange.Min, err = queryIntPtr(v, "min_price"); err != nil {
		return q, err
	}
	if q.Filters.PriceRange.Max, err = queryIntPtr(v, "max_price"); err != nil {
		return q, err
	}
	if q.Page, err = queryInt(v, "page", 1); err != nil {
		return q, err
	}
	if q.PageSize, err = queryInt(v, "page_size", h.PageSize); err != nil {
		return q, err
	}
	return q, nil
}

// multi accepts both repeated and comma separated values.
func multi(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// getProduct also records the view for the session.
func (h *StoreHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.Lookup(chi.URLParam(r, "ref"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	sessionFrom(r.Context()).RecentlyViewed.Add(r.Context(), p)
	writeJSON(w, http.StatusOK, p)
}

func (h *StoreHandler) relatedProducts(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.Lookup(chi.URLParam(r, "ref"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryInt(r.URL.Query(), "limit", catalog.DefaultRelatedLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Catalog.Related(p.ID, limit))
}
