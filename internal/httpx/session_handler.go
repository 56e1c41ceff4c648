package httpx

import (
	"fmt"
	"net/http"

	"github.com/ariefcatur/janoer-storefront/internal/checkout"
	"github.com/ariefcatur/janoer-storefront/internal/storefront"
	"github.com/go-chi/chi/v5"
)

type cartView struct {
	Items      []storefront.CartLine `json:"items"`
	TotalItems int                   `json:"total_items"`
	TotalPrice int                   `json:"total_price"`
	Summary    checkout.Totals       `json:"summary"`
}

func viewCart(c *storefront.Cart) cartView {
	total := c.TotalPrice()
	return cartView{
		Items:      c.Lines(),
		TotalItems: c.TotalItems(),
		TotalPrice: total,
		Summary:    checkout.CalculateTotals(total),
	}
}

type addCartItemReq struct {
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateCartItemReq struct {
	Quantity *int `json:"quantity"`
}

// maxRequestQuantity bounds a single add or update request.
const maxRequestQuantity = 999

func checkQuantity(q int) error {
	if q > maxRequestQuantity {
		return fmt.Errorf("%w: quantity must be at most %d", errBadRequest, maxRequestQuantity)
	}
	return nil
}

func (h *StoreHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewCart(sessionFrom(r.Context()).Cart))
}

func (h *StoreHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemReq
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := checkQuantity(req.Quantity); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.Catalog.ByID(req.ProductID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cart := sessionFrom(r.Context()).Cart
	cart.Add(r.Context(), p, req.Quantity, req.Size, req.Color)
	h.Metrics.CartAdded(max(req.Quantity, 1))
	writeJSON(w, http.StatusCreated, viewCart(cart))
}

func (h *StoreHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemReq
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Quantity == nil {
		writeError(w, r, fmt.Errorf("%w: quantity is required", errBadRequest))
		return
	}
	if err := checkQuantity(*req.Quantity); err != nil {
		writeError(w, r, err)
		return
	}

	cart := sessionFrom(r.Context()).Cart
	lineID := chi.URLParam(r, "lineID")
	if !cart.UpdateQuantity(r.Context(), lineID, *req.Quantity) {
		writeError(w, r, fmt.Errorf("%w: cart line %s", errNotFound, lineID))
		return
	}
	writeJSON(w, http.StatusOK, viewCart(cart))
}

func (h *StoreHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart := sessionFrom(r.Context()).Cart
	lineID := chi.URLParam(r, "lineID")
	if !cart.Remove(r.Context(), lineID) {
		writeError(w, r, fmt.Errorf("%w: cart line %s", errNotFound, lineID))
		return
	}
	writeJSON(w, http.StatusOK, viewCart(cart))
}

func (h *StoreHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r.Context()).Cart.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

type wishlistView struct {
	Items []storefront.WishlistEntry `json:"items"`
	Count int                        `json:"count"`
}

func (h *StoreHandler) getWishlist(w http.ResponseWriter, r *http.Request) {
	wl := sessionFrom(r.Context()).Wishlist
	writeJSON(w, http.StatusOK, wishlistView{Items: wl.Items(), Count: wl.Count()})
}

func (h *StoreHandler) wishlistProduct(r *http.Request) (int, error) {
	id, err := pathInt(chi.URLParam(r, "productID"), "product id")
	if err != nil {
		return 0, err
	}
	if _, err := h.Catalog.ByID(id); err != nil {
		return 0, err
	}
	return id, nil
}

func (h *StoreHandler) addWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := h.wishlistProduct(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, _ := h.Catalog.ByID(id)
	added := sessionFrom(r.Context()).Wishlist.Add(r.Context(), p)
	writeJSON(w, http.StatusOK, map[string]bool{"added": added, "in_wishlist": true})
}

func (h *StoreHandler) removeWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(chi.URLParam(r, "productID"), "product id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !sessionFrom(r.Context()).Wishlist.Remove(r.Context(), id) {
		writeError(w, r, fmt.Errorf("%w: product %d is not in the wishlist", errNotFound, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StoreHandler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := h.wishlistProduct(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, _ := h.Catalog.ByID(id)
	in := sessionFrom(r.Context()).Wishlist.Toggle(r.Context(), p)
	writeJSON(w, http.StatusOK, map[string]bool{"in_wishlist": in})
}

func (h *StoreHandler) clearWishlist(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r.Context()).Wishlist.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *StoreHandler) getRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r.URL.Query(), "limit", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionFrom(r.Context()).RecentlyViewed.List(limit))
}

func (h *StoreHandler) clearRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r.Context()).RecentlyViewed.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

type languageBody struct {
	Language storefront.Language `json:"language"`
}

func (h *StoreHandler) getLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languageBody{Language: sessionFrom(r.Context()).Language.Get()})
}

func (h *StoreHandler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageBody
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	pref := sessionFrom(r.Context()).Language
	if !pref.Set(r.Context(), req.Language) {
		writeError(w, r, fmt.Errorf("%w: unsupported language %q", errBadRequest, req.Language))
		return
	}
	writeJSON(w, http.StatusOK, languageBody{Language: pref.Get()})
}

func (h *StoreHandler) toggleLanguage(w http.ResponseWriter, r *http.Request) {
	lang := sessionFrom(r.Context()).Language.Toggle(r.Context())
	writeJSON(w, http.StatusOK, languageBody{Language: lang})
}
