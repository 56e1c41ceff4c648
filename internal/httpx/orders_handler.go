package httpx

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/checkout"
	"github.com/ariefcatur/janoer-storefront/internal/logger"
	"github.com/ariefcatur/janoer-storefront/internal/storefront"
	"github.com/go-chi/chi/v5"
)

type updateStatusReq struct {
	Status storefront.OrderStatus `json:"status"`
}

func (h *StoreHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkout.Request
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.Checkout.PlaceOrder(ctx, sessionFrom(ctx), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *StoreHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r.Context()).Orders.List())
}

func (h *StoreHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	o, ok := sessionFrom(r.Context()).Orders.Get(id)
	if !ok {
		writeError(w, r, fmt.Errorf("%w: %s", storefront.ErrOrderNotFound, id))
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *StoreHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusReq
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if !req.Status.Valid() {
		writeError(w, r, fmt.Errorf("%w: unknown status %q", errBadRequest, req.Status))
		return
	}

	ctx := r.Context()
	sess := sessionFrom(ctx)
	id := chi.URLParam(r, "id")
	before, ok := sess.Orders.Get(id)
	if !ok {
		writeError(w, r, fmt.Errorf("%w: %s", storefront.ErrOrderNotFound, id))
		return
	}

	o, err := sess.Orders.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if h.Events != nil {
		if err := h.Events.OrderStatusChanged(ctx, sess.ID, o, before.Status); err != nil {
			logger.WithContext(ctx).Error().Err(err).Str("order_id", o.ID).Msg("publish status change")
		}
	}
	writeJSON(w, http.StatusOK, o)
}
