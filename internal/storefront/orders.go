package storefront

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/kv"
	"github.com/rs/zerolog"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank-transfer"
	PaymentCreditCard   PaymentMethod = "credit-card"
	PaymentGoPay        PaymentMethod = "gopay"
	PaymentOVO          PaymentMethod = "ovo"
	PaymentDANA         PaymentMethod = "dana"
	PaymentCOD          PaymentMethod = "cod"
)

var paymentNames = map[PaymentMethod]string{
	PaymentBankTransfer: "Bank Transfer",
	PaymentCreditCard:   "Credit/Debit Card",
	PaymentGoPay:        "GoPay",
	PaymentOVO:          "OVO",
	PaymentDANA:         "DANA",
	PaymentCOD:          "Cash on Delivery",
}

func (m PaymentMethod) Valid() bool {
	_, ok := paymentNames[m]
	return ok
}

func (m PaymentMethod) DisplayName() string {
	if n, ok := paymentNames[m]; ok {
		return n
	}
	return string(m)
}

type ShippingInfo struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

// OrderData is what checkout hands to the history. OrderNumber is optional.
type OrderData struct {
	OrderNumber   string        `json:"order_number,omitempty"`
	Items         []CartLine    `json:"items"`
	ShippingInfo  ShippingInfo  `json:"shipping_info"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Subtotal      int           `json:"subtotal"`
	Tax           int           `json:"tax"`
	Shipping      int           `json:"shipping"`
	Total         int           `json:"total"`
}

// Order: item & nominal tidak berubah setelah dibuat, hanya Status.
type Order struct {
	ID string `json:"id"`
	OrderData
	OrderDate time.Time   `json:"order_date"`
	Status    OrderStatus `json:"status"`
}

// OrderHistory keeps placed orders newest first.
type OrderHistory struct {
	mu     sync.Mutex
	store  kv.Store
	log    *zerolog.Logger
	now    func() time.Time
	orders []Order
}

func OpenOrderHistory(ctx context.Context, store kv.Store, opts Options) *OrderHistory {
	opts = opts.withDefaults()
	h := &OrderHistory{store: store, log: opts.Logger, now: opts.Now}
	h.orders = loadList[Order](ctx, store, KeyOrders, h.log)
	return h
}

// Add: order baru status processing, paling depan.
// Tanpa OrderNumber -> id = "JK" + 8 digit terakhir epoch ms.
func (h *OrderHistory) Add(ctx context.Context, data OrderData) Order {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	id := data.OrderNumber
	if id == "" {
		id = h.generateID(now)
		data.OrderNumber = id
	}
	data.Items = slices.Clone(data.Items)

	o := Order{ID: id, OrderData: data, OrderDate: now.UTC(), Status: StatusProcessing}
	h.orders = slices.Insert(h.orders, 0, o)
	h.persist(ctx)
	return o
}

// Get matches either the id or the order number.
func (h *OrderHistory) Get(id string) (Order, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if i := h.index(id); i >= 0 {
		return h.orders[i], true
	}
	return Order{}, false
}

func (h *OrderHistory) List() []Order {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.orders)
}

func (h *OrderHistory) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.orders)
}

// UpdateStatus: lihat validNext di status.go.
func (h *OrderHistory) UpdateStatus(ctx context.Context, id string, to OrderStatus) (Order, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index(id)
	if i < 0 {
		return Order{}, ErrOrderNotFound
	}
	from := h.orders[i].Status
	if !CanTransition(from, to) {
		return Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	h.orders[i].Status = to
	h.persist(ctx)
	return h.orders[i], nil
}

func (h *OrderHistory) index(id string) int {
	return slices.IndexFunc(h.orders, func(o Order) bool { return o.ID == id || o.OrderNumber == id })
}

// generateID: kalau bentrok, maju 1 ms sampai unik.
func (h *OrderHistory) generateID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := fmt.Sprintf("JK%08d", ms%100_000_000)
		if h.index(id) < 0 {
			return id
		}
		ms++
	}
}

func (h *OrderHistory) persist(ctx context.Context) {
	saveList(ctx, h.store, KeyOrders, h.orders, h.log)
}
