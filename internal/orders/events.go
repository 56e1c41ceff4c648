package orders

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/storefront"
	"github.com/google/uuid"
)

const (
	EventOrderPlaced        = "OrderPlaced"
	EventOrderStatusChanged = "OrderStatusChanged"

	EventVersion = 1
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	RequestID     string          `json:"request_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope wraps payload in a fresh v1 envelope correlated to orderID.
func NewEnvelope(eventType, producer, orderID string, payload any, at time.Time) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  EventVersion,
		OccurredAt:    at.UTC(),
		Producer:      producer,
		CorrelationID: orderID,
		Payload:       b,
	}, nil
}

// ---- payloads ----

type Item struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Qty       int    `json:"qty"`
	Price     int    `json:"price"`
}

type OrderPlacedPayload struct {
	OrderID       string                  `json:"order_id"`
	SessionID     string                  `json:"session_id"`
	Items         []Item                  `json:"items"`
	ShippingInfo  storefront.ShippingInfo `json:"shipping_info"`
	PaymentMethod string                  `json:"payment_method"`
	Subtotal      int                     `json:"subtotal"`
	Tax           int                     `json:"tax"`
	Shipping      int                     `json:"shipping"`
	Total         int                     `json:"total"`
	Status        string                  `json:"status"`
	OrderDate     time.Time               `json:"order_date"`
}

type OrderStatusChangedPayload struct {
	OrderID   string `json:"order_id"`
	SessionID string `json:"session_id"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// PlacedPayload projects a stored order onto the event payload.
func PlacedPayload(sessionID string, o storefront.Order) OrderPlacedPayload {
	items := make([]Item, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			Size:      l.SelectedSize,
			Color:     l.SelectedColor,
			Qty:       l.Quantity,
			Price:     l.Price,
		})
	}
	return OrderPlacedPayload{
		OrderID:       o.ID,
		SessionID:     sessionID,
		Items:         items,
		ShippingInfo:  o.ShippingInfo,
		PaymentMethod: string(o.PaymentMethod),
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Shipping:      o.Shipping,
		Total:         o.Total,
		Status:        string(o.Status),
		OrderDate:     o.OrderDate,
	}
}
