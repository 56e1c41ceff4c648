// Package checkout turns a session's cart into a placed order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ariefcatur/janoer-storefront/internal/logger"
	"github.com/ariefcatur/janoer-storefront/internal/metrics"
	"github.com/ariefcatur/janoer-storefront/internal/storefront"
)

const (
	TaxPercent            = 11 // PPN
	ShippingFee           = 25000
	FreeShippingThreshold = 1000000
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidInput = errors.New("invalid checkout input")
)

var (
	emailRe  = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRe  = regexp.MustCompile(`^\d{10,13}$`)
	postalRe = regexp.MustCompile(`^\d{5}$`)
)

type Totals struct {
	Subtotal int `json:"subtotal"`
	Tax      int `json:"tax"`
	Shipping int `json:"shipping"`
	Total    int `json:"total"`
}

// CalculateTotals applies 11% tax rounded half up and the flat shipping fee,
// waived from FreeShippingThreshold upwards.
func CalculateTotals(subtotal int) Totals {
	t := Totals{Subtotal: subtotal}
	t.Tax = (subtotal*TaxPercent + 50) / 100
	if subtotal < FreeShippingThreshold {
		t.Shipping = ShippingFee
	}
	t.Total = t.Subtotal + t.Tax + t.Shipping
	return t
}

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(keys, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ValidateShipping returns field -> message for every invalid field, or nil.
func ValidateShipping(s storefront.ShippingInfo) map[string]string {
	errs := map[string]string{}
	required := func(field, value, label string) bool {
		if strings.TrimSpace(value) == "" {
			errs[field] = label + " is required"
			return false
		}
		return true
	}

	required("full_name", s.FullName, "Full name")
	if required("email", s.Email, "Email") && !emailRe.MatchString(s.Email) {
		errs["email"] = "Email is invalid"
	}
	if required("phone", s.Phone, "Phone") {
		digits := strings.NewReplacer("-", "", " ", "").Replace(s.Phone)
		if !phoneRe.MatchString(digits) {
			errs["phone"] = "Phone must be 10-13 digits"
		}
	}
	required("address", s.Address, "Address")
	required("city", s.City, "City")
	required("province", s.Province, "Province")
	if required("postal_code", s.PostalCode, "Postal code") && !postalRe.MatchString(s.PostalCode) {
		errs["postal_code"] = "Postal code must be 5 digits"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type Request struct {
	ShippingInfo  storefront.ShippingInfo  `json:"shipping_info"`
	PaymentMethod storefront.PaymentMethod `json:"payment_method"`
}

// Events is satisfied by *orders.Emitter.
type Events interface {
	OrderPlaced(ctx context.Context, sessionID string, o storefront.Order) error
}

type Service struct {
	Events  Events
	Metrics *metrics.Metrics
}

// PlaceOrder records the cart as a new order, empties the cart and announces
// the order. Event publishing failures are logged only; the order stands.
func (s *Service) PlaceOrder(ctx context.Context, sess *storefront.Session, req Request) (storefront.Order, error) {
	lines := sess.Cart.Lines()
	if len(lines) == 0 {
		return storefront.Order{}, ErrEmptyCart
	}

	fields := ValidateShipping(req.ShippingInfo)
	if !req.PaymentMethod.Valid() {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["payment_method"] = "Payment method is not supported"
	}
	if fields != nil {
		return storefront.Order{}, &ValidationError{Fields: fields}
	}

	subtotal := 0
	for _, l := range lines {
		subtotal += l.Subtotal()
	}
	t := CalculateTotals(subtotal)

	o := sess.Orders.Add(ctx, storefront.OrderData{
		Items:         lines,
		ShippingInfo:  req.ShippingInfo,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      t.Subtotal,
		Tax:           t.Tax,
		Shipping:      t.Shipping,
		Total:         t.Total,
	})
	sess.Cart.Clear(ctx)
	s.Metrics.OrderPlaced(string(o.PaymentMethod), o.Total)

	log := logger.WithContext(ctx)
	if s.Events != nil {
		if err := s.Events.OrderPlaced(ctx, sess.ID, o); err != nil {
			log.Error().Err(err).Str("order_id", o.ID).Msg("publish order placed")
		}
	}
	log.Info().Str("order_id", o.ID).Str("session_id", sess.ID).Int("total", o.Total).Msg("order placed")
	return o, nil
}
