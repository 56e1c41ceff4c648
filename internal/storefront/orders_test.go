package storefront

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder(t *testing.T) OrderData {
	p := product(t, 1)
	line := CartLine{
		ID: LineID(p.ID, "M", "Navy Blue"), ProductID: p.ID, Name: p.Name,
		Price: p.Price, SelectedSize: "M", SelectedColor: "Navy Blue", Quantity: 1,
	}
	return OrderData{
		Items: []CartLine{line},
		ShippingInfo: ShippingInfo{
			FullName: "Sri Wulandari", Email: "sri@example.com", Phone: "081234567890",
			Address: "Jl. Malioboro 12", City: "Yogyakarta", Province: "DIY", PostalCode: "55271",
		},
		PaymentMethod: PaymentBankTransfer,
		Subtotal:      1850000,
		Tax:           203500,
		Shipping:      0,
		Total:         2053500,
	}
}

func TestOrderHistory_AddGeneratesID(t *testing.T) {
	ctx := context.Background()
	at := time.UnixMilli(1717171717171)
	h := OpenOrderHistory(ctx, newRecordingStore(), Options{Now: fixedClock(at)})

	o := h.Add(ctx, sampleOrder(t))

	assert.Regexp(t, `^JK\d{8}$`, o.ID)
	assert.Equal(t, "JK71717171", o.ID)
	assert.Equal(t, o.ID, o.OrderNumber)
	assert.Equal(t, StatusProcessing, o.Status)
	assert.Equal(t, 1850000, o.Subtotal)
	assert.Equal(t, h.List()[0], o)
}

func TestOrderHistory_NewestFirstAndCollisionFree(t *testing.T) {
	ctx := context.Background()
	h := OpenOrderHistory(ctx, newRecordingStore(), Options{Now: fixedClock(time.UnixMilli(42))})

	first := h.Add(ctx, sampleOrder(t))
	second := h.Add(ctx, sampleOrder(t))

	assert.Equal(t, "JK00000042", first.ID)
	assert.Equal(t, "JK00000043", second.ID, "same millisecond does not reuse an id")

	list := h.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestOrderHistory_ExplicitOrderNumber(t *testing.T) {
	ctx := context.Background()
	h := OpenOrderHistory(ctx, newRecordingStore(), Options{})

	data := sampleOrder(t)
	data.OrderNumber = "JK12345678"
	o := h.Add(ctx, data)
	assert.Equal(t, "JK12345678", o.ID)

	got, ok := h.Get("JK12345678")
	require.True(t, ok)
	assert.Equal(t, o.ID, got.ID)

	_, ok = h.Get("JK00000000")
	assert.False(t, ok)
}

func TestOrderHistory_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	h := OpenOrderHistory(ctx, newRecordingStore(), Options{})
	o := h.Add(ctx, sampleOrder(t))

	_, err := h.UpdateStatus(ctx, o.ID, StatusDelivered)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	got, err := h.UpdateStatus(ctx, o.ID, StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, got.Status)

	got, err = h.UpdateStatus(ctx, o.ID, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, got.Status)

	_, err = h.UpdateStatus(ctx, o.ID, StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition, "delivered is terminal")

	_, err = h.UpdateStatus(ctx, "missing", StatusShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderHistory_HydrationDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	store := newRecordingStore()
	h := OpenOrderHistory(ctx, store, Options{})
	o := h.Add(ctx, sampleOrder(t))
	require.Equal(t, 1, store.setCount(KeyOrders))

	again := OpenOrderHistory(ctx, store, Options{})
	assert.Equal(t, 1, store.setCount(KeyOrders))
	require.Equal(t, 1, again.Count())
	got, ok := again.Get(o.ID)
	require.True(t, ok)
	assert.Equal(t, o.Total, got.Total)
	assert.Equal(t, o.ShippingInfo, got.ShippingInfo)
	assert.Equal(t, o.Items, got.Items)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusDelivered, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, true},
		{StatusShipped, StatusProcessing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusProcessing, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
	assert.False(t, OrderStatus("lost").Valid())
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentGoPay.Valid())
	assert.False(t, PaymentMethod("paypal").Valid())
	assert.Equal(t, "Cash on Delivery", PaymentCOD.DisplayName())
	assert.Equal(t, "paypal", PaymentMethod("paypal").DisplayName())
}
