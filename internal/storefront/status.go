package storefront

type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusProcessing: {StatusShipped: true, StatusCancelled: true},
	StatusShipped:    {StatusDelivered: true, StatusCancelled: true},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

func (s OrderStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}
