package entity

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}
