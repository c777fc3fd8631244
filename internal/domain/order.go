package domain

import "time"

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusAssigned, OrderStatusReady,
		OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// validNext enforces a forward-only lattice: each status advances to its
// successor, and cancellation is reachable from any non-terminal status.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPlaced:    {OrderStatusAssigned: true, OrderStatusCancelled: true},
	OrderStatusAssigned:  {OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusReady:     {OrderStatusInTransit: true, OrderStatusCancelled: true},
	OrderStatusInTransit: {OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return validNext[s][next]
}

type PaymentMode string

const (
	PaymentModeCOD    PaymentMode = "cod"
	PaymentModeOnline PaymentMode = "online"
)

func (m PaymentMode) IsValid() bool {
	return m == PaymentModeCOD || m == PaymentModeOnline
}

type Order struct {
	ID              string
	FarmerID        string
	DealerID        string
	ShopID          string
	Items           []OrderItem
	Status          OrderStatus
	PaymentMode     PaymentMode
	DeliveryAddress string
	TotalAmount     float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem carries the unit price snapshot captured at placement time.
// The snapshot is immutable after creation.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     float64
}

// CancellableByFarmer reports whether the farmer may still cancel.
// Cancellation is only allowed before the dealer readies the order.
func (o Order) CancellableByFarmer() bool {
	return o.Status == OrderStatusPlaced || o.Status == OrderStatusAssigned
}
