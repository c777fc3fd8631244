package dto

import "time"

type OrderDTO struct {
	ID              string         `json:"id"`
	FarmerID        string         `json:"farmerId"`
	DealerID        string         `json:"dealerId"`
	ShopID          string         `json:"shopId"`
	Items           []OrderItemDTO `json:"products"`
	Status          string         `json:"status"`
	PaymentMode     string         `json:"paymentMode"`
	DeliveryAddress string         `json:"deliveryAddress"`
	TotalAmount     float64        `json:"totalAmount"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// OrderItemDTO carries the price snapshot captured at placement time,
// not the product's live price.
type OrderItemDTO struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type PlaceOrderResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Order   OrderDTO `json:"order"`
}

type OrderListResponse struct {
	Success bool       `json:"success"`
	Orders  []OrderDTO `json:"orders"`
	Count   *int       `json:"count,omitempty"`
}
