package dto

type PlaceOrderRequest struct {
	ShopID          string             `json:"shopId"`
	Products        []OrderLineRequest `json:"products"`
	PaymentMode     string             `json:"paymentMode"`
	DeliveryAddress string             `json:"deliveryAddress"`
}

type OrderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
