package product

import "time"

type BrowseProductsRequest struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

type BrowseProductsResponse struct {
	Success  bool         `json:"success"`
	Products []ProductDTO `json:"products"`
}

// ProductDTO is the farmer-facing view. It deliberately has no
// warehouse quantity field: that counter is dealer-internal.
type ProductDTO struct {
	ID          string    `json:"id"`
	ShopID      string    `json:"shopId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DealerProductDTO struct {
	ID                string    `json:"id"`
	ShopID            string    `json:"shopId"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	Quantity          int       `json:"quantity"`
	WarehouseQuantity *int      `json:"warehouseQuantity,omitempty"`
	Unit              string    `json:"unit"`
	ImageURL          string    `json:"imageUrl"`
	IsPublished       bool      `json:"isPublished"`
	IsAvailable       bool      `json:"isAvailable"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type AddProductRequest struct {
	ShopID            string  `json:"shopId"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	Quantity          int     `json:"quantity"`
	WarehouseQuantity *int    `json:"warehouseQuantity"`
	Unit              string  `json:"unit"`
	IsPublished       bool    `json:"isPublished"`
	ImageURL          string  `json:"-"`
}

// UpdateProductRequest applies partial updates: nil fields are left
// untouched.
type UpdateProductRequest struct {
	Name              *string  `json:"name"`
	Category          *string  `json:"category"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	Quantity          *int     `json:"quantity"`
	WarehouseQuantity *int     `json:"warehouseQuantity"`
	Unit              *string  `json:"unit"`
	IsPublished       *bool    `json:"isPublished"`
	IsAvailable       *bool    `json:"isAvailable"`
	ImageURL          *string  `json:"-"`
}
