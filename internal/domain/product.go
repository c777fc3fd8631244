package domain

import "time"

type Product struct {
	ID          string
	ShopID      string
	DealerID    string
	Name        string
	Category    string
	Description string
	Price       float64
	// Quantity is the farmer-visible available stock.
	Quantity int
	// WarehouseQuantity is the dealer-internal stock counter. Optional:
	// nil means the dealer does not track it. When present it moves by
	// the same delta as Quantity on every reservation and release,
	// floored at zero.
	WarehouseQuantity *int
	Unit              string
	ImageURL          string
	IsPublished       bool
	IsAvailable       bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProductFilter narrows the farmer-facing catalog listing.
type ProductFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func (p Product) CanFulfill(quantity int) bool {
	return p.IsPublished && p.IsAvailable && p.Quantity >= quantity
}

// ApplyReservation decrements stock for a confirmed line. The caller
// must have checked CanFulfill first; quantity never goes negative.
func (p *Product) ApplyReservation(quantity int) {
	p.Quantity -= quantity
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	if p.WarehouseQuantity != nil {
		wq := *p.WarehouseQuantity - quantity
		if wq < 0 {
			wq = 0
		}
		p.WarehouseQuantity = &wq
	}
	if p.Quantity <= 0 {
		p.IsAvailable = false
	}
}

// ApplyRelease restores stock after a cancellation and re-asserts
// availability when quantity becomes positive.
func (p *Product) ApplyRelease(quantity int) {
	p.Quantity += quantity
	if p.WarehouseQuantity != nil {
		wq := *p.WarehouseQuantity + quantity
		p.WarehouseQuantity = &wq
	}
	if p.Quantity > 0 {
		p.IsAvailable = true
	}
}
