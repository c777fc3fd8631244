package domain

import "time"

type ShopStatus string

const (
	ShopStatusPending  ShopStatus = "pending"
	ShopStatusVerified ShopStatus = "verified"
	ShopStatusRejected ShopStatus = "rejected"
)

type Shop struct {
	ID        string
	OwnerID   string
	Name      string
	Location  string
	Status    ShopStatus
	CreatedAt time.Time
}

// AcceptsProducts reports whether the dealer may list products under
// this shop. Only admin-verified shops sell.
func (s Shop) AcceptsProducts() bool {
	return s.Status == ShopStatusVerified
}
