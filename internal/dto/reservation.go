package dto

// OrderLine is a validated line request handed to the reservation
// service. Price is not carried here: the service snapshots the
// product's current price under the row lock.
type OrderLine struct {
	ProductID string
	Quantity  int
}
