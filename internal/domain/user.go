package domain

import "time"

type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleDealer   Role = "dealer"
	RoleDelivery Role = "delivery"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleDealer, RoleDelivery, RoleAdmin:
		return true
	}
	return false
}

// User is a read-only registry record in this service. Registration and
// credential management live in the auth service that issues the tokens.
type User struct {
	ID        string
	Name      string
	Email     string
	Mobile    string
	Role      Role
	Village   string
	District  string
	State     string
	IsActive  bool
	CreatedAt time.Time
}
