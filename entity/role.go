package entity

// Role is the single source of truth for authorization. The original
// group-membership checks are collapsed into one enumerated type so every
// endpoint gates on the same values.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleCustomer     Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDeliveryCrew, RoleCustomer:
		return true
	}
	return false
}

// IsStaff reports whether the role may manage the catalog, orders and the
// staff roster. Admin is a superset of manager everywhere in this API.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager
}
