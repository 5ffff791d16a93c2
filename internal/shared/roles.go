package shared

// Fixed role enumeration. No dynamic roles exist.
const (
	RoleAdmin   = "admin"
	RoleCourier = "courier"
)

// Account status enumeration governing login eligibility.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ValidRole reports whether role belongs to the fixed enumeration.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCourier
}
