package models

// Access is the level a route demands from the caller
type Access int

const (
	AccessCustomer Access = iota
	AccessAdmin
)

// Authorize is the one place that decides whether a role may reach an access level.
func Authorize(role Role, need Access) bool {
	switch need {
	case AccessCustomer:
		return role.Valid()
	case AccessAdmin:
		return role == RoleStaff || role == RoleSuperAdmin
	}
	return false
}
