// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the single role a storefront account acts under.
type Role string

const (
	// RoleCustomer shops and checks out.
	RoleCustomer Role = "customer"
	// RoleVendor manages products and fulfils orders.
	RoleVendor Role = "vendor"
	// RoleDelivery picks up and delivers orders.
	RoleDelivery Role = "delivery"
	// RoleAdmin runs the back office.
	RoleAdmin Role = "admin"
)

// AllRoles lists every role in display order.
var AllRoles = Roles{RoleCustomer, RoleVendor, RoleDelivery, RoleAdmin}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return slices.Contains(AllRoles, r)
}

// Home is the landing path of the role.
func (r Role) Home() string {
	switch r {
	case RoleCustomer:
		return "/shop"
	case RoleVendor:
		return "/vendor/dashboard"
	case RoleDelivery:
		return "/delivery/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/login"
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
