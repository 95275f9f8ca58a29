// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account of the remote storefront. The API owns it; this is a read copy.
type User struct {
	ID        string    `json:"id"`         // Identifier assigned by the storefront API.
	Name      string    `json:"name"`       // Display name.
	Email     string    `json:"email"`      // Login email.
	Role      Role      `json:"role"`       // The role the account acts under.
	Phone     string    `json:"phone"`      // Optional contact number.
	CreatedAt time.Time `json:"created_at"` // When the account was registered upstream.
}
