package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one signed-in browser or app. It carries the upstream API token,
// so it never leaves the server unsealed.
type Session struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Token      string    `json:"token"` // Bearer token for the storefront API.
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// IdleSince reports whether the session has not been used since cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	return s.LastSeenAt.Before(cutoff)
}

// Expired reports whether the session is past its absolute expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// User returns the account the session belongs to.
func (s *Session) User() *User {
	return &User{ID: s.UserID, Name: s.Name, Email: s.Email, Role: s.Role}
}
