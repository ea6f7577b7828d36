package types

import (
	"github.com/google/uuid"
)

// TokenClaims is the resolved identity carried by a JWT token.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	Name   string    `json:"name"`
}

// IsAdmin reports whether the identity holds the admin role.
func (c *TokenClaims) IsAdmin() bool {
	return c.Role == "admin"
}
