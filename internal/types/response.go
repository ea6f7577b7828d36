package types

import "github.com/tastetrail/backend/internal/model"

// APIResponse is the uniform envelope returned by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// AuthResponse is the payload of a successful register or login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}
