// internal/api/types/responses.go
package types

import "expense-tracker-api/internal/domain"

// ErrorResponse is the structured payload for resource-level failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the structured payload for confirmations and for
// authentication-gate rejections.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by register and login: a signed bearer token
// plus the user projection (the password hash is never serialized).
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
