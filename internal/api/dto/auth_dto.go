package dto

import (
	"time"

	"github.com/spec-kit/ops-console/internal/domain"
)

// LoginRequest payload for operator login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse is the restored-session view of an authenticated operator.
type SessionResponse struct {
	Identity    string      `json:"identity"`
	Role        domain.Role `json:"role"`
	DisplayName string      `json:"display_name"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSessionResponse maps a session.
func NewSessionResponse(sess domain.Session) SessionResponse {
	return SessionResponse{
		Identity:    sess.Identity,
		Role:        sess.Role,
		DisplayName: sess.DisplayName,
	}
}
