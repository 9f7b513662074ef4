package model

import "strings"

// Identity represents the client-visible profile of the authenticated user.
// Name is always derived client-side from the email local-part; the backend
// never supplies one on the consumed contract.
type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DeriveName returns the display name for a user: the supplied name if the
// backend ever sends one, otherwise the local-part of the email address.
func DeriveName(email, name string) string {
	if name != "" {
		return name
	}
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}

// NewIdentity builds an Identity with the display name derived.
func NewIdentity(id uint, email, name string) Identity {
	return Identity{ID: id, Email: email, Name: DeriveName(email, name)}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayload is the user object embedded in register/login responses
type UserPayload struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// RegisterResponse represents a successful registration response
type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// IntrospectResponse is the token-introspection response (GET /test)
type IntrospectResponse struct {
	Message   string `json:"message"`
	UserID    uint   `json:"user_id"`
	UserEmail string `json:"user_email"`
}

// Identity converts an introspection result into a display Identity.
func (r IntrospectResponse) Identity() Identity {
	return NewIdentity(r.UserID, r.UserEmail, "")
}
