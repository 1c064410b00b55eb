package models

// Credentials is the request body accepted by the register and login
// endpoints.
type Credentials struct {
	// Username is the unique account identifier.
	Username string `json:"username"`

	// Password is the plaintext password. It is hashed immediately on the
	// server and never persisted or logged as-is.
	Password string `json:"password"`
}

// MessageResponse is the generic success acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the login success body carrying the bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the generic failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}
