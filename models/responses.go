package models

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterResponse confirms a successful registration.
type RegisterResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is a generic confirmation body, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
// Message is short and never contains internal details.
type ErrorResponse struct {
	Error string `json:"error"`
}
