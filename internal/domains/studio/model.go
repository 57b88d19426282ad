package studio

import "errors"

var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginRequest - Studio login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse - Issued session token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
