package studio

import "context"

// ServiceInterface - Studio session management
type ServiceInterface interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}
