package service

import (
	"context"
	"time"

	"portfolio-backend/internal/domains/studio"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// authService validates the single configured studio admin. The password
// arrives pre-hashed from configuration; no credentials live in the
// database.
type authService struct {
	jwtManager   *jwt.Manager
	adminUser    string
	passwordHash string
	tokenExpiry  time.Duration
}

// NewAuthService - Constructor
func NewAuthService(jwtManager *jwt.Manager, adminUser, passwordHash string, tokenExpiry time.Duration) studio.ServiceInterface {
	return &authService{
		jwtManager:   jwtManager,
		adminUser:    adminUser,
		passwordHash: passwordHash,
		tokenExpiry:  tokenExpiry,
	}
}

func (s *authService) Login(_ context.Context, req studio.LoginRequest) (*studio.LoginResponse, error) {
	if req.Username != s.adminUser {
		return nil, studio.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password)); err != nil {
		return nil, studio.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(req.Username, "admin")
	if err != nil {
		return nil, err
	}

	logger.Info("Studio login", map[string]interface{}{"user": req.Username})

	return &studio.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokenExpiry.Seconds()),
	}, nil
}
