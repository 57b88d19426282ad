package service

import (
	"context"
	"testing"
	"time"

	"portfolio-backend/internal/domains/studio"
	"portfolio-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) (studio.ServiceInterface, *jwt.Manager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	manager := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(manager, "admin", string(hash), time.Hour), manager
}

func TestLoginSuccess(t *testing.T) {
	svc, manager := newAuth(t)

	resp, err := svc.Login(context.Background(), studio.LoginRequest{
		Username: "admin",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := manager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuth(t)

	_, err := svc.Login(context.Background(), studio.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, studio.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuth(t)

	_, err := svc.Login(context.Background(), studio.LoginRequest{
		Username: "mallory",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, studio.ErrInvalidCredentials)
}
