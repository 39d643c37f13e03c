package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/security"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	tokens := security.NewTokenManager("test-secret-0123456789abcdef0123456789", time.Hour)
	return NewAuthService(tokens, AdminCredential{
		Username:     "admin",
		PasswordHash: string(hash),
		DisplayName:  "Administrator",
	})
}

func TestAuthService_LoginApplicant(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		sess, token, err := svc.LoginApplicant(ctx, "John Doe", "1234567890123456")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, domain.RoleApplicant, sess.Role)
		assert.Equal(t, "John Doe", sess.Name)
		assert.Equal(t, "1234567890123456", sess.NIK)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, _, err := svc.LoginApplicant(ctx, "   ", "1234567890123456")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("BadNIK", func(t *testing.T) {
		_, _, err := svc.LoginApplicant(ctx, "John Doe", "12345")
		assert.True(t, domain.IsValidation(err))
	})
}

func TestAuthService_LoginAdmin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		sess, token, err := svc.LoginAdmin(ctx, "admin", "admin123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, domain.RoleAdmin, sess.Role)
		assert.Equal(t, "Administrator", sess.Name)
		assert.Empty(t, sess.NIK)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.LoginAdmin(ctx, "admin", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("WrongUsername", func(t *testing.T) {
		_, _, err := svc.LoginAdmin(ctx, "root", "admin123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
