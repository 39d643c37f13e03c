package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/logger"
	"verdata-backend/internal/security"
	"verdata-backend/internal/utils"
)

// AdminCredential is the placeholder administrator identity. It is seeded
// from config and must be replaced by a real identity collaborator in any
// production use.
type AdminCredential struct {
	Username     string
	PasswordHash string
	DisplayName  string
}

type authService struct {
	tokens security.TokenManager
	admin  AdminCredential
}

func NewAuthService(tokens security.TokenManager, admin AdminCredential) AuthService {
	return &authService{
		tokens: tokens,
		admin:  admin,
	}
}

func (s *authService) LoginApplicant(ctx context.Context, name, nik string) (*domain.Session, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", domain.NewValidationError("name", "must not be empty")
	}
	if !utils.ValidNIK(nik) {
		return nil, "", domain.NewValidationError("nik", "must be a 16-digit number")
	}

	sess := &domain.Session{Role: domain.RoleApplicant, Name: name, NIK: nik}
	token, err := s.tokens.GenerateSessionToken(sess)
	if err != nil {
		return nil, "", err
	}
	logger.Info("applicant logged in", "name", name)
	return sess, token, nil
}

func (s *authService) LoginAdmin(ctx context.Context, username, password string) (*domain.Session, string, error) {
	if username != s.admin.Username {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	sess := &domain.Session{Role: domain.RoleAdmin, Name: s.admin.DisplayName}
	token, err := s.tokens.GenerateSessionToken(sess)
	if err != nil {
		return nil, "", err
	}
	logger.Info("admin logged in", "name", sess.Name)
	return sess, token, nil
}
