package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"verdata-backend/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// SessionClaims carries the authenticated actor through a session token.
type SessionClaims struct {
	Role domain.Role `json:"role"`
	Name string      `json:"name"`
	NIK  string      `json:"nik,omitempty"`
	jwt.RegisteredClaims
}

// Session converts the claims back into the domain session context.
func (c *SessionClaims) Session() *domain.Session {
	return &domain.Session{Role: c.Role, Name: c.Name, NIK: c.NIK}
}

type TokenManager interface {
	GenerateSessionToken(sess *domain.Session) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
}

type tokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (m *tokenManager) GenerateSessionToken(sess *domain.Session) (string, error) {
	claims := SessionClaims{
		Role: sess.Role,
		Name: sess.Name,
		NIK:  sess.NIK,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.Name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "verdata-backend",
			Audience:  jwt.ClaimStrings{"api-access"},
			ID:        generateJTI(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// Simple unique ID generator
func generateJTI() string {
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
