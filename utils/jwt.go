package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type JWTClaims struct {
	OrgID string `json:"id"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens. Secret and validity are
// injected so tests can substitute their own.
type TokenManager struct {
	secret   []byte
	validity time.Duration
}

func NewTokenManager(secret string, validity time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), validity: validity}
}

func (m *TokenManager) Generate(orgID, role string) (string, error) {
	claims := JWTClaims{
		OrgID: orgID,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Parse(tokenStr string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
