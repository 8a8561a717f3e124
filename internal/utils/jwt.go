// internal/utils/jwt.go
package utils

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const tokenIssuer = "hireswipe"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// JWTClaims identify the caller; Role is one of the account roles.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var (
	secretMu  sync.RWMutex
	jwtSecret = []byte("your-secret-key-change-in-production")
)

func SetJWTSecret(secret string) {
	secretMu.Lock()
	defer secretMu.Unlock()
	jwtSecret = []byte(secret)
}

func signingKey() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return jwtSecret
}

// GenerateJWT signs an HS256 access token valid for ttlHours.
func GenerateJWT(userID uuid.UUID, name, role string, ttlHours int) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: userID.String(),
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlHours) * time.Hour)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey())
}

// ValidateJWT returns ErrExpiredToken for expired tokens and ErrInvalidToken for anything else
// that fails verification.
func ValidateJWT(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return signingKey(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil, !token.Valid:
		return nil, ErrInvalidToken
	case !claims.VerifyIssuer(tokenIssuer, true) || claims.UserID != claims.Subject:
		return nil, ErrInvalidToken
	}
	return claims, nil
}
