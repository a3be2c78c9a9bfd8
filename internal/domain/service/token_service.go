package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by admin tokens.
// The subject is carried by RegisteredClaims.Subject.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateToken creates a signed access token for the subject.
	GenerateToken(subject string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
