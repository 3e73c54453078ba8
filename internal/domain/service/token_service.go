package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID      uuid.UUID
	DisplayName string
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating JWTs issued by the
// platform's identity service. This abstracts token details from the use cases.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
