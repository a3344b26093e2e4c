package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the custom claims carried by session tokens.
// The subject claim is the authenticated user's email.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Email returns the identity the session asserts.
func (c *SessionClaims) Email() string {
	return c.Subject
}

// TokenService defines the interface for issuing and validating session JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed, time-limited session token for the given identity.
	IssueToken(email string) (string, error)

	// ValidateToken checks signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
