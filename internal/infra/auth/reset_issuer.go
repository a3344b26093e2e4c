// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/google/uuid"

	"petstar/config"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/service"
)

// resetTokenIssuer mints single-use password-reset tokens backed by random UUIDs.
type resetTokenIssuer struct {
	ttl time.Duration
}

// NewResetTokenIssuer is the constructor for resetTokenIssuer.
func NewResetTokenIssuer(cfg *config.Config) service.ResetTokenIssuer {
	return &resetTokenIssuer{ttl: cfg.Auth.ResetTokenTTL}
}

// Issue creates a fresh reset token for the given account email.
func (i *resetTokenIssuer) Issue(email string) *entity.PasswordResetToken {
	now := time.Now()

	return &entity.PasswordResetToken{
		Email:     email,
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(i.ttl),
		CreatedAt: now,
	}
}
