package repository

import (
	"context"
	"errors"

	"petstar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResetTokenNotFound is returned when no reset token matches the given value.
var ErrResetTokenNotFound = errors.New("reset token not found")

// ResetTokenRepository defines the operations for password-reset token persistence.
type ResetTokenRepository interface {
	// Create persists a newly issued reset token.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByToken retrieves a reset token record by its opaque token value.
	// Expiry is not checked here; that is the caller's decision.
	FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)

	// Delete removes a reset token record, consuming it.
	Delete(ctx context.Context, id uuid.UUID) error
}
