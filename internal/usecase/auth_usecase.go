// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"petstar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string
	Password  string
	PetStar   string
	UserPhoto string
	Breed     string
	BirthDate string
	Hobbies   string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data for an authenticated password change.
type ChangePasswordInput struct {
	Email              string
	OldPassword        string
	NewPassword        string
	ConfirmNewPassword string
}

// RedeemPasswordResetInput carries a reset token and the replacement password.
type RedeemPasswordResetInput struct {
	Token    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session token and the user after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for account and credential operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error

	// RequestPasswordReset issues a reset token for the account and mails
	// the reset link to the owner.
	RequestPasswordReset(ctx context.Context, email string) error

	// RedeemPasswordReset consumes a previously issued token and replaces
	// the account password.
	RedeemPasswordReset(ctx context.Context, input RedeemPasswordResetInput) error
}
