package usecase

import (
	"context"

	"petstar/internal/domain/entity"
)

// UpdateProfileInput carries a partial profile update.
// Nil fields are left untouched; non-nil fields are written as-is,
// so a pointer to an empty string clears the column.
type UpdateProfileInput struct {
	PetStar   *string
	UserPhoto *string
	Breed     *string
	BirthDate *string
	Hobbies   *string
}

// ProfileUsecase defines the interface for reading and updating the
// authenticated user's own profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, email string, input UpdateProfileInput) error
}
