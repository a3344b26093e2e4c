package impl

import (
	"context"
	"testing"

	"petstar/internal/domain/entity"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/domain/repository"
	"petstar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService() (usecase.ProfileUsecase, *MockUserRepository) {
	userRepo := &MockUserRepository{}
	service := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return service, userRepo
}

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile(t *testing.T) {
	service, userRepo := createTestProfileService()
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "firulais@petstar.com", PetStar: "Firulais"}
	userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

	got, err := service.GetProfile(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	service, userRepo := createTestProfileService()
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "nobody@petstar.com").Return(nil, repository.ErrUserNotFound)

	got, err := service.GetProfile(ctx, "nobody@petstar.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, got)
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	service, userRepo := createTestProfileService()
	ctx := context.Background()

	user := &entity.User{
		ID:      uuid.New(),
		Email:   "firulais@petstar.com",
		PetStar: "Firulais",
		Breed:   "Beagle",
		Hobbies: "chasing squirrels",
	}
	userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	err := service.UpdateProfile(ctx, user.Email, usecase.UpdateProfileInput{
		Breed:   strPtr("Basset Hound"),
		Hobbies: strPtr(""),
	})
	require.NoError(t, err)

	// Present fields are written, absent ones untouched, empty strings clear.
	assert.Equal(t, "Firulais", user.PetStar)
	assert.Equal(t, "Basset Hound", user.Breed)
	assert.Equal(t, "", user.Hobbies)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	service, userRepo := createTestProfileService()
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "nobody@petstar.com").Return(nil, repository.ErrUserNotFound)

	err := service.UpdateProfile(ctx, "nobody@petstar.com", usecase.UpdateProfileInput{
		PetStar: strPtr("Ghost"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
