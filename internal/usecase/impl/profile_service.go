package impl

import (
	"context"
	"log/slog"

	deliverycontext "petstar/internal/delivery/context"
	"petstar/internal/domain/entity"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/domain/repository"
	"petstar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the profile of the user identified by email.
func (srv *profileService) GetProfile(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return user, nil
}

// UpdateProfile applies a partial update to the user's profile.
// Only the fields present in the input are written.
func (srv *profileService) UpdateProfile(ctx context.Context, email string, input usecase.UpdateProfileInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user profile")
	}

	if input.PetStar != nil {
		user.PetStar = *input.PetStar
	}
	if input.UserPhoto != nil {
		user.UserPhoto = *input.UserPhoto
	}
	if input.Breed != nil {
		user.Breed = *input.Breed
	}
	if input.BirthDate != nil {
		user.BirthDate = *input.BirthDate
	}
	if input.Hobbies != nil {
		user.Hobbies = *input.Hobbies
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", user.ID))

	return nil
}
