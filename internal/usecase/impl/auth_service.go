// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"petstar/config"
	deliverycontext "petstar/internal/delivery/context"
	"petstar/internal/domain/entity"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/domain/repository"
	"petstar/internal/domain/service"
	"petstar/internal/infra/mail"
	"petstar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mailSendTimeout = 30 * time.Second

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	resetTokenRepo repository.ResetTokenRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	resetIssuer    service.ResetTokenIssuer
	mailer         service.Mailer
	publicBaseURL  string
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ResetTokenRepo repository.ResetTokenRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	ResetIssuer    service.ResetTokenIssuer
	Mailer         service.Mailer
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	publicBaseURL := ""
	if params.Config != nil && params.Config.Mail != nil {
		publicBaseURL = params.Config.Mail.PublicBaseURL
	}

	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		resetTokenRepo: params.ResetTokenRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		resetIssuer:    params.ResetIssuer,
		mailer:         params.Mailer,
		publicBaseURL:  publicBaseURL,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and mails the welcome message.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		PetStar:      input.PetStar,
		UserPhoto:    input.UserPhoto,
		Breed:        input.Breed,
		BirthDate:    input.BirthDate,
		Hobbies:      input.Hobbies,
	}

	// The unique constraint on users.email is the authoritative guard
	// against concurrent registrations with the same address.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.sendMailAsync(ctx, user.Email, mail.WelcomeSubject, mail.WelcomeBody(user.PetStar))

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueToken(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// ChangePassword replaces the password of an authenticated user.
// The old-password check runs before any validation of the new password.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user for password change")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidOldPassword
	}
	if input.NewPassword == input.OldPassword {
		return domainerrors.ErrSamePassword
	}
	if input.NewPassword != input.ConfirmNewPassword {
		return domainerrors.ErrPasswordConfirmation
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}

// RequestPasswordReset issues a reset token and mails the reset link.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := srv.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	token := srv.resetIssuer.Issue(email)
	if err := srv.resetTokenRepo.Create(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	srv.sendMailAsync(ctx, email, mail.ResetPasswordSubject,
		mail.ResetPasswordBody(srv.publicBaseURL, email, token.Token))

	srv.log(ctx).Info("Password reset requested", slog.String("email", email))

	return nil
}

// RedeemPasswordReset consumes a reset token and replaces the account password.
// The lookup, password write and token delete run in one transaction so a
// token can never be spent twice.
func (srv *authService) RedeemPasswordReset(ctx context.Context, input usecase.RedeemPasswordResetInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetTokenRepo := repoFactory.ResetTokenRepo()
		userRepo := repoFactory.UserRepo()

		token, err := resetTokenRepo.FindByToken(ctx, input.Token)
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrResetTokenNotFound
			}

			return errors.Wrap(err, "failed to find reset token")
		}

		if token.Expired(time.Now()) {
			return domainerrors.ErrResetTokenExpired
		}

		user, err := userRepo.FindByEmail(ctx, token.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for reset token")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed
		}

		user.PasswordHash = hash
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := resetTokenRepo.Delete(ctx, token.ID); err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset redeemed")

	return nil
}

// sendMailAsync delivers mail off the request path. Delivery failure is
// logged and never fails the triggering operation.
func (srv *authService) sendMailAsync(ctx context.Context, to, subject, body string) {
	logger := srv.log(ctx)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), mailSendTimeout)
		defer cancel()

		if err := srv.mailer.Send(sendCtx, to, subject, body); err != nil {
			logger.Error("Failed to send mail",
				slog.String("to", to),
				slog.String("subject", subject),
				slog.Any("error", err),
			)
		}
	}()
}
