// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	deliverycontext "petstar/internal/delivery/context"
	"petstar/internal/delivery/http/response"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and credential handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	PetStar   string `json:"petStar" validate:"required"`
	UserPhoto string `json:"userPhoto"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birthDate"`
	Hobbies   string `json:"hobbies"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword        string `json:"old_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required"`
}

type requestResetRequest struct {
	Email string `json:"email" validate:"required"`
}

type redeemResetRequest struct {
	UUID     string `json:"uuid" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("Email, password and petstar fields are required")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewMissingFields("Email, password and petstar fields are required")
	}

	if _, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		PetStar:   req.PetStar,
		UserPhoto: req.UserPhoto,
		Breed:     req.Breed,
		BirthDate: req.BirthDate,
		Hobbies:   req.Hobbies,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "New user created")
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("Email and password fields are required")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewMissingFields("Email and password fields are required")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Ok", response.Body{
		"jwt_token": output.Token,
		"user_data": response.Body{
			"id":        output.User.ID,
			"email":     output.User.Email,
			"userphoto": output.User.UserPhoto,
			"petStar":   output.User.PetStar,
			"breed":     output.User.Breed,
			"birthDate": output.User.BirthDate,
			"hobbies":   output.User.Hobbies,
		},
	})
}

// ChangePassword handles PUT /api/changePassword.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("Old password, new password and confirm new password fields are required")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewMissingFields("Old password, new password and confirm new password fields are required")
	}

	if err := h.uc.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		Email:              deliverycontext.GetUserEmail(c),
		OldPassword:        req.OldPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Password changed successfully", nil)
}

// RequestPasswordReset handles POST /api/restorePassword.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req requestResetRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("Email is a required field")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewMissingFields("Email is a required field")
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "UUID generated successfully", nil)
}

// RedeemPasswordReset handles PUT /api/restorePassword.
func (h *AuthHandler) RedeemPasswordReset(c echo.Context) error {
	var req redeemResetRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("All fields are required")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewMissingFields("All fields are required")
	}

	if err := h.uc.RedeemPasswordReset(c.Request().Context(), usecase.RedeemPasswordResetInput{
		Token:    req.UUID,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Password changed successfully", nil)
}
