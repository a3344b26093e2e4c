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

// UserHandler holds dependencies for the authenticated profile handlers.
type UserHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// updateProfileRequest uses pointers so absent keys can be told apart from
// keys deliberately set to the empty string.
type updateProfileRequest struct {
	PetStar   *string `json:"petStar"`
	UserPhoto *string `json:"userPhoto"`
	Breed     *string `json:"breed"`
	BirthDate *string `json:"birthDate"`
	Hobbies   *string `json:"hobbies"`
}

// GetProfile handles GET /api/user.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.uc.GetProfile(c.Request().Context(), deliverycontext.GetUserEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "ok", response.Body{
		"user_data": response.Body{
			"email":     user.Email,
			"userPhoto": user.UserPhoto,
			"petStar":   user.PetStar,
			"breed":     user.Breed,
			"birthDate": user.BirthDate,
			"hobbies":   user.Hobbies,
		},
	})
}

// UpdateProfile handles PUT /api/user.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("Request body is required")
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), deliverycontext.GetUserEmail(c), usecase.UpdateProfileInput{
		PetStar:   req.PetStar,
		UserPhoto: req.UserPhoto,
		Breed:     req.Breed,
		BirthDate: req.BirthDate,
		Hobbies:   req.Hobbies,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Information updated successfully", nil)
}
