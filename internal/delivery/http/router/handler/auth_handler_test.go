package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petstar/internal/delivery/http/middleware"
	"petstar/internal/delivery/http/validator"
	"petstar/internal/domain/entity"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase lets each test script the usecase outcome.
type stubAuthUsecase struct {
	registerOut *usecase.RegisterOutput
	registerErr error
	loginOut    *usecase.LoginOutput
	loginErr    error
	err         error
}

func (s *stubAuthUsecase) Register(context.Context, usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerOut, s.registerErr
}

func (s *stubAuthUsecase) Login(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOut, s.loginErr
}

func (s *stubAuthUsecase) ChangePassword(context.Context, usecase.ChangePasswordInput) error {
	return s.err
}

func (s *stubAuthUsecase) RequestPasswordReset(context.Context, string) error {
	return s.err
}

func (s *stubAuthUsecase) RedeemPasswordReset(context.Context, usecase.RedeemPasswordResetInput) error {
	return s.err
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_Register_Created(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{registerOut: &usecase.RegisterOutput{User: &entity.User{ID: uuid.New()}}}
	e.POST("/api/register", NewAuthHandler(uc, discardLogger()).Register)

	rec := doJSON(e, http.MethodPost, "/api/register",
		`{"email":"firulais@petstar.com","password":"huellas1234","petStar":"Firulais"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "New user created", decodeBody(t, rec)["msg"])
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	e.POST("/api/register", NewAuthHandler(&stubAuthUsecase{}, discardLogger()).Register)

	// petStar is absent
	rec := doJSON(e, http.MethodPost, "/api/register",
		`{"email":"firulais@petstar.com","password":"huellas1234"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email, password and petstar fields are required", decodeBody(t, rec)["msg"])
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{registerErr: domainerrors.ErrEmailTaken}
	e.POST("/api/register", NewAuthHandler(uc, discardLogger()).Register)

	rec := doJSON(e, http.MethodPost, "/api/register",
		`{"email":"firulais@petstar.com","password":"huellas1234","petStar":"Firulais"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The email used is already in use", decodeBody(t, rec)["msg"])
}

func TestAuthHandler_Login_OK(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{loginOut: &usecase.LoginOutput{
		Token: "session-token",
		User: &entity.User{
			ID:        uuid.New(),
			Email:     "firulais@petstar.com",
			PetStar:   "Firulais",
			UserPhoto: "photo.jpg",
		},
	}}
	e.POST("/api/login", NewAuthHandler(uc, discardLogger()).Login)

	rec := doJSON(e, http.MethodPost, "/api/login",
		`{"email":"firulais@petstar.com","password":"huellas1234"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Ok", body["msg"])
	assert.Equal(t, "session-token", body["jwt_token"])

	userData, ok := body["user_data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "firulais@petstar.com", userData["email"])
	assert.Equal(t, "Firulais", userData["petStar"])
	assert.Equal(t, "photo.jpg", userData["userphoto"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{loginErr: domainerrors.ErrInvalidCredentials}
	e.POST("/api/login", NewAuthHandler(uc, discardLogger()).Login)

	rec := doJSON(e, http.MethodPost, "/api/login",
		`{"email":"firulais@petstar.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["msg"])
}

func TestAuthHandler_RedeemPasswordReset_Expired(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{err: domainerrors.ErrResetTokenExpired}
	e.PUT("/api/restorePassword", NewAuthHandler(uc, discardLogger()).RedeemPasswordReset)

	rec := doJSON(e, http.MethodPut, "/api/restorePassword",
		`{"uuid":"`+uuid.NewString()+`","password":"new-password"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Link expired", decodeBody(t, rec)["msg"])
}

func TestAuthHandler_RedeemPasswordReset_UnknownToken(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{err: domainerrors.ErrResetTokenNotFound}
	e.PUT("/api/restorePassword", NewAuthHandler(uc, discardLogger()).RedeemPasswordReset)

	rec := doJSON(e, http.MethodPut, "/api/restorePassword",
		`{"uuid":"`+uuid.NewString()+`","password":"new-password"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "UUID not found", decodeBody(t, rec)["msg"])
}
