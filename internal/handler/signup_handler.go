package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ichthyo-signup/internal/logging"
	"ichthyo-signup/internal/service"
)

// SignupRequest is the JSON body posted by the signup form.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse carries the token issued for the new account.
type SignupResponse struct {
	AccessToken string `json:"access_token"`
}

// Signupper is implemented by service.SignupService.
type Signupper interface {
	Signup(ctx context.Context, in service.SignupInput) (service.SignupOutput, error)
}

// SignupHandler exposes the signup endpoint.
type SignupHandler struct {
	signup Signupper
	logger *zap.Logger
}

// NewSignupHandler constructs a SignupHandler.
func NewSignupHandler(signup Signupper, logger *zap.Logger) *SignupHandler {
	return &SignupHandler{signup: signup, logger: logging.OrNop(logger)}
}

// Signup handles POST /api/auth/signup requests.
func (h *SignupHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	out, err := h.signup.Signup(c.Request().Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return Error(c, http.StatusUnprocessableEntity, verr.Message)
		case errors.Is(err, service.ErrEmailAlreadyExists):
			return Error(c, http.StatusConflict, "email already exists")
		default:
			h.logger.Error("signup failed", zap.Error(err))
			return Error(c, http.StatusInternalServerError, "unable to sign up")
		}
	}

	return Success(c, http.StatusCreated, "signup successful", SignupResponse{AccessToken: out.AccessToken})
}

// Health handles GET /healthz.
func Health(c echo.Context) error {
	return Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
}
