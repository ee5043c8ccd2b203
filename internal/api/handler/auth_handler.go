package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/core/ports"
)

// AuthHandler exposes login and account activation.
type AuthHandler struct {
	service ports.AuthService
	logger  zerolog.Logger
}

func NewAuthHandler(service ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type activateRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login handles credential authentication
// @Summary      Log in
// @Description  Exchanges email and password for a signed access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  loginRequest  true  "Credentials"
// @Success      200  {object}  loginResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid email or password."})
		case errors.Is(err, domain.ErrUserInactive):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "This account has not been activated."})
		default:
			h.logger.Error().Err(err).Str("email", req.Email).Msg("login failed")
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "An internal server error occurred."})
		}
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: toUserResponse(*user)})
}

// Activate handles invited account activation
// @Summary      Activate an invited account
// @Description  Consumes a one-time invite token and sets the account password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  activateRequest  true  "Invite token and new password"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/activate [post]
func (h *AuthHandler) Activate(c echo.Context) error {
	var req activateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Activate(c.Request().Context(), req.Token, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInviteTokenInvalid):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid or expired invite token."})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid or expired invite token."})
		default:
			h.logger.Error().Err(err).Msg("account activation failed")
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "An internal server error occurred."})
		}
	}

	return c.JSON(http.StatusOK, toUserResponse(*user))
}
