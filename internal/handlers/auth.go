package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cyclegear/storefront/internal/auth"
	"github.com/cyclegear/storefront/internal/logging"
)

type AuthHandler struct {
	Auth *auth.Store
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return authError(l, "login_failed", err)
	}

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req auth.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_failed", "status", 400, "reason", "invalid body")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Auth.Signup(ctx, req)
	if err != nil {
		return authError(l, "signup_failed", err)
	}

	l.Info("signup_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.Auth.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Auth.Snapshot())
}

func authError(l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		l.Warn(op, "status", 401, "reason", "invalid credentials")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, auth.ErrEmailTaken):
		l.Warn(op, "status", 409, "reason", "email taken")
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, auth.ErrValidation):
		l.Warn(op, "status", 400, "reason", "validation", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrAttemptInFlight):
		l.Warn(op, "status", 429, "reason", "attempt in flight")
		return echo.NewHTTPError(http.StatusTooManyRequests, "authentication attempt in flight")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		l.Warn(op, "status", 408, "reason", "aborted", "error", err)
		return echo.NewHTTPError(http.StatusRequestTimeout, "authentication aborted")
	default:
		l.Error(op, "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
