package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomstack/order_service/internal/logging"
	"github.com/ecomstack/order_service/internal/service"
	"github.com/ecomstack/order_service/internal/tokens"
	"github.com/ecomstack/order_service/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("register_error", "status", 422, "error", err)
			return respondFail(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrConflict):
			l.Warn("register_error", "status", 409, "error", err)
			return respondFail(c, http.StatusConflict, "user already exists")
		default:
			l.Error("register_error", "status", 500, "error", err)
			return respondFault(c, http.StatusInternalServerError, "Failed to register", err)
		}
	}

	l.Info("register_success", "user_id", user.ID)
	return respondData(c, http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			l.Warn("login_error", "status", 401, "error", err)
			return respondFail(c, http.StatusUnauthorized, "invalid username or password")
		}
		l.Error("login_error", "status", 500, "error", err)
		return respondFault(c, http.StatusInternalServerError, "Failed to login", err)
	}

	c.SetCookie(tokens.CreateCookie("accessToken", res.AccessToken, "/", res.AccessExp))
	c.SetCookie(tokens.CreateCookie("refreshToken", res.RefreshToken, "/", res.RefreshExp))

	l.Info("login_success")
	return respondData(c, http.StatusOK, map[string]any{
		"access_token":  res.AccessToken,
		"refresh_token": res.RefreshToken,
		"is_admin":      res.IsAdmin,
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	refreshCookie, err := c.Cookie("refreshToken")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "refresh token missing")
	}

	if err := h.Svc.Logout(ctx, refreshCookie.Value); err != nil {
		l.Error("logout_error", "status", 500, "error", err)
		return respondFault(c, http.StatusInternalServerError, "Failed to logout", err)
	}

	c.SetCookie(tokens.DeleteCookie("accessToken", "/"))
	c.SetCookie(tokens.DeleteCookie("refreshToken", "/"))

	l.Info("logout_success")
	return respondMessage(c, http.StatusOK, "logged out", nil)
}
