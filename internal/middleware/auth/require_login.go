package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomstack/order_service/internal/tokens"
)

type SimpleAuth struct {
	JWTSecret []byte
}

func NewSimpleAuth(secret []byte) *SimpleAuth {
	return &SimpleAuth{JWTSecret: secret}
}

func (m *SimpleAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accessCookie, err := c.Cookie("accessToken")
		if err != nil || accessCookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(accessCookie.Value, m.JWTSecret)
		if err != nil || claims == nil {
			c.SetCookie(tokens.DeleteCookie("accessToken", "/"))
			c.SetCookie(tokens.DeleteCookie("refreshToken", "/"))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		userID, err := tokens.UserIDFromSubject(claims.Subject)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set("user_id", userID)
		c.Set("role", claims.Role)

		return next(c)
	}
}
