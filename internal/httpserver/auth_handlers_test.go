package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	middleware "github.com/ecomstack/order_service/internal/middleware/auth"
	"github.com/ecomstack/order_service/internal/models"
	"github.com/ecomstack/order_service/internal/tokens"
)

func TestRegisterHandler(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{"username": "test_user", "password": "password"}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/register", body, 0)
	require.NoError(t, env.AuthH.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	resp := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	require.Equal(t, "test_user", user.Username)
	require.Equal(t, "user", user.Role)

	rec2, c2 := env.doJSONRequest(http.MethodPost, "/api/v1/register", body, 0)
	require.NoError(t, env.AuthH.Register(c2))
	require.Equal(t, http.StatusConflict, rec2.Code)
}

func TestLoginHandlerIssuesTokens(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{"username": "test_user", "password": "password"}
	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/register", body, 0)
	require.NoError(t, env.AuthH.Register(c))

	rec, c2 := env.doJSONRequest(http.MethodPost, "/api/v1/login", body, 0)
	require.NoError(t, env.AuthH.Login(c2))
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	resp := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	require.NotEmpty(t, data.RefreshToken)

	claims, err := tokens.AccessClaimsFromToken(data.AccessToken, []byte("test-jwt-secret"))
	require.NoError(t, err)
	require.Equal(t, "user", claims.Role)

	userID, err := tokens.UserIDFromSubject(claims.Subject)
	require.NoError(t, err)
	require.EqualValues(t, 1, userID)

	var refreshCount int64
	require.NoError(t, env.DB.Model(&models.RefreshToken{}).Count(&refreshCount).Error)
	require.EqualValues(t, 1, refreshCount)
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{"username": "test_user", "password": "password"}
	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/register", body, 0)
	require.NoError(t, env.AuthH.Register(c))

	rec, c2 := env.doJSONRequest(http.MethodPost, "/api/v1/login",
		map[string]string{"username": "test_user", "password": "wrong"}, 0)
	require.NoError(t, env.AuthH.Login(c2))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthMiddleware(t *testing.T) {
	env := newTestEnv(t)

	secret := []byte("test-jwt-secret")
	accessToken, exp, err := tokens.NewAccessToken(7, "user", secret)
	require.NoError(t, err)

	mw := middleware.NewSimpleAuth(secret)
	next := func(c echo.Context) error {
		id, ok := c.Get("user_id").(uint)
		require.True(t, ok)
		require.EqualValues(t, 7, id)
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.AddCookie(tokens.CreateCookie("accessToken", accessToken, "/", exp))
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)

	require.NoError(t, mw.RequireAuth(next)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthMiddlewareMissingToken(t *testing.T) {
	env := newTestEnv(t)

	mw := middleware.NewSimpleAuth([]byte("test-jwt-secret"))
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)

	err := mw.RequireAuth(next)(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}
