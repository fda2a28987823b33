package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ecomstack/order_service/internal/gateway"
	"github.com/ecomstack/order_service/internal/models"
	"github.com/ecomstack/order_service/internal/repo"
	"github.com/ecomstack/order_service/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	OrderH   *OrderHTTP
	PaymentH *PaymentHTTP
	AuthH    *AuthHTTP
}

type stubGateway struct {
	name    string
	success bool
}

func (g stubGateway) ProcessPayment(amount float64, data map[string]any) gateway.Result {
	return gateway.Result{
		Success:       g.success,
		TransactionID: "STUB_123",
		Message:       "stub",
		Gateway:       g.name,
	}
}

func (g stubGateway) Name() string { return g.name }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := &repo.GormRepo{DB: db}

	mgr := gateway.NewManager(nil)
	mgr.Register(stubGateway{name: "always_ok", success: true})
	mgr.Register(stubGateway{name: "always_fail", success: false})

	env := &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		OrderH: &OrderHTTP{Svc: &service.OrderService{
			Repo: r,
		}},
		PaymentH: &PaymentHTTP{Svc: &service.PaymentService{
			Repo:     r,
			Gateways: mgr,
		}},
		AuthH: &AuthHTTP{Svc: &service.AuthService{
			Repo:          r,
			JWTSecret:     []byte("test-jwt-secret"),
			RefreshSecret: []byte("test-refresh-secret"),
		}},
	}

	return env
}

// doJSONRequest builds an echo context for a direct handler call with the
// caller already resolved, the way the auth middleware would leave it.
func (env *testEnv) doJSONRequest(method, path string, body any, userID uint) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	if userID != 0 {
		c.Set("user_id", userID)
	}
	return rec, c
}

type apiEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
	Err     string              `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func (env *testEnv) createOrder(userID uint) models.Order {
	env.T.Helper()

	body := map[string]any{
		"customer_name":    "John Doe",
		"customer_email":   "john@example.com",
		"customer_phone":   "1234567890",
		"shipping_address": "123 Main St",
		"items": []map[string]any{
			{"product_name": "Product 1", "quantity": 2, "price": 10.50},
			{"product_name": "Product 2", "quantity": 1, "price": 25.00},
		},
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", body, userID)
	require.NoError(env.T, env.OrderH.CreateOrder(c))
	require.Equal(env.T, http.StatusCreated, rec.Code)

	var order models.Order
	resp := decodeEnvelope(env.T, rec)
	require.NoError(env.T, json.Unmarshal(resp.Data, &order))
	return order
}

func (env *testEnv) confirmOrder(order models.Order) models.Order {
	env.T.Helper()
	require.NoError(env.T, env.DB.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("status", models.OrderStatusConfirmed).Error)
	order.Status = models.OrderStatusConfirmed
	return order
}
