package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ecomstack/order_service/internal/gateway"
	"github.com/ecomstack/order_service/internal/models"
	"github.com/ecomstack/order_service/internal/repo"
	"github.com/ecomstack/order_service/internal/transport"
)

func initTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := initTestDB(t)
	return &OrderService{Repo: &repo.GormRepo{DB: db}}, db
}

func newPaymentService(t *testing.T) (*PaymentService, *OrderService, *gorm.DB) {
	t.Helper()
	db := initTestDB(t)
	r := &repo.GormRepo{DB: db}

	mgr := gateway.NewManager(nil)
	mgr.Register(stubGateway{name: "always_ok", success: true})
	mgr.Register(stubGateway{name: "always_fail", success: false})

	orderSvc := &OrderService{Repo: r}
	paymentSvc := &PaymentService{Repo: r, Gateways: mgr}
	return paymentSvc, orderSvc, db
}

type stubGateway struct {
	name    string
	success bool
}

func (g stubGateway) ProcessPayment(amount float64, data map[string]any) gateway.Result {
	msg := "Payment processed successfully"
	if !g.success {
		msg = "Payment failed"
	}
	return gateway.Result{
		Success:       g.success,
		TransactionID: "STUB_123",
		Message:       msg,
		Gateway:       g.name,
	}
}

func (g stubGateway) Name() string { return g.name }

func sampleCreateRequest() transport.CreateOrderRequest {
	return transport.CreateOrderRequest{
		CustomerName:    "John Doe",
		CustomerEmail:   "john@example.com",
		CustomerPhone:   "1234567890",
		ShippingAddress: "123 Main St",
		Items: []transport.OrderItemPayload{
			{ProductName: "Product 1", Quantity: 2, Price: 10.50},
			{ProductName: "Product 2", Quantity: 1, Price: 25.00},
		},
	}
}

func strPtr(s string) *string { return &s }
