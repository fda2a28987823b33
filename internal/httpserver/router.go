package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/ecomstack/order_service/internal/middleware/auth"
)

type Deps struct {
	OrderHandler   *OrderHTTP
	PaymentHandler *PaymentHTTP
	AuthHandler    *AuthHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)

	authMW := middleware.NewSimpleAuth(d.JWTSecret)

	orders := v1.Group("/orders", authMW.RequireAuth)
	orders.GET("", d.OrderHandler.GetOrders)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/search", d.OrderHandler.SearchOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PUT("/:id", d.OrderHandler.UpdateOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)

	payments := v1.Group("/payments", authMW.RequireAuth)
	payments.GET("", d.PaymentHandler.GetPayments)
	payments.POST("", d.PaymentHandler.CreatePayment)
	payments.GET("/:id", d.PaymentHandler.GetPayment)
}
