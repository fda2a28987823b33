package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ecomstack/order_service/internal/logging"
	"github.com/ecomstack/order_service/internal/models"
	"github.com/ecomstack/order_service/internal/service"
	"github.com/ecomstack/order_service/internal/transport"
	"github.com/ecomstack/order_service/internal/util"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) GetPayments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.get_payments")

	userID, err := callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	page, offset, limit := pageParams(c)
	orderID := util.ParseIntDefault(c.QueryParam("order_id"), 0)

	total, payments, err := h.Svc.List(ctx, userID, uint(orderID), offset, limit)
	if err != nil {
		return serviceError(c, l, "Failed to list payments", err)
	}

	l.Info("get_payments_success", "total", total)
	return respondData(c, http.StatusOK, map[string]any{
		"data": payments,
		"meta": pageMeta(page, limit, offset, total),
	})
}

// CreatePayment returns 201 for a settled payment and 400 for a declined one;
// both outcomes carry the persisted payment in the envelope.
func (h *PaymentHTTP) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.create_payment")

	userID, err := callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_payment_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	payment, err := h.Svc.Create(ctx, userID, req)
	if err != nil {
		return serviceError(c, l, "Failed to process payment", err)
	}

	if payment.Status == models.PaymentStatusSuccessful {
		l.Info("create_payment_success", "payment_id", payment.PaymentID, "order_id", payment.OrderID)
		return respondMessage(c, http.StatusCreated, "Payment processed successfully", payment)
	}

	l.Info("create_payment_declined", "payment_id", payment.PaymentID, "order_id", payment.OrderID)
	return respondMessage(c, http.StatusBadRequest, "Payment processing failed", payment)
}

func (h *PaymentHTTP) GetPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.get_payment")

	userID, err := callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_payment_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	payment, err := h.Svc.Get(ctx, userID, uint(id))
	if err != nil {
		return serviceError(c, l, "Failed to get payment", err)
	}

	return respondData(c, http.StatusOK, payment)
}
