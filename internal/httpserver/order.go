package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ecomstack/order_service/internal/logging"
	"github.com/ecomstack/order_service/internal/service"
	"github.com/ecomstack/order_service/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	userID, err := callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	page, offset, limit := pageParams(c)

	total, orders, err := h.Svc.List(ctx, userID, c.QueryParam("status"), offset, limit)
	if err != nil {
		return serviceError(c, l, "Failed to list orders", err)
	}

	l.Info("get_orders_success", "total", total)
	return respondData(c, http.StatusOK, map[string]any{
		"data": orders,
		"meta": pageMeta(page, limit, offset, total),
	})
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	userID, err := callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Create(ctx, userID, req)
	if err != nil {
		return serviceError(c, l, "Failed to create order", err)
	}

	l.Info("create_order_success", "order_id", order.ID, "total", order.Total)
	return respondMessage(c, http.StatusCreated, "Order created successfully", order)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	userID, err := callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_order_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	order, err := h.Svc.Get(ctx, userID, uint(id))
	if err != nil {
		return serviceError(c, l, "Failed to get order", err)
	}

	return respondData(c, http.StatusOK, order)
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_order")

	userID, err := callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Update(ctx, userID, uint(id), req)
	if err != nil {
		return serviceError(c, l, "Failed to update order", err)
	}

	l.Info("update_order_success", "order_id", order.ID)
	return respondMessage(c, http.StatusOK, "Order updated successfully", order)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_order")

	userID, err := callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_order_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.Delete(ctx, userID, uint(id)); err != nil {
		return serviceError(c, l, "Failed to delete order", err)
	}

	l.Info("delete_order_success", "order_id", id)
	return respondMessage(c, http.StatusOK, "Order deleted successfully", nil)
}

func (h *OrderHTTP) SearchOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.search_orders")

	userID, err := callerID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_orders_error", "status", 400, "reason", "empty query")
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	page, offset, limit := pageParams(c)

	total, hits, err := h.Svc.Search(ctx, userID, q, offset, limit)
	if err != nil {
		return serviceError(c, l, "Failed to search orders", err)
	}

	l.Info("search_orders_success", "total", total)
	return respondData(c, http.StatusOK, map[string]any{
		"data": hits,
		"meta": pageMeta(page, limit, offset, total),
	})
}
