package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecomstack/order_service/internal/models"
	"github.com/ecomstack/order_service/internal/transport"
)

func TestComputeTotal(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 2, Price: 10.50},
		{Quantity: 1, Price: 25.00},
	}
	require.Equal(t, 46.00, ComputeTotal(items))

	require.Equal(t, 0.00, ComputeTotal(nil))

	// rounding to 2 decimal places
	items = []models.OrderItem{
		{Quantity: 3, Price: 19.99},
		{Quantity: 2, Price: 0.05},
	}
	require.Equal(t, 60.07, ComputeTotal(items))
}

func TestCreateOrder(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, sampleCreateRequest())
	require.NoError(t, err)
	require.Equal(t, uint(1), order.UserID)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, 46.00, order.Total)
	require.Len(t, order.Items, 2)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	require.EqualValues(t, 2, itemCount)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	req := transport.CreateOrderRequest{
		CustomerEmail: "not-an-email",
		Items: []transport.OrderItemPayload{
			{ProductName: "", Quantity: 0, Price: -1},
		},
	}

	_, err := svc.Create(ctx, 1, req)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation))

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	require.Contains(t, fe, "customer_name")
	require.Contains(t, fe, "customer_email")
	require.Contains(t, fe, "items.0.product_name")
	require.Contains(t, fe, "items.0.quantity")
	require.Contains(t, fe, "items.0.price")

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	require.EqualValues(t, 0, count, "validation failures must not touch storage")
}

func TestCreateOrderRequiresItems(t *testing.T) {
	svc, _ := newOrderService(t)

	req := sampleCreateRequest()
	req.Items = nil

	_, err := svc.Create(context.Background(), 1, req)
	require.Error(t, err)

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	require.Contains(t, fe, "items")
}

func TestListOrdersStatusFilter(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, sampleCreateRequest())
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, sampleCreateRequest())
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, first.ID, transport.UpdateOrderRequest{Status: strPtr(models.OrderStatusConfirmed)})
	require.NoError(t, err)

	total, orders, err := svc.List(ctx, 1, models.OrderStatusConfirmed, 0, 15)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, orders, 1)
	require.Equal(t, models.OrderStatusConfirmed, orders[0].Status)

	total, orders, err = svc.List(ctx, 1, "", 0, 15)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, orders, 2)
}

func TestUpdateOrderPartialFields(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, sampleCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 1, order.ID, transport.UpdateOrderRequest{
		CustomerName: strPtr("Updated Name"),
		Status:       strPtr(models.OrderStatusConfirmed),
	})
	require.NoError(t, err)
	require.Equal(t, "Updated Name", updated.CustomerName)
	require.Equal(t, models.OrderStatusConfirmed, updated.Status)
	require.Equal(t, "john@example.com", updated.CustomerEmail)
	require.Equal(t, 46.00, updated.Total, "total untouched without item replacement")
	require.Len(t, updated.Items, 2)
}

func TestUpdateOrderReplacesItems(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, sampleCreateRequest())
	require.NoError(t, err)

	newItems := []transport.OrderItemPayload{
		{ProductName: "Product 3", Quantity: 4, Price: 5.25},
	}
	updated, err := svc.Update(ctx, 1, order.ID, transport.UpdateOrderRequest{Items: &newItems})
	require.NoError(t, err)
	require.Equal(t, 21.00, updated.Total)
	require.Len(t, updated.Items, 1)
	require.Equal(t, "Product 3", updated.Items[0].ProductName)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	require.EqualValues(t, 1, itemCount, "old item rows must be gone")
}

func TestUpdateOrderInvalidStatus(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, sampleCreateRequest())
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, order.ID, transport.UpdateOrderRequest{Status: strPtr("shipped")})
	require.Error(t, err)

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	require.Contains(t, fe, "status")
}

func TestOrderOwnershipScoping(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, sampleCreateRequest())
	require.NoError(t, err)

	_, err = svc.Get(ctx, 2, order.ID)
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.Update(ctx, 2, order.ID, transport.UpdateOrderRequest{CustomerName: strPtr("x")})
	require.True(t, errors.Is(err, ErrNotFound))

	err = svc.Delete(ctx, 2, order.ID)
	require.True(t, errors.Is(err, ErrNotFound))

	// still there for its owner
	_, err = svc.Get(ctx, 1, order.ID)
	require.NoError(t, err)
}

func TestDeleteOrder(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, sampleCreateRequest())
	require.NoError(t, err)

	deletable, err := svc.CanBeDeleted(ctx, order)
	require.NoError(t, err)
	require.True(t, deletable)

	require.NoError(t, svc.Delete(ctx, 1, order.ID))

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	require.EqualValues(t, 0, orderCount)
	require.EqualValues(t, 0, itemCount)
}

func TestDeleteOrderWithPaymentsRejected(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, sampleCreateRequest())
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Payment{
		PaymentID:     "CC_test",
		OrderID:       order.ID,
		Status:        models.PaymentStatusSuccessful,
		PaymentMethod: models.PaymentMethodCreditCard,
		Amount:        order.Total,
	}).Error)

	deletable, err := svc.CanBeDeleted(ctx, order)
	require.NoError(t, err)
	require.False(t, deletable)

	err = svc.Delete(ctx, 1, order.ID)
	require.True(t, errors.Is(err, ErrOrderHasPayments))

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.EqualValues(t, 1, orderCount, "rejected delete must leave the order in place")
}
