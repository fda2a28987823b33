package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"

	"github.com/ecomstack/order_service/internal/logging"
	"github.com/ecomstack/order_service/internal/models"
	"github.com/ecomstack/order_service/internal/mykafka"
	"github.com/ecomstack/order_service/internal/repo"
	"github.com/ecomstack/order_service/internal/service/search"
	"github.com/ecomstack/order_service/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer

	// ES is optional; a nil client disables indexing and search.
	ES      *elasticsearch.Client
	ESIndex string
}

// ComputeTotal sums quantity×price over the items, stored to 2 decimal places.
func ComputeTotal(items []models.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}
	return math.Round(total*100) / 100
}

func itemsFromPayload(payload []transport.OrderItemPayload) []models.OrderItem {
	items := make([]models.OrderItem, len(payload))
	for i, it := range payload {
		items[i] = models.OrderItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}
	}
	return items
}

func (s *OrderService) Create(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	items := itemsFromPayload(req.Items)

	order := &models.Order{
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Total:           ComputeTotal(items),
		Status:          models.OrderStatusPending,
		Items:           items,
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, "order_created", order)
	s.index(ctx, order)

	return order, nil
}

func (s *OrderService) List(ctx context.Context, userID uint, status string, offset, limit int) (int64, []models.Order, error) {
	return s.Repo.ListOrders(ctx, userID, status, offset, limit)
}

func (s *OrderService) Get(ctx context.Context, userID, id uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, userID, id uint, req transport.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := validateUpdateOrder(req); err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		order.CustomerEmail = *req.CustomerEmail
	}
	if req.CustomerPhone != nil {
		order.CustomerPhone = *req.CustomerPhone
	}
	if req.ShippingAddress != nil {
		order.ShippingAddress = *req.ShippingAddress
	}
	if req.Status != nil {
		order.Status = *req.Status
	}

	replaceItems := req.Items != nil
	if replaceItems {
		order.Items = itemsFromPayload(*req.Items)
		order.Total = ComputeTotal(order.Items)
	}

	if err := s.Repo.UpdateOrder(ctx, order, replaceItems); err != nil {
		return nil, err
	}

	order, err = s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "order_updated", order)
	s.index(ctx, order)

	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, userID, id uint) error {
	order, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	deletable, err := s.CanBeDeleted(ctx, order)
	if err != nil {
		return err
	}
	if !deletable {
		return ErrOrderHasPayments
	}

	if err := s.Repo.DeleteOrder(ctx, order); err != nil {
		return err
	}

	s.publish(ctx, "order_deleted", order)
	s.deindex(ctx, order.ID)

	return nil
}

// CanBeDeleted reports whether the order owns zero payments. Read-only.
func (s *OrderService) CanBeDeleted(ctx context.Context, order *models.Order) (bool, error) {
	n, err := s.Repo.CountOrderPayments(ctx, order.ID)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *OrderService) Search(ctx context.Context, userID uint, query string, from, size int) (int64, []search.Hit, error) {
	if s.ES == nil {
		return 0, nil, fmt.Errorf("search is not configured")
	}
	return search.Search(ctx, s.ES, s.ESIndex, userID, query, from, size)
}

// Event publication and search indexing are best effort, a broken broker or
// index never fails the request that already committed.
func (s *OrderService) publish(ctx context.Context, eventType string, order *models.Order) {
	event := map[string]any{
		"type":     eventType,
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.Total,
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicOrderEvents, fmt.Sprint(order.ID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish failed", "event", eventType, "error", err)
	}
}

func (s *OrderService) index(ctx context.Context, order *models.Order) {
	if s.ES == nil {
		return
	}
	if err := search.Index(ctx, s.ES, s.ESIndex, order); err != nil {
		logging.FromContext(ctx).Error("search index failed", "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) deindex(ctx context.Context, orderID uint) {
	if s.ES == nil {
		return
	}
	if err := search.Delete(ctx, s.ES, s.ESIndex, orderID); err != nil {
		logging.FromContext(ctx).Error("search deindex failed", "order_id", orderID, "error", err)
	}
}
