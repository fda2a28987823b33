package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ecomstack/order_service/internal/gateway"
	"github.com/ecomstack/order_service/internal/logging"
	"github.com/ecomstack/order_service/internal/models"
	"github.com/ecomstack/order_service/internal/mykafka"
	"github.com/ecomstack/order_service/internal/repo"
	"github.com/ecomstack/order_service/internal/transport"
)

type PaymentService struct {
	Repo     *repo.GormRepo
	Gateways *gateway.Manager
	Producer *mykafka.Producer
}

// Create settles a payment attempt for a confirmed order. Both gateway
// outcomes persist a Payment row; only validation, ownership, the status gate
// and unknown gateways prevent one from being written.
func (s *PaymentService) Create(ctx context.Context, userID uint, req transport.CreatePaymentRequest) (*models.Payment, error) {
	if err := validateCreatePayment(req); err != nil {
		return nil, err
	}

	order, err := s.Repo.GetOrder(ctx, userID, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, req.OrderID)
		}
		return nil, err
	}

	if order.Status != models.OrderStatusConfirmed {
		return nil, ErrOrderNotConfirmed
	}

	gw, err := s.Gateways.Get(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	result := gw.ProcessPayment(order.Total, map[string]any{
		"order_id":       order.ID,
		"payment_method": req.PaymentMethod,
	})

	rawResult, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal gateway result: %w", err)
	}

	status := models.PaymentStatusFailed
	if result.Success {
		status = models.PaymentStatusSuccessful
	}

	payment := &models.Payment{
		PaymentID:       result.TransactionID,
		OrderID:         order.ID,
		Status:          status,
		PaymentMethod:   req.PaymentMethod,
		Amount:          order.Total,
		GatewayResponse: string(rawResult),
	}

	if err := s.Repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	s.publish(ctx, payment)

	return payment, nil
}

func (s *PaymentService) List(ctx context.Context, userID, orderID uint, offset, limit int) (int64, []models.Payment, error) {
	return s.Repo.ListPayments(ctx, userID, orderID, offset, limit)
}

func (s *PaymentService) Get(ctx context.Context, userID, id uint) (*models.Payment, error) {
	payment, err := s.Repo.GetPayment(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: payment %d", ErrNotFound, id)
		}
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) publish(ctx context.Context, payment *models.Payment) {
	event := map[string]any{
		"type":           "payment_processed",
		"payment_id":     payment.PaymentID,
		"order_id":       payment.OrderID,
		"status":         payment.Status,
		"payment_method": payment.PaymentMethod,
		"amount":         payment.Amount,
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicPaymentEvents, fmt.Sprint(payment.OrderID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish failed", "event", "payment_processed", "error", err)
	}
}
