package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecomstack/order_service/internal/models"
)

func (r *GormRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(payment).Error
	})
}

// Payments are scoped to the caller through the owning order, a payment id
// belonging to another user's order behaves like a missing row.
func (r *GormRepo) paymentsForUser(ctx context.Context, userID uint) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&models.Payment{}).
		Select("payments.*").
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("orders.user_id = ?", userID)
}

func (r *GormRepo) ListPayments(ctx context.Context, userID, orderID uint, offset, limit int) (int64, []models.Payment, error) {
	q := r.paymentsForUser(ctx, userID)
	if orderID != 0 {
		q = q.Where("payments.order_id = ?", orderID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	payments := make([]models.Payment, 0, limit)
	if err := q.Order("payments.created_at DESC, payments.id DESC").
		Offset(offset).Limit(limit).
		Find(&payments).Error; err != nil {
		return 0, nil, err
	}
	return total, payments, nil
}

func (r *GormRepo) GetPayment(ctx context.Context, userID, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.paymentsForUser(ctx, userID).
		Where("payments.id = ?", id).
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
