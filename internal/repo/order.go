package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecomstack/order_service/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *GormRepo) ListOrders(ctx context.Context, userID uint, status string, offset, limit int) (int64, []models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	orders := make([]models.Order, 0, limit)
	if err := q.Preload("Items").Preload("Payments").
		Order("created_at DESC, id DESC").Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return 0, nil, err
	}
	return total, orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, userID, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").Preload("Payments").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder persists the patched order and, when replaceItems is set, swaps
// the whole item set in the same transaction. order.Items must already carry
// the replacement rows in that case.
func (r *GormRepo) UpdateOrder(ctx context.Context, order *models.Order, replaceItems bool) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replaceItems {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			for i := range order.Items {
				order.Items[i].ID = 0
				order.Items[i].OrderID = order.ID
			}
			if err := tx.Create(&order.Items).Error; err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(order).Error
	})
}

func (r *GormRepo) DeleteOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, order.ID).Error
	})
}

func (r *GormRepo) CountOrderPayments(ctx context.Context, orderID uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Payment{}).
		Where("order_id = ?", orderID).Count(&n).Error
	return n, err
}
