package mysql

import (
	"context"
	"errors"
	"time"

	"payment-service/internal/domain"
	"payment-service/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.PaymentOrder) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) FindByID(orderID string) (*domain.PaymentOrder, error) {
	var o domain.PaymentOrder
	if err := r.db.First(&o, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindLatest() (*domain.PaymentOrder, error) {
	var o domain.PaymentOrder
	if err := r.db.Order("created_at DESC").First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// MarkPaid applies the paid transition as a single field-level update so a
// retried verification re-applies the same values instead of failing.
func (r *orderRepo) MarkPaid(orderID, paymentID, signature, enrollmentID string, paidAt time.Time) error {
	result := r.db.Model(&domain.PaymentOrder{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{
			"payment_id":        paymentID,
			"payment_signature": signature,
			"status":            domain.StatusPaid,
			"enrollment_id":     enrollmentID,
			"paid_at":           paidAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
