package repository

import (
	"context"
	"time"

	"payment-service/internal/domain"
)

type OrderRepository interface {
	Save(order *domain.PaymentOrder) error
	FindByID(orderID string) (*domain.PaymentOrder, error)
	FindLatest() (*domain.PaymentOrder, error)
	MarkPaid(orderID, paymentID, signature, enrollmentID string, paidAt time.Time) error
	Ping(ctx context.Context) error
}
