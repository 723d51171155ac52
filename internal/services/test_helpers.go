package services

import (
	"time"

	"payment-service/internal/domain"
	"payment-service/internal/infra"
)

func CreateTestOrder(orderID string, amount int64, status domain.OrderStatus) *domain.PaymentOrder {
	return &domain.PaymentOrder{
		OrderID:   orderID,
		Name:      TestName,
		Email:     TestEmail,
		Phone:     TestPhone,
		Amount:    amount,
		Currency:  TestCurrency,
		Status:    status,
		CreatedAt: time.Now(),
	}
}

func CreateTestGatewayOrder(orderID string, amount int64) *infra.GatewayOrder {
	return &infra.GatewayOrder{
		ID:       orderID,
		Amount:   amount,
		Currency: TestCurrency,
		Receipt:  "receipt_test",
		Status:   "created",
	}
}

const (
	TestName      = "A"
	TestEmail     = "a@x.com"
	TestPhone     = "111"
	TestCurrency  = "INR"
	TestSecret    = "s3cr3t"
	TestAmount    = int64(9900)
	TestDefault   = int64(24900)
	TestOrderID   = "order_test123"
	TestPaymentID = "PAY123"
)
