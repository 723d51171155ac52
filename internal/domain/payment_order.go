package domain

import "time"

type OrderStatus string

const (
	StatusCreated OrderStatus = "created"
	StatusPaid    OrderStatus = "paid"
)

// PaymentOrder is the local record of a gateway order. The gateway assigns
// the order id; this service never generates one.
type PaymentOrder struct {
	OrderID          string      `json:"orderId" gorm:"primaryKey;size:64"`
	Name             string      `json:"name" gorm:"not null"`
	Email            string      `json:"email" gorm:"not null;index"`
	Phone            string      `json:"phone" gorm:"not null"`
	Amount           int64       `json:"amount" gorm:"not null"`
	Currency         string      `json:"currency" gorm:"size:8"`
	Receipt          string      `json:"receipt" gorm:"size:64"`
	Status           OrderStatus `json:"status" gorm:"type:enum('created','paid');default:'created'"`
	PaymentID        string      `json:"paymentId,omitempty" gorm:"size:64"`
	PaymentSignature string      `json:"paymentSignature,omitempty" gorm:"size:128"`
	EnrollmentID     string      `json:"enrollmentId,omitempty" gorm:"size:16"`
	CreatedAt        time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	PaidAt           *time.Time  `json:"paidAt,omitempty"`
}
