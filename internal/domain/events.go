package domain

import "time"

type OrderCreatedEvent struct {
	OrderID   string    `json:"orderId"`
	Email     string    `json:"email"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
}

type PaymentVerifiedEvent struct {
	OrderID      string    `json:"orderId"`
	PaymentID    string    `json:"paymentId"`
	EnrollmentID string    `json:"enrollmentId"`
	PaidAt       time.Time `json:"paidAt"`
}

// OrderOrphanedEvent marks a remote order that was created at the gateway but
// whose local record could not be written. A reconciliation consumer picks
// these up.
type OrderOrphanedEvent struct {
	OrderID string    `json:"orderId"`
	Email   string    `json:"email"`
	Amount  int64     `json:"amount"`
	Reason  string    `json:"reason"`
	At      time.Time `json:"at"`
}
