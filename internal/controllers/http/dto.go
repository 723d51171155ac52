package http

type CreateOrderRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Amount         int64  `json:"amount" binding:"omitempty,min=1"`
	IdempotencyKey string `json:"idempotency_key"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type VerifyPaymentResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	EnrollmentID string `json:"enrollmentId,omitempty"`
}
