package http

import (
	"errors"
	"net/http"

	"payment-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *services.PaymentService
}

func NewHandler(s *services.PaymentService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.POST("/create-order", h.CreateOrder)
	r.POST("/verify-payment", h.VerifyPayment)
	r.GET("/test-store", h.StoreCheck)
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "payment service running")
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user details"})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req.Name, req.Email, req.Phone, req.Amount, req.IdempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingDetails):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user details"})
		case errors.Is(err, services.ErrGateway):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Order creation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order creation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, VerifyPaymentResponse{Success: false, Message: "Invalid signature"})
		return
	}

	enrollmentID, err := h.service.VerifyPayment(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, VerifyPaymentResponse{Success: false, Message: "Invalid signature"})
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, VerifyPaymentResponse{
		Success:      true,
		Message:      "Payment verified",
		EnrollmentID: enrollmentID,
	})
}

func (h *Handler) StoreCheck(c *gin.Context) {
	order, err := h.service.StoreCheck(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store check failed"})
		return
	}
	if order == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No data found"})
		return
	}
	c.JSON(http.StatusOK, order)
}
