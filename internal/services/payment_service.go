package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"payment-service/internal/domain"
	"payment-service/internal/infra"
	rabbit "payment-service/internal/infra/rabbitmq"
	"payment-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrMissingDetails   = errors.New("missing user details")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrOrderNotFound    = errors.New("order not found")
	ErrGateway          = errors.New("order creation failed")
)

const idempotencyTTL = 24 * time.Hour

type PaymentService struct {
	repo          repository.OrderRepository
	gateway       infra.GatewayClientInterface
	publisher     rabbit.PublisherInterface
	redisClient   *redis.Client
	keySecret     string
	currency      string
	defaultAmount int64

	verifyGroup singleflight.Group
}

func NewPaymentService(r repository.OrderRepository, g infra.GatewayClientInterface, pub rabbit.PublisherInterface, keySecret, currency string, defaultAmount int64) *PaymentService {
	return &PaymentService{
		repo:          r,
		gateway:       g,
		publisher:     pub,
		keySecret:     keySecret,
		currency:      currency,
		defaultAmount: defaultAmount,
	}
}

func (s *PaymentService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// CreateOrder registers a remote order at the gateway and persists the local
// record with status "created". The gateway order object is returned so the
// handler can pass it through to the client.
func (s *PaymentService) CreateOrder(ctx context.Context, name, email, phone string, amount int64, idempotencyKey string) (*infra.GatewayOrder, error) {
	if name == "" || email == "" || phone == "" {
		return nil, ErrMissingDetails
	}
	if amount < 0 {
		return nil, ErrMissingDetails
	}
	if amount == 0 {
		amount = s.defaultAmount
	}

	if prev := s.lookupIdempotent(ctx, idempotencyKey); prev != nil {
		return prev, nil
	}

	receipt := "receipt_" + uuid.NewString()

	gwOrder, err := s.gateway.CreateOrder(ctx, amount, s.currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	order := &domain.PaymentOrder{
		OrderID:   gwOrder.ID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Amount:    amount,
		Currency:  gwOrder.Currency,
		Receipt:   receipt,
		Status:    domain.StatusCreated,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(order); err != nil {
		// The remote order exists but the local record does not. Hand the
		// orphan to reconciliation before failing the request.
		s.reportOrphan(gwOrder.ID, email, amount, err)
		return nil, err
	}

	s.storeIdempotent(ctx, idempotencyKey, gwOrder.ID)

	go s.publishEvent("order.created", domain.OrderCreatedEvent{
		OrderID:   order.OrderID,
		Email:     order.Email,
		Amount:    order.Amount,
		Currency:  order.Currency,
		CreatedAt: order.CreatedAt,
	})

	return gwOrder, nil
}

// VerifyPayment checks the callback signature and transitions the order to
// "paid". Re-verifying an already paid order with the same payment id returns
// the original enrollment id.
func (s *PaymentService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (string, error) {
	if !VerifySignature(s.keySecret, orderID, paymentID, signature) {
		return "", ErrInvalidSignature
	}

	v, err, _ := s.verifyGroup.Do(orderID, func() (any, error) {
		return s.applyPaid(ctx, orderID, paymentID, signature)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *PaymentService) applyPaid(ctx context.Context, orderID, paymentID, signature string) (string, error) {
	order, err := s.repo.FindByID(orderID)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", ErrOrderNotFound
	}

	if order.Status == domain.StatusPaid && order.PaymentID == paymentID {
		return order.EnrollmentID, nil
	}

	enrollmentID, err := newEnrollmentID()
	if err != nil {
		return "", err
	}

	paidAt := time.Now()
	if err := s.repo.MarkPaid(orderID, paymentID, signature, enrollmentID, paidAt); err != nil {
		return "", err
	}

	go s.publishEvent("payment.verified", domain.PaymentVerifiedEvent{
		OrderID:      orderID,
		PaymentID:    paymentID,
		EnrollmentID: enrollmentID,
		PaidAt:       paidAt,
	})

	return enrollmentID, nil
}

// StoreCheck is a diagnostic probe: it pings the store and returns the most
// recent order, nil when the table is empty.
func (s *PaymentService) StoreCheck(ctx context.Context) (*domain.PaymentOrder, error) {
	if err := s.repo.Ping(ctx); err != nil {
		return nil, err
	}
	return s.repo.FindLatest()
}

func (s *PaymentService) lookupIdempotent(ctx context.Context, key string) *infra.GatewayOrder {
	if s.redisClient == nil || key == "" {
		return nil
	}
	orderID, err := s.redisClient.Get(ctx, "idem:"+key).Result()
	if err != nil {
		return nil
	}
	order, err := s.repo.FindByID(orderID)
	if err != nil || order == nil {
		return nil
	}
	return &infra.GatewayOrder{
		ID:       order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   string(order.Status),
	}
}

func (s *PaymentService) storeIdempotent(ctx context.Context, key, orderID string) {
	if s.redisClient == nil || key == "" {
		return
	}
	s.redisClient.Set(ctx, "idem:"+key, orderID, idempotencyTTL)
}

func (s *PaymentService) reportOrphan(orderID, email string, amount int64, cause error) {
	log.Printf("orphaned gateway order %s: %v", orderID, cause)
	go s.publishEvent("order.orphaned", domain.OrderOrphanedEvent{
		OrderID: orderID,
		Email:   email,
		Amount:  amount,
		Reason:  cause.Error(),
		At:      time.Now(),
	})
}

func (s *PaymentService) publishEvent(routingKey string, evt any) {
	if err := s.publisher.Publish(context.Background(), routingKey, evt); err != nil {
		log.Printf("failed to publish %s event: %v", routingKey, err)
	}
}

func newEnrollmentID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ENROLL-%d", 100000+n.Int64()), nil
}
