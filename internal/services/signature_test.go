package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentSignature_Deterministic(t *testing.T) {
	a := PaymentSignature(TestSecret, TestOrderID, TestPaymentID)
	b := PaymentSignature(TestSecret, TestOrderID, TestPaymentID)

	assert.Equal(t, a, b)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), a)
}

func TestPaymentSignature_SensitiveToEveryInput(t *testing.T) {
	base := PaymentSignature(TestSecret, TestOrderID, TestPaymentID)

	assert.NotEqual(t, base, PaymentSignature(TestSecret, TestOrderID+"x", TestPaymentID))
	assert.NotEqual(t, base, PaymentSignature(TestSecret, TestOrderID, TestPaymentID+"x"))
	assert.NotEqual(t, base, PaymentSignature("other-secret", TestOrderID, TestPaymentID))
}

func TestVerifySignature(t *testing.T) {
	valid := PaymentSignature(TestSecret, TestOrderID, TestPaymentID)

	assert.True(t, VerifySignature(TestSecret, TestOrderID, TestPaymentID, valid))
	assert.False(t, VerifySignature(TestSecret, TestOrderID, TestPaymentID, ""))
	assert.False(t, VerifySignature(TestSecret, TestOrderID, TestPaymentID, flipLastChar(valid)))
	assert.False(t, VerifySignature(TestSecret, "order_other", TestPaymentID, valid))
}
