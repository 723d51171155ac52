package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGatewayClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(9900), req["amount"])
		assert.Equal(t, "INR", req["currency"])
		assert.NotEmpty(t, req["receipt"])
		assert.Equal(t, float64(1), req["payment_capture"])

		json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "order_abc",
			Amount:   9900,
			Currency: "INR",
			Receipt:  req["receipt"].(string),
			Status:   "created",
		})
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, "key_id", "key_secret", 2*time.Second)
	order, err := client.CreateOrder(context.Background(), 9900, "INR", "receipt_1")

	assert.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, int64(9900), order.Amount)
}

func TestGatewayClient_CreateOrder_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, "key_id", "wrong", 2*time.Second)
	order, err := client.CreateOrder(context.Background(), 9900, "INR", "receipt_1")

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "status 401")
}

func TestGatewayClient_CreateOrder_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, "key_id", "key_secret", 2*time.Second)
	order, err := client.CreateOrder(context.Background(), 9900, "INR", "receipt_1")

	assert.Error(t, err)
	assert.Nil(t, order)
}

func TestGatewayClient_CreateOrder_Unreachable(t *testing.T) {
	client := NewGatewayClient("http://127.0.0.1:1", "key_id", "key_secret", 500*time.Millisecond)
	order, err := client.CreateOrder(context.Background(), 9900, "INR", "receipt_1")

	assert.Error(t, err)
	assert.Nil(t, order)
}
