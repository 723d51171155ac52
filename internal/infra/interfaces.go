package infra

import "context"

type GatewayClientInterface interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error)
}

var _ GatewayClientInterface = (*GatewayClient)(nil)
