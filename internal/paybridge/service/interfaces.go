package service

import (
	"context"

	"paybridge/internal/common/payuprotocol"
	"paybridge/internal/common/storeprotocol"
)

type Authenticator interface {
	Authenticate(ctx context.Context) (string, error)
}

type ProcessorGateway interface {
	CreateOrder(ctx context.Context, token string, order payuprotocol.OrderRequest) (payuprotocol.OrderResponse, error)
}

type StoreGateway interface {
	SetPaymentStatus(ctx context.Context, orderID string, status storeprotocol.PaymentStatus) error
}
