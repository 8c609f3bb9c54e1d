package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"paybridge/internal/common/storeprotocol"
	"paybridge/pkg/logging"
)

var (
	ErrUpdateFailed = errors.New("store payment status update failed")
)

const paymentStatusPath = "/api/v3/{storeId}/orders/{orderId}/payment_status"

type Config struct {
	BaseURL  string
	StoreID  string
	APIToken string
}

// Client updates order payment status on the storefront API. Delivery is
// single-shot; the processor's redelivery of notifications is the only retry
// loop around it.
type Client struct {
	client *resty.Client
	cfg    Config
	logger *logging.ZapLogger
}

func New(cfg Config, logger *logging.ZapLogger) *Client {
	return &Client{
		client: resty.New().SetBaseURL(cfg.BaseURL),
		cfg:    cfg,
		logger: logger,
	}
}

func (c *Client) SetPaymentStatus(ctx context.Context, orderID string, status storeprotocol.PaymentStatus) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.cfg.APIToken).
		SetPathParams(map[string]string{
			"storeId": c.cfg.StoreID,
			"orderId": orderID,
		}).
		SetBody(storeprotocol.PaymentStatusUpdate{PaymentStatus: status}).
		Put(paymentStatusPath)
	if err != nil {
		return fmt.Errorf("payment status request failed: %w", err)
	}
	if resp.IsError() {
		c.logger.ErrorCtx(
			ctx,
			"store rejected payment status update",
			zap.String("orderId", orderID),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("body", resp.Body()),
		)
		return fmt.Errorf("%w: %s", ErrUpdateFailed, resp.Body())
	}
	return nil
}
