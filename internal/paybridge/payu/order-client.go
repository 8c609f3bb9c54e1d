package payu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"paybridge/internal/common/payuprotocol"
	"paybridge/pkg/logging"
)

var (
	ErrOrderRejected = errors.New("processor rejected order")
)

const ordersPath = "/api/v2_1/orders"

type OrderConfig struct {
	BaseURL string
}

type OrderClient struct {
	client *resty.Client
	logger *logging.ZapLogger
}

func NewOrderClient(cfg OrderConfig, logger *logging.ZapLogger) *OrderClient {
	return &OrderClient{
		client: resty.New().SetBaseURL(cfg.BaseURL),
		logger: logger,
	}
}

// CreateOrder submits the order with the bearer token attached. Success is
// determined by the status code embedded in the response body, not by the
// HTTP status.
func (c *OrderClient) CreateOrder(
	ctx context.Context,
	token string,
	order payuprotocol.OrderRequest,
) (payuprotocol.OrderResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(order).
		Post(ordersPath)
	if err != nil {
		return payuprotocol.OrderResponse{}, fmt.Errorf("order request failed: %w", err)
	}
	res := payuprotocol.OrderResponse{}
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		c.logger.ErrorCtx(ctx, "error unmarshalling order response", zap.Error(err))
		return payuprotocol.OrderResponse{}, fmt.Errorf("%w: %s", ErrOrderRejected, resp.Body())
	}
	c.logger.DebugCtx(
		ctx,
		"processor order response",
		zap.String("statusCode", string(res.Status.StatusCode)),
		zap.String("extOrderId", order.ExtOrderID),
	)
	if res.Status.StatusCode != payuprotocol.Success {
		return payuprotocol.OrderResponse{}, fmt.Errorf("%w: %s", ErrOrderRejected, resp.Body())
	}
	return res, nil
}
