package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"paybridge/internal/common/payuprotocol"
	"paybridge/internal/common/storeprotocol"
	"paybridge/pkg/logging"
	"paybridge/pkg/money"
)

const defaultCustomerIP = "127.0.0.1"

type OrchestratorConfig struct {
	NotifyURL       string
	MerchantPosID   string
	DefaultCurrency string
}

// Orchestrator runs the submission leg: checkout payload in, processor order
// out, redirect target back. It holds no state between calls; duplicate
// submissions create duplicate processor orders on purpose.
type Orchestrator struct {
	cfg           OrchestratorConfig
	authenticator Authenticator
	processor     ProcessorGateway
	logger        *logging.ZapLogger
}

func NewOrchestrator(
	cfg OrchestratorConfig,
	authenticator Authenticator,
	processor ProcessorGateway,
	logger *logging.ZapLogger,
) *Orchestrator {
	return &Orchestrator{
		cfg:           cfg,
		authenticator: authenticator,
		processor:     processor,
		logger:        logger,
	}
}

func (o *Orchestrator) SubmitOrder(
	ctx context.Context,
	order *storeprotocol.CheckoutOrder,
	clientIP string,
) (string, error) {
	if order == nil {
		return "", ErrMissingOrder
	}

	totalAmount, err := money.ToMinorUnits(order.Total)
	if err != nil {
		return "", fmt.Errorf("converting order total: %w", err)
	}
	products := make([]payuprotocol.Product, len(order.Items))
	for i, item := range order.Items {
		unitPrice, err := money.ToMinorUnits(item.Price)
		if err != nil {
			return "", fmt.Errorf("converting unit price of %q: %w", item.Name, err)
		}
		products[i] = payuprotocol.Product{
			Name:      item.Name,
			UnitPrice: unitPrice,
			Quantity:  item.Quantity,
		}
	}

	token, err := o.authenticator.Authenticate(ctx)
	if err != nil {
		return "", err //nolint:wrapcheck // propagated unchanged, no order is submitted
	}

	currency := order.Currency
	if currency == "" {
		currency = o.cfg.DefaultCurrency
	}
	if clientIP == "" {
		clientIP = defaultCustomerIP
	}

	request := payuprotocol.OrderRequest{
		NotifyURL:     o.cfg.NotifyURL,
		CustomerIP:    clientIP,
		MerchantPosID: o.cfg.MerchantPosID,
		Description:   fmt.Sprintf("Order #%s", order.ID),
		CurrencyCode:  currency,
		TotalAmount:   strconv.FormatInt(totalAmount, 10),
		ExtOrderID:    order.ID,
		Products:      products,
	}

	o.logger.DebugCtx(
		ctx,
		"submitting processor order",
		zap.String("extOrderId", order.ID),
		zap.String("totalAmount", request.TotalAmount),
		zap.String("currencyCode", currency),
	)

	response, err := o.processor.CreateOrder(ctx, token, request)
	if err != nil {
		return "", err //nolint:wrapcheck // unnecessary
	}

	o.logger.InfoCtx(
		ctx,
		"processor order created",
		zap.String("extOrderId", order.ID),
		zap.String("processorOrderId", response.OrderID),
	)
	return response.RedirectURI, nil
}
