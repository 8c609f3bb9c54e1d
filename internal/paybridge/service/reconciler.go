package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"paybridge/internal/common/payuprotocol"
	"paybridge/internal/common/storeprotocol"
	"paybridge/pkg/logging"
)

// Reconciler runs the notification leg: receipt of a well-formed callback is
// treated as the paid signal and forwarded to the store. The embedded status
// field is not inspected. Redelivery of the same payload repeats the same
// store call; the store treats re-marking a PAID order as a no-op.
type Reconciler struct {
	store  StoreGateway
	logger *logging.ZapLogger
}

func NewReconciler(store StoreGateway, logger *logging.ZapLogger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logger,
	}
}

func (r *Reconciler) HandleNotification(ctx context.Context, notification payuprotocol.Notification) error {
	orderID := notification.Order.ExtOrderID
	if orderID == "" {
		return ErrMalformedNotification
	}

	if err := r.store.SetPaymentStatus(ctx, orderID, storeprotocol.Paid); err != nil {
		return fmt.Errorf("marking order %s as paid: %w", orderID, err)
	}

	r.logger.InfoCtx(
		ctx,
		"order marked as paid",
		zap.String("orderId", orderID),
		zap.String("processorOrderId", notification.Order.OrderID),
	)
	return nil
}
