package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"paybridge/internal/common/storeprotocol"
	"paybridge/internal/paybridge/payu"
	"paybridge/internal/paybridge/service"
	"paybridge/pkg/logging"
	"paybridge/pkg/money"
)

type PaymentSubmissionHandler struct {
	service OrderSubmissionService
	logger  *logging.ZapLogger
}

type OrderSubmissionService interface {
	SubmitOrder(ctx context.Context, order *storeprotocol.CheckoutOrder, clientIP string) (string, error)
}

type RedirectResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

func NewPaymentSubmissionHandler(service OrderSubmissionService, logger *logging.ZapLogger) *PaymentSubmissionHandler {
	return &PaymentSubmissionHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PaymentSubmissionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	request, err := decodeJSON[storeprotocol.PaymentRequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		writeError(r.Context(), w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	redirectURL, err := h.service.SubmitOrder(r.Context(), request.Cart.Order, clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingOrder):
			h.logger.DebugCtx(r.Context(), "no order data received")
			writeError(r.Context(), w, http.StatusBadRequest, "no order data received", h.logger)
		case errors.Is(err, money.ErrInvalidAmount):
			h.logger.DebugCtx(r.Context(), "invalid order amount", zap.Error(err))
			writeError(r.Context(), w, http.StatusBadRequest, "invalid order amount", h.logger)
		case errors.Is(err, payu.ErrOrderRejected):
			h.logger.DebugCtx(r.Context(), "order rejected by processor", zap.Error(err))
			writeError(r.Context(), w, http.StatusBadRequest, err.Error(), h.logger)
		default:
			h.logger.ErrorCtx(r.Context(), "payment submission error", zap.Error(err))
			writeError(r.Context(), w, http.StatusInternalServerError, "payment initialization failed", h.logger)
		}
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, RedirectResponse{RedirectURL: redirectURL}, h.logger)
}
