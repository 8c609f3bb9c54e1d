package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"paybridge/internal/common/payuprotocol"
	"paybridge/internal/paybridge/service"
	"paybridge/pkg/logging"
)

const signatureHeader = "OpenPayU-Signature"

type NotificationHandler struct {
	service  NotificationService
	verifier SignatureVerifier
	logger   *logging.ZapLogger
}

type NotificationService interface {
	HandleNotification(ctx context.Context, notification payuprotocol.Notification) error
}

// SignatureVerifier authenticates the raw notification body before it is
// decoded. Verification runs against the unparsed bytes, so the body is read
// up front instead of streamed into the decoder.
type SignatureVerifier interface {
	Verify(header string, body []byte) error
}

func NewNotificationHandler(
	service NotificationService,
	verifier SignatureVerifier,
	logger *logging.ZapLogger,
) *NotificationHandler {
	return &NotificationHandler{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}
}

// ServeHTTP responds with bare status codes: the processor ignores response
// bodies and redelivers the notification on anything but 2xx.
func (h *NotificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.ErrorCtx(r.Context(), "error reading notification body", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.verifier.Verify(r.Header.Get(signatureHeader), body); err != nil {
		h.logger.DebugCtx(r.Context(), "notification signature rejected", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	notification := payuprotocol.Notification{}
	if err := json.Unmarshal(body, &notification); err != nil {
		h.logger.DebugCtx(r.Context(), "notification decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.service.HandleNotification(r.Context(), notification); err != nil {
		switch {
		case errors.Is(err, service.ErrMalformedNotification):
			h.logger.DebugCtx(r.Context(), "malformed notification", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.logger.ErrorCtx(r.Context(), "notification handling error", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
