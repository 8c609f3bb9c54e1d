package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paybridge/internal/common/storeprotocol"
	"paybridge/internal/paybridge/payu"
	"paybridge/internal/paybridge/service"
	"paybridge/pkg/logging"
)

type stubSubmissionService struct {
	redirectURL string
	err         error
	calls       int
	lastOrder   *storeprotocol.CheckoutOrder
}

func (s *stubSubmissionService) SubmitOrder(
	_ context.Context,
	order *storeprotocol.CheckoutOrder,
	_ string,
) (string, error) {
	s.calls++
	s.lastOrder = order
	return s.redirectURL, s.err
}

func submitPayment(t *testing.T, svc OrderSubmissionService, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewPaymentSubmissionHandler(svc, logging.NewNop())
	r := httptest.NewRequest(http.MethodPost, "/payu", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestPaymentSubmission(t *testing.T) {
	svc := &stubSubmissionService{redirectURL: "https://pay.example/r/123"}

	w := submitPayment(t, svc, `{"cart":{"order":{"id":"ECW-1","total":19.99,"items":[{"name":"Mug","price":19.99,"quantity":1}]}}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"redirectUrl":"https://pay.example/r/123"}`, w.Body.String())
	require.Equal(t, 1, svc.calls)
	require.NotNil(t, svc.lastOrder)
	assert.Equal(t, "ECW-1", svc.lastOrder.ID)
}

func TestPaymentSubmissionMissingOrder(t *testing.T) {
	svc := &stubSubmissionService{err: service.ErrMissingOrder}

	w := submitPayment(t, svc, `{"cart":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"no order data received"}`, w.Body.String())
	require.Equal(t, 1, svc.calls)
	assert.Nil(t, svc.lastOrder)
}

func TestPaymentSubmissionInvalidBody(t *testing.T) {
	svc := &stubSubmissionService{}

	w := submitPayment(t, svc, `{"cart":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestPaymentSubmissionRejected(t *testing.T) {
	svc := &stubSubmissionService{
		err: payu.ErrOrderRejected,
	}

	w := submitPayment(t, svc, `{"cart":{"order":{"id":"ECW-1","total":19.99}}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rejected")
}

func TestPaymentSubmissionInternalError(t *testing.T) {
	svc := &stubSubmissionService{err: errors.New("processor unreachable")}

	w := submitPayment(t, svc, `{"cart":{"order":{"id":"ECW-1","total":19.99}}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"payment initialization failed"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "unreachable")
}
