package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paybridge/internal/common/storeprotocol"
	"paybridge/pkg/logging"
)

func TestSetPaymentStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v3/store-7/orders/ECW-1/payment_status", r.URL.Path)
		assert.Equal(t, "Bearer store-token", r.Header.Get("Authorization"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"paymentStatus":"PAID"}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(Config{
		BaseURL:  server.URL,
		StoreID:  "store-7",
		APIToken: "store-token",
	}, logging.NewNop())

	err := client.SetPaymentStatus(context.Background(), "ECW-1", storeprotocol.Paid)
	assert.NoError(t, err)
}

func TestSetPaymentStatusRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"errorMessage":"Order not found"}`))
	}))
	defer server.Close()

	client := New(Config{
		BaseURL:  server.URL,
		StoreID:  "store-7",
		APIToken: "store-token",
	}, logging.NewNop())

	err := client.SetPaymentStatus(context.Background(), "ECW-404", storeprotocol.Paid)
	assert.ErrorIs(t, err, ErrUpdateFailed)
	assert.ErrorContains(t, err, "Order not found")
}
