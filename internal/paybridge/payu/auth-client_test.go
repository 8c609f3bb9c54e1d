package payu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paybridge/pkg/logging"
)

func TestAuthenticate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pl/standard/user/oauth/authorize", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "topsecret", r.PostForm.Get("client_secret"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer","expires_in":43199}`))
	}))
	defer server.Close()

	client := NewAuthClient(AuthConfig{
		BaseURL:      server.URL,
		ClientID:     "client-1",
		ClientSecret: "topsecret",
	}, logging.NewNop())

	token, err := client.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestAuthenticateNoAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Bad credentials"}`))
	}))
	defer server.Close()

	client := NewAuthClient(AuthConfig{
		BaseURL:      server.URL,
		ClientID:     "client-1",
		ClientSecret: "wrong",
	}, logging.NewNop())

	token, err := client.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.ErrorContains(t, err, "invalid_client")
	assert.Empty(t, token)
}
