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
	ErrAuthenticationFailed = errors.New("processor authentication failed")
)

const authorizePath = "/pl/standard/user/oauth/authorize"

type AuthConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// AuthClient performs the client-credentials token exchange. Tokens are not
// cached here; see pkg/tokencache for the opt-in wrapper.
type AuthClient struct {
	client *resty.Client
	cfg    AuthConfig
	logger *logging.ZapLogger
}

func NewAuthClient(cfg AuthConfig, logger *logging.ZapLogger) *AuthClient {
	return &AuthClient{
		client: resty.New().SetBaseURL(cfg.BaseURL),
		cfg:    cfg,
		logger: logger,
	}
}

func (c *AuthClient) Authenticate(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.cfg.ClientID,
			"client_secret": c.cfg.ClientSecret,
		}).
		Post(authorizePath)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	tokenResponse := payuprotocol.TokenResponse{}
	if err := json.Unmarshal(resp.Body(), &tokenResponse); err != nil {
		c.logger.DebugCtx(ctx, "unparsable token response", zap.Error(err))
		return "", fmt.Errorf("%w: %s", ErrAuthenticationFailed, resp.Body())
	}
	if tokenResponse.AccessToken == "" {
		c.logger.DebugCtx(ctx, "token response has no access token", zap.ByteString("body", resp.Body()))
		return "", fmt.Errorf("%w: %s", ErrAuthenticationFailed, resp.Body())
	}
	return tokenResponse.AccessToken, nil
}
