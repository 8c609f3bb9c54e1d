package config

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"paybridge/internal/paybridge"
	"paybridge/internal/paybridge/payu"
	"paybridge/internal/paybridge/service"
	"paybridge/internal/paybridge/store"
)

const (
	serverAddressFlag    = "a"
	serverAddressEnv     = "RUN_ADDRESS"
	serverAddressDefault = "localhost:3000"

	payuBaseURLFlag    = "payu-url"
	payuBaseURLEnv     = "PAYU_API_URL"
	payuBaseURLDefault = ""

	payuClientIDFlag    = "payu-client-id"
	payuClientIDEnv     = "PAYU_CLIENT_ID"
	payuClientIDDefault = ""

	payuClientSecretFlag    = "payu-client-secret"
	payuClientSecretEnv     = "PAYU_CLIENT_SECRET"
	payuClientSecretDefault = ""

	payuPosIDFlag    = "payu-pos-id"
	payuPosIDEnv     = "PAYU_POS_ID"
	payuPosIDDefault = ""

	payuSecondKeyFlag    = "payu-second-key"
	payuSecondKeyEnv     = "PAYU_SECOND_KEY"
	payuSecondKeyDefault = ""

	payuTokenTTLFlag    = "payu-token-ttl"
	payuTokenTTLEnv     = "PAYU_TOKEN_TTL"
	payuTokenTTLDefault = time.Duration(0)

	storeBaseURLFlag    = "ecwid-url"
	storeBaseURLEnv     = "ECWID_API_URL"
	storeBaseURLDefault = "https://app.ecwid.com"

	storeIDFlag    = "ecwid-store-id"
	storeIDEnv     = "ECWID_STORE_ID"
	storeIDDefault = ""

	storeTokenFlag    = "ecwid-token"
	storeTokenEnv     = "ECWID_API_TOKEN"
	storeTokenDefault = ""

	notifyBaseURLFlag    = "notify-url"
	notifyBaseURLEnv     = "NOTIFY_BASE_URL"
	notifyBaseURLDefault = ""
)

const (
	defaultCurrency = "PLN"
	notifyPath      = "/payu/notify"
)

type Config struct {
	Server          paybridge.Config
	PayUAuth        payu.AuthConfig
	PayUOrders      payu.OrderConfig
	PayUSecondKey   string
	TokenCacheTTL   time.Duration
	Store           store.Config
	Orchestrator    service.OrchestratorConfig
	ShutdownTimeout time.Duration
}

// Load reads flags with environment overrides. A .env file is picked up by
// the godotenv autoload import. Missing required values fail here, at
// startup, never per-request.
func Load() (*Config, error) {
	serverAddress := flag.String(
		serverAddressFlag,
		serverAddressDefault,
		"Server address host:port",
	)

	payuBaseURL := flag.String(
		payuBaseURLFlag,
		payuBaseURLDefault,
		"PayU API base URL",
	)

	payuClientID := flag.String(
		payuClientIDFlag,
		payuClientIDDefault,
		"PayU OAuth client id",
	)

	payuClientSecret := flag.String(
		payuClientSecretFlag,
		payuClientSecretDefault,
		"PayU OAuth client secret",
	)

	payuPosID := flag.String(
		payuPosIDFlag,
		payuPosIDDefault,
		"PayU merchant point-of-sale id",
	)

	payuSecondKey := flag.String(
		payuSecondKeyFlag,
		payuSecondKeyDefault,
		"PayU second key for notification signature verification (empty disables it)",
	)

	payuTokenTTL := flag.Duration(
		payuTokenTTLFlag,
		payuTokenTTLDefault,
		"PayU bearer token cache TTL (0 re-authenticates per submission)",
	)

	storeBaseURL := flag.String(
		storeBaseURLFlag,
		storeBaseURLDefault,
		"Ecwid API base URL",
	)

	storeID := flag.String(
		storeIDFlag,
		storeIDDefault,
		"Ecwid store id",
	)

	storeToken := flag.String(
		storeTokenFlag,
		storeTokenDefault,
		"Ecwid API token",
	)

	notifyBaseURL := flag.String(
		notifyBaseURLFlag,
		notifyBaseURLDefault,
		"Public base URL PayU calls back on",
	)

	flag.Parse()

	for env, target := range map[string]*string{
		serverAddressEnv:    serverAddress,
		payuBaseURLEnv:      payuBaseURL,
		payuClientIDEnv:     payuClientID,
		payuClientSecretEnv: payuClientSecret,
		payuPosIDEnv:        payuPosID,
		payuSecondKeyEnv:    payuSecondKey,
		storeBaseURLEnv:     storeBaseURL,
		storeIDEnv:          storeID,
		storeTokenEnv:       storeToken,
		notifyBaseURLEnv:    notifyBaseURL,
	} {
		if valStr, ok := os.LookupEnv(env); ok {
			*target = valStr
		}
	}

	if valStr, ok := os.LookupEnv(payuTokenTTLEnv); ok {
		ttl, err := time.ParseDuration(valStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", payuTokenTTLEnv, err)
		}
		*payuTokenTTL = ttl
	}

	if err := checkRequired(map[string]string{
		payuBaseURLEnv:      *payuBaseURL,
		payuClientIDEnv:     *payuClientID,
		payuClientSecretEnv: *payuClientSecret,
		payuPosIDEnv:        *payuPosID,
		storeIDEnv:          *storeID,
		storeTokenEnv:       *storeToken,
		notifyBaseURLEnv:    *notifyBaseURL,
	}); err != nil {
		return nil, err
	}

	return &Config{
		Server: paybridge.Config{
			ServerAddress:   *serverAddress,
			ShutdownTimeout: time.Second * 5,
		},
		PayUAuth: payu.AuthConfig{
			BaseURL:      *payuBaseURL,
			ClientID:     *payuClientID,
			ClientSecret: *payuClientSecret,
		},
		PayUOrders: payu.OrderConfig{
			BaseURL: *payuBaseURL,
		},
		PayUSecondKey: *payuSecondKey,
		TokenCacheTTL: *payuTokenTTL,
		Store: store.Config{
			BaseURL:  *storeBaseURL,
			StoreID:  *storeID,
			APIToken: *storeToken,
		},
		Orchestrator: service.OrchestratorConfig{
			NotifyURL:       strings.TrimRight(*notifyBaseURL, "/") + notifyPath,
			MerchantPosID:   *payuPosID,
			DefaultCurrency: defaultCurrency,
		},
		ShutdownTimeout: time.Second * 5,
	}, nil
}

func checkRequired(values map[string]string) error {
	missing := make([]string, 0, len(values))
	for name, value := range values {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
}
