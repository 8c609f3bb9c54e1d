package tokencache

import (
	"context"
	"sync"
	"time"
)

// Source issues a fresh bearer token.
type Source interface {
	Authenticate(ctx context.Context) (string, error)
}

// Cache memoizes the token issued by its Source for a fixed time. A single
// entry suffices because the issuing client id is fixed per Source.
type Cache struct {
	source    Source
	ttl       time.Duration
	now       func() time.Time
	mux       sync.Mutex
	token     string
	expiresAt time.Time
}

func New(source Source, ttl time.Duration) *Cache {
	return &Cache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Authenticate returns the cached token while it is fresh, otherwise asks the
// Source for a new one. Refreshes are serialized; failures are not cached.
func (c *Cache) Authenticate(ctx context.Context) (string, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}
	token, err := c.source.Authenticate(ctx)
	if err != nil {
		return "", err //nolint:wrapcheck // unnecessary
	}
	c.token = token
	c.expiresAt = c.now().Add(c.ttl)
	return token, nil
}
