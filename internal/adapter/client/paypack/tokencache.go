package paypack

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const tokenCacheKey = "paypack-agent-token"

// tokenExpiryMargin is subtracted from the provider-reported lifetime so a
// token is refreshed before it can expire mid-request.
const tokenExpiryMargin = 60 * time.Second

type authenticateFn func(ctx context.Context) (token string, expiresIn time.Duration, err error)

// TokenCache keeps the agent access token between requests. Authentication
// only happens on a miss; a failed refresh leaves the cache empty so the next
// caller retries.
type TokenCache struct {
	cache *gocache.Cache
}

func NewTokenCache() *TokenCache {
	return &TokenCache{
		cache: gocache.New(gocache.NoExpiration, time.Minute),
	}
}

func (t *TokenCache) GetValidToken(ctx context.Context, authenticate authenticateFn) (string, error) {
	if token, found := t.cache.Get(tokenCacheKey); found {
		return token.(string), nil
	}

	token, expiresIn, err := authenticate(ctx)
	if err != nil {
		return "", err
	}

	ttl := expiresIn - tokenExpiryMargin
	if ttl <= 0 {
		ttl = expiresIn
	}
	t.cache.Set(tokenCacheKey, token, ttl)

	return token, nil
}

func (t *TokenCache) Invalidate() {
	t.cache.Delete(tokenCacheKey)
}
