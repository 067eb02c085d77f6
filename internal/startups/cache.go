package startups

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/investor-insight/internal/domain"
	"github.com/spec-kit/investor-insight/internal/persistence"
)

const cacheKeyPrefix = "startups:"

// CacheProvider wraps another provider with a TTL'd Redis cache. Cache
// failures degrade to direct provider calls; they never fail a request.
type CacheProvider struct {
	inner  Provider
	redis  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewCacheProvider builds the wrapper.
func NewCacheProvider(inner Provider, redis *persistence.Redis, ttl time.Duration, logger *zap.Logger) *CacheProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CacheProvider{inner: inner, redis: redis, ttl: ttl, logger: logger}
}

// Source reports the inner provider's store; caching is transparent.
func (p *CacheProvider) Source() string {
	return p.inner.Source()
}

// List serves from cache when possible.
func (p *CacheProvider) List(ctx context.Context, filters Filters) ([]domain.Startup, error) {
	key := listKey(filters)

	var cached []domain.Startup
	if p.get(ctx, key, &cached) {
		return cached, nil
	}

	records, err := p.inner.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	p.set(ctx, key, records)
	return records, nil
}

// GetByName serves from cache when possible.
func (p *CacheProvider) GetByName(ctx context.Context, name string) (*domain.Startup, error) {
	key := cacheKeyPrefix + "name:" + strings.ToLower(name)

	var cached domain.Startup
	if p.get(ctx, key, &cached) {
		return &cached, nil
	}

	record, err := p.inner.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	p.set(ctx, key, record)
	return record, nil
}

func (p *CacheProvider) get(ctx context.Context, key string, dest any) bool {
	if p.redis == nil || p.redis.Client == nil {
		return false
	}
	raw, err := p.redis.Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		p.logger.Warn("discarding corrupt cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (p *CacheProvider) set(ctx context.Context, key string, value any) {
	if p.redis == nil || p.redis.Client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := p.redis.Client.Set(ctx, key, raw, p.ttl).Err(); err != nil {
		p.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func listKey(filters Filters) string {
	return fmt.Sprintf("%slist:%s:%s:%d", cacheKeyPrefix, filters.Category, filters.Country, filters.Year)
}
