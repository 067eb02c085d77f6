package startups

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/investor-insight/internal/config"
	"github.com/spec-kit/investor-insight/internal/domain"
	"github.com/spec-kit/investor-insight/internal/persistence"
)

// ErrNotFound signals no startup matches the requested name.
var ErrNotFound = errors.New("startup not found")

// Filters narrows a portfolio listing.
type Filters struct {
	Category string
	Country  string
	Year     int
}

// Provider serves portfolio records. The auth core never touches this; it
// exists so the dashboard's data surface is real.
type Provider interface {
	List(ctx context.Context, filters Filters) ([]domain.Startup, error)
	GetByName(ctx context.Context, name string) (*domain.Startup, error)
	// Source names the backing store ("airtable" or "mock") so responses
	// and operators can tell when fallback data is being served.
	Source() string
}

// New selects the provider for the current configuration. Missing Airtable
// credentials select the mock dataset, which is never silent: the choice is
// logged as a warning and surfaced through Source().
func New(cfg config.AirtableConfig, redis *persistence.Redis, logger *zap.Logger) Provider {
	if !cfg.Configured() {
		logger.Warn("airtable credentials missing; serving mock startup data")
		return NewMockProvider()
	}

	provider := NewAirtableProvider(cfg, logger)
	return NewCacheProvider(provider, redis, cfg.CacheTTL, logger)
}

func matchesFilters(s domain.Startup, filters Filters) bool {
	if filters.Category != "" && s.Category != filters.Category {
		return false
	}
	if filters.Country != "" && s.Country != filters.Country {
		return false
	}
	if filters.Year != 0 && s.YearFounded != filters.Year {
		return false
	}
	return true
}
