package startups

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/investor-insight/internal/config"
	"github.com/spec-kit/investor-insight/internal/domain"
)

func TestNew_FallsBackToMockWithoutCredentials(t *testing.T) {
	t.Parallel()

	provider := New(config.AirtableConfig{}, nil, zap.NewNop())
	assert.Equal(t, "mock", provider.Source())
}

func TestNew_UsesAirtableWhenConfigured(t *testing.T) {
	t.Parallel()

	cfg := config.AirtableConfig{APIKey: "key", BaseID: "base", TableName: "Startups"}
	provider := New(cfg, nil, zap.NewNop())
	assert.Equal(t, "airtable", provider.Source())
}

func TestMockProvider_List(t *testing.T) {
	t.Parallel()

	provider := NewMockProvider()

	all, err := provider.List(context.Background(), Filters{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	saas, err := provider.List(context.Background(), Filters{Category: "SaaS"})
	require.NoError(t, err)
	for _, s := range saas {
		assert.Equal(t, "SaaS", s.Category)
	}
	assert.Less(t, len(saas), len(all))

	german2020, err := provider.List(context.Background(), Filters{Country: "Germany", Year: 2020})
	require.NoError(t, err)
	require.Len(t, german2020, 1)
	assert.Equal(t, "GreenEnergy", german2020[0].Name)

	none, err := provider.List(context.Background(), Filters{Country: "Atlantis"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMockProvider_GetByName(t *testing.T) {
	t.Parallel()

	provider := NewMockProvider()

	s, err := provider.GetByName(context.Background(), "techinnovate")
	require.NoError(t, err)
	assert.Equal(t, "TechInnovate", s.Name)

	_, err = provider.GetByName(context.Background(), "NoSuchStartup")
	assert.ErrorIs(t, err, ErrNotFound)
}

type countingProvider struct {
	inner Provider
	lists int
	gets  int
}

func (p *countingProvider) Source() string { return p.inner.Source() }

func (p *countingProvider) List(ctx context.Context, f Filters) ([]domain.Startup, error) {
	p.lists++
	return p.inner.List(ctx, f)
}

func (p *countingProvider) GetByName(ctx context.Context, name string) (*domain.Startup, error) {
	p.gets++
	return p.inner.GetByName(ctx, name)
}

func TestCacheProvider_DegradesWithoutRedis(t *testing.T) {
	t.Parallel()

	counting := &countingProvider{inner: NewMockProvider()}
	cached := NewCacheProvider(counting, nil, 0, zap.NewNop())

	assert.Equal(t, "mock", cached.Source())

	for i := 0; i < 2; i++ {
		_, err := cached.List(context.Background(), Filters{})
		require.NoError(t, err)
		_, err = cached.GetByName(context.Background(), "FinFlow")
		require.NoError(t, err)
	}

	// With no cache backend every call reaches the inner provider; requests
	// must still succeed.
	assert.Equal(t, 2, counting.lists)
	assert.Equal(t, 2, counting.gets)
}

func TestCacheProvider_NotFoundPassesThrough(t *testing.T) {
	t.Parallel()

	cached := NewCacheProvider(NewMockProvider(), nil, 0, zap.NewNop())

	_, err := cached.GetByName(context.Background(), "NoSuchStartup")
	assert.ErrorIs(t, err, ErrNotFound)
}
