package startups

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/investor-insight/internal/config"
)

func newAirtableTestProvider(t *testing.T, handler http.HandlerFunc) *AirtableProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider := NewAirtableProvider(config.AirtableConfig{
		APIKey:    "test-key",
		BaseID:    "appBASE",
		TableName: "Startups",
	}, zap.NewNop())
	provider.baseURL = server.URL
	return provider
}

func airtableBody(records ...map[string]any) []byte {
	raw, _ := json.Marshal(map[string]any{"records": records})
	return raw
}

func TestAirtableProvider_List(t *testing.T) {
	t.Parallel()

	provider := newAirtableTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/appBASE/Startups", r.URL.Path)

		w.Write(airtableBody(
			map[string]any{
				"id": "recAAA",
				"fields": map[string]any{
					"Name":         "TechInnovate",
					"Country":      "USA",
					"Category":     "SaaS",
					"Industry":     []string{"Technology"},
					"Revenue":      2500000,
					"Year Founded": 2019,
					"ARR":          2000000,
					"Gross Margin": 0.75,
				},
			},
			map[string]any{
				"id": "recBBB",
				"fields": map[string]any{
					"Name":         "GreenEnergy",
					"Country":      "Germany",
					"Category":     "CleanTech",
					"Year Founded": 2020,
				},
			},
		))
	})

	all, err := provider.List(context.Background(), Filters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "recAAA", all[0].ID)
	assert.Equal(t, "TechInnovate", all[0].Name)
	assert.Equal(t, 2019, all[0].YearFounded)
	assert.Equal(t, 0.75, all[0].GrossMargin)

	filtered, err := provider.List(context.Background(), Filters{Country: "Germany"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "GreenEnergy", filtered[0].Name)
}

func TestAirtableProvider_ListFollowsPagination(t *testing.T) {
	t.Parallel()

	calls := 0
	provider := newAirtableTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("offset") == "" {
			w.Write([]byte(`{"records":[{"id":"rec1","fields":{"Name":"One"}}],"offset":"page2"}`))
			return
		}
		assert.Equal(t, "page2", r.URL.Query().Get("offset"))
		w.Write([]byte(`{"records":[{"id":"rec2","fields":{"Name":"Two"}}]}`))
	})

	all, err := provider.List(context.Background(), Filters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 2, calls)
}

func TestAirtableProvider_GetByName(t *testing.T) {
	t.Parallel()

	provider := newAirtableTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		formula := r.URL.Query().Get("filterByFormula")
		assert.Contains(t, formula, "TechInnovate")

		w.Write(airtableBody(map[string]any{
			"id":     "recAAA",
			"fields": map[string]any{"Name": "TechInnovate"},
		}))
	})

	s, err := provider.GetByName(context.Background(), "TechInnovate")
	require.NoError(t, err)
	assert.Equal(t, "recAAA", s.ID)
}

func TestAirtableProvider_GetByNameNotFound(t *testing.T) {
	t.Parallel()

	provider := newAirtableTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"records":[]}`))
	})

	_, err := provider.GetByName(context.Background(), "Missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAirtableProvider_UpstreamError(t *testing.T) {
	t.Parallel()

	provider := newAirtableTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := provider.List(context.Background(), Filters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
