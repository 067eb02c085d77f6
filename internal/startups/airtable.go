package startups

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/investor-insight/internal/config"
	"github.com/spec-kit/investor-insight/internal/domain"
)

const airtableBaseURL = "https://api.airtable.com/v0"

// AirtableProvider reads portfolio records from the Airtable REST API.
type AirtableProvider struct {
	apiKey  string
	baseID  string
	table   string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewAirtableProvider builds the provider.
func NewAirtableProvider(cfg config.AirtableConfig, logger *zap.Logger) *AirtableProvider {
	return &AirtableProvider{
		apiKey:  cfg.APIKey,
		baseID:  cfg.BaseID,
		table:   cfg.TableName,
		baseURL: airtableBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// Source identifies the backing store.
func (p *AirtableProvider) Source() string {
	return "airtable"
}

type airtableRecord struct {
	ID     string         `json:"id"`
	Fields airtableFields `json:"fields"`
}

type airtableFields struct {
	Name             string   `json:"Name"`
	Country          string   `json:"Country"`
	Category         string   `json:"Category"`
	Industry         []string `json:"Industry"`
	Description      string   `json:"Description"`
	Revenue          float64  `json:"Revenue"`
	Fundraising      float64  `json:"Fundraising"`
	YearFounded      int      `json:"Year Founded"`
	Employees        int      `json:"Employees"`
	AnalysisRating   float64  `json:"Analysis Rating"`
	AnalysisContent  string   `json:"Analysis Content"`
	FundingStage     string   `json:"Funding Stage"`
	DevelopmentStage string   `json:"Production Development Stage"`
	TargetMarket     string   `json:"Target Market"`
	Customers        string   `json:"Customers"`
	ARR              float64  `json:"ARR"`
	GrossMargin      float64  `json:"Gross Margin"`
	LogoURL          string   `json:"Logo"`
	URL              string   `json:"URL"`
}

type airtableListResponse struct {
	Records []airtableRecord `json:"records"`
	Offset  string           `json:"offset"`
}

// List fetches all records, following pagination offsets, and applies the
// filters locally.
func (p *AirtableProvider) List(ctx context.Context, filters Filters) ([]domain.Startup, error) {
	var all []domain.Startup
	offset := ""

	for {
		page, nextOffset, err := p.fetchPage(ctx, "", offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if nextOffset == "" {
			break
		}
		offset = nextOffset
	}

	result := make([]domain.Startup, 0, len(all))
	for _, s := range all {
		if matchesFilters(s, filters) {
			result = append(result, s)
		}
	}
	return result, nil
}

// GetByName fetches a single record via a filterByFormula lookup.
func (p *AirtableProvider) GetByName(ctx context.Context, name string) (*domain.Startup, error) {
	formula := fmt.Sprintf("LOWER({Name}) = LOWER(%q)", name)
	page, _, err := p.fetchPage(ctx, formula, "")
	if err != nil {
		return nil, err
	}
	if len(page) == 0 {
		return nil, ErrNotFound
	}
	return &page[0], nil
}

func (p *AirtableProvider) fetchPage(ctx context.Context, formula, offset string) ([]domain.Startup, string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", p.baseURL, p.baseID, url.PathEscape(p.table))

	query := url.Values{}
	if formula != "" {
		query.Set("filterByFormula", formula)
	}
	if offset != "" {
		query.Set("offset", offset)
	}
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("airtable request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("airtable responded %d", resp.StatusCode)
	}

	var body airtableListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, "", fmt.Errorf("decode airtable response: %w", err)
	}

	records := make([]domain.Startup, 0, len(body.Records))
	for _, rec := range body.Records {
		records = append(records, mapRecord(rec))
	}
	return records, body.Offset, nil
}

func mapRecord(rec airtableRecord) domain.Startup {
	f := rec.Fields
	return domain.Startup{
		ID:               rec.ID,
		Name:             f.Name,
		Country:          f.Country,
		Category:         f.Category,
		Industry:         f.Industry,
		Description:      f.Description,
		Revenue:          f.Revenue,
		Fundraising:      f.Fundraising,
		YearFounded:      f.YearFounded,
		Employees:        f.Employees,
		AnalysisRating:   f.AnalysisRating,
		AnalysisContent:  f.AnalysisContent,
		FundingStage:     f.FundingStage,
		DevelopmentStage: f.DevelopmentStage,
		TargetMarket:     f.TargetMarket,
		Customers:        f.Customers,
		ARR:              f.ARR,
		GrossMargin:      f.GrossMargin,
		LogoURL:          f.LogoURL,
		URL:              f.URL,
	}
}
