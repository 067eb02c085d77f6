package startups

import (
	"context"
	"strings"

	"github.com/spec-kit/investor-insight/internal/domain"
)

// MockProvider serves a fixed in-memory dataset for environments without
// Airtable credentials. Production deployments should never reach it.
type MockProvider struct {
	records []domain.Startup
}

// NewMockProvider builds the provider with the built-in dataset.
func NewMockProvider() *MockProvider {
	return &MockProvider{records: mockStartups()}
}

// Source identifies the backing store.
func (p *MockProvider) Source() string {
	return "mock"
}

// List returns dataset entries matching the filters.
func (p *MockProvider) List(_ context.Context, filters Filters) ([]domain.Startup, error) {
	result := make([]domain.Startup, 0, len(p.records))
	for _, s := range p.records {
		if matchesFilters(s, filters) {
			result = append(result, s)
		}
	}
	return result, nil
}

// GetByName looks up a startup by case-insensitive name.
func (p *MockProvider) GetByName(_ context.Context, name string) (*domain.Startup, error) {
	for i := range p.records {
		if strings.EqualFold(p.records[i].Name, name) {
			s := p.records[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func mockStartups() []domain.Startup {
	return []domain.Startup{
		{
			ID:               "1",
			Name:             "TechInnovate",
			Country:          "USA",
			Category:         "SaaS",
			Industry:         []string{"Technology", "AI"},
			Description:      "AI-powered business intelligence platform",
			Revenue:          2500000,
			Fundraising:      5000000,
			YearFounded:      2019,
			Employees:        45,
			AnalysisRating:   8,
			AnalysisContent:  "Strong growth trajectory with innovative product.",
			FundingStage:     "Series A",
			DevelopmentStage: "Growth",
			TargetMarket:     "Enterprise",
			Customers:        "Fortune 500 companies",
			ARR:              2000000,
			GrossMargin:      0.75,
			LogoURL:          "/placeholder.svg?height=80&width=80",
			URL:              "https://techinnovate.example.com",
		},
		{
			ID:               "2",
			Name:             "GreenEnergy",
			Country:          "Germany",
			Category:         "CleanTech",
			Industry:         []string{"Energy", "Sustainability"},
			Description:      "Renewable energy solutions for residential buildings",
			Revenue:          1800000,
			Fundraising:      3500000,
			YearFounded:      2020,
			Employees:        32,
			AnalysisRating:   7,
			AnalysisContent:  "Promising technology with growing market demand.",
			FundingStage:     "Seed",
			DevelopmentStage: "Early Growth",
			TargetMarket:     "Residential",
			Customers:        "Homeowners and property developers",
			ARR:              1500000,
			GrossMargin:      0.65,
			LogoURL:          "/placeholder.svg?height=80&width=80",
			URL:              "https://greenenergy.example.com",
		},
		{
			ID:               "3",
			Name:             "HealthTech",
			Country:          "UK",
			Category:         "HealthTech",
			Industry:         []string{"Healthcare", "Technology"},
			Description:      "Remote patient monitoring for chronic conditions",
			Revenue:          1200000,
			Fundraising:      2800000,
			YearFounded:      2021,
			Employees:        24,
			AnalysisRating:   7,
			AnalysisContent:  "Solid clinical partnerships and recurring revenue.",
			FundingStage:     "Seed",
			DevelopmentStage: "Early Growth",
			TargetMarket:     "Healthcare providers",
			Customers:        "Hospitals and clinics",
			ARR:              1000000,
			GrossMargin:      0.7,
			LogoURL:          "/placeholder.svg?height=80&width=80",
			URL:              "https://healthtech.example.com",
		},
		{
			ID:               "4",
			Name:             "FinFlow",
			Country:          "Singapore",
			Category:         "FinTech",
			Industry:         []string{"Finance", "Technology"},
			Description:      "Cross-border payment infrastructure for SMEs",
			Revenue:          3400000,
			Fundraising:      8000000,
			YearFounded:      2018,
			Employees:        68,
			AnalysisRating:   9,
			AnalysisContent:  "Market leader in its segment with strong unit economics.",
			FundingStage:     "Series B",
			DevelopmentStage: "Scaling",
			TargetMarket:     "SME",
			Customers:        "Small and medium exporters",
			ARR:              3100000,
			GrossMargin:      0.8,
			LogoURL:          "/placeholder.svg?height=80&width=80",
			URL:              "https://finflow.example.com",
		},
	}
}
