package dto

import "github.com/spec-kit/investor-insight/internal/domain"

// StartupListResponse wraps a portfolio listing. Source names the backing
// store so clients can tell when mock data is being served.
type StartupListResponse struct {
	Startups []domain.Startup `json:"startups"`
	Source   string           `json:"source"`
}

// StartupResponse wraps a single record.
type StartupResponse struct {
	Startup domain.Startup `json:"startup"`
	Source  string         `json:"source"`
}
