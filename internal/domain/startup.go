package domain

// Startup is a portfolio company record as served by the data provider.
type Startup struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Country          string   `json:"country"`
	Category         string   `json:"category"`
	Industry         []string `json:"industry"`
	Description      string   `json:"description"`
	Revenue          float64  `json:"revenue"`
	Fundraising      float64  `json:"fundraising"`
	YearFounded      int      `json:"yearFounded"`
	Employees        int      `json:"employees"`
	AnalysisRating   float64  `json:"analysisRating"`
	AnalysisContent  string   `json:"analysisContent"`
	FundingStage     string   `json:"fundingStage"`
	DevelopmentStage string   `json:"productionDevelopmentStage"`
	TargetMarket     string   `json:"targetMarket"`
	Customers        string   `json:"customers"`
	ARR              float64  `json:"ARR"`
	GrossMargin      float64  `json:"grossMargin"`
	LogoURL          string   `json:"logo"`
	URL              string   `json:"url"`
}
