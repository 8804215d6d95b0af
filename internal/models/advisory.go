package models

// TaxTip is a single actionable tax-saving tip
type TaxTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Savings     string `json:"savings,omitempty"`
	Section     string `json:"section,omitempty"`
}

// InvestmentSuggestion is a tax-planner recommendation for one instrument
type InvestmentSuggestion struct {
	Instrument string  `json:"instrument"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason"`
}
