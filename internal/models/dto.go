package models

import (
	"math"
	"strconv"
	"strings"
)

// ITRReportRequest carries raw form input from the mobile ITR wizard.
// Monetary fields arrive as strings; invalid or negative values coerce to zero.
type ITRReportRequest struct {
	Name           string            `json:"name" binding:"required"`
	PAN            string            `json:"pan"`
	AssessmentYear string            `json:"assessmentYear"`
	IncomeDetails  map[string]string `json:"incomeDetails"`
	Deductions     map[string]string `json:"deductions"`
	TaxPayments    map[string]string `json:"taxPayments"`
}

// GSTReportRequest carries raw form input from the mobile GST wizard
type GSTReportRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	GSTIN        string `json:"gstin" binding:"required"`
	ReturnType   string `json:"returnType"`
	FilingMonth  int    `json:"filingMonth"`
	FilingYear   int    `json:"filingYear"`

	OutwardSupplies map[string]string `json:"outwardSupplies"`
	OutputTax       map[string]string `json:"outputTax"`
	InwardSupplies  map[string]string `json:"inwardSupplies"`
	ITC             map[string]string `json:"itc"`
	TaxPayments     map[string]string `json:"taxPayments"`
}

// PlannerRequest carries the tax-planner questionnaire input
type PlannerRequest struct {
	AnnualIncome       string `json:"annualIncome" binding:"required"`
	CurrentInvestments string `json:"currentInvestments"`
	RiskAppetite       string `json:"riskAppetite"`
	Goal               string `json:"goal"`
}

// ValidateGSTINRequest asks for a structural GSTIN check
type ValidateGSTINRequest struct {
	GSTIN string `json:"gstin" binding:"required"`
}

// ValidateGSTINResponse is the GSTIN check result
type ValidateGSTINResponse struct {
	GSTIN string `json:"gstin"`
	Valid bool   `json:"valid"`
}

// TipsResponse is the tip catalog payload for one category
type TipsResponse struct {
	Category string   `json:"category"`
	Tips     []TaxTip `json:"tips"`
	Fallback bool     `json:"fallback"`
}

// PlannerResponse is the tax-planner payload
type PlannerResponse struct {
	Suggestions []InvestmentSuggestion `json:"suggestions"`
	Fallback    bool                   `json:"fallback"`
}

// SnapshotRequest stores a raw form snapshot blob for a key
type SnapshotRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// ParseAmount is the single normalization boundary for user-entered money.
// It accepts plain numbers with optional commas and currency prefix and
// returns a non-negative value; anything unparseable coerces to zero.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// NormalizeAmounts converts a raw string map into validated amounts
func NormalizeAmounts(raw map[string]string) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		out[k] = ParseAmount(v)
	}
	return out
}

// NewTaxProfile builds the validated profile for an ITR request
func NewTaxProfile(req ITRReportRequest) TaxProfile {
	return TaxProfile{
		Name:           strings.TrimSpace(req.Name),
		PAN:            strings.ToUpper(strings.TrimSpace(req.PAN)),
		AssessmentYear: strings.TrimSpace(req.AssessmentYear),
		IncomeDetails:  NormalizeAmounts(req.IncomeDetails),
		Deductions:     NormalizeAmounts(req.Deductions),
		TaxPayments:    NormalizeAmounts(req.TaxPayments),
	}
}

// NewGSTProfile builds the validated profile for a GST request
func NewGSTProfile(req GSTReportRequest) GSTProfile {
	return GSTProfile{
		BusinessName:    strings.TrimSpace(req.BusinessName),
		GSTIN:           strings.ToUpper(strings.TrimSpace(req.GSTIN)),
		ReturnType:      strings.ToUpper(strings.TrimSpace(req.ReturnType)),
		FilingMonth:     req.FilingMonth,
		FilingYear:      req.FilingYear,
		OutwardSupplies: NormalizeAmounts(req.OutwardSupplies),
		OutputTax:       NormalizeAmounts(req.OutputTax),
		InwardSupplies:  NormalizeAmounts(req.InwardSupplies),
		ITC:             NormalizeAmounts(req.ITC),
		TaxPayments:     NormalizeAmounts(req.TaxPayments),
	}
}
