package advisory

import (
	"fmt"
	"strings"

	"easytax-service/internal/models"
)

// Prompts embed the computed figures and show the required output schema
// inline. The model is told to return raw JSON, but responses are parsed
// defensively either way.

func buildITRPrompt(profile models.TaxProfile, report *models.ITRReport) string {
	var b strings.Builder
	b.WriteString("You are an Indian income tax advisor for FY 2023-24. ")
	b.WriteString("Review this taxpayer's computed return and write practical recommendations.\n\n")
	fmt.Fprintf(&b, "Gross income: %.2f\n", report.GrossIncome)
	fmt.Fprintf(&b, "Total deductions claimed: %.2f\n", report.TotalDeductions)
	fmt.Fprintf(&b, "Taxable income: %.2f\n", report.TaxableIncome)
	fmt.Fprintf(&b, "Tax under old regime: %.2f\n", report.OldRegime.TotalTax)
	fmt.Fprintf(&b, "Tax under new regime: %.2f\n", report.NewRegime.TotalTax)
	fmt.Fprintf(&b, "Optimal regime: %s\n", report.OptimalRegime)
	fmt.Fprintf(&b, "Tax already paid (TDS/advance): %.2f\n", report.TaxPaid)
	fmt.Fprintf(&b, "Suggested form: %s\n", report.SuggestedITRForm)
	for source, amount := range profile.IncomeDetails {
		fmt.Fprintf(&b, "Income from %s: %.2f\n", source, amount)
	}
	b.WriteString("\nReturn ONLY a valid JSON object with no markdown fences, following this schema:\n")
	b.WriteString(`{"recommendations": "2-4 sentences of specific, actionable advice referencing the numbers above"}`)
	return b.String()
}

func buildGSTPrompt(profile models.GSTProfile, report *models.GSTReport) string {
	var b strings.Builder
	b.WriteString("You are an Indian GST compliance advisor. ")
	b.WriteString("Review this return summary and write practical recommendations.\n\n")
	fmt.Fprintf(&b, "Business: %s (GSTIN %s)\n", profile.BusinessName, profile.GSTIN)
	fmt.Fprintf(&b, "Return type: %s, period %s\n", report.ReturnType, report.FilingPeriod)
	fmt.Fprintf(&b, "Total turnover: %.2f\n", report.TotalTurnover)
	fmt.Fprintf(&b, "Output GST: %.2f\n", report.OutputGST)
	fmt.Fprintf(&b, "ITC availed: %.2f\n", report.ITCAvailed)
	fmt.Fprintf(&b, "Net GST payable: %.2f\n", report.NetGSTPayable)
	fmt.Fprintf(&b, "Payments made: %.2f\n", report.TotalPaid)
	fmt.Fprintf(&b, "Compliance status: %s\n", report.ComplianceStatus)
	b.WriteString("\nReturn ONLY a valid JSON object with no markdown fences, following this schema:\n")
	b.WriteString(`{"recommendations": "2-4 sentences of specific, actionable advice referencing the numbers above"}`)
	return b.String()
}

func buildTipsPrompt(category TipCategory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an Indian tax advisor. Generate 8 tax-saving tips for the %q audience, ", category)
	b.WriteString("using current fiscal-year limits (80C cap 1,50,000; 80D; 80CCD(1B) 50,000; standard deduction 50,000).\n\n")
	b.WriteString("Return ONLY a valid JSON array with no markdown fences, following this schema:\n")
	b.WriteString(`[{"title": "", "description": "", "savings": "approximate rupee amount", "section": "IT Act section if any"}]`)
	return b.String()
}

func buildPlannerPrompt(req models.PlannerRequest, income float64) string {
	var b strings.Builder
	b.WriteString("You are an Indian tax-planning advisor. Suggest tax-saving investments for this profile.\n\n")
	fmt.Fprintf(&b, "Annual income: %.2f\n", income)
	if req.CurrentInvestments != "" {
		fmt.Fprintf(&b, "Current investments: %s\n", req.CurrentInvestments)
	}
	if req.RiskAppetite != "" {
		fmt.Fprintf(&b, "Risk appetite: %s\n", req.RiskAppetite)
	}
	if req.Goal != "" {
		fmt.Fprintf(&b, "Goal: %s\n", req.Goal)
	}
	b.WriteString("\nReturn ONLY a valid JSON array with no markdown fences, following this schema:\n")
	b.WriteString(`[{"instrument": "", "amount": 0, "reason": ""}]`)
	return b.String()
}
