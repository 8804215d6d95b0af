package advisory

import (
	"fmt"
	"strings"

	"easytax-service/internal/models"
)

// Tier 3: deterministic hand-authored fallbacks, built from the computed
// figures so the static text still reflects the user's numbers.

const section80CLimit = 150000.0

func fallbackITRRecommendations(report *models.ITRReport) string {
	var b strings.Builder

	if report.OptimalRegime == models.RegimeOld {
		fmt.Fprintf(&b, "The old regime works out cheaper for you: ₹%.0f versus ₹%.0f under the new regime. ",
			report.OldRegime.TotalTax, report.NewRegime.TotalTax)
	} else {
		fmt.Fprintf(&b, "The new regime works out cheaper for you: ₹%.0f versus ₹%.0f under the old regime. ",
			report.NewRegime.TotalTax, report.OldRegime.TotalTax)
	}

	if report.TotalDeductions < section80CLimit {
		fmt.Fprintf(&b, "You have claimed ₹%.0f in deductions; investing more under Section 80C (up to ₹1,50,000 total) would lower old-regime liability further. ",
			report.TotalDeductions)
	}

	switch {
	case report.RefundDue > 0:
		fmt.Fprintf(&b, "A refund of ₹%.0f is due; file early to receive it sooner.", report.RefundDue)
	case report.TaxPayable > 0:
		fmt.Fprintf(&b, "₹%.0f remains payable; settle it as self-assessment tax before filing to avoid interest under Sections 234B/234C.", report.TaxPayable)
	default:
		b.WriteString("Your payments match the computed liability; keep Form 26AS handy while filing.")
	}

	fmt.Fprintf(&b, " File using %s.", report.SuggestedITRForm)
	return b.String()
}

func fallbackGSTRecommendations(report *models.GSTReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "For period %s, output GST is ₹%.0f against ITC of ₹%.0f, leaving ₹%.0f payable in cash. ",
		report.FilingPeriod, report.OutputGST, report.ITCAvailed, report.NetGSTPayable)
	b.WriteString("Reconcile input tax credit against GSTR-2B before filing so mismatched invoices do not get reversed later. ")

	if report.ComplianceStatus != models.ComplianceStatusOK {
		fmt.Fprintf(&b, "Attend to the flagged items: %s. ", report.ComplianceStatus)
	}

	fmt.Fprintf(&b, "The return is due by %s; the extended window closes on %s.",
		report.DueDate.Format("02 Jan 2006"), report.ExtendedDueDate.Format("02 Jan 2006"))
	return b.String()
}

func fallbackSuggestions(annualIncome float64) []models.InvestmentSuggestion {
	suggestions := []models.InvestmentSuggestion{
		{
			Instrument: "ELSS mutual fund",
			Amount:     150000,
			Reason:     "Uses the full Section 80C limit with the shortest lock-in among 80C options.",
		},
		{
			Instrument: "NPS Tier-1 account",
			Amount:     50000,
			Reason:     "Additional deduction under Section 80CCD(1B) beyond the 80C cap.",
		},
		{
			Instrument: "Health insurance",
			Amount:     25000,
			Reason:     "Premium deductible under Section 80D while covering medical risk.",
		},
	}
	if annualIncome > 1000000 {
		suggestions = append(suggestions, models.InvestmentSuggestion{
			Instrument: "PPF account",
			Amount:     150000,
			Reason:     "Tax-free interest with EEE status; useful once 80C is covered for stable debt allocation.",
		})
	}
	return suggestions
}
