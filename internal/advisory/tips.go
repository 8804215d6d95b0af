package advisory

import (
	"strings"

	"easytax-service/internal/models"
)

// TipCategory is the audience for the tip catalog. Every category has both a
// prompt and a static fallback table; unknown input normalizes to general.
type TipCategory string

const (
	TipGeneral    TipCategory = "general"
	TipSalaried   TipCategory = "salaried"
	TipInvestment TipCategory = "investment"
	TipBusiness   TipCategory = "business"
	TipDeductions TipCategory = "deductions"
)

// ParseTipCategory maps a raw category string onto the enum
func ParseTipCategory(s string) TipCategory {
	switch TipCategory(strings.ToLower(strings.TrimSpace(s))) {
	case TipSalaried:
		return TipSalaried
	case TipInvestment:
		return TipInvestment
	case TipBusiness:
		return TipBusiness
	case TipDeductions:
		return TipDeductions
	default:
		return TipGeneral
	}
}

// fallbackTips returns the static hand-authored tip table for the category
func (c TipCategory) fallbackTips() []models.TaxTip {
	switch c {
	case TipSalaried:
		return []models.TaxTip{
			{
				Title:       "Claim HRA exemption",
				Description: "Submit rent receipts to your employer to exempt house rent allowance from salary income.",
				Section:     "Section 10(13A)",
			},
			{
				Title:       "Use the standard deduction",
				Description: "A flat ₹50,000 standard deduction applies to salary income with no paperwork required.",
				Savings:     "₹50,000 off taxable income",
			},
			{
				Title:       "Restructure reimbursable allowances",
				Description: "Telephone, books and fuel reimbursements paid against bills are not taxed as salary.",
			},
		}
	case TipInvestment:
		return []models.TaxTip{
			{
				Title:       "Invest in ELSS funds",
				Description: "Equity-linked savings schemes qualify for the 80C limit with a three-year lock-in.",
				Savings:     "Up to ₹1,50,000 deduction",
				Section:     "80C",
			},
			{
				Title:       "Add NPS over and above 80C",
				Description: "National Pension System contributions get an extra deduction beyond the 80C cap.",
				Savings:     "Up to ₹50,000 deduction",
				Section:     "80CCD(1B)",
			},
			{
				Title:       "Hold equity for the long term",
				Description: "Long-term capital gains on listed equity are exempt up to ₹1,00,000 per year.",
				Section:     "Section 112A",
			},
		}
	case TipBusiness:
		return []models.TaxTip{
			{
				Title:       "Consider presumptive taxation",
				Description: "Small businesses with turnover under the limit can declare income at a flat rate and skip detailed books.",
				Section:     "Section 44AD",
			},
			{
				Title:       "Claim depreciation on business assets",
				Description: "Depreciation on vehicles, machinery and equipment used in the business reduces taxable profit.",
				Section:     "Section 32",
			},
			{
				Title:       "Keep every expense documented",
				Description: "Rent, staff salaries and utilities are fully deductible when backed by invoices.",
			},
		}
	case TipDeductions:
		return []models.TaxTip{
			{
				Title:       "Max out Section 80C",
				Description: "PPF, ELSS, EPF, life insurance premium and home-loan principal together qualify up to the cap.",
				Savings:     "Up to ₹1,50,000 deduction",
				Section:     "80C",
			},
			{
				Title:       "Deduct health insurance premiums",
				Description: "Premiums for self and family qualify, with a higher limit for senior-citizen parents.",
				Savings:     "Up to ₹25,000 (₹50,000 for seniors)",
				Section:     "80D",
			},
			{
				Title:       "Claim eligible donations",
				Description: "Donations to approved charitable institutions are 50% or 100% deductible.",
				Section:     "80G",
			},
		}
	default:
		return []models.TaxTip{
			{
				Title:       "Compare both tax regimes",
				Description: "Compute liability under the old and new regimes every year; the better choice depends on your deductions.",
			},
			{
				Title:       "Use the full 80C limit",
				Description: "PPF, ELSS and EPF contributions up to ₹1,50,000 reduce taxable income directly.",
				Savings:     "Up to ₹1,50,000 deduction",
				Section:     "80C",
			},
			{
				Title:       "File before the due date",
				Description: "Late filing attracts a fee and forfeits the ability to carry forward most losses.",
				Section:     "Section 234F",
			},
		}
	}
}
