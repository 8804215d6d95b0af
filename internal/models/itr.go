package models

import (
	"time"

	"github.com/google/uuid"
)

// TaxRegime selects the slab structure used for income tax computation
type TaxRegime string

const (
	RegimeOld TaxRegime = "old"
	RegimeNew TaxRegime = "new"
)

// StandardDeduction is the flat deduction applied on top of itemized deductions
const StandardDeduction = 50000.0

// Well-known income source keys
const (
	IncomeSalary        = "salary"
	IncomeHouseProperty = "houseProperty"
	IncomeBusiness      = "business"
	IncomeCapitalGains  = "capitalGains"
	IncomeOtherSources  = "otherSources"
)

// Well-known tax payment keys
const (
	PaymentTDS            = "tds"
	PaymentAdvanceTax     = "advanceTax"
	PaymentSelfAssessment = "selfAssessment"
)

// TaxProfile is the validated numeric view of one ITR filing session.
// All monetary values are non-negative; it is built once from raw request
// strings and never mutated afterwards.
type TaxProfile struct {
	Name           string             `json:"name"`
	PAN            string             `json:"pan"`
	AssessmentYear string             `json:"assessmentYear"`
	IncomeDetails  map[string]float64 `json:"incomeDetails"`
	Deductions     map[string]float64 `json:"deductions"`
	TaxPayments    map[string]float64 `json:"taxPayments"`
}

// TaxComputationResult is the slab engine output for a single regime
type TaxComputationResult struct {
	BaseTax  float64 `json:"baseTax"`
	Cess     float64 `json:"cess"`
	Rebate   float64 `json:"rebate"`
	TotalTax float64 `json:"totalTax"`
}

// ITRReport is a generated income tax report. Deterministic fields are
// reproducible from the profile; only the recommendations narrative may vary
// between generations.
type ITRReport struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID       string    `json:"tenantId" gorm:"type:varchar(255);not null;index"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null"`
	PAN            string    `json:"pan" gorm:"type:varchar(10)"`
	AssessmentYear string    `json:"assessmentYear" gorm:"type:varchar(10)"`

	GrossIncome     float64 `json:"grossIncome" gorm:"type:decimal(14,2)"`
	TotalDeductions float64 `json:"totalDeductions" gorm:"type:decimal(14,2)"`
	TaxableIncome   float64 `json:"taxableIncome" gorm:"type:decimal(14,2)"`

	OldRegime TaxComputationResult `json:"oldRegime" gorm:"embedded;embeddedPrefix:old_"`
	NewRegime TaxComputationResult `json:"newRegime" gorm:"embedded;embeddedPrefix:new_"`

	OptimalRegime TaxRegime `json:"optimalRegime" gorm:"type:varchar(10)"`
	TaxPaid       float64   `json:"taxPaid" gorm:"type:decimal(14,2)"`
	RefundDue     float64   `json:"refundDue" gorm:"type:decimal(14,2)"`
	TaxPayable    float64   `json:"taxPayable" gorm:"type:decimal(14,2)"`

	SuggestedITRForm string `json:"suggestedItrForm" gorm:"type:varchar(50)"`
	FormReason       string `json:"formReason" gorm:"type:varchar(255)"`

	Recommendations string    `json:"recommendations" gorm:"type:text"`
	Fallback        bool      `json:"fallback" gorm:"default:false"`
	GeneratedAt     time.Time `json:"generatedAt"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SelectedTax returns the total liability under the optimal regime
func (r *ITRReport) SelectedTax() float64 {
	if r.OptimalRegime == RegimeOld {
		return r.OldRegime.TotalTax
	}
	return r.NewRegime.TotalTax
}
