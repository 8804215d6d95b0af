package models

import (
	"time"

	"github.com/google/uuid"
)

// ComplianceStatusOK is reported when no compliance rule triggers
const ComplianceStatusOK = "Fully Compliant"

// GST return types supported for due-date computation
const (
	ReturnTypeGSTR1  = "GSTR1"
	ReturnTypeGSTR3B = "GSTR3B"
	ReturnTypeGSTR9  = "GSTR9"
)

// Well-known outward supply keys
const (
	OutwardB2B      = "b2b"
	OutwardB2C      = "b2c"
	OutwardExport   = "export"
	OutwardExempt   = "exempt"
	OutwardNilRated = "nilRated"
)

// Well-known inward supply keys
const (
	InwardPurchases = "purchases"
	InwardImports   = "imports"
)

// Tax head keys used for output tax, ITC and payments
const (
	HeadCGST = "cgst"
	HeadSGST = "sgst"
	HeadIGST = "igst"
	HeadCess = "cess"
)

// GSTProfile is the validated numeric view of one GST filing session.
// Maps hold non-negative amounts under the well-known keys above.
type GSTProfile struct {
	BusinessName string `json:"businessName"`
	GSTIN        string `json:"gstin"`
	ReturnType   string `json:"returnType"`
	FilingMonth  int    `json:"filingMonth"`
	FilingYear   int    `json:"filingYear"`

	OutwardSupplies map[string]float64 `json:"outwardSupplies"`
	OutputTax       map[string]float64 `json:"outputTax"`
	InwardSupplies  map[string]float64 `json:"inwardSupplies"`
	ITC             map[string]float64 `json:"itc"`
	TaxPayments     map[string]float64 `json:"taxPayments"`
}

// GSTSplit is the intra-state split of GST on a taxable value
type GSTSplit struct {
	TotalGST float64 `json:"totalGst"`
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	IGST     float64 `json:"igst"`
}

// GSTReport is a generated GST return summary
type GSTReport struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID     string    `json:"tenantId" gorm:"type:varchar(255);not null;index"`
	BusinessName string    `json:"businessName" gorm:"type:varchar(255);not null"`
	GSTIN        string    `json:"gstin" gorm:"type:varchar(15);not null"`
	ReturnType   string    `json:"returnType" gorm:"type:varchar(20)"`
	FilingPeriod string    `json:"filingPeriod" gorm:"type:varchar(20)"`

	TotalTurnover float64 `json:"totalTurnover" gorm:"type:decimal(14,2)"`
	OutputGST     float64 `json:"outputGst" gorm:"type:decimal(14,2)"`
	ITCAvailed    float64 `json:"itcAvailed" gorm:"type:decimal(14,2)"`
	NetGSTPayable float64 `json:"netGstPayable" gorm:"type:decimal(14,2)"`
	TotalPaid     float64 `json:"totalPaid" gorm:"type:decimal(14,2)"`

	ComplianceStatus string    `json:"complianceStatus" gorm:"type:varchar(500)"`
	DueDate          time.Time `json:"dueDate"`
	ExtendedDueDate  time.Time `json:"extendedDueDate"`

	Recommendations string    `json:"recommendations" gorm:"type:text"`
	Fallback        bool      `json:"fallback" gorm:"default:false"`
	GeneratedAt     time.Time `json:"generatedAt"`
	CreatedAt       time.Time `json:"createdAt"`
}
