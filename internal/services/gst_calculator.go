package services

import (
	"regexp"

	"easytax-service/internal/models"
)

// GSTIN structure: 2-digit state code, 5-letter entity name part, 4 digits,
// 1 letter, 1 alphanumeric entity code, literal 'Z', 1 alphanumeric checksum
// placeholder. The checksum digit is shape-checked only, not verified.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)

// ValidateGSTIN reports whether s is structurally a valid 15-character GSTIN
func ValidateGSTIN(s string) bool {
	if len(s) != 15 {
		return false
	}
	return gstinPattern.MatchString(s)
}

// SplitGST splits GST on a taxable value for the single-state filing flow.
// All transactions are treated as intra-state: CGST and SGST each take half
// and IGST is always zero. Inter-state handling is intentionally out of this
// engine; the filing wizard collects IGST amounts separately.
func SplitGST(taxableValue, rate float64) models.GSTSplit {
	totalGST := taxableValue * rate
	half := totalGST / 2
	return models.GSTSplit{
		TotalGST: totalGST,
		CGST:     half,
		SGST:     half,
		IGST:     0,
	}
}
