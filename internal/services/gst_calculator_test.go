package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGSTIN(t *testing.T) {
	tests := []struct {
		name  string
		gstin string
		valid bool
	}{
		{"valid GSTIN", "22AAAAA0000A1Z5", true},
		{"valid GSTIN other state", "27ABCDE1234F2Z6", true},
		{"too short", "22AAAAA0000A1Z", false},
		{"too long", "22AAAAA0000A1Z55", false},
		{"empty", "", false},
		{"lowercase letters", "22aaaaa0000a1z5", false},
		{"missing literal Z", "22AAAAA0000A1X5", false},
		{"letters in state code", "AAAAAAA0000A1Z5", false},
		{"digits in name part", "22AAA110000A1Z5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateGSTIN(tt.gstin))
		})
	}
}

func TestSplitGST(t *testing.T) {
	split := SplitGST(100000, 0.18)
	assert.InDelta(t, 18000.0, split.TotalGST, 0.01)
	assert.InDelta(t, 9000.0, split.CGST, 0.01)
	assert.InDelta(t, 9000.0, split.SGST, 0.01)
	assert.Equal(t, 0.0, split.IGST)
}

func TestSplitGSTZeroValue(t *testing.T) {
	split := SplitGST(0, 0.18)
	assert.Equal(t, 0.0, split.TotalGST)
	assert.Equal(t, 0.0, split.CGST)
	assert.Equal(t, 0.0, split.SGST)
	assert.Equal(t, 0.0, split.IGST)
}
