package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"easytax-service/internal/models"
)

func TestComputeTaxZeroIncome(t *testing.T) {
	for _, regime := range []models.TaxRegime{models.RegimeOld, models.RegimeNew} {
		result := ComputeTax(0, regime)
		assert.Equal(t, 0.0, result.BaseTax)
		assert.Equal(t, 0.0, result.Cess)
		assert.Equal(t, 0.0, result.Rebate)
		assert.Equal(t, 0.0, result.TotalTax)
	}
}

func TestComputeTaxNegativeIncomeClamped(t *testing.T) {
	result := ComputeTax(-100000, models.RegimeOld)
	assert.Equal(t, 0.0, result.TotalTax)
}

func TestComputeTaxNewRegimeSlabs(t *testing.T) {
	// 10L under the new regime: 0% on 3L, 5% on 3L, 10% on 3L, 15% on 1L
	result := ComputeTax(1000000, models.RegimeNew)
	assert.InDelta(t, 60000.0, result.BaseTax, 0.01)
	assert.InDelta(t, 2400.0, result.Cess, 0.01)
	assert.Equal(t, 0.0, result.Rebate)
	assert.InDelta(t, 62400.0, result.TotalTax, 0.01)
}

func TestComputeTaxOldRegimeRebateBoundary(t *testing.T) {
	// At exactly 5L the 87A rebate wipes out base tax
	atCeiling := ComputeTax(500000, models.RegimeOld)
	assert.InDelta(t, 12500.0, atCeiling.BaseTax, 0.01)
	assert.InDelta(t, 12500.0, atCeiling.Rebate, 0.01)
	assert.InDelta(t, 500.0, atCeiling.TotalTax, 0.01) // cess remains

	// One rupee over the ceiling loses the rebate entirely
	overCeiling := ComputeTax(500001, models.RegimeOld)
	assert.Equal(t, 0.0, overCeiling.Rebate)
	assert.Greater(t, overCeiling.TotalTax, atCeiling.TotalTax)
}

func TestComputeTaxNewRegimeHasNoRebate(t *testing.T) {
	result := ComputeTax(400000, models.RegimeNew)
	assert.Equal(t, 0.0, result.Rebate)
	assert.InDelta(t, 5200.0, result.TotalTax, 0.01)
}

func TestComputeTaxOldRegimeTopSlab(t *testing.T) {
	// 15L old regime: 5% on 2.5L, 20% on 5L, 30% on 5L
	result := ComputeTax(1500000, models.RegimeOld)
	assert.InDelta(t, 262500.0, result.BaseTax, 0.01)
	assert.InDelta(t, 10500.0, result.Cess, 0.01)
	assert.InDelta(t, 273000.0, result.TotalTax, 0.01)
}

func TestComputeTaxNonNegativeAndMonotonic(t *testing.T) {
	incomes := []float64{0, 100000, 249999, 250000, 300000, 499999, 500000,
		500001, 600000, 750000, 900000, 1000000, 1200000, 1500000, 2500000, 10000000}

	for _, regime := range []models.TaxRegime{models.RegimeOld, models.RegimeNew} {
		prev := -1.0
		for _, income := range incomes {
			result := ComputeTax(income, regime)
			assert.GreaterOrEqual(t, result.TotalTax, 0.0,
				"total tax must be non-negative at income %.0f (%s)", income, regime)
			assert.GreaterOrEqual(t, result.TotalTax, prev,
				"total tax must be non-decreasing at income %.0f (%s)", income, regime)
			prev = result.TotalTax
		}
	}
}
