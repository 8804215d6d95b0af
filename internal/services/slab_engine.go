package services

import (
	"math"

	"easytax-service/internal/models"
)

// TaxSlab is one marginal bracket of a regime's slab table
type TaxSlab struct {
	Min  float64
	Max  float64
	Rate float64
}

// Slab tables for FY 2023-24. Brackets are ordered and non-overlapping;
// the top bracket is unbounded.
var (
	oldRegimeSlabs = []TaxSlab{
		{Min: 0, Max: 250000, Rate: 0},
		{Min: 250000, Max: 500000, Rate: 0.05},
		{Min: 500000, Max: 1000000, Rate: 0.20},
		{Min: 1000000, Max: math.MaxFloat64, Rate: 0.30},
	}
	newRegimeSlabs = []TaxSlab{
		{Min: 0, Max: 300000, Rate: 0},
		{Min: 300000, Max: 600000, Rate: 0.05},
		{Min: 600000, Max: 900000, Rate: 0.10},
		{Min: 900000, Max: 1200000, Rate: 0.15},
		{Min: 1200000, Max: 1500000, Rate: 0.20},
		{Min: 1500000, Max: math.MaxFloat64, Rate: 0.30},
	}
)

const (
	cessRate = 0.04

	// Section 87A rebate, applied under the old regime only
	rebateIncomeCeiling = 500000.0
	rebateCap           = 12500.0
)

// ComputeTax computes the tax liability breakdown for a taxable income under
// the given regime. It is a total function: negative input is clamped to zero
// and the result is never negative.
func ComputeTax(taxableIncome float64, regime models.TaxRegime) models.TaxComputationResult {
	if taxableIncome < 0 {
		taxableIncome = 0
	}

	slabs := newRegimeSlabs
	if regime == models.RegimeOld {
		slabs = oldRegimeSlabs
	}

	var baseTax float64
	for _, slab := range slabs {
		if taxableIncome <= slab.Min {
			break
		}
		taxableInSlab := math.Min(taxableIncome, slab.Max) - slab.Min
		baseTax += taxableInSlab * slab.Rate
	}

	cess := baseTax * cessRate

	var rebate float64
	if regime == models.RegimeOld && taxableIncome <= rebateIncomeCeiling {
		rebate = math.Min(baseTax, rebateCap)
	}

	totalTax := baseTax + cess - rebate
	if totalTax < 0 {
		totalTax = 0
	}

	return models.TaxComputationResult{
		BaseTax:  baseTax,
		Cess:     cess,
		Rebate:   rebate,
		TotalTax: totalTax,
	}
}
