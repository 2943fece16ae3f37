package usecase

import (
	"fmt"
	"math"

	"fieldflow/internal/domain/entities"
)

// ComputeInvoiceTotal derives the tax-inclusive total from itemized part costs,
// a labor estimate and a tax rate:
//
//	subtotal = sum(cost * quantity) + labor
//	total    = subtotal * (1 + taxRate)
//
// The result keeps full float precision; rounding to currency precision happens
// only at the presentation boundary (RoundCurrency) so recomputation never
// compounds rounding error.
//
// The function is pure. Constraint violations are all collected into a single
// *entities.ValidationError rather than failing on the first one.
func ComputeInvoiceTotal(partCosts []entities.PartCost, laborEstimate, taxRate float64) (float64, error) {
	v := &entities.ValidationError{}
	for i, p := range partCosts {
		p.ValidateAt(fmt.Sprintf("part_costs[%d]", i), v)
	}
	if laborEstimate < 0 {
		v.Add("labor_estimate", "labor estimate must be non-negative")
	}
	if taxRate < 0 || taxRate > 1 {
		v.Add("tax_rate", "tax rate must be between 0 and 1")
	}
	if err := v.OrNil(); err != nil {
		return 0, err
	}

	subtotal := laborEstimate
	for _, p := range partCosts {
		subtotal += p.LineTotal()
	}
	return subtotal * (1 + taxRate), nil
}

// RoundCurrency rounds to 2 decimal digits for display. Stored totals are never
// rounded.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
