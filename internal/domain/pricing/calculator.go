package pricing

import (
	"errors"
	"fmt"
	"math"

	"nextops_proposals/internal/domain/entities"
)

// ErrUnknownProduct is returned by Calculate for a product key not in the
// catalog. Handlers validate the key before calling the engine, so hitting
// this error means a caller skipped its guard.
var ErrUnknownProduct = errors.New("unknown product key")

// Line descriptions.
const (
	descDiagnostico      = "Diagnóstico Operacional (Gratuito)"
	descEarlyPayDiscount = "Desconto pagamento antecipado"
	descInstallmentFee   = "Acréscimo parcelamento"
)

// Calculate produces the itemized line list, total and estimated sprints for
// a product, the caller-selected module keys, the company's employee/revenue
// brackets and a payment-term option.
//
// Lookups are deliberately lenient: unknown brackets fall back to a 1.0
// multiplier, an unknown payment option to a 0 discount, and unknown module
// keys are skipped. Only an unknown product key is an error.
//
// Every monetary line is rounded to whole currency units independently before
// summation; the summed total can therefore differ by 1 from rounding a
// single exact subtotal. Stored proposals depend on this line-level rounding,
// so it must not be replaced with a single rounding of the total.
func Calculate(c Catalog, product string, selectedModules []string, employees, revenue, paymentTerms string) (entities.PricingResult, error) {
	productInfo, ok := c.ProductByKey(product)
	if !ok {
		return entities.PricingResult{}, fmt.Errorf("%w: %q", ErrUnknownProduct, product)
	}

	// The diagnostic is free and fixed: one sprint, no modules, no
	// multipliers, no payment adjustment. The overlay cannot change it.
	if product == ProductDiagnostico {
		return entities.PricingResult{
			Items: []entities.ProposalItem{
				{Description: descDiagnostico, Quantity: 1, UnitPrice: 0, Total: 0},
			},
			Total:   0,
			Sprints: 1,
		}, nil
	}

	empMultiplier := multiplierOrDefault(c.EmployeeRanges, employees)
	revMultiplier := multiplierOrDefault(c.RevenueRanges, revenue)
	paymentDiscount := discountOrDefault(c.PaymentOptions, paymentTerms)

	items := make([]entities.ProposalItem, 0, len(selectedModules)+2)
	totalSprints := productInfo.SprintsBase

	setupPrice := roundNearest(productInfo.BasePrice * empMultiplier * revMultiplier)
	items = append(items, entities.ProposalItem{
		Description: productInfo.Title + " — Setup & Configuração",
		Quantity:    1,
		UnitPrice:   setupPrice,
		Total:       setupPrice,
	})

	for _, modKey := range selectedModules {
		mod, ok := c.ModuleByKey(modKey)
		if !ok {
			continue
		}
		price := roundNearest(mod.Price * empMultiplier * revMultiplier)
		items = append(items, entities.ProposalItem{
			Description: mod.Title,
			Quantity:    1,
			UnitPrice:   price,
			Total:       price,
		})
		totalSprints += mod.Sprints
	}

	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Total
	}

	if paymentDiscount != 0 {
		adjustment := roundNearest(subtotal * paymentDiscount)
		label := descInstallmentFee
		if paymentDiscount > 0 {
			label = descEarlyPayDiscount
		}
		items = append(items, entities.ProposalItem{
			Description: label,
			Quantity:    1,
			UnitPrice:   -adjustment,
			Total:       -adjustment,
		})
		subtotal -= adjustment
	}

	return entities.PricingResult{Items: items, Total: subtotal, Sprints: totalSprints}, nil
}

// multiplierOrDefault resolves a bracket multiplier, falling back to the
// neutral 1.0 when the bracket value is not in the table. The fallback is a
// designed leniency, not an error path.
func multiplierOrDefault(ranges []RangeOption, value string) float64 {
	for _, r := range ranges {
		if r.Value == value {
			return r.Multiplier
		}
	}
	return 1.0
}

// discountOrDefault resolves a payment discount fraction, falling back to 0
// for unknown option values.
func discountOrDefault(options []PaymentOption, value string) float64 {
	for _, p := range options {
		if p.Value == value {
			return p.Discount
		}
	}
	return 0
}

// roundNearest rounds half up towards +∞ (floor of v+0.5). Installment
// surcharge lines are negative, and math.Round's half-away-from-zero would
// round exact negative halves the other way.
func roundNearest(v float64) float64 {
	return math.Floor(v + 0.5)
}
