package usecase

import (
	"fmt"
	"math"

	"github.com/huntertran/walmart-price-compare/internal/domain"
)

// ReconcileInput gathers every signal extracted from one listing. Any field
// may be absent; the reconciler handles every combination with the same few
// rules rather than special-casing presence patterns.
type ReconcileInput struct {
	// BasePrice is the shelf price; HasBasePrice marks its presence
	// since zero is not a valid price.
	BasePrice    float64
	HasBasePrice bool

	// Basis is the normalized parsed quantity, nil when the title held
	// no resolvable size. A computed per-unit figure exists exactly when
	// both Basis and BasePrice are present.
	Basis *QuantityBasis

	Retailer *domain.RetailerPerUnit
	Promo    *domain.Promotion
	Coupon   *domain.Coupon
}

func (in ReconcileInput) computed() (NormalizedPrice, bool) {
	if in.Basis == nil || !in.HasBasePrice {
		return NormalizedPrice{}, false
	}
	return NormalizedPrice{PerUnit: in.BasePrice / in.Basis.Units, Basis: *in.Basis}, true
}

// Reconcile picks which per-unit figure(s) to present.
//
// Policy: when both a computed and a retailer-advertised figure exist, the
// larger one is displayed so the listing never looks cheaper than the math
// supports. A unit-preference override always forces the computed figure,
// since the retailer's text cannot honor a unit the shopper chose.
//
// Returns nil when the listing yields neither a computed nor a retailer
// figure; that is the defined "nothing to render" outcome, not an error.
func Reconcile(in ReconcileInput) *domain.ComparisonResult {
	computed, hasComputed := in.computed()
	if !hasComputed && in.Retailer == nil {
		return nil
	}

	result := pickPrimary(in, computed, hasComputed)

	// Promotion text ("2 for $8") refers to the listing's own unit, so
	// the parsed quantity is the only valid basis for it; the retailer
	// signal's basis never substitutes.
	if in.Promo != nil && in.Basis != nil {
		result.Promo = &domain.AdjustedFigure{
			PricePerUnit: in.Promo.Total / (in.Basis.Units * float64(in.Promo.Qty)),
			Annotation:   fmt.Sprintf("%d for $%.2f", in.Promo.Qty, in.Promo.Total),
		}
	}

	// The coupon basis can fall back to one derived from the retailer
	// figure and the shelf price when the title did not parse.
	if in.Coupon != nil && in.HasBasePrice {
		if basisUnits := in.couponBasisUnits(); basisUnits > 0 {
			// Clamped at zero: a coupon may exceed the price and
			// must not invert comparisons.
			effective := math.Max(in.BasePrice-in.Coupon.Discount, 0)
			result.Coupon = &domain.AdjustedFigure{
				PricePerUnit: effective / basisUnits,
				Annotation:   fmt.Sprintf("after $%.2f coupon", in.Coupon.Discount),
			}
		}
	}

	// Promo+coupon stands on its own: the coupon clamps the promotion
	// total, it is not a sum of the two adjustments above.
	if in.Promo != nil && in.Coupon != nil && in.Basis != nil {
		effective := math.Max(in.Promo.Total-in.Coupon.Discount, 0)
		result.PromoCoupon = &domain.AdjustedFigure{
			PricePerUnit: effective / (in.Basis.Units * float64(in.Promo.Qty)),
			Annotation: fmt.Sprintf("%d for $%.2f with $%.2f coupon",
				in.Promo.Qty, in.Promo.Total, in.Coupon.Discount),
		}
	}

	return result
}

// couponBasisUnits returns the basis for coupon-adjusted figures: the parsed
// quantity when available, otherwise the basis implied by the retailer
// figure and the shelf price.
func (in ReconcileInput) couponBasisUnits() float64 {
	if in.Basis != nil {
		return in.Basis.Units
	}
	if in.Retailer != nil {
		return in.BasePrice / in.Retailer.PerStandard()
	}
	return 0
}

// pickPrimary chooses between the computed and retailer figures.
func pickPrimary(in ReconcileInput, computed NormalizedPrice, hasComputed bool) *domain.ComparisonResult {
	if !hasComputed {
		// Retailer signal is the sole basis for the listing.
		return &domain.ComparisonResult{
			PricePerUnit:       in.Retailer.PerStandard(),
			UnitLabel:          in.Retailer.Basis.Unit.Category.StandardLabel(),
			UsedRetailerFigure: true,
		}
	}

	result := &domain.ComparisonResult{
		PricePerUnit: computed.PerUnit,
		UnitLabel:    computed.Basis.Label,
	}

	if in.Retailer != nil && !computed.Basis.Overridden {
		if retailerPer := in.Retailer.PerStandard(); retailerPer > computed.PerUnit {
			result.PricePerUnit = retailerPer
			result.UsedRetailerFigure = true
		}
	}

	return result
}
