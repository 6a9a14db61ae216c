package usecase

import (
	"github.com/huntertran/walmart-price-compare/internal/domain"
)

// QuantityBasis is a parsed quantity rescaled into display-basis units.
// Units is how many basis amounts the listing holds (500 g -> 5 units of
// 100g); every per-unit figure for the listing divides by it so primary and
// adjusted figures share one basis.
type QuantityBasis struct {
	Units float64
	Label string
	// Overridden is true when a user unit preference changed the basis.
	// The retailer's advertised figure cannot honor a unit the shopper
	// chose, so the Reconciler never lets it win in that case.
	Overridden bool
}

// NormalizedPrice is a price-per-unit figure quoted against a QuantityBasis.
type NormalizedPrice struct {
	PerUnit float64
	Basis   QuantityBasis
}

// NormalizeQuantity rescales a parsed quantity into its display basis.
// Without a preference that is the category's fixed reference (100 g,
// 100 ml, 1 item). An applicable preference converts the amount into the
// preferred unit first (always via the base unit) and the basis switches to
// that unit's display amount and label. Count quantities are never subject
// to preference override.
func NormalizeQuantity(qty domain.Quantity, pref domain.UserPreference) QuantityBasis {
	if prefUnit, ok := preferredUnitFor(qty.Unit.Category, pref); ok && prefUnit.Name != qty.Unit.Name {
		converted := qty.ConvertTo(prefUnit)
		return QuantityBasis{
			Units:      converted.Amount / prefUnit.DisplayAmount,
			Label:      prefUnit.DisplayLabel,
			Overridden: true,
		}
	}

	return QuantityBasis{
		Units: qty.AmountInStandard(),
		Label: qty.Unit.Category.StandardLabel(),
	}
}

// Normalize computes price per standard unit for a price over a parsed
// quantity. Intermediate values stay unrounded; only display text rounds,
// so adjusted figures derived later never compound rounding error.
func Normalize(price float64, qty domain.Quantity, pref domain.UserPreference) NormalizedPrice {
	basis := NormalizeQuantity(qty, pref)
	return NormalizedPrice{
		PerUnit: price / basis.Units,
		Basis:   basis,
	}
}

// preferredUnitFor resolves the preference alias for a category. Unknown or
// empty aliases, cross-category aliases, and the count category all degrade
// to "no preference".
func preferredUnitFor(category domain.UnitCategory, pref domain.UserPreference) (domain.Unit, bool) {
	var alias string
	switch category {
	case domain.CategoryWeight:
		alias = pref.WeightUnit
	case domain.CategoryLiquid:
		alias = pref.LiquidUnit
	default:
		return domain.Unit{}, false
	}
	if alias == "" {
		return domain.Unit{}, false
	}
	unit, ok := domain.ResolveUnit(alias)
	if !ok || unit.Category != category {
		return domain.Unit{}, false
	}
	return unit, true
}
