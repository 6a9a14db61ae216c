package domain

// ListingText carries the raw text fragments scraped from a single product
// listing. Every field is optional; the content script sends whatever it
// found and the engine degrades gracefully around missing pieces.
type ListingText struct {
	Title         string `json:"title,omitempty"`
	PriceText     string `json:"priceText,omitempty"`
	UnitPriceText string `json:"unitPriceText,omitempty"`
	PromoText     string `json:"promoText,omitempty"`
	CouponText    string `json:"couponText,omitempty"`
}

// UserPreference is the per-category display unit chosen in the extension
// popup. Values are unit aliases; an empty or unknown alias means "no
// preference, use the unit as parsed". Supplied fresh on every request and
// never persisted by the backend.
type UserPreference struct {
	WeightUnit string `json:"weightUnit,omitempty"`
	LiquidUnit string `json:"liquidUnit,omitempty"`
}

// CompareRequest is a single listing plus the active unit preference.
type CompareRequest struct {
	Listing    ListingText    `json:"listing"`
	Preference UserPreference `json:"preference"`
}

// BatchCompareRequest covers a shelf page: the content script walks every
// product container and submits them together.
type BatchCompareRequest struct {
	Listings   []ListingText  `json:"listings" binding:"required"`
	Preference UserPreference `json:"preference"`
}

// RetailerPerUnit is a per-unit price the retailer already displays on the
// listing (e.g. "1.2¢/ml"), parsed independently of the title. Its basis may
// use a different unit than the title does.
type RetailerPerUnit struct {
	Price float64
	Basis Quantity
}

// PerStandard re-expresses the retailer's figure per the basis category's
// reference amount, so it can be compared against the computed figure.
func (r RetailerPerUnit) PerStandard() float64 {
	return r.Price / r.Basis.AmountInStandard()
}

// Promotion is a quantity-for-price deal ("2 for $8").
type Promotion struct {
	Qty   int
	Total float64
}

// Coupon is a flat discount applied to the base price.
type Coupon struct {
	Discount float64
}
