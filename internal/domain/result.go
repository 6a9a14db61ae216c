package domain

import "fmt"

// ComparisonResult is what the engine hands the extension for one listing.
// It is constructed fresh per listing and consumed immediately by the
// renderer; there is no persisted identity.
type ComparisonResult struct {
	// PricePerUnit is the primary figure, per UnitLabel. Unrounded;
	// rounding to cents happens only when display text is built.
	PricePerUnit float64 `json:"pricePerUnit"`
	UnitLabel    string  `json:"unitLabel"`

	// UsedRetailerFigure is true when the retailer's own advertised
	// per-unit price was displayed instead of the computed one, so the
	// renderer can badge it.
	UsedRetailerFigure bool `json:"usedRetailerFigure"`

	// Optional adjusted figures. Nil when the corresponding signal was
	// absent from the listing.
	Promo       *AdjustedFigure `json:"promo,omitempty"`
	Coupon      *AdjustedFigure `json:"coupon,omitempty"`
	PromoCoupon *AdjustedFigure `json:"promoCoupon,omitempty"`
}

// AdjustedFigure is a secondary per-unit price derived from a promotion,
// a coupon, or both. Annotation is verbatim text for the renderer
// (e.g. "2 for $8.00", "after $1.50 coupon").
type AdjustedFigure struct {
	PricePerUnit float64 `json:"pricePerUnit"`
	Annotation   string  `json:"annotation"`
}

// DisplayText renders the primary figure the way the content script shows
// it on the page. This is the only place values are rounded.
func (r *ComparisonResult) DisplayText() string {
	return fmt.Sprintf("Price per %s: $%.2f", r.UnitLabel, r.PricePerUnit)
}
