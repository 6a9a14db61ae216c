package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/huntertran/walmart-price-compare/internal/domain"
)

// Package-level compiled regex patterns for the price-related fragments.
// Each extractor is independent; any subset of signals may be present on a
// listing and a failed extraction simply yields absence.
var (
	nonPriceCharsPattern = regexp.MustCompile(`[^\d.]`)
	retailerUnitPattern  = regexp.MustCompile(`(?i)\$?\s*(\d+(?:\.\d+)?)\s*(¢|\$)?\s*/\s*(\d+(?:\.\d+)?)?\s*(` + aliasAlternation() + `)\b`)
	promotionPattern     = regexp.MustCompile(`(?i)\b(\d+)\s+for\s+\$?(\d+(?:\.\d+)?)`)
	couponPattern        = regexp.MustCompile(`(?i)\$\s*(\d+(?:\.\d+)?)\s+coupon`)
)

// ExtractBasePrice pulls the shelf price out of a price fragment by
// stripping everything that is not a digit or decimal point, the same way
// the content script reads "$5.97" or "Now $3.00!". Non-positive or
// non-numeric leftovers yield absence.
func ExtractBasePrice(fragment string) (float64, bool) {
	cleaned := nonPriceCharsPattern.ReplaceAllString(fragment, "")
	if cleaned == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}

// ExtractRetailerPerUnit parses the retailer's own advertised per-unit
// price. Both symbol placements walmart.ca uses are accepted: "1.2¢/ml"
// and "$1.19/100g". Cent values are converted to dollars. The basis amount
// defaults to 1 when the fragment omits it ("25¢/oz"). The basis may use a
// different unit than the title does.
func ExtractRetailerPerUnit(fragment string) (domain.RetailerPerUnit, bool) {
	m := retailerUnitPattern.FindStringSubmatch(fragment)
	if m == nil {
		return domain.RetailerPerUnit{}, false
	}

	price, err := strconv.ParseFloat(m[1], 64)
	if err != nil || price <= 0 {
		return domain.RetailerPerUnit{}, false
	}
	if m[2] == "¢" {
		price /= 100
	}

	amount := 1.0
	if m[3] != "" {
		amount, err = strconv.ParseFloat(m[3], 64)
		if err != nil || amount <= 0 {
			return domain.RetailerPerUnit{}, false
		}
	}

	unit, ok := domain.ResolveUnit(m[4])
	if !ok {
		return domain.RetailerPerUnit{}, false
	}

	return domain.RetailerPerUnit{
		Price: price,
		Basis: domain.Quantity{Amount: amount, Unit: unit},
	}, true
}

// ExtractPromotion parses quantity-for-price deals like "2 for $8" or
// "3 for 10".
func ExtractPromotion(fragment string) (domain.Promotion, bool) {
	m := promotionPattern.FindStringSubmatch(fragment)
	if m == nil {
		return domain.Promotion{}, false
	}

	qty, err1 := strconv.Atoi(m[1])
	total, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || qty <= 0 || total <= 0 {
		return domain.Promotion{}, false
	}

	return domain.Promotion{Qty: qty, Total: total}, true
}

// ExtractCoupon parses flat-discount coupon banners like "$1.50 coupon".
func ExtractCoupon(fragment string) (domain.Coupon, bool) {
	m := couponPattern.FindStringSubmatch(fragment)
	if m == nil {
		return domain.Coupon{}, false
	}

	discount, err := strconv.ParseFloat(m[1], 64)
	if err != nil || discount <= 0 {
		return domain.Coupon{}, false
	}

	return domain.Coupon{Discount: discount}, true
}

// normalizeFragment collapses whitespace so cache keys built from scraped
// text are stable across DOM re-renders.
func normalizeFragment(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
