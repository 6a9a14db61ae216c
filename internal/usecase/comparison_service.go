package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/huntertran/walmart-price-compare/internal/domain"
)

// ComparisonServiceConfig holds configuration for the comparison service
type ComparisonServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ComparisonService runs the extraction-and-normalization pipeline for a
// listing and memoizes results. The pipeline itself is pure and idempotent,
// so caching by input text is always safe; the extension re-triggers on
// every DOM mutation and most triggers repeat identical text.
type ComparisonService struct {
	cache              domain.CacheRepository
	parser             *QuantityParser
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewComparisonService creates a new comparison service with dependencies
func NewComparisonService(cache domain.CacheRepository, config ComparisonServiceConfig) *ComparisonService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 1 * time.Hour
	}

	return &ComparisonService{
		cache:              cache,
		parser:             NewQuantityParser(config.EnableDebugLogging),
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Compare runs the full pipeline for one listing.
// Flow: check cache -> parse quantity + extract price signals -> normalize
// -> reconcile -> cache -> return.
//
// Returns domain.ErrNoPriceSignal when the listing yields neither a
// computed nor a retailer per-unit figure; that is the expected outcome for
// listings without size information.
func (s *ComparisonService) Compare(
	ctx context.Context,
	listing domain.ListingText,
	pref domain.UserPreference,
) (*domain.ComparisonResult, error) {
	if listing == (domain.ListingText{}) {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := s.generateCacheKey(listing, pref)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	result := s.run(listing, pref)
	if result == nil {
		return nil, domain.ErrNoPriceSignal
	}

	if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
		// A failed memoization is not worth failing the request over.
		if s.enableDebugLogging {
			log.Printf("[COMPARE] cache set failed: %v", err)
		}
	}

	return result, nil
}

// CompareBatch runs the pipeline for a shelf page. Results are positional;
// listings that yield nothing get a nil entry rather than failing the batch.
func (s *ComparisonService) CompareBatch(
	ctx context.Context,
	listings []domain.ListingText,
	pref domain.UserPreference,
) ([]*domain.ComparisonResult, error) {
	if len(listings) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	results := make([]*domain.ComparisonResult, len(listings))
	for i, listing := range listings {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := s.Compare(ctx, listing, pref)
		if err != nil && !errors.Is(err, domain.ErrNoPriceSignal) && !errors.Is(err, domain.ErrInvalidRequest) {
			return nil, err
		}
		results[i] = result
	}

	return results, nil
}

// run executes the pure pipeline: every sub-extraction is independent and a
// failed one simply removes its branch from the output.
func (s *ComparisonService) run(listing domain.ListingText, pref domain.UserPreference) *domain.ComparisonResult {
	input := ReconcileInput{}

	if price, ok := ExtractBasePrice(listing.PriceText); ok {
		input.BasePrice = price
		input.HasBasePrice = true
	}

	if qty, ok := s.parser.Parse(listing.Title); ok {
		basis := NormalizeQuantity(qty, pref)
		input.Basis = &basis
	}

	if retailer, ok := ExtractRetailerPerUnit(listing.UnitPriceText); ok {
		input.Retailer = &retailer
	}

	if promo, ok := ExtractPromotion(listing.PromoText); ok {
		input.Promo = &promo
	}

	if coupon, ok := ExtractCoupon(listing.CouponText); ok {
		input.Coupon = &coupon
	}

	result := Reconcile(input)

	if s.enableDebugLogging {
		if result == nil {
			log.Printf("[COMPARE] %q: no signal", listing.Title)
		} else {
			log.Printf("[COMPARE] %q: %s (retailer=%v)",
				listing.Title, result.DisplayText(), result.UsedRetailerFigure)
		}
	}

	return result
}

// generateCacheKey builds a stable key from the listing fragments and the
// active preference. The preference is part of the key because it changes
// the basis the figures are quoted in.
func (s *ComparisonService) generateCacheKey(listing domain.ListingText, pref domain.UserPreference) string {
	parts := []string{
		normalizeFragment(listing.Title),
		normalizeFragment(listing.PriceText),
		normalizeFragment(listing.UnitPriceText),
		normalizeFragment(listing.PromoText),
		normalizeFragment(listing.CouponText),
		strings.ToLower(pref.WeightUnit),
		strings.ToLower(pref.LiquidUnit),
	}
	return fmt.Sprintf("compare:%s", strings.Join(parts, "|"))
}
