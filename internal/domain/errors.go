package domain

import "errors"

var (
	// ErrNoPriceSignal is returned when a listing carries neither enough
	// text to compute a per-unit price nor a retailer-provided one. This
	// is an expected empty outcome for listings without size information,
	// not a failure.
	ErrNoPriceSignal = errors.New("no price signal available for listing")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited is returned when a client exceeds its request budget
	ErrRateLimited = errors.New("rate limit exceeded")
)
