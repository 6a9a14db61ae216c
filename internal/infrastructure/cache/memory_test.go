package cache

import (
	"context"
	"testing"
	"time"

	"github.com/huntertran/walmart-price-compare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(perUnit float64) *domain.ComparisonResult {
	return &domain.ComparisonResult{
		PricePerUnit: perUnit,
		UnitLabel:    "100g",
	}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	err := cache.Set(ctx, "listing-1", sampleResult(2.00), 1*time.Minute)
	require.NoError(t, err)

	got, err := cache.Get(ctx, "listing-1")
	require.NoError(t, err)
	assert.Equal(t, 2.00, got.PricePerUnit)
	assert.Equal(t, "100g", got.UnitLabel)
}

func TestMemoryCache_MissOnUnknownKey(t *testing.T) {
	cache := NewMemoryCache()

	_, err := cache.Get(context.Background(), "never-set")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	err := cache.Set(ctx, "short-lived", sampleResult(1.00), 1*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = cache.Get(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", sampleResult(1.00), 1*time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", sampleResult(1.00), 1*time.Minute))
	require.NoError(t, cache.Set(ctx, "b", sampleResult(2.00), 1*time.Minute))
	assert.Equal(t, 2, cache.Size())

	cache.Clear()
	assert.Equal(t, 0, cache.Size())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			key := "concurrent"
			for j := 0; j < 100; j++ {
				_ = cache.Set(ctx, key, sampleResult(float64(n)), 1*time.Minute)
				_, _ = cache.Get(ctx, key)
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
