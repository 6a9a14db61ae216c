package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huntertran/walmart-price-compare/internal/domain"
)

// ComparisonService is the usecase surface the handlers depend on.
type ComparisonService interface {
	Compare(ctx context.Context, listing domain.ListingText, pref domain.UserPreference) (*domain.ComparisonResult, error)
	CompareBatch(ctx context.Context, listings []domain.ListingText, pref domain.UserPreference) ([]*domain.ComparisonResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	comparisonService ComparisonService
}

// NewHandler creates a new HTTP handler
func NewHandler(comparisonService ComparisonService) *Handler {
	return &Handler{comparisonService: comparisonService}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "walmart-price-compare",
		"version": "1.0.0",
	})
}

// resultPayload wraps a ComparisonResult with the preformatted display text
// the content script inserts verbatim.
type resultPayload struct {
	*domain.ComparisonResult
	DisplayText string `json:"displayText"`
}

func toPayload(result *domain.ComparisonResult) *resultPayload {
	if result == nil {
		return nil
	}
	return &resultPayload{ComparisonResult: result, DisplayText: result.DisplayText()}
}

// Compare handles a single-listing comparison request.
// A listing without any usable signal is a defined empty outcome, not an
// error: the response carries a null result and the extension renders
// nothing for that container.
func (h *Handler) Compare(c *gin.Context) {
	if h.comparisonService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "comparison service not available"})
		return
	}

	var req domain.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.comparisonService.Compare(c.Request.Context(), req.Listing, req.Preference)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoPriceSignal):
			c.JSON(http.StatusOK, gin.H{"result": nil})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "listing text is required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "comparison failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": toPayload(result)})
}

// CompareBatch handles a shelf page: one request per container walk.
// Results are positional with null entries for listings that yielded
// nothing.
func (h *Handler) CompareBatch(c *gin.Context) {
	if h.comparisonService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "comparison service not available"})
		return
	}

	var req domain.BatchCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	results, err := h.comparisonService.CompareBatch(c.Request.Context(), req.Listings, req.Preference)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one listing is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "comparison failed"})
		return
	}

	payloads := make([]*resultPayload, len(results))
	for i, result := range results {
		payloads[i] = toPayload(result)
	}

	c.JSON(http.StatusOK, gin.H{"results": payloads})
}
