package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/huntertran/walmart-price-compare/config"
	"github.com/huntertran/walmart-price-compare/internal/infrastructure/cache"
	"github.com/huntertran/walmart-price-compare/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

// setupTestRouter creates a test router with a real pipeline behind it; the
// engine is pure computation, so there is nothing worth mocking.
func setupTestRouter() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"chrome-extension://*", "http://localhost:3000"},
		},
		RateLimit: config.RateLimitConfig{PerIP: 1000, Burst: 1000},
	}

	service := usecase.NewComparisonService(cache.NewMemoryCache(), usecase.ComparisonServiceConfig{})
	handler := NewHandler(service)

	return SetupRouter(cfg, handler)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHealthCheckEndpoint tests the health check endpoint
func TestHealthCheckEndpoint(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
}

func TestCompareEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("computes price per unit for a listing", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/compare", map[string]interface{}{
			"listing": map[string]string{
				"title":     "Brand X, 2 x 250 mL",
				"priceText": "$5.00",
				"promoText": "2 for $8",
			},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Result *struct {
				PricePerUnit       float64 `json:"pricePerUnit"`
				UnitLabel          string  `json:"unitLabel"`
				UsedRetailerFigure bool    `json:"usedRetailerFigure"`
				DisplayText        string  `json:"displayText"`
				Promo              *struct {
					PricePerUnit float64 `json:"pricePerUnit"`
					Annotation   string  `json:"annotation"`
				} `json:"promo"`
			} `json:"result"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Result == nil {
			t.Fatal("result is null, want a figure")
		}
		if response.Result.PricePerUnit != 1.00 {
			t.Errorf("pricePerUnit = %v, want 1.00", response.Result.PricePerUnit)
		}
		if response.Result.UnitLabel != "100ml" {
			t.Errorf("unitLabel = %s, want 100ml", response.Result.UnitLabel)
		}
		if response.Result.DisplayText != "Price per 100ml: $1.00" {
			t.Errorf("displayText = %q", response.Result.DisplayText)
		}
		if response.Result.Promo == nil {
			t.Fatal("promo is null, want a figure")
		}
		if response.Result.Promo.PricePerUnit != 0.80 {
			t.Errorf("promo.pricePerUnit = %v, want 0.80", response.Result.Promo.PricePerUnit)
		}
	})

	t.Run("listing without signals returns null result", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/compare", map[string]interface{}{
			"listing": map[string]string{"title": "Gift Card"},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["result"] != nil {
			t.Errorf("result = %v, want null", response["result"])
		}
	})

	t.Run("empty listing is a bad request", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/compare", map[string]interface{}{
			"listing": map[string]string{},
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/compare", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestCompareBatchEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("results are positional", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/compare/batch", map[string]interface{}{
			"listings": []map[string]string{
				{"title": "Brand X, 500 g", "priceText": "$5.00"},
				{"title": "Gift Card", "priceText": "$25.00"},
			},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Results []json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(response.Results) != 2 {
			t.Fatalf("len(results) = %d, want 2", len(response.Results))
		}
		if string(response.Results[1]) != "null" {
			t.Errorf("results[1] = %s, want null", response.Results[1])
		}
	})

	t.Run("missing listings is a bad request", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/compare/batch", map[string]interface{}{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestCompareEndpoint_NilService(t *testing.T) {
	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "test"},
		RateLimit: config.RateLimitConfig{PerIP: 1000, Burst: 1000},
	}
	router := SetupRouter(cfg, NewHandler(nil))

	w := postJSON(t, router, "/api/v1/compare", map[string]interface{}{
		"listing": map[string]string{"title": "Brand X, 500 g"},
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
