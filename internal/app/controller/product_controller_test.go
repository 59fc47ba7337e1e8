package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxe-fashion/luxe-backend/internal/app/service"
)

func setupProductControllerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller := NewProductController(service.NewProductService())

	router := gin.New()
	router.GET("/products", controller.ListProducts)
	router.GET("/products/filters", controller.GetFilterOptions)
	router.GET("/products/search", controller.SearchProducts)
	router.GET("/products/compare", controller.CompareProducts)
	router.GET("/products/:id", controller.GetProduct)
	return router
}

func TestProductController_ListProducts(t *testing.T) {
	router := setupProductControllerTest(t)

	req := httptest.NewRequest("GET", "/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Count)
}

func TestProductController_ListProducts_Filtered(t *testing.T) {
	router := setupProductControllerTest(t)

	req := httptest.NewRequest("GET", "/products?min_price=0&max_price=2000000&sort=price_low", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []struct {
			ID    string `json:"id"`
			Price int64  `json:"price"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Products)
	for i, p := range resp.Products {
		assert.LessOrEqual(t, p.Price, int64(2000000))
		if i > 0 {
			assert.GreaterOrEqual(t, p.Price, resp.Products[i-1].Price)
		}
	}
}

func TestProductController_ListProducts_InvalidPrice(t *testing.T) {
	router := setupProductControllerTest(t)

	req := httptest.NewRequest("GET", "/products?min_price=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_INPUT")
}

func TestProductController_GetProduct(t *testing.T) {
	router := setupProductControllerTest(t)

	t.Run("Existing product", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Áo sơ mi lụa cao cấp")
	})

	t.Run("Unknown product", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/9999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "PRODUCT_NOT_FOUND")
	})
}

func TestProductController_SearchProducts(t *testing.T) {
	router := setupProductControllerTest(t)

	t.Run("Query too short", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/search?q=ab", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "PRODUCT_SEARCH_TOO_SHORT")
	})

	t.Run("Matching query", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/search?q=blazer", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Áo khoác blazer nữ")
	})
}

func TestProductController_CompareProducts(t *testing.T) {
	router := setupProductControllerTest(t)

	t.Run("Valid set", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/compare?ids=1,2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("No ids", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/compare", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Over limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/compare?ids=1,2,3,4,5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "PRODUCT_COMPARE_LIMIT")
	})
}

func TestProductController_GetFilterOptions(t *testing.T) {
	router := setupProductControllerTest(t)

	req := httptest.NewRequest("GET", "/products/filters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Luxe Collection")
	assert.Contains(t, w.Body.String(), "max_price")
}
