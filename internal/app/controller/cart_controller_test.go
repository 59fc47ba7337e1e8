package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxe-fashion/luxe-backend/internal/app/container"
	"github.com/luxe-fashion/luxe-backend/internal/app/service"
	"github.com/luxe-fashion/luxe-backend/internal/kv"
)

func setupCartControllerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cart := container.NewCart(kv.NewMemoryStore())
	cartService := service.NewCartService(cart, service.NewProductService())
	controller := NewCartController(cartService)

	router := gin.New()
	router.GET("/cart", controller.GetCart)
	router.POST("/cart", controller.AddToCart)
	router.PUT("/cart/:id", controller.UpdateCartItem)
	router.DELETE("/cart/:id", controller.RemoveFromCart)
	router.DELETE("/cart", controller.ClearCart)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type cartResponse struct {
	TotalItems int   `json:"total_items"`
	TotalPrice int64 `json:"total_price"`
}

func TestCartController_AddToCart(t *testing.T) {
	router := setupCartControllerTest(t)

	w := postJSON(t, router, "POST", "/cart", gin.H{
		"product_id": "1",
		"color":      "Đen",
		"size":       "M",
		"quantity":   1,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Đã thêm Áo sơ mi lụa cao cấp vào giỏ hàng")

	// Same variant again merges rather than appending
	w = postJSON(t, router, "POST", "/cart", gin.H{
		"product_id": "1",
		"color":      "Đen",
		"size":       "M",
		"quantity":   1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, int64(2400000), resp.TotalPrice)
}

func TestCartController_AddToCart_Errors(t *testing.T) {
	router := setupCartControllerTest(t)

	t.Run("Missing product id", func(t *testing.T) {
		w := postJSON(t, router, "POST", "/cart", gin.H{"quantity": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown product", func(t *testing.T) {
		w := postJSON(t, router, "POST", "/cart", gin.H{"product_id": "9999", "quantity": 1})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "PRODUCT_NOT_FOUND")
	})

	t.Run("Unknown variant", func(t *testing.T) {
		w := postJSON(t, router, "POST", "/cart", gin.H{"product_id": "1", "color": "Tím neon", "quantity": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "CART_INVALID_VARIANT")
	})
}

func TestCartController_GetCart(t *testing.T) {
	router := setupCartControllerTest(t)

	req := httptest.NewRequest("GET", "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalItems)
	assert.Equal(t, int64(0), resp.TotalPrice)
}

func TestCartController_UpdateCartItem(t *testing.T) {
	router := setupCartControllerTest(t)
	postJSON(t, router, "POST", "/cart", gin.H{"product_id": "1", "color": "Đen", "size": "M", "quantity": 1})

	w := postJSON(t, router, "PUT", "/cart/1?color=Đen&size=M", gin.H{"quantity": 3})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalItems)

	// Different variant of the same product is a different line
	w = postJSON(t, router, "PUT", "/cart/1?color=Trắng&size=M", gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CART_ITEM_NOT_FOUND")
}

func TestCartController_RemoveFromCart(t *testing.T) {
	router := setupCartControllerTest(t)
	postJSON(t, router, "POST", "/cart", gin.H{"product_id": "1", "color": "Đen", "size": "M", "quantity": 2})

	req := httptest.NewRequest("DELETE", "/cart/1?color=Đen&size=M", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalItems)

	// Removing a line that is already gone still succeeds
	req = httptest.NewRequest("DELETE", "/cart/1?color=Đen&size=M", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartController_ClearCart(t *testing.T) {
	router := setupCartControllerTest(t)
	postJSON(t, router, "POST", "/cart", gin.H{"product_id": "1", "color": "Đen", "size": "M", "quantity": 2})
	postJSON(t, router, "POST", "/cart", gin.H{"product_id": "2", "color": "Đen", "size": "S", "quantity": 1})

	req := httptest.NewRequest("DELETE", "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/cart", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalItems)
}
