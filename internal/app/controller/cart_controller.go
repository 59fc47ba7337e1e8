package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/internal/app/service"
	httperrors "github.com/luxe-fashion/luxe-backend/internal/errors"
	"github.com/luxe-fashion/luxe-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart returns the cart lines and derived totals
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	items, summary := ctrl.cartService.GetCart()

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_items": summary.TotalItems,
		"total_price": summary.TotalPrice,
	})
}

// AddToCart merges an item into the cart
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		httperrors.BadRequest(c, httperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
		return
	}

	line, err := ctrl.cartService.AddToCart(req.ProductID, req.Color, req.Size, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			httperrors.NotFound(c, httperrors.ProductNotFound, "Không tìm thấy sản phẩm")
			return
		}
		if errors.Is(err, service.ErrInvalidVariant) {
			httperrors.BadRequest(c, httperrors.CartInvalidVariant, "Màu sắc hoặc kích thước không hợp lệ")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"product_id": req.ProductID,
		})
		httperrors.InternalError(c, "")
		return
	}

	_, summary := ctrl.cartService.GetCart()

	log.Info("Item added to cart", map[string]interface{}{
		"product_id": line.ID,
		"quantity":   line.Quantity,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Đã thêm " + line.Name + " vào giỏ hàng",
		"item":        line,
		"total_items": summary.TotalItems,
		"total_price": summary.TotalPrice,
	})
}

// UpdateCartItem sets a line's quantity. The line is addressed by
// product id plus the color and size query parameters.
// PUT /api/v1/cart/:id
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	key := itemKeyFromRequest(c)

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update cart request", map[string]interface{}{
			"product_id": key.ProductID,
			"error":      err.Error(),
		})
		httperrors.BadRequest(c, httperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
		return
	}

	if err := ctrl.cartService.UpdateQuantity(key, req.Quantity); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			httperrors.NotFound(c, httperrors.CartItemNotFound, "Sản phẩm không có trong giỏ hàng")
			return
		}
		log.Error("Failed to update cart item", err, map[string]interface{}{
			"product_id": key.ProductID,
		})
		httperrors.InternalError(c, "")
		return
	}

	_, summary := ctrl.cartService.GetCart()

	c.JSON(http.StatusOK, gin.H{
		"message":     "Đã cập nhật giỏ hàng",
		"total_items": summary.TotalItems,
		"total_price": summary.TotalPrice,
	})
}

// RemoveFromCart deletes a line. Removing a line that is not there
// still succeeds.
// DELETE /api/v1/cart/:id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	key := itemKeyFromRequest(c)

	ctrl.cartService.RemoveFromCart(key)
	_, summary := ctrl.cartService.GetCart()

	c.JSON(http.StatusOK, gin.H{
		"message":     "Đã xóa sản phẩm khỏi giỏ hàng",
		"total_items": summary.TotalItems,
		"total_price": summary.TotalPrice,
	})
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.cartService.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message":     "Đã xóa toàn bộ giỏ hàng",
		"total_items": 0,
		"total_price": 0,
	})
}

func itemKeyFromRequest(c *gin.Context) model.ItemKey {
	return model.ItemKey{
		ProductID: c.Param("id"),
		Color:     c.Query("color"),
		Size:      c.Query("size"),
	}
}
