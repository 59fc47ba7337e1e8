package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luxe-fashion/luxe-backend/internal/app/service"
	httperrors "github.com/luxe-fashion/luxe-backend/internal/errors"
	"github.com/luxe-fashion/luxe-backend/internal/middleware"
)

type WishlistController struct {
	wishlistService service.WishlistService
}

func NewWishlistController(wishlistService service.WishlistService) *WishlistController {
	return &WishlistController{
		wishlistService: wishlistService,
	}
}

type AddToWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetWishlist returns the saved products
// GET /api/v1/wishlist
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	items, count := ctrl.wishlistService.GetWishlist()

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": count,
	})
}

// AddToWishlist saves a product. Saving one that is already saved is
// not an error.
// POST /api/v1/wishlist
func (ctrl *WishlistController) AddToWishlist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to wishlist request", map[string]interface{}{
			"error": err.Error(),
		})
		httperrors.BadRequest(c, httperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
		return
	}

	added, err := ctrl.wishlistService.AddToWishlist(req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			httperrors.NotFound(c, httperrors.ProductNotFound, "Không tìm thấy sản phẩm")
			return
		}
		log.Error("Failed to add to wishlist", err, map[string]interface{}{
			"product_id": req.ProductID,
		})
		httperrors.InternalError(c, "")
		return
	}

	_, count := ctrl.wishlistService.GetWishlist()

	if !added {
		c.JSON(http.StatusOK, gin.H{
			"message": "Sản phẩm đã có trong danh sách yêu thích",
			"count":   count,
		})
		return
	}

	log.Info("Product added to wishlist", map[string]interface{}{
		"product_id": req.ProductID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Đã thêm vào danh sách yêu thích",
		"count":   count,
	})
}

// CheckWishlisted reports whether a product is saved
// GET /api/v1/wishlist/:id
func (ctrl *WishlistController) CheckWishlisted(c *gin.Context) {
	id := c.Param("id")

	c.JSON(http.StatusOK, gin.H{
		"product_id": id,
		"wishlisted": ctrl.wishlistService.IsWishlisted(id),
	})
}

// RemoveFromWishlist deletes a saved product
// DELETE /api/v1/wishlist/:id
func (ctrl *WishlistController) RemoveFromWishlist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.wishlistService.RemoveFromWishlist(id); err != nil {
		httperrors.NotFound(c, httperrors.WishlistItemNotFound, "Sản phẩm không có trong danh sách yêu thích")
		return
	}

	_, count := ctrl.wishlistService.GetWishlist()

	log.Info("Product removed from wishlist", map[string]interface{}{
		"product_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã xóa khỏi danh sách yêu thích",
		"count":   count,
	})
}

// ClearWishlist removes every saved product
// DELETE /api/v1/wishlist
func (ctrl *WishlistController) ClearWishlist(c *gin.Context) {
	ctrl.wishlistService.ClearWishlist()

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã xóa toàn bộ danh sách yêu thích",
		"count":   0,
	})
}
