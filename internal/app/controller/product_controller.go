package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/luxe-fashion/luxe-backend/internal/app/catalog"
	"github.com/luxe-fashion/luxe-backend/internal/app/service"
	httperrors "github.com/luxe-fashion/luxe-backend/internal/errors"
	"github.com/luxe-fashion/luxe-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ListProducts returns the filtered, sorted catalog
// GET /api/v1/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter, err := filterFromQuery(c)
	if err != nil {
		log.Warn("Invalid product filter", map[string]interface{}{
			"error": err.Error(),
		})
		httperrors.BadRequest(c, httperrors.ValidationInvalidInput, "Bộ lọc không hợp lệ")
		return
	}

	products := ctrl.productService.ListProducts(filter)

	log.Info("Products listed", map[string]interface{}{
		"count": len(products),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one catalog entry
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	product, err := ctrl.productService.GetProduct(id)
	if err != nil {
		log.Warn("Product not found", map[string]interface{}{
			"product_id": id,
		})
		httperrors.NotFound(c, httperrors.ProductNotFound, "Không tìm thấy sản phẩm")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// SearchProducts runs a catalog search
// GET /api/v1/products/search?q=
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	query := c.Query("q")

	products, err := ctrl.productService.SearchProducts(query)
	if err != nil {
		if errors.Is(err, service.ErrSearchQueryTooShort) {
			httperrors.BadRequest(c, httperrors.ProductSearchTooShort, "Từ khóa tìm kiếm cần ít nhất 3 ký tự")
			return
		}
		log.Error("Product search failed", err, map[string]interface{}{
			"query": query,
		})
		httperrors.InternalError(c, "")
		return
	}

	log.Info("Product search served", map[string]interface{}{
		"query": query,
		"count": len(products),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
		"query":    query,
	})
}

// CompareProducts resolves a comparison set
// GET /api/v1/products/compare?ids=1,2,3
func (ctrl *ProductController) CompareProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var ids []string
	for _, part := range strings.Split(c.Query("ids"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	if len(ids) == 0 {
		httperrors.BadRequest(c, httperrors.ValidationRequired, "Vui lòng chọn sản phẩm để so sánh")
		return
	}

	products, err := ctrl.productService.CompareProducts(ids)
	if err != nil {
		if errors.Is(err, service.ErrCompareLimit) {
			httperrors.BadRequest(c, httperrors.ProductCompareLimit, "Chỉ có thể so sánh tối đa 4 sản phẩm")
			return
		}
		if errors.Is(err, service.ErrProductNotFound) {
			httperrors.NotFound(c, httperrors.ProductNotFound, "Không tìm thấy sản phẩm")
			return
		}
		log.Error("Product comparison failed", err, map[string]interface{}{
			"ids": ids,
		})
		httperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetFilterOptions returns the sidebar filter values
// GET /api/v1/products/filters
func (ctrl *ProductController) GetFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"filters": ctrl.productService.FilterOptions(),
	})
}

func filterFromQuery(c *gin.Context) (catalog.Filter, error) {
	f := catalog.NewFilter()
	f.Query = c.Query("q")
	f.Categories = c.QueryArray("category")
	f.Brands = c.QueryArray("brand")
	f.Colors = c.QueryArray("color")
	f.Sizes = c.QueryArray("size")

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, err
		}
		f.PriceMin = v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, err
		}
		f.PriceMax = v
	}
	if sort := c.Query("sort"); sort != "" {
		f.Sort = catalog.SortKey(sort)
	}
	return f, nil
}
