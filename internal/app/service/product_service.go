package service

import (
	"errors"

	"github.com/luxe-fashion/luxe-backend/internal/app/catalog"
	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrSearchQueryTooShort = errors.New("search query too short")
	ErrCompareLimit        = errors.New("too many products to compare")
)

// Searches shorter than this return ErrSearchQueryTooShort instead of
// scanning the catalog.
const MinSearchLength = 3

// CompareLimit caps how many products one comparison may hold.
const CompareLimit = 4

type ProductService interface {
	ListProducts(filter catalog.Filter) []model.Product
	GetProduct(id string) (*model.Product, error)
	SearchProducts(query string) ([]model.Product, error)
	CompareProducts(ids []string) ([]model.Product, error)
	FilterOptions() catalog.FilterSummary
}

type productService struct {
	products []model.Product
}

func NewProductService() ProductService {
	return &productService{
		products: catalog.Products(),
	}
}

func (s *productService) ListProducts(filter catalog.Filter) []model.Product {
	result := catalog.Apply(s.products, filter)

	logger.Debug("Product listing computed", map[string]interface{}{
		"total":   len(s.products),
		"matched": len(result),
		"sort":    string(filter.Sort),
	})
	return result
}

func (s *productService) GetProduct(id string) (*model.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}

	logger.Warn("Product not found", map[string]interface{}{
		"product_id": id,
	})
	return nil, ErrProductNotFound
}

func (s *productService) SearchProducts(query string) ([]model.Product, error) {
	if len([]rune(query)) < MinSearchLength {
		logger.Debug("Search query below minimum length", map[string]interface{}{
			"query": query,
		})
		return nil, ErrSearchQueryTooShort
	}

	f := catalog.NewFilter()
	f.Query = query
	result := catalog.Apply(s.products, f)

	logger.Info("Product search completed", map[string]interface{}{
		"query":   query,
		"matched": len(result),
	})
	return result, nil
}

func (s *productService) CompareProducts(ids []string) ([]model.Product, error) {
	if len(ids) > CompareLimit {
		logger.Warn("Comparison request over limit", map[string]interface{}{
			"requested": len(ids),
			"limit":     CompareLimit,
		})
		return nil, ErrCompareLimit
	}

	result := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		product, err := s.GetProduct(id)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	return result, nil
}

func (s *productService) FilterOptions() catalog.FilterSummary {
	return catalog.Summarize(s.products)
}
