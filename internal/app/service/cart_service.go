package service

import (
	"errors"

	"github.com/luxe-fashion/luxe-backend/internal/app/container"
	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidVariant   = errors.New("invalid product variant")
)

type CartService interface {
	GetCart() ([]model.LineItem, container.CartSummary)
	AddToCart(productID, color, size string, quantity int) (*model.LineItem, error)
	UpdateQuantity(key model.ItemKey, quantity int) error
	RemoveFromCart(key model.ItemKey)
	ClearCart()
}

type cartService struct {
	cart     *container.Cart
	products ProductService
}

func NewCartService(cart *container.Cart, products ProductService) CartService {
	return &cartService{
		cart:     cart,
		products: products,
	}
}

func (s *cartService) GetCart() ([]model.LineItem, container.CartSummary) {
	return s.cart.Items(), s.cart.Summary()
}

func (s *cartService) AddToCart(productID, color, size string, quantity int) (*model.LineItem, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"product_id": productID,
		"color":      color,
		"size":       size,
		"quantity":   quantity,
	})

	product, err := s.products.GetProduct(productID)
	if err != nil {
		logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}

	if color != "" && !containsString(product.Colors, color) {
		logger.Warn("Cannot add to cart: unknown color", map[string]interface{}{
			"product_id": productID,
			"color":      color,
		})
		return nil, ErrInvalidVariant
	}
	if size != "" && !containsString(product.Sizes, size) {
		logger.Warn("Cannot add to cart: unknown size", map[string]interface{}{
			"product_id": productID,
			"size":       size,
		})
		return nil, ErrInvalidVariant
	}

	line := s.cart.Add(model.LineItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Image:    product.Image,
		Color:    color,
		Size:     size,
		Quantity: quantity,
	})

	logger.Info("Cart line merged", map[string]interface{}{
		"product_id": line.ID,
		"quantity":   line.Quantity,
	})
	return &line, nil
}

func (s *cartService) UpdateQuantity(key model.ItemKey, quantity int) error {
	logger.Info("Updating cart line quantity", map[string]interface{}{
		"product_id": key.ProductID,
		"color":      key.Color,
		"size":       key.Size,
		"quantity":   quantity,
	})

	if !s.cart.UpdateQuantity(key, quantity) {
		logger.Warn("Cart line not found for update", map[string]interface{}{
			"product_id": key.ProductID,
		})
		return ErrCartItemNotFound
	}
	return nil
}

// RemoveFromCart deletes the line with the given key. Removing an
// absent key does nothing.
func (s *cartService) RemoveFromCart(key model.ItemKey) {
	logger.Info("Removing cart line", map[string]interface{}{
		"product_id": key.ProductID,
		"color":      key.Color,
		"size":       key.Size,
	})
	s.cart.Remove(key)
}

func (s *cartService) ClearCart() {
	logger.Info("Clearing cart")
	s.cart.Clear()
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
