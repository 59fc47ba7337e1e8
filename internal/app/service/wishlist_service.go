package service

import (
	"errors"

	"github.com/luxe-fashion/luxe-backend/internal/app/container"
	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

var ErrWishlistItemNotFound = errors.New("wishlist item not found")

type WishlistService interface {
	GetWishlist() ([]model.WishlistItem, int)
	AddToWishlist(productID string) (bool, error)
	RemoveFromWishlist(productID string) error
	IsWishlisted(productID string) bool
	ClearWishlist()
}

type wishlistService struct {
	wishlist *container.Wishlist
	products ProductService
}

func NewWishlistService(wishlist *container.Wishlist, products ProductService) WishlistService {
	return &wishlistService{
		wishlist: wishlist,
		products: products,
	}
}

func (s *wishlistService) GetWishlist() ([]model.WishlistItem, int) {
	items := s.wishlist.Items()
	return items, len(items)
}

// AddToWishlist saves the product. Returns false when it was already
// saved; a duplicate is not an error.
func (s *wishlistService) AddToWishlist(productID string) (bool, error) {
	logger.Info("Adding product to wishlist", map[string]interface{}{
		"product_id": productID,
	})

	product, err := s.products.GetProduct(productID)
	if err != nil {
		logger.Warn("Cannot add to wishlist: product not found", map[string]interface{}{
			"product_id": productID,
		})
		return false, err
	}

	added := s.wishlist.Add(model.WishlistItem{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.Price,
		Image:         product.Image,
		OriginalPrice: product.OriginalPrice,
	})
	if !added {
		logger.Debug("Product already in wishlist", map[string]interface{}{
			"product_id": productID,
		})
	}
	return added, nil
}

func (s *wishlistService) RemoveFromWishlist(productID string) error {
	logger.Info("Removing product from wishlist", map[string]interface{}{
		"product_id": productID,
	})

	if !s.wishlist.Remove(productID) {
		logger.Warn("Wishlist item not found", map[string]interface{}{
			"product_id": productID,
		})
		return ErrWishlistItemNotFound
	}
	return nil
}

func (s *wishlistService) IsWishlisted(productID string) bool {
	return s.wishlist.Contains(productID)
}

func (s *wishlistService) ClearWishlist() {
	logger.Info("Clearing wishlist")
	s.wishlist.Clear()
}
