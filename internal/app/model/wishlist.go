package model

// WishlistItem is one saved product. Identity is the product id alone:
// the wishlist has no variant dimension.
type WishlistItem struct {
	ID            string `json:"id"`                       // mã sản phẩm
	Name          string `json:"name"`                     // tên sản phẩm
	Price         int64  `json:"price"`                    // giá hiện tại (VND)
	Image         string `json:"image"`                    // ảnh đại diện
	OriginalPrice int64  `json:"original_price,omitempty"` // giá gốc nếu đang giảm
}
