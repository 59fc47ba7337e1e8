package model

// Product is a catalog entry. The catalog is static reference data: the
// filter pipeline reads it, nothing mutates it.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`                    // VND, đơn vị nhỏ nhất
	OriginalPrice int64    `json:"original_price,omitempty"` // giá trước khuyến mãi
	Image         string   `json:"image"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	StockCount    int      `json:"stock_count"`
	IsNew         bool     `json:"is_new,omitempty"`
	IsSale        bool     `json:"is_sale,omitempty"`
}
